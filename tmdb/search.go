package tmdb

import (
	"context"
	"fmt"
	"net/url"

	"github.com/cinemind-cli/cinemind/log"
	"github.com/samber/mo"
)

// Trending returns today's trending movies, shows and people.
func (c *Client) Trending(ctx context.Context) ([]*MediaItem, error) {
	var response page[MediaItem]
	if err := c.get(ctx, "/trending/all/day", c.localized(nil), &response); err != nil {
		return nil, err
	}

	log.Infof("tmdb: got %d trending items", len(response.Results))
	return response.Results, nil
}

// SearchMulti runs a keyword search across movies, shows and people.
func (c *Client) SearchMulti(ctx context.Context, query string) ([]*MediaItem, error) {
	params := c.localized(url.Values{
		"query":         {query},
		"include_adult": {"false"},
		"page":          {"1"},
	})

	var response page[MediaItem]
	if err := c.get(ctx, "/search/multi", params, &response); err != nil {
		return nil, err
	}

	log.Infof("tmdb: search %q found %d results", query, len(response.Results))
	return response.Results, nil
}

// Discover lists titles of one media type matching params.
// Params override the defaults; every result is tagged with mediaType.
func (c *Client) Discover(ctx context.Context, mediaType MediaType, params url.Values) ([]*MediaItem, error) {
	query := url.Values{
		"include_adult": {"false"},
		"include_video": {"false"},
		"page":          {"1"},
	}
	for k, v := range params {
		query[k] = v
	}

	var response page[MediaItem]
	if err := c.get(ctx, "/discover/"+string(mediaType), c.localized(query), &response); err != nil {
		return nil, err
	}

	for _, item := range response.Results {
		item.MediaType = mediaType
	}

	log.Infof("tmdb: discover %s found %d results", mediaType, len(response.Results))
	return response.Results, nil
}

// FindIDByName returns the id of the first movie or show matching name.
func (c *Client) FindIDByName(ctx context.Context, mediaType MediaType, name string) (mo.Option[int], error) {
	return c.firstID(ctx, "/search/"+string(mediaType), name)
}

// PersonID returns the id of the first person matching name.
func (c *Client) PersonID(ctx context.Context, name string) (mo.Option[int], error) {
	return c.firstID(ctx, "/search/person", name)
}

func (c *Client) firstID(ctx context.Context, endpoint, name string) (mo.Option[int], error) {
	var response page[MediaItem]
	if err := c.get(ctx, endpoint, url.Values{"query": {name}}, &response); err != nil {
		return mo.None[int](), fmt.Errorf("lookup %q: %w", name, err)
	}

	if len(response.Results) == 0 {
		log.Infof("tmdb: nothing found at %s for %q", endpoint, name)
		return mo.None[int](), nil
	}

	return mo.Some(response.Results[0].ID), nil
}
