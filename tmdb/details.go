package tmdb

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strconv"

	"github.com/cinemind-cli/cinemind/log"
	"github.com/samber/lo"
)

// ErrPersonDetails is returned when a person record could not be loaded.
var ErrPersonDetails = errors.New("failed to fetch person details")

// Details returns the full record of a movie or show.
func (c *Client) Details(ctx context.Context, mediaType MediaType, id int) (*MediaDetail, error) {
	cacheKey := string(mediaType) + ":" + strconv.Itoa(id)
	if c.cache {
		if detail, ok := detailsCacher.Get(cacheKey).Get(); ok {
			return detail, nil
		}
	}

	params := url.Values{"append_to_response": {"credits,videos,recommendations,external_ids"}}

	var detail MediaDetail
	if err := c.get(ctx, fmt.Sprintf("/%s/%d", mediaType, id), c.localized(params), &detail); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDetails, err)
	}

	detail.MediaType = mediaType
	// detail responses carry genres instead of genre_ids
	if len(detail.GenreIDs) == 0 {
		detail.GenreIDs = lo.Map(detail.Genres, func(g Genre, _ int) int { return g.ID })
	}

	if c.cache {
		_ = detailsCacher.Set(cacheKey, &detail)
	}

	return &detail, nil
}

// PersonDetails returns a person together with their combined credits.
func (c *Client) PersonDetails(ctx context.Context, id int) (*PersonDetail, error) {
	cacheKey := "person:" + strconv.Itoa(id)
	if c.cache {
		if person, ok := personCacher.Get(cacheKey).Get(); ok {
			return person, nil
		}
	}

	params := url.Values{"append_to_response": {"combined_credits"}}

	var person PersonDetail
	if err := c.get(ctx, fmt.Sprintf("/person/%d", id), c.localized(params), &person); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPersonDetails, err)
	}

	if c.cache {
		_ = personCacher.Set(cacheKey, &person)
	}

	return &person, nil
}

// ShowSeasons returns the season summaries of a show.
func (c *Client) ShowSeasons(ctx context.Context, showID int) ([]*Season, error) {
	detail, err := c.Details(ctx, TV, showID)
	if err != nil {
		return nil, err
	}

	return detail.Seasons, nil
}

// SeasonEpisodes lists the episodes of one season.
// A season the catalog refuses yields no episodes rather than an error.
func (c *Client) SeasonEpisodes(ctx context.Context, showID, season int) ([]*Episode, error) {
	cacheKey := fmt.Sprintf("tv:%d:season:%d", showID, season)
	if c.cache {
		if episodes, ok := seasonCacher.Get(cacheKey).Get(); ok {
			return episodes, nil
		}
	}

	var response struct {
		Episodes []*Episode `json:"episodes"`
	}

	err := c.get(ctx, fmt.Sprintf("/tv/%d/season/%d", showID, season), c.localized(nil), &response)
	if statusErr := (*StatusError)(nil); errors.As(err, &statusErr) {
		log.Warnf("tmdb: season %d of show %d unavailable", season, showID)
		return []*Episode{}, nil
	}
	if err != nil {
		return nil, err
	}

	if response.Episodes == nil {
		response.Episodes = []*Episode{}
	}

	if c.cache {
		_ = seasonCacher.Set(cacheKey, response.Episodes)
	}

	return response.Episodes, nil
}
