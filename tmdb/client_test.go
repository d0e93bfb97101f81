package tmdb

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/cinemind-cli/cinemind/filesystem"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	filesystem.SetMemMapFs()
}

// catalog records every request and answers with the routed payload.
type catalog struct {
	server   *httptest.Server
	requests []*url.URL
	routes   map[string]any
	status   map[string]int
}

func newCatalog() *catalog {
	c := &catalog{routes: map[string]any{}, status: map[string]int{}}
	c.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		c.requests = append(c.requests, r.URL)
		if code, ok := c.status[r.URL.Path]; ok {
			w.WriteHeader(code)
			return
		}
		body, ok := c.routes[r.URL.Path]
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		_ = json.NewEncoder(w).Encode(body)
	}))
	return c
}

func (c *catalog) client(options ...Option) *Client {
	return New("secret", append([]Option{WithBaseURL(c.server.URL), WithCache(false)}, options...)...)
}

func (c *catalog) last() url.Values {
	return c.requests[len(c.requests)-1].Query()
}

func TestValidateKey(t *testing.T) {
	Convey("Given a catalog server", t, func() {
		c := newCatalog()
		defer c.server.Close()

		Convey("A 2xx answer means the key is valid", func() {
			c.routes["/configuration"] = map[string]any{"images": map[string]any{}}
			So(c.client().ValidateKey(context.Background()), ShouldBeTrue)
			So(c.last().Get("api_key"), ShouldEqual, "secret")
		})

		Convey("A 401 means the key is invalid", func() {
			c.status["/configuration"] = http.StatusUnauthorized
			So(c.client().ValidateKey(context.Background()), ShouldBeFalse)
		})

		Convey("An empty key is never sent", func() {
			So(New("  ", WithBaseURL(c.server.URL)).ValidateKey(context.Background()), ShouldBeFalse)
			So(c.requests, ShouldBeEmpty)
		})

		Convey("An unreachable host is invalid", func() {
			client := New("secret", WithBaseURL("http://127.0.0.1:1"))
			So(client.ValidateKey(context.Background()), ShouldBeFalse)
		})
	})
}

func TestLists(t *testing.T) {
	Convey("Given a catalog server", t, func() {
		c := newCatalog()
		defer c.server.Close()
		ctx := context.Background()

		Convey("Trending returns the results in the default language", func() {
			c.routes["/trending/all/day"] = map[string]any{"results": []map[string]any{
				{"id": 1, "title": "Dune", "media_type": "movie"},
				{"id": 2, "name": "Severance", "media_type": "tv"},
			}}

			items, err := c.client().Trending(ctx)
			So(err, ShouldBeNil)
			So(items, ShouldHaveLength, 2)
			So(items[1].DisplayTitle(), ShouldEqual, "Severance")
			So(c.last().Get("language"), ShouldEqual, DefaultLanguage)
		})

		Convey("SearchMulti sends the fixed parameters", func() {
			c.routes["/search/multi"] = map[string]any{"results": []any{}}

			items, err := c.client().SearchMulti(ctx, "space opera")
			So(err, ShouldBeNil)
			So(items, ShouldBeEmpty)

			q := c.last()
			So(q.Get("query"), ShouldEqual, "space opera")
			So(q.Get("include_adult"), ShouldEqual, "false")
			So(q.Get("page"), ShouldEqual, "1")
		})

		Convey("Discover merges params over the defaults and tags results", func() {
			c.routes["/discover/tv"] = map[string]any{"results": []map[string]any{{"id": 7, "name": "Dark"}}}

			items, err := c.client().Discover(ctx, TV, url.Values{"sort_by": {"vote_average.desc"}, "page": {"2"}})
			So(err, ShouldBeNil)
			So(items[0].MediaType, ShouldEqual, TV)

			q := c.last()
			So(q.Get("sort_by"), ShouldEqual, "vote_average.desc")
			So(q.Get("page"), ShouldEqual, "2")
			So(q.Get("include_video"), ShouldEqual, "false")
		})

		Convey("A failing list is a StatusError", func() {
			c.status["/trending/all/day"] = http.StatusInternalServerError

			_, err := c.client().Trending(ctx)
			var statusErr *StatusError
			So(errors.As(err, &statusErr), ShouldBeTrue)
			So(statusErr.Code, ShouldEqual, http.StatusInternalServerError)
		})

		Convey("Garbage is a decode error", func() {
			c.server.Config.Handler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte("{not json"))
			})

			_, err := c.client().SearchMulti(ctx, "x")
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, "decode")
		})
	})
}

func TestLookups(t *testing.T) {
	Convey("Given a catalog server", t, func() {
		c := newCatalog()
		defer c.server.Close()
		ctx := context.Background()

		Convey("FindIDByName returns the first result", func() {
			c.routes["/search/tv"] = map[string]any{"results": []map[string]any{{"id": 1396}, {"id": 2}}}

			id, err := c.client().FindIDByName(ctx, TV, "Breaking Bad")
			So(err, ShouldBeNil)
			So(id.MustGet(), ShouldEqual, 1396)
			So(c.last().Get("query"), ShouldEqual, "Breaking Bad")
		})

		Convey("PersonID is absent without results", func() {
			c.routes["/search/person"] = map[string]any{"results": []any{}}

			id, err := c.client().PersonID(ctx, "Nobody")
			So(err, ShouldBeNil)
			So(id.IsAbsent(), ShouldBeTrue)
		})
	})
}

func TestDetails(t *testing.T) {
	Convey("Given a catalog server", t, func() {
		c := newCatalog()
		defer c.server.Close()
		ctx := context.Background()

		c.routes["/tv/1396"] = map[string]any{
			"id":                1396,
			"name":              "Breaking Bad",
			"number_of_seasons": 5,
			"seasons": []map[string]any{
				{"season_number": 0, "episode_count": 9},
				{"season_number": 1, "episode_count": 7},
			},
			"videos": map[string]any{"results": []map[string]any{
				{"key": "teaser", "type": "Teaser", "site": "YouTube"},
				{"key": "abc", "type": "Trailer", "site": "YouTube"},
			}},
		}

		Convey("Details appends the sub-resources and sets the media type", func() {
			detail, err := c.client().Details(ctx, TV, 1396)
			So(err, ShouldBeNil)
			So(detail.MediaType, ShouldEqual, TV)
			So(detail.TrailerURL(), ShouldEqual, "https://www.youtube.com/watch?v=abc")
			So(detail.DefaultSeason(), ShouldEqual, 1)
			So(c.last().Get("append_to_response"), ShouldEqual, "credits,videos,recommendations,external_ids")
		})

		Convey("Details fill the genre ids from the genres", func() {
			c.routes["/movie/129"] = map[string]any{
				"id":     129,
				"title":  "Spirited Away",
				"genres": []map[string]any{{"id": AnimationGenre, "name": "Animation"}, {"id": 14, "name": "Fantasy"}},
			}

			detail, err := c.client().Details(ctx, Movie, 129)
			So(err, ShouldBeNil)
			So(detail.GenreIDs, ShouldResemble, []int{AnimationGenre, 14})
			So(detail.MediaItem.IsAnimation(), ShouldBeTrue)
		})

		Convey("ShowSeasons returns every season", func() {
			seasons, err := c.client().ShowSeasons(ctx, 1396)
			So(err, ShouldBeNil)
			So(seasons, ShouldHaveLength, 2)
		})

		Convey("A missing title fails with the details error", func() {
			_, err := c.client().Details(ctx, Movie, 1)
			So(errors.Is(err, ErrDetails), ShouldBeTrue)
		})

		Convey("PersonDetails appends the combined credits", func() {
			c.routes["/person/17419"] = map[string]any{"id": 17419, "name": "Bryan Cranston"}

			person, err := c.client().PersonDetails(ctx, 17419)
			So(err, ShouldBeNil)
			So(person.Name, ShouldEqual, "Bryan Cranston")
			So(c.last().Get("append_to_response"), ShouldEqual, "combined_credits")

			_, err = c.client().PersonDetails(ctx, 1)
			So(errors.Is(err, ErrPersonDetails), ShouldBeTrue)
		})

		Convey("Cached details are served without a request", func() {
			client := c.client(WithCache(true))
			_, err := client.Details(ctx, TV, 1396)
			So(err, ShouldBeNil)
			count := len(c.requests)

			detail, err := client.Details(ctx, TV, 1396)
			So(err, ShouldBeNil)
			So(detail.Name, ShouldEqual, "Breaking Bad")
			So(c.requests, ShouldHaveLength, count)

			So(detailsCacher.Delete("tv:1396"), ShouldBeNil)
		})
	})
}

func TestSeasonEpisodes(t *testing.T) {
	Convey("Given a catalog server", t, func() {
		c := newCatalog()
		defer c.server.Close()
		ctx := context.Background()

		Convey("Episodes of a season are listed", func() {
			c.routes["/tv/1/season/2"] = map[string]any{"episodes": []map[string]any{
				{"id": 10, "name": "Pilot", "episode_number": 1, "season_number": 2, "vote_average": 8.5},
			}}

			episodes, err := c.client().SeasonEpisodes(ctx, 1, 2)
			So(err, ShouldBeNil)
			So(episodes, ShouldHaveLength, 1)
			So(episodes[0].Item(1).IsEpisode(), ShouldBeTrue)
		})

		Convey("A refused season is empty, not an error", func() {
			c.status["/tv/1/season/9"] = http.StatusNotFound

			episodes, err := c.client().SeasonEpisodes(ctx, 1, 9)
			So(err, ShouldBeNil)
			So(episodes, ShouldNotBeNil)
			So(episodes, ShouldBeEmpty)
		})
	})
}
