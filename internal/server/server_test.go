package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/cinemind-cli/cinemind/discovery"
	"github.com/cinemind-cli/cinemind/filesystem"
	"github.com/cinemind-cli/cinemind/library"
	"github.com/cinemind-cli/cinemind/tmdb"
	"github.com/google/uuid"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	filesystem.SetMemMapFs()
}

type fakeService struct {
	err        error
	rankedShow string
	rankLimit  int
}

func (f *fakeService) Trending(context.Context) (*discovery.Result, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &discovery.Result{Items: []*tmdb.MediaItem{{ID: 1, Title: "Dune"}}, Explanation: discovery.TrendingExplanation}, nil
}

func (f *fakeService) Search(_ context.Context, q string) (*discovery.Result, error) {
	return &discovery.Result{Query: q, Items: []*tmdb.MediaItem{}}, f.err
}

func (f *fakeService) Details(_ context.Context, item *tmdb.MediaItem) (*tmdb.MediaDetail, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &tmdb.MediaDetail{MediaItem: *item}, nil
}

func (f *fakeService) Person(_ context.Context, id int) (*tmdb.PersonDetail, error) {
	return &tmdb.PersonDetail{ID: id, Name: "Denis Villeneuve"}, f.err
}

func (f *fakeService) Season(_ context.Context, showID, season int) ([]*tmdb.MediaItem, error) {
	return []*tmdb.MediaItem{{ID: 9, ShowID: showID, SeasonNumber: season, EpisodeNumber: 1}}, f.err
}

func (f *fakeService) RankEpisodes(_ context.Context, show string, limit int) ([]*tmdb.MediaItem, error) {
	f.rankedShow, f.rankLimit = show, limit
	return []*tmdb.MediaItem{}, f.err
}

func do(handler http.Handler, method, target string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}

	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, httptest.NewRequest(method, target, &buf))
	return recorder
}

func decode(recorder *httptest.ResponseRecorder, v any) {
	So(json.Unmarshal(recorder.Body.Bytes(), v), ShouldBeNil)
}

func TestRoutes(t *testing.T) {
	Convey("Given a server", t, func() {
		service := &fakeService{}
		handler := New(service).Handler()

		Convey("Health answers with a fresh request id", func() {
			recorder := do(handler, http.MethodGet, "/api/v1/health", nil)
			So(recorder.Code, ShouldEqual, http.StatusOK)

			_, err := uuid.Parse(recorder.Header().Get(RequestIDHeader))
			So(err, ShouldBeNil)
		})

		Convey("A valid incoming request id is echoed", func() {
			id := uuid.NewString()
			req := httptest.NewRequest(http.MethodGet, "/api/v1/health", nil)
			req.Header.Set(RequestIDHeader, id)
			recorder := httptest.NewRecorder()
			handler.ServeHTTP(recorder, req)
			So(recorder.Header().Get(RequestIDHeader), ShouldEqual, id)
		})

		Convey("Trending returns the result", func() {
			var result discovery.Result
			recorder := do(handler, http.MethodGet, "/api/v1/trending", nil)
			So(recorder.Code, ShouldEqual, http.StatusOK)
			decode(recorder, &result)
			So(result.Items[0].Title, ShouldEqual, "Dune")
		})

		Convey("Search requires a query", func() {
			So(do(handler, http.MethodGet, "/api/v1/search", nil).Code, ShouldEqual, http.StatusBadRequest)
			So(do(handler, http.MethodGet, "/api/v1/search?q=dune", nil).Code, ShouldEqual, http.StatusOK)
		})

		Convey("Details are routed by type and id", func() {
			var detail tmdb.MediaDetail
			recorder := do(handler, http.MethodGet, "/api/v1/tv/1396", nil)
			So(recorder.Code, ShouldEqual, http.StatusOK)
			decode(recorder, &detail)
			So(detail.ID, ShouldEqual, 1396)
			So(detail.MediaType, ShouldEqual, tmdb.TV)

			So(do(handler, http.MethodGet, "/api/v1/book/1", nil).Code, ShouldEqual, http.StatusNotFound)
		})

		Convey("Seasons and rankings", func() {
			var items []*tmdb.MediaItem
			recorder := do(handler, http.MethodGet, "/api/v1/tv/1396/season/2", nil)
			decode(recorder, &items)
			So(items[0].ShowID, ShouldEqual, 1396)
			So(items[0].SeasonNumber, ShouldEqual, 2)

			So(do(handler, http.MethodGet, "/api/v1/tv/ranking?show=Dark&limit=5", nil).Code, ShouldEqual, http.StatusOK)
			So(service.rankedShow, ShouldEqual, "Dark")
			So(service.rankLimit, ShouldEqual, 5)

			So(do(handler, http.MethodGet, "/api/v1/tv/ranking?show=Dark&limit=x", nil).Code, ShouldEqual, http.StatusBadRequest)
			So(do(handler, http.MethodGet, "/api/v1/tv/ranking?show=Dark&limit=0", nil).Code, ShouldEqual, http.StatusBadRequest)
		})

		Convey("A person comes with known-for and a Letterboxd link", func() {
			var person map[string]any
			decode(do(handler, http.MethodGet, "/api/v1/person/137427", nil), &person)
			So(person["name"], ShouldEqual, "Denis Villeneuve")
			So(person["letterboxd_url"], ShouldEqual, "https://letterboxd.com/tmdb/person/137427")
		})

		Convey("Catalog failures are bad gateways with the display message", func() {
			service.err = &discovery.Error{Message: discovery.MsgTrendingFailed, Err: errors.New("401")}

			var body map[string]string
			recorder := do(handler, http.MethodGet, "/api/v1/trending", nil)
			So(recorder.Code, ShouldEqual, http.StatusBadGateway)
			decode(recorder, &body)
			So(body["error"], ShouldEqual, discovery.MsgTrendingFailed)
		})

		Convey("Missing analyzers and unknown shows have their own codes", func() {
			service.err = discovery.ErrNoAnalyzer
			So(do(handler, http.MethodGet, "/api/v1/search?q=x", nil).Code, ShouldEqual, http.StatusServiceUnavailable)

			service.err = discovery.ErrShowNotFound
			So(do(handler, http.MethodGet, "/api/v1/tv/ranking?show=x", nil).Code, ShouldEqual, http.StatusNotFound)
		})
	})
}

func TestLibraryRoutes(t *testing.T) {
	Convey("Given an empty library", t, func() {
		So(library.Clear(library.Favorites), ShouldBeNil)
		handler := New(&fakeService{}).Handler()
		dune := tmdb.MediaItem{ID: 438631, Title: "Dune", MediaType: tmdb.Movie, GenreIDs: []int{878}}

		Convey("Posting toggles the item", func() {
			var body map[string]any
			recorder := do(handler, http.MethodPost, "/api/v1/library/favorites", dune)
			So(recorder.Code, ShouldEqual, http.StatusOK)
			decode(recorder, &body)
			So(body["added"], ShouldEqual, true)
			So(body["key"], ShouldEqual, "movie:438631")

			var items []*tmdb.MediaItem
			decode(do(handler, http.MethodGet, "/api/v1/library/favorites?filter=movie", nil), &items)
			So(items, ShouldHaveLength, 1)

			decode(do(handler, http.MethodGet, "/api/v1/library/favorites?filter=tv", nil), &items)
			So(items, ShouldBeEmpty)

			decode(do(handler, http.MethodPost, "/api/v1/library/favorites", dune), &body)
			So(body["added"], ShouldEqual, false)
		})

		Convey("Bad input is rejected", func() {
			So(do(handler, http.MethodGet, "/api/v1/library/later", nil).Code, ShouldEqual, http.StatusNotFound)
			So(do(handler, http.MethodGet, "/api/v1/library/watchlist?filter=anime", nil).Code, ShouldEqual, http.StatusBadRequest)
			So(do(handler, http.MethodPost, "/api/v1/library/watchlist", map[string]any{"title": "no id"}).Code, ShouldEqual, http.StatusBadRequest)

			person := tmdb.MediaItem{ID: 1, Name: "Someone", MediaType: tmdb.Person}
			So(do(handler, http.MethodPost, "/api/v1/library/watchlist", person).Code, ShouldEqual, http.StatusBadRequest)

			unknown := map[string]any{"id": 2, "title": "Odd", "media_type": "foo"}
			So(do(handler, http.MethodPost, "/api/v1/library/watchlist", unknown).Code, ShouldEqual, http.StatusBadRequest)
			So(library.Contains(library.Watchlist, &tmdb.MediaItem{ID: 2, MediaType: "foo"}), ShouldBeFalse)
		})
	})
}
