package mini

import (
	"context"
	"errors"
	"testing"

	"github.com/cinemind-cli/cinemind/discovery"
	"github.com/cinemind-cli/cinemind/filesystem"
	"github.com/cinemind-cli/cinemind/key"
	"github.com/cinemind-cli/cinemind/library"
	"github.com/cinemind-cli/cinemind/tmdb"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func init() {
	filesystem.SetMemMapFs()
}

type fakeService struct {
	items []*tmdb.MediaItem
	err   error
}

func (f *fakeService) CanSearch() bool { return true }

func (f *fakeService) Trending(context.Context) (*discovery.Result, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &discovery.Result{Items: f.items, Explanation: discovery.TrendingExplanation}, nil
}

func (f *fakeService) Search(context.Context, string) (*discovery.Result, error) {
	return nil, f.err
}

func (f *fakeService) Details(_ context.Context, item *tmdb.MediaItem) (*tmdb.MediaDetail, error) {
	return &tmdb.MediaDetail{MediaItem: *item}, f.err
}

func (f *fakeService) Person(_ context.Context, id int) (*tmdb.PersonDetail, error) {
	return &tmdb.PersonDetail{
		ID:   id,
		Name: "Denis Villeneuve",
		CombinedCredits: tmdb.CombinedCredits{
			Crew: []*tmdb.MediaItem{{ID: 1, Title: "Arrival", MediaType: tmdb.Movie, VoteCount: 10}},
		},
	}, f.err
}

func TestStates(t *testing.T) {
	Convey("Given a mini session", t, func() {
		viper.Set(key.MiniSearchLimit, 2)
		viper.Set(key.HistorySaveOnView, false)

		service := &fakeService{items: []*tmdb.MediaItem{
			{ID: 1, Title: "Dune", MediaType: tmdb.Movie},
			{ID: 2, Name: "Severance", MediaType: tmdb.TV},
			{ID: 3, Title: "Arrival", MediaType: tmdb.Movie},
		}}
		m := newMini(context.Background(), service)
		m.newState(trendingState)

		Convey("Trending replaces itself with capped results", func() {
			So(m.handleState(), ShouldBeNil)
			So(m.state, ShouldEqual, resultsState)
			So(m.results.Peek().Items, ShouldHaveLength, 2)
			So(m.statesHistory.Len(), ShouldEqual, 0)

			Convey("Going back from the first screen quits", func() {
				m.previousState()
				So(m.state, ShouldEqual, quitState)
				So(m.handleState(), ShouldEqual, errQuit)
			})

			Convey("Stacked results unwind one at a time", func() {
				So(m.openPerson(&tmdb.MediaItem{ID: 137427, Name: "Denis Villeneuve", MediaType: tmdb.Person}), ShouldBeNil)
				So(m.results.Len(), ShouldEqual, 2)
				So(m.results.Peek().Explanation, ShouldEqual, "Denis Villeneuve is known for")

				m.previousState()
				So(m.state, ShouldEqual, resultsState)
				So(m.results.Len(), ShouldEqual, 1)
				So(m.results.Peek().Explanation, ShouldEqual, discovery.TrendingExplanation)
			})

			Convey("Details are cached per title", func() {
				m.selected = service.items[0]
				first, err := m.details(m.selected)
				So(err, ShouldBeNil)
				second, err := m.details(m.selected)
				So(err, ShouldBeNil)
				So(second, ShouldPointTo, first)
			})
		})

		Convey("A failing first trending request ends the session", func() {
			service.err = errors.New("offline")
			So(m.handleState(), ShouldEqual, service.err)
		})

		Convey("Empty lists are not pushed", func() {
			So(library.Clear(library.Favorites), ShouldBeNil)
			m.pushList(library.Favorites)
			So(m.results.Len(), ShouldEqual, 0)
		})
	})
}

func TestActions(t *testing.T) {
	Convey("Given a selected movie", t, func() {
		So(library.Clear(library.Favorites), ShouldBeNil)
		So(library.Clear(library.Watchlist), ShouldBeNil)

		m := newMini(context.Background(), &fakeService{})
		m.selected = &tmdb.MediaItem{ID: 438631, Title: "Dune", MediaType: tmdb.Movie}
		detail := &tmdb.MediaDetail{MediaItem: *m.selected}

		Convey("Toggle labels follow the library", func() {
			actions := m.actions(detail)
			So(actions[0].label, ShouldEqual, "Add to Favorites")
			So(actions[1].label, ShouldEqual, "Add to Watchlist")

			So(actions[0].run(), ShouldBeNil)
			So(m.actions(detail)[0].label, ShouldEqual, "Remove from Favorites")
		})

		Convey("Without a trailer or recommendations only Letterboxd is offered", func() {
			actions := m.actions(detail)
			So(actions, ShouldHaveLength, 3)
			So(actions[2].label, ShouldEqual, "Open on Letterboxd")
		})
	})
}
