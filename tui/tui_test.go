package tui

import (
	"context"
	"errors"
	"testing"

	"github.com/cinemind-cli/cinemind/auth"
	"github.com/cinemind-cli/cinemind/discovery"
	"github.com/cinemind-cli/cinemind/filesystem"
	"github.com/cinemind-cli/cinemind/history"
	"github.com/cinemind-cli/cinemind/internal/ui"
	"github.com/cinemind-cli/cinemind/key"
	"github.com/cinemind-cli/cinemind/library"
	"github.com/cinemind-cli/cinemind/tmdb"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/samber/mo"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
	"github.com/zalando/go-keyring"
)

func init() {
	filesystem.SetMemMapFs()
	keyring.MockInit()
}

type fakeService struct {
	canSearch bool
}

func (f *fakeService) CanSearch() bool { return f.canSearch }

func (f *fakeService) Trending(context.Context) (*discovery.Result, error) {
	return &discovery.Result{Explanation: discovery.TrendingExplanation}, nil
}

func (f *fakeService) Search(_ context.Context, q string) (*discovery.Result, error) {
	return &discovery.Result{Query: q}, nil
}

func (f *fakeService) Details(_ context.Context, item *tmdb.MediaItem) (*tmdb.MediaDetail, error) {
	return &tmdb.MediaDetail{MediaItem: *item}, nil
}

func (f *fakeService) Person(_ context.Context, id int) (*tmdb.PersonDetail, error) {
	return &tmdb.PersonDetail{ID: id}, nil
}

func (f *fakeService) Season(context.Context, int, int) ([]*tmdb.MediaItem, error) {
	return nil, nil
}

type fakeValidator bool

func (v fakeValidator) ValidateKey(context.Context) bool { return bool(v) }

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

var (
	enter = tea.KeyMsg{Type: tea.KeyEnter}
	esc   = tea.KeyMsg{Type: tea.KeyEsc}
	tab   = tea.KeyMsg{Type: tea.KeyTab}
)

// notification runs cmd and returns the notification it produces, if any.
func notification(cmd tea.Cmd) string {
	if cmd == nil {
		return ""
	}

	switch msg := cmd().(type) {
	case ui.NotificationMsg:
		return string(msg)
	case tea.BatchMsg:
		for _, c := range msg {
			if text := notification(c); text != "" {
				return text
			}
		}
	}
	return ""
}

func newTestBubble(connected bool) *statefulBubble {
	service := &fakeService{canSearch: true}
	b := newBubble(&Options{
		Connect: func(func(string)) mo.Option[Service] {
			if !connected {
				return mo.None[Service]()
			}
			return mo.Some[Service](service)
		},
		Validator: func(string) auth.Validator { return fakeValidator(true) },
	})
	b.resize(120, 40)
	return b
}

var (
	dune = &tmdb.MediaItem{ID: 438631, Title: "Dune", MediaType: tmdb.Movie, ReleaseDate: "2021-09-15"}
	show = &tmdb.MediaItem{ID: 95396, Name: "Severance", MediaType: tmdb.TV}
	ep   = &tmdb.MediaItem{ID: 1, Name: "Good News About Hell", MediaType: tmdb.TV, SeasonNumber: 1, EpisodeNumber: 1, ShowID: 95396}
)

func TestNavigation(t *testing.T) {
	Convey("Given a connected interface", t, func() {
		viper.Set(key.HistorySaveOnView, true)
		So(library.Clear(library.Favorites), ShouldBeNil)
		So(library.Clear(library.Watchlist), ShouldBeNil)
		So(history.Clear(), ShouldBeNil)

		b := newTestBubble(true)
		So(b.Init(), ShouldNotBeNil)
		So(b.state, ShouldEqual, loadingState)
		So(b.loading, ShouldBeTrue)

		b.Update(resultMsg{result: &discovery.Result{
			Items:       []*tmdb.MediaItem{ep, dune, show},
			Explanation: discovery.TrendingExplanation,
		}})

		Convey("Trending results are listed", func() {
			So(b.state, ShouldEqual, resultsState)
			So(b.loading, ShouldBeFalse)
			So(b.resultsC.Items(), ShouldHaveLength, 3)
			So(b.resultsC.Title, ShouldEqual, "Trending")
		})

		Convey("Late results are ignored", func() {
			b.Update(resultMsg{result: &discovery.Result{Query: "stale"}})
			So(b.resultsC.Title, ShouldEqual, "Trending")
		})

		Convey("Enter on an episode shows its summary until the next key", func() {
			b.Update(enter)
			So(b.summary, ShouldEqual, ep)
			So(b.state, ShouldEqual, resultsState)

			b.Update(runes("x"))
			So(b.summary, ShouldBeNil)
		})

		Convey("Toggling from the results notifies", func() {
			b.resultsC.Select(1)
			_, cmd := b.Update(runes("f"))
			So(notification(cmd), ShouldEqual, "Added to Favorites")
			So(library.Contains(library.Favorites, dune), ShouldBeTrue)

			_, cmd = b.Update(runes("w"))
			So(notification(cmd), ShouldEqual, "Added to Watchlist")
		})

		Convey("Episodes cannot be saved", func() {
			_, cmd := b.Update(runes("f"))
			So(notification(cmd), ShouldEqual, library.ErrNotListable.Error())
		})

		Convey("Opening details", func() {
			b.resultsC.Select(2)
			b.Update(enter)
			So(b.state, ShouldEqual, loadingState)

			detail := &tmdb.MediaDetail{
				MediaItem: *show,
				Credits:   &tmdb.Credits{Cast: []*tmdb.CastMember{{ID: 1, Name: "Adam Scott"}}},
				Seasons:   []*tmdb.Season{{SeasonNumber: 0, Name: "Specials"}, {SeasonNumber: 1, Name: "Season 1"}},
				Recommendations: &tmdb.ItemPage{Results: []*tmdb.MediaItem{dune}},
			}
			b.Update(detailMsg{item: show, detail: detail})

			Convey("lists cast, playable seasons and recommendations", func() {
				So(b.state, ShouldEqual, detailState)
				So(b.detailC.Items(), ShouldHaveLength, 3)
			})

			Convey("records the view", func() {
				entries, err := history.Get()
				So(err, ShouldBeNil)
				So(entries, ShouldHaveLength, 1)
				So(entries[0].Item.Key(), ShouldEqual, show.Key())
			})

			Convey("a missing trailer is reported", func() {
				_, cmd := b.Update(runes("t"))
				So(notification(cmd), ShouldEqual, "No trailer available")
			})

			Convey("esc goes back to the results", func() {
				b.Update(esc)
				So(b.state, ShouldEqual, resultsState)
			})

			Convey("opening a recommendation replaces the detail screen", func() {
				b.detailC.Select(2)
				b.Update(enter)
				b.Update(detailMsg{item: dune, detail: &tmdb.MediaDetail{MediaItem: *dune}})
				So(b.state, ShouldEqual, detailState)
				So(b.detail.ID, ShouldEqual, dune.ID)

				b.Update(esc)
				So(b.state, ShouldEqual, resultsState)
			})
		})

		Convey("A failed request shows the error and esc returns", func() {
			b.Update(runes("T"))
			So(b.state, ShouldEqual, loadingState)

			b.Update(errors.New("boom"))
			So(b.state, ShouldEqual, errorState)
			So(b.lastError.Error(), ShouldEqual, "boom")

			b.Update(esc)
			So(b.state, ShouldEqual, resultsState)
		})

		Convey("The library switches lists and filters", func() {
			_, err := library.Toggle(library.Favorites, dune)
			So(err, ShouldBeNil)
			_, err = library.Toggle(library.Watchlist, show)
			So(err, ShouldBeNil)

			b.Update(runes("L"))
			So(b.state, ShouldEqual, libraryState)
			So(b.libraryC.Items(), ShouldHaveLength, 1)

			b.Update(tab)
			So(b.libraryList, ShouldEqual, library.Watchlist)
			So(b.libraryC.Title, ShouldEqual, "Watchlist")

			b.libraryShown = library.All
			b.Update(runes("c"))
			So(b.libraryShown, ShouldEqual, library.All.Next())

			b.libraryShown = library.All
			So(b.refreshLibrary(), ShouldNotBeNil)
			b.Update(runes("d"))
			So(library.Contains(library.Watchlist, show), ShouldBeFalse)
			So(b.libraryC.Items(), ShouldBeEmpty)
		})

		Convey("Search opens an input where global keys are typed", func() {
			b.Update(runes("/"))
			So(b.state, ShouldEqual, searchState)

			b.Update(runes("T"))
			So(b.state, ShouldEqual, searchState)
			So(b.inputC.Value(), ShouldEqual, "T")

			b.Update(esc)
			So(b.state, ShouldEqual, resultsState)
		})

		Convey("Searching without a Gemini key opens the keys form", func() {
			b.Update(runes("/"))
			b.Update(runes("heist"))
			b.Update(enter)
			So(b.state, ShouldEqual, loadingState)

			b.Update(discovery.ErrNoAnalyzer)
			So(b.state, ShouldEqual, keysState)
			So(b.keysError, ShouldEqual, discovery.MsgMissingGemini)

			b.Update(esc)
			So(b.state, ShouldEqual, searchState)
		})
	})
}

func TestKeys(t *testing.T) {
	Convey("Given no stored TMDB key", t, func() {
		So(auth.Delete(auth.TMDB), ShouldBeNil)
		viper.Set(key.TMDBAPIKey, "")

		b := newTestBubble(false)
		b.Init()

		Convey("The keys form opens", func() {
			So(b.state, ShouldEqual, keysState)
			So(b.tmdbInputC.Focused(), ShouldBeTrue)
		})

		Convey("Tab moves to the Gemini field", func() {
			b.Update(tab)
			So(b.geminiInputC.Focused(), ShouldBeTrue)
			So(b.tmdbInputC.Focused(), ShouldBeFalse)
		})

		Convey("A rejected key returns to the form with the reason", func() {
			b.Update(enter)
			So(b.state, ShouldEqual, loadingState)

			b.Update(keysRejectedMsg{err: auth.ErrInvalidKey})
			So(b.state, ShouldEqual, keysState)
			So(b.keysError, ShouldEqual, auth.ErrInvalidKey.Error())
		})
	})
}
