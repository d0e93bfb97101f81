package mini

import (
	"errors"
	"fmt"
	"os"

	"github.com/cinemind-cli/cinemind/discovery"
	"github.com/cinemind-cli/cinemind/history"
	"github.com/cinemind-cli/cinemind/inline"
	"github.com/cinemind-cli/cinemind/key"
	"github.com/cinemind-cli/cinemind/library"
	"github.com/cinemind-cli/cinemind/log"
	"github.com/cinemind-cli/cinemind/open"
	"github.com/cinemind-cli/cinemind/query"
	"github.com/cinemind-cli/cinemind/tmdb"
	"github.com/cinemind-cli/cinemind/util"
	"github.com/samber/lo"
	"github.com/spf13/viper"
)

type state int

const (
	searchState state = iota + 1
	trendingState
	resultsState
	detailState
	historyState
	quitState
)

var (
	favorites = &bind{library.Favorites.Title()}
	watchlist = &bind{library.Watchlist.Title()}
)

// navigate handles the binds shared by every menu. It reports whether b was one of them.
func (m *mini) navigate(b *bind) bool {
	switch b {
	case back:
		m.previousState()
	case search:
		m.newState(searchState)
	case trending:
		m.newState(trendingState)
	case recent:
		m.newState(historyState)
	case favorites:
		m.pushList(library.Favorites)
	case watchlist:
		m.pushList(library.Watchlist)
	case quit:
		m.newState(quitState)
	default:
		return false
	}

	return true
}

func (m *mini) navigation() []*bind {
	binds := []*bind{back}
	if m.service.CanSearch() {
		binds = append(binds, search)
	}
	return append(binds, trending, recent, favorites, watchlist, quit)
}

func (m *mini) pushResult(result *discovery.Result) {
	limit := viper.GetInt(key.MiniSearchLimit)
	if limit > 0 && len(result.Items) > limit {
		result.Items = result.Items[:limit]
	}

	m.results.Push(result)
	m.newState(resultsState)
}

func (m *mini) pushList(list library.List) {
	items, err := library.Get(list)
	if err != nil {
		fail(err.Error())
		return
	}

	if len(items) == 0 {
		fail(list.Title() + " is empty")
		return
	}

	m.pushResult(&discovery.Result{
		Items:       items,
		Explanation: list.Title(),
	})
}

func (m *mini) handleSearchState() error {
	if !m.service.CanSearch() {
		fail(discovery.MsgMissingGemini)
		m.setState(trendingState)
		return nil
	}

	title("Describe what you want to watch")
	in, err := getInput(">")
	if err != nil {
		return err
	}

	erase := progress("Searching..")
	result, err := m.service.Search(m.ctx, in)
	erase()

	if err != nil {
		fail(err.Error())
		return nil
	}

	if err := query.Remember(in, query.Typed); err != nil {
		log.Warn(err)
	}

	if len(result.Items) == 0 {
		fail("No results found")
		return nil
	}

	m.pushResult(result)
	return nil
}

func (m *mini) handleTrendingState() error {
	erase := progress("Fetching trending titles..")
	result, err := m.service.Trending(m.ctx)
	erase()

	if err != nil {
		if m.statesHistory.Len() == 0 {
			return err
		}
		fail(err.Error())
		m.previousState()
		return nil
	}

	// trending replaces itself in the state history
	m.setState(m.statesHistory.Pop())
	m.pushResult(result)
	return nil
}

func (m *mini) handleResultsState() error {
	result := m.results.Peek()
	if result == nil {
		m.previousState()
		return nil
	}

	title(result.Explanation)
	b, index, err := menu(lo.Map(result.Items, func(item *tmdb.MediaItem, _ int) string {
		return inline.Line(item)
	}), m.navigation()...)
	if err != nil {
		return err
	}

	if m.navigate(b) {
		return nil
	}

	item := result.Items[index]
	switch {
	case item.IsEpisode():
		fmt.Println(inline.Line(item))
		if item.Overview != "" {
			fmt.Println(util.Wrap(item.Overview, truncateAt))
		}
		fmt.Println()
	case item.MediaType == tmdb.Person:
		return m.openPerson(item)
	default:
		m.selected = item
		m.newState(detailState)
	}

	return nil
}

func (m *mini) openPerson(item *tmdb.MediaItem) error {
	erase := progress("Fetching " + item.DisplayTitle() + "..")
	person, err := m.service.Person(m.ctx, item.ID)
	erase()

	if err != nil {
		fail(err.Error())
		return nil
	}

	m.pushResult(&discovery.Result{
		Items:       person.KnownFor(),
		Explanation: person.Name + " is known for",
	})
	return nil
}

func (m *mini) details(item *tmdb.MediaItem) (*tmdb.MediaDetail, error) {
	if detail, ok := m.cachedDetails[item.Key()]; ok {
		return detail, nil
	}

	erase := progress("Fetching details..")
	detail, err := m.service.Details(m.ctx, item)
	erase()

	if err != nil {
		return nil, err
	}

	m.cachedDetails[item.Key()] = detail

	if viper.GetBool(key.HistorySaveOnView) {
		if err := history.Save(item); err != nil {
			log.Warn(err)
		}
	}

	return detail, nil
}

// action is a detail-screen entry whose label depends on the current state.
type action struct {
	label string
	run   func() error
}

func (m *mini) actions(detail *tmdb.MediaDetail) []*action {
	item := m.selected

	toggle := func(list library.List) *action {
		label := "Add to " + list.Title()
		if library.Contains(list, item) {
			label = "Remove from " + list.Title()
		}

		return &action{
			label: label,
			run: func() error {
				added, err := library.Toggle(list, item)
				if err != nil {
					return err
				}

				if added {
					success("Added to " + list.Title())
				} else {
					success("Removed from " + list.Title())
				}
				return nil
			},
		}
	}

	actions := []*action{toggle(library.Favorites), toggle(library.Watchlist)}

	if url := detail.TrailerURL(); url != "" {
		actions = append(actions, &action{
			label: "Watch trailer",
			run:   func() error { return open.URL(url) },
		})
	}

	actions = append(actions, &action{
		label: "Open on Letterboxd",
		run:   func() error { return open.URL(discovery.LetterboxdURL(item)) },
	})

	if recommended := detail.RecommendedItems(); len(recommended) > 0 {
		actions = append(actions, &action{
			label: "More like this",
			run: func() error {
				m.pushResult(&discovery.Result{
					Items:       recommended,
					Explanation: "More like " + item.DisplayTitle(),
				})
				return nil
			},
		})
	}

	return actions
}

func (m *mini) handleDetailState() error {
	if m.selected == nil {
		return errNoSelection
	}

	detail, err := m.details(m.selected)
	if err != nil {
		fail(err.Error())
		m.previousState()
		return nil
	}

	fmt.Println()
	if err := inline.WriteDetail(os.Stdout, detail); err != nil {
		return err
	}
	fmt.Println()

	actions := m.actions(detail)
	b, index, err := menu(lo.Map(actions, func(a *action, _ int) string {
		return a.label
	}), m.navigation()...)
	if err != nil {
		return err
	}

	if m.navigate(b) {
		return nil
	}

	if err := actions[index].run(); err != nil {
		fail(err.Error())
	}

	return nil
}

func (m *mini) handleHistoryState() error {
	entries, err := history.Get()
	if err != nil {
		return err
	}

	if len(entries) == 0 {
		fail("Nothing viewed yet")
		if m.statesHistory.Len() == 0 {
			m.setState(trendingState)
		} else {
			m.previousState()
		}
		return nil
	}

	title("Recently viewed")
	b, index, err := menu(lo.Map(entries, func(e *history.Entry, _ int) string {
		return e.String()
	}), back, quit)
	if err != nil {
		return err
	}

	if m.navigate(b) {
		return nil
	}

	m.selected = entries[index].Item
	m.newState(detailState)
	return nil
}

// errNoSelection is returned when a detail state is entered without an item.
var errNoSelection = errors.New("no title selected")
