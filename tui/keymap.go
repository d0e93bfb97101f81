package tui

import (
	"github.com/cinemind-cli/cinemind/color"
	"github.com/cinemind-cli/cinemind/style"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
)

// statefulKeymap defines the keyboard interactions available within various application states.
type statefulKeymap struct {
	state state

	quit, forceQuit,
	search, trending, library, history, keys,
	confirm, back,
	favorite, watchlist,
	trailer, letterboxd,
	switchList, cycleFilter, remove,
	nextSeason, prevSeason,
	acceptSearchSuggestion, nextInput,
	up, down, left, right,
	top, bottom,
	showHelp key.Binding
}

func (k *statefulKeymap) setState(newState state) {
	k.state = newState
}

func newStatefulKeymap() *statefulKeymap {
	return &statefulKeymap{
		quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		forceQuit: key.NewBinding(
			key.WithKeys("ctrl+c", "ctrl+d"),
			key.WithHelp("ctrl+c", "quit"),
		),
		search: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "search"),
		),
		trending: key.NewBinding(
			key.WithKeys("T"),
			key.WithHelp("T", "trending"),
		),
		library: key.NewBinding(
			key.WithKeys("L"),
			key.WithHelp("L", "library"),
		),
		history: key.NewBinding(
			key.WithKeys("H"),
			key.WithHelp("H", "history"),
		),
		keys: key.NewBinding(
			key.WithKeys("K"),
			key.WithHelp("K", "api keys"),
		),
		confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "open"),
		),
		back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		favorite: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp(style.Fg(color.Favorite)("f"), style.Fg(color.Favorite)("favorite")),
		),
		watchlist: key.NewBinding(
			key.WithKeys("w"),
			key.WithHelp(style.Fg(color.Watchlist)("w"), style.Fg(color.Watchlist)("watchlist")),
		),
		trailer: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "trailer"),
		),
		letterboxd: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "letterboxd"),
		),
		switchList: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "switch list"),
		),
		cycleFilter: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "filter"),
		),
		remove: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "remove"),
		),
		nextSeason: key.NewBinding(
			key.WithKeys("]"),
			key.WithHelp("]", "next season"),
		),
		prevSeason: key.NewBinding(
			key.WithKeys("["),
			key.WithHelp("[", "prev season"),
		),
		acceptSearchSuggestion: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "accept suggestion"),
		),
		nextInput: key.NewBinding(
			key.WithKeys("tab", "shift+tab", "up", "down"),
			key.WithHelp("tab", "next field"),
		),
		up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑", "up"),
		),
		down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓", "down"),
		),
		left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←", "left"),
		),
		right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→", "right"),
		),
		top: key.NewBinding(
			key.WithKeys("g"),
			key.WithHelp("g", "top"),
		),
		bottom: key.NewBinding(
			key.WithKeys("G"),
			key.WithHelp("G", "bottom"),
		),
		showHelp: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
	}
}

func (k *statefulKeymap) help() ([]key.Binding, []key.Binding) {
	h := func(bindings ...key.Binding) []key.Binding {
		return bindings
	}

	to2 := func(a []key.Binding) ([]key.Binding, []key.Binding) {
		return a, a
	}

	global := h(k.search, k.trending, k.library, k.history, k.keys, k.quit)

	switch k.state {
	case loadingState:
		return to2(h(k.forceQuit, k.back))
	case errorState:
		return to2(h(k.back, k.quit))
	case keysState:
		return to2(h(withDescription(k.confirm, "save"), k.nextInput, k.back, k.forceQuit))
	case searchState:
		return to2(h(withDescription(k.confirm, "search"), k.acceptSearchSuggestion, k.back, k.forceQuit))
	case resultsState:
		return h(k.confirm, k.favorite, k.watchlist, k.back), append(h(k.confirm, k.favorite, k.watchlist, k.back), global...)
	case detailState:
		return h(k.confirm, k.favorite, k.watchlist, k.trailer, k.letterboxd, k.back),
			append(h(k.confirm, k.favorite, k.watchlist, k.trailer, k.letterboxd, k.back), global...)
	case personState:
		return h(k.confirm, k.letterboxd, k.back), append(h(k.confirm, k.letterboxd, k.back), global...)
	case episodesState:
		return h(k.confirm, k.prevSeason, k.nextSeason, k.back), append(h(k.confirm, k.prevSeason, k.nextSeason, k.back), global...)
	case libraryState:
		return h(k.confirm, k.switchList, k.cycleFilter, k.remove, k.back),
			append(h(k.confirm, k.switchList, k.cycleFilter, k.remove, k.back), global...)
	case historyState:
		return h(k.confirm, k.remove, k.back), append(h(k.confirm, k.remove, k.back), global...)
	default:
		return to2(h())
	}
}

func (k *statefulKeymap) ShortHelp() []key.Binding {
	short, _ := k.help()
	return short
}

func (k *statefulKeymap) FullHelp() [][]key.Binding {
	_, full := k.help()
	return [][]key.Binding{full}
}

func (k *statefulKeymap) forList() list.KeyMap {
	return list.KeyMap{
		CursorUp:             k.up,
		CursorDown:           k.down,
		NextPage:             k.right,
		PrevPage:             k.left,
		GoToStart:            k.top,
		GoToEnd:              k.bottom,
		ClearFilter:          k.back,
		CancelWhileFiltering: k.back,
		AcceptWhileFiltering: k.confirm,
		ShowFullHelp:         k.showHelp,
		CloseFullHelp:        k.showHelp,
		Quit:                 k.quit,
		ForceQuit:            k.forceQuit,
	}
}

func withDescription(k key.Binding, description string) key.Binding {
	return key.NewBinding(
		key.WithKeys(k.Keys()...),
		key.WithHelp(k.Help().Key, description),
	)
}
