package tui

type state int

const (
	loadingState state = iota
	errorState
	keysState
	searchState
	resultsState
	detailState
	personState
	episodesState
	libraryState
	historyState
)

// typing reports whether the state forwards printable keys to a text input.
func (s state) typing() bool {
	return s == searchState || s == keysState
}
