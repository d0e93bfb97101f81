// Package mini implements a lightweight prompt-driven interface for discovering titles.
package mini

import (
	"context"
	"errors"

	"github.com/cinemind-cli/cinemind/discovery"
	"github.com/cinemind-cli/cinemind/tmdb"
	"github.com/cinemind-cli/cinemind/util"
)

var (
	truncateAt = 100
)

// Service is what mini mode needs from the discovery service.
type Service interface {
	CanSearch() bool
	Trending(ctx context.Context) (*discovery.Result, error)
	Search(ctx context.Context, query string) (*discovery.Result, error)
	Details(ctx context.Context, item *tmdb.MediaItem) (*tmdb.MediaDetail, error)
	Person(ctx context.Context, id int) (*tmdb.PersonDetail, error)
}

type Options struct {
	// Trending starts from today's trending titles instead of a search prompt.
	Trending bool
	// History starts from the recently viewed titles.
	History bool
}

var errQuit = errors.New("quit")

type mini struct {
	ctx     context.Context
	service Service

	state         state
	statesHistory util.Stack[state]

	results       util.Stack[*discovery.Result]
	cachedDetails map[string]*tmdb.MediaDetail

	selected *tmdb.MediaItem
}

func newMini(ctx context.Context, service Service) *mini {
	return &mini{
		ctx:           ctx,
		service:       service,
		statesHistory: util.Stack[state]{},
		cachedDetails: make(map[string]*tmdb.MediaDetail),
	}
}

func (m *mini) previousState() {
	if m.statesHistory.Len() == 0 {
		m.setState(quitState)
		return
	}

	if m.state == resultsState {
		m.results.Pop()
	}
	m.setState(m.statesHistory.Pop())
}

func (m *mini) setState(s state) {
	m.state = s
}

// newState moves to s, remembering the current state for previousState.
// Results may stack on results, each with its own entry in m.results.
func (m *mini) newState(s state) {
	if m.state == s && s != resultsState {
		return
	}

	if m.state != 0 {
		m.statesHistory.Push(m.state)
	}

	m.setState(s)
}

// Run loops over the prompts until the user quits or a prompt fails.
func Run(ctx context.Context, service Service, options *Options) error {
	m := newMini(ctx, service)

	switch {
	case options.History:
		m.newState(historyState)
	case options.Trending || !service.CanSearch():
		m.newState(trendingState)
	default:
		m.newState(searchState)
	}

	if w, _, err := util.TerminalSize(); err == nil && w > 0 {
		truncateAt = w
	}

	for {
		if err := m.handleState(); err != nil {
			if errors.Is(err, errQuit) {
				return nil
			}
			return err
		}
	}
}

func (m *mini) handleState() error {
	switch m.state {
	case searchState:
		return m.handleSearchState()
	case trendingState:
		return m.handleTrendingState()
	case resultsState:
		return m.handleResultsState()
	case detailState:
		return m.handleDetailState()
	case historyState:
		return m.handleHistoryState()
	case quitState:
		return errQuit
	}

	return nil
}
