package tui

import (
	"context"

	"github.com/cinemind-cli/cinemind/auth"
	"github.com/cinemind-cli/cinemind/discovery"
	"github.com/cinemind-cli/cinemind/tmdb"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/samber/mo"
)

// Service is what the interface needs from the discovery service.
type Service interface {
	CanSearch() bool
	Trending(ctx context.Context) (*discovery.Result, error)
	Search(ctx context.Context, query string) (*discovery.Result, error)
	Details(ctx context.Context, item *tmdb.MediaItem) (*tmdb.MediaDetail, error)
	Person(ctx context.Context, id int) (*tmdb.PersonDetail, error)
	Season(ctx context.Context, showID, season int) ([]*tmdb.MediaItem, error)
}

// Options encapsulates the runtime configuration for the terminal user interface.
type Options struct {
	// Connect builds a service from the stored credentials, or returns none
	// when the TMDB key is missing. It is called again after the keys are saved.
	Connect func(progress func(status string)) mo.Option[Service]
	// Validator checks a TMDB key before it is saved.
	Validator func(tmdbKey string) auth.Validator

	Library bool
	History bool
}

// Run initializes and executes the primary Bubble Tea application loop.
func Run(options *Options) error {
	bubble := newBubble(options)
	_, err := tea.NewProgram(bubble, tea.WithAltScreen()).Run()
	return err
}
