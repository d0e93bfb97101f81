package cmd

import (
	"context"
	"errors"
	"os"
	"os/signal"

	"github.com/cinemind-cli/cinemind/auth"
	"github.com/cinemind-cli/cinemind/discovery"
	"github.com/cinemind-cli/cinemind/gemini"
	"github.com/cinemind-cli/cinemind/log"
	"github.com/cinemind-cli/cinemind/tmdb"
	"github.com/samber/mo"
)

var errNoTMDBKey = errors.New(`TMDB API key is not set, run "cinemind keys set" first`)

// newService builds the discovery service from the stored credentials.
// Without a Gemini key the service still browses, but cannot search.
func newService(progress func(status string)) mo.Option[*discovery.Service] {
	tmdbKey := auth.Get(auth.TMDB)
	if tmdbKey == "" {
		return mo.None[*discovery.Service]()
	}

	var analyzer discovery.Analyzer
	if geminiKey := auth.Get(auth.Gemini); geminiKey != "" {
		analyzer = gemini.New(geminiKey)
	} else {
		log.Warn("gemini key is not set, search is disabled")
	}

	service := discovery.New(tmdb.New(tmdbKey), analyzer)
	service.Progress = progress
	return mo.Some(service)
}

// mustService returns the service or exits with a hint about the missing key.
func mustService() *discovery.Service {
	service, ok := newService(nil).Get()
	if !ok {
		handleErr(errNoTMDBKey)
	}

	return service
}

// commandContext is cancelled on interrupt.
func commandContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt)
}
