// Package inline runs a single search and prints the result for scripts.
package inline

import (
	"context"
	"errors"
	"os"

	"github.com/cinemind-cli/cinemind/discovery"
	"github.com/cinemind-cli/cinemind/log"
	"github.com/cinemind-cli/cinemind/query"
	"github.com/cinemind-cli/cinemind/tmdb"
)

// Service is what Run needs from the discovery layer.
type Service interface {
	Trending(ctx context.Context) (*discovery.Result, error)
	Search(ctx context.Context, query string) (*discovery.Result, error)
	Details(ctx context.Context, item *tmdb.MediaItem) (*tmdb.MediaDetail, error)
}

var ErrNoInput = errors.New("either a query or trending is required")

// Run searches, applies the picker and writes the output.
func Run(ctx context.Context, service Service, options *Options) error {
	if options.Out == nil {
		options.Out = os.Stdout
	}

	if options.Format == "" {
		options.Format = JSON
	}

	var (
		result *discovery.Result
		err    error
	)

	switch {
	case options.Trending:
		result, err = service.Trending(ctx)
	case options.Query != "":
		_ = query.Remember(options.Query, query.Typed)
		result, err = service.Search(ctx, options.Query)
	default:
		return ErrNoInput
	}

	if err != nil {
		return err
	}

	output := &Output{
		Query:       result.Query,
		Explanation: result.Explanation,
		Filter:      result.Filter,
		Result:      result.Items,
	}

	if output.Result == nil {
		output.Result = []*tmdb.MediaItem{}
	}

	if picker, ok := options.Picker.Get(); ok {
		output.Result = []*tmdb.MediaItem{}

		if picked := picker(result.Items); picked != nil {
			output.Result = []*tmdb.MediaItem{picked}

			if options.Details && !picked.IsEpisode() && picked.MediaType != tmdb.Person {
				log.Infof("fetching details of %s", picked.Key())
				output.Detail, err = service.Details(ctx, picked)
				if err != nil {
					return err
				}
			}
		}
	}

	return write(options.Out, options.Format, output)
}
