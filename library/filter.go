package library

import (
	"fmt"
	"strings"

	"github.com/cinemind-cli/cinemind/tmdb"
	"github.com/samber/lo"
)

// Filter narrows a list down by kind.
type Filter string

const (
	All       Filter = "all"
	Movies    Filter = "movie"
	Shows     Filter = "tv"
	Animation Filter = "animation"
)

var filters = []Filter{All, Movies, Shows, Animation}

// ParseFilter accepts all, movie, tv or animation.
func ParseFilter(s string) (Filter, error) {
	f := Filter(strings.ToLower(strings.TrimSpace(s)))
	if lo.Contains(filters, f) {
		return f, nil
	}
	return "", fmt.Errorf("unknown filter %q, expected one of all, movie, tv, animation", s)
}

// Next cycles through the filters.
func (f Filter) Next() Filter {
	i := lo.IndexOf(filters, f)
	return filters[(i+1)%len(filters)]
}

func (f Filter) String() string {
	switch f {
	case Movies:
		return "Movies"
	case Shows:
		return "TV"
	case Animation:
		return "Animation"
	default:
		return "All"
	}
}

// Match reports whether item passes the filter.
func (f Filter) Match(item *tmdb.MediaItem) bool {
	switch f {
	case Movies:
		return item.MediaType == tmdb.Movie
	case Shows:
		return item.MediaType == tmdb.TV
	case Animation:
		return item.IsAnimation()
	default:
		return true
	}
}

// Apply keeps the items matching f.
func Apply(items []*tmdb.MediaItem, f Filter) []*tmdb.MediaItem {
	return lo.Filter(items, func(item *tmdb.MediaItem, _ int) bool {
		return f.Match(item)
	})
}
