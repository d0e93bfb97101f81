package inline

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/cinemind-cli/cinemind/tmdb"
	"github.com/cinemind-cli/cinemind/util"
	"github.com/samber/lo"
	"github.com/samber/mo"
)

// Picker selects one item of a result list, or nil.
type Picker func([]*tmdb.MediaItem) *tmdb.MediaItem

// Format is an output encoding.
type Format string

const (
	JSON  Format = "json"
	YAML  Format = "yaml"
	Plain Format = "plain"
)

// Formats lists the supported encodings.
var Formats = []Format{JSON, YAML, Plain}

// ParseFormat accepts json, yaml (or yml) and plain (or text).
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "json", "":
		return JSON, nil
	case "yaml", "yml":
		return YAML, nil
	case "plain", "text", "txt":
		return Plain, nil
	default:
		return "", fmt.Errorf("unknown format %q, expected one of json, yaml, plain", s)
	}
}

type Options struct {
	Out      io.Writer
	Query    string
	Trending bool
	Picker   mo.Option[Picker]
	Details  bool
	Format   Format
}

// ParsePicker parses a selector:
//
//	first        first item
//	last         last item
//	<n>          item at index n, clamped to the list
//	exact:<t>    first item titled t, ignoring case
func ParsePicker(description string) (Picker, error) {
	description = strings.TrimSpace(description)

	switch {
	case description == "first":
		return func(items []*tmdb.MediaItem) *tmdb.MediaItem {
			if len(items) == 0 {
				return nil
			}
			return items[0]
		}, nil
	case description == "last":
		return func(items []*tmdb.MediaItem) *tmdb.MediaItem {
			if len(items) == 0 {
				return nil
			}
			return items[len(items)-1]
		}, nil
	case strings.HasPrefix(description, "exact:"):
		title := strings.TrimPrefix(description, "exact:")
		return func(items []*tmdb.MediaItem) *tmdb.MediaItem {
			found, _ := lo.Find(items, func(item *tmdb.MediaItem) bool {
				return strings.EqualFold(item.DisplayTitle(), title)
			})
			return found
		}, nil
	}

	index, err := strconv.ParseUint(description, 10, 16)
	if err != nil {
		return nil, fmt.Errorf("invalid picker %q, expected first, last, an index or exact:<title>", description)
	}

	return func(items []*tmdb.MediaItem) *tmdb.MediaItem {
		if len(items) == 0 {
			return nil
		}
		return items[util.Min(int(index), len(items)-1)]
	}, nil
}
