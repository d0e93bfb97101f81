package tui

import (
	"fmt"
	"strings"

	"github.com/cinemind-cli/cinemind/color"
	"github.com/cinemind-cli/cinemind/history"
	"github.com/cinemind-cli/cinemind/icon"
	"github.com/cinemind-cli/cinemind/key"
	"github.com/cinemind-cli/cinemind/library"
	"github.com/cinemind-cli/cinemind/style"
	"github.com/cinemind-cli/cinemind/tmdb"
	"github.com/cinemind-cli/cinemind/util"
	"github.com/charmbracelet/bubbles/list"
	"github.com/spf13/viper"
)

// listItem implements the list.Item interface, wrapping catalog records for terminal display.
type listItem struct {
	internal interface{}
}

func newItems[T any](values []T) []list.Item {
	items := make([]list.Item, len(values))
	for i, v := range values {
		items[i] = &listItem{internal: v}
	}
	return items
}

// media returns the catalog item behind the list item, if any.
func (t *listItem) media() (*tmdb.MediaItem, bool) {
	switch e := t.internal.(type) {
	case *tmdb.MediaItem:
		return e, true
	case *history.Entry:
		return e.Item, true
	default:
		return nil, false
	}
}

// marks renders the favorite and watchlist markers of a movie or show.
func marks(item *tmdb.MediaItem) string {
	var parts []string
	if library.Contains(library.Favorites, item) {
		parts = append(parts, style.Fg(color.Favorite)(markIcon(icon.Favorite, "♥")))
	}
	if library.Contains(library.Watchlist, item) {
		parts = append(parts, style.Fg(color.Watchlist)(markIcon(icon.Watchlist, "+")))
	}
	return strings.Join(parts, " ")
}

func markIcon(i icon.Icon, fallback string) string {
	if s := icon.Get(i); s != "" {
		return s
	}
	return fallback
}

func mediaTitle(item *tmdb.MediaItem) string {
	var sb strings.Builder

	if i := icon.Get(icon.Media(string(item.MediaType))); i != "" && !item.IsEpisode() {
		sb.WriteString(i)
		sb.WriteString(" ")
	}

	if item.IsEpisode() {
		sb.WriteString(style.Faint(item.EpisodeLabel()))
		sb.WriteString(" ")
	}

	sb.WriteString(item.DisplayTitle())

	if m := marks(item); m != "" {
		sb.WriteString(" ")
		sb.WriteString(m)
	}

	return sb.String()
}

func mediaDescription(item *tmdb.MediaItem) string {
	var parts []string

	if !item.IsEpisode() {
		parts = append(parts, style.MediaTag(string(item.MediaType)))
	}

	if item.MediaType != tmdb.Person {
		parts = append(parts, style.Rating(item.VoteAverage))
	}

	if viper.GetBool(key.TUIShowDates) {
		if date := item.Date(); date != "" {
			parts = append(parts, style.Faint(date))
		}
	} else if year := item.Year(); year != "" {
		parts = append(parts, style.Faint(year))
	}

	switch {
	case item.Character != "":
		parts = append(parts, style.Faint("as "+item.Character))
	case item.Job != "":
		parts = append(parts, style.Faint(item.Job))
	}

	return strings.Join(parts, " • ")
}

// Title retrieves the primary display text for the list item.
func (t *listItem) Title() string {
	switch e := t.internal.(type) {
	case *tmdb.MediaItem:
		return mediaTitle(e)
	case *history.Entry:
		return mediaTitle(e.Item)
	case *tmdb.CastMember:
		return icon.Get(icon.Person) + " " + e.Name
	case *tmdb.Season:
		return icon.Get(icon.TV) + " " + e.Name
	case string:
		return e
	default:
		return t.FilterValue()
	}
}

// Description retrieves the secondary metadata for the list item.
func (t *listItem) Description() string {
	switch e := t.internal.(type) {
	case *tmdb.MediaItem:
		return mediaDescription(e)
	case *history.Entry:
		return style.Faint("viewed " + e.ViewedAt.Format("2006-01-02 15:04"))
	case *tmdb.CastMember:
		if e.Character == "" {
			return style.Faint("cast")
		}
		return style.Faint("as " + e.Character)
	case *tmdb.Season:
		parts := []string{util.Quantify(e.EpisodeCount, "episode", "episodes")}
		if len(e.AirDate) >= 4 {
			parts = append(parts, e.AirDate[:4])
		}
		return style.Faint(strings.Join(parts, " • "))
	default:
		return ""
	}
}

// FilterValue returns the string used for list filtering.
func (t *listItem) FilterValue() string {
	switch e := t.internal.(type) {
	case *tmdb.MediaItem:
		return e.DisplayTitle()
	case *history.Entry:
		return e.Item.DisplayTitle()
	case *tmdb.CastMember:
		return e.Name
	case *tmdb.Season:
		return fmt.Sprintf("%s %d", e.Name, e.SeasonNumber)
	case string:
		return e
	default:
		return ""
	}
}
