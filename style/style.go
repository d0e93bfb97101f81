// Package style provides a functional API for composing and applying lipgloss-based TUI styles.
package style

import (
	"fmt"

	"github.com/cinemind-cli/cinemind/color"
	"github.com/charmbracelet/lipgloss"
)

// New returns an empty lipgloss.Style used as a foundation for visual composition.
func New() lipgloss.Style {
	return lipgloss.NewStyle()
}

// Colored initializes a new style with the specified foreground and background colors.
func Colored(fg, bg lipgloss.Color) lipgloss.Style {
	return New().Foreground(fg).Background(bg)
}

// Fg returns a rendering function applying a foreground color.
func Fg(c lipgloss.Color) func(string) string {
	return func(s string) string { return Colored(c, "").Render(s) }
}

// Truncate returns a rendering function constraining output to max columns.
func Truncate(max int) func(string) string {
	return func(s string) string { return New().MaxWidth(max).Render(s) }
}

var (
	Faint  = func(s string) string { return New().Faint(true).Render(s) }
	Bold   = func(s string) string { return New().Bold(true).Render(s) }
	Italic = func(s string) string { return New().Italic(true).Render(s) }
)

// Title renders a padded banner for screen headings.
var Title = func(s string) string {
	return Colored(Base, AccentColor).Padding(0, 1).Render(s)
}

// ErrorTitle renders a banner in error colors.
var ErrorTitle = func(s string) string {
	return Colored(color.New("230"), color.Red).Padding(0, 1).Render(s)
}

// Tag returns a rendering function that wraps a string in a colored, padded block.
func Tag(fg, bg lipgloss.Color) func(string) string {
	return func(s string) string { return Colored(fg, bg).Padding(0, 1).Render(s) }
}

// Rating renders a vote average with one decimal, colored by how good it is.
func Rating(v float64) string {
	var c lipgloss.Color
	switch {
	case v >= 8:
		c = SuccessColor
	case v >= 6.5:
		c = WarningColor
	case v > 0:
		c = ErrorColor
	default:
		return Faint("n/a")
	}
	return Fg(c)(fmt.Sprintf("★ %.1f", v))
}

// MediaTag renders a short badge for a catalog media type.
func MediaTag(mediaType string) string {
	switch mediaType {
	case "movie":
		return Tag(Base, Blue)("movie")
	case "tv":
		return Tag(Base, Peach)("tv")
	case "person":
		return Tag(Base, Teal)("person")
	default:
		return ""
	}
}
