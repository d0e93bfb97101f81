package tui

import (
	"fmt"
	"strings"

	"github.com/cinemind-cli/cinemind/color"
	"github.com/cinemind-cli/cinemind/discovery"
	"github.com/cinemind-cli/cinemind/icon"
	"github.com/cinemind-cli/cinemind/library"
	"github.com/cinemind-cli/cinemind/style"
	"github.com/cinemind-cli/cinemind/tmdb"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wrap"
	"github.com/samber/lo"
)

var (
	listExtraPaddingStyle = lipgloss.NewStyle().Padding(1, 2, 1, 0)
	paddingStyle          = lipgloss.NewStyle().Padding(1, 2)
)

// biographyLines caps the biography shown above the known-for list.
const biographyLines = 6

func (b *statefulBubble) View() string {
	var output string

	switch {
	case b.summary != nil:
		output = b.viewSummary()
	default:
		switch b.state {
		case loadingState:
			output = b.viewLoading()
		case errorState:
			output = b.viewError()
		case keysState:
			output = b.viewKeys()
		case searchState:
			output = b.viewSearch()
		case resultsState:
			output = listExtraPaddingStyle.Render(b.resultsC.View())
		case detailState:
			output = b.viewDetail()
		case personState:
			output = b.viewPerson()
		case episodesState:
			output = listExtraPaddingStyle.Render(b.episodesC.View())
		case libraryState:
			output = listExtraPaddingStyle.Render(b.libraryC.View())
		case historyState:
			output = listExtraPaddingStyle.Render(b.historyC.View())
		default:
			output = "Unknown state"
		}
	}

	return b.notifier.View(output)
}

func (b *statefulBubble) viewLoading() string {
	return b.renderLines(
		true,
		[]string{
			style.Title("Loading"),
			"",
			b.spinnerC.View() + " " + b.progressStatus,
		},
	)
}

func (b *statefulBubble) viewKeys() string {
	lines := []string{
		style.Title("API Keys"),
		"",
		"A TMDB key is required to browse the catalog.",
		"A Gemini key enables natural-language search.",
		"",
		b.tmdbInputC.View(),
		b.geminiInputC.View(),
	}

	if b.keysError != "" {
		lines = append(lines, "", style.Fg(style.ErrorColor)(icon.Get(icon.Fail)+" "+b.keysError))
	}

	return b.renderLines(true, lines)
}

func (b *statefulBubble) viewSearch() string {
	lines := []string{
		style.Title("Search"),
		"",
		b.inputC.View(),
	}

	if suggestion, ok := b.searchSuggestion.Get(); ok {
		lines = append(lines, style.Faint(fmt.Sprintf("tab: %s", suggestion)))
	}

	if b.service != nil && !b.service.CanSearch() {
		lines = append(lines, "", style.Fg(style.WarningColor)(discovery.MsgMissingGemini))
	}

	return b.renderLines(true, lines)
}

func (b *statefulBubble) viewSummary() string {
	item := b.summary

	lines := []string{
		style.Title(item.EpisodeLabel() + " " + item.DisplayTitle()),
		"",
		style.Rating(item.VoteAverage) + "  " + style.Faint(item.Date()),
		"",
	}

	overview := item.Overview
	if overview == "" {
		overview = "No overview available."
	}
	lines = append(lines, wrap.String(overview, b.width), "", style.Faint("press any key to close"))

	return b.renderLines(false, lines)
}

// markers renders the list membership of item as text badges.
func markers(item *tmdb.MediaItem) string {
	var badges []string
	if library.Contains(library.Favorites, item) {
		badges = append(badges, style.Tag(style.Base, color.Favorite)(library.Favorites.Title()))
	}
	if library.Contains(library.Watchlist, item) {
		badges = append(badges, style.Tag(style.Base, color.Watchlist)(library.Watchlist.Title()))
	}
	return strings.Join(badges, " ")
}

func (b *statefulBubble) detailHeader() string {
	detail := b.detail
	if detail == nil {
		return ""
	}

	title := detail.DisplayTitle()
	if year := detail.Year(); year != "" {
		title += " (" + year + ")"
	}

	lines := []string{style.Title(title)}

	if detail.Tagline != "" {
		lines = append(lines, style.Italic(detail.Tagline))
	}

	meta := []string{style.Rating(detail.VoteAverage)}
	if detail.Status != "" {
		meta = append(meta, detail.Status)
	}
	if genres := detail.GenreNames(); len(genres) > 0 {
		meta = append(meta, strings.Join(genres, ", "))
	}
	if runtime := detail.RuntimeLabel(); runtime != "" {
		meta = append(meta, runtime)
	}
	lines = append(lines, "", strings.Join(meta, style.Faint(" • ")))

	if m := markers(&detail.MediaItem); m != "" {
		lines = append(lines, m)
	}

	if detail.Overview != "" {
		lines = append(lines, "", wrap.String(detail.Overview, b.width))
	}

	if crew := detail.KeyCrew(); len(crew) > 0 {
		lines = append(lines, "", wrap.String(strings.Join(lo.Map(crew, func(c *tmdb.CrewMember, _ int) string {
			return style.Bold(c.Name) + " " + style.Faint(c.Job)
		}), "   "), b.width))
	}

	return strings.Join(lines, "\n")
}

func (b *statefulBubble) viewDetail() string {
	return lipgloss.JoinVertical(
		lipgloss.Left,
		paddingStyle.Render(b.detailHeader()),
		listExtraPaddingStyle.Render(b.detailC.View()),
	)
}

func (b *statefulBubble) personHeader() string {
	person := b.person
	if person == nil {
		return ""
	}

	lines := []string{style.Title(person.Name)}

	var facts []string
	if roles := person.Roles(); len(roles) > 0 {
		facts = append(facts, strings.Join(roles, " & "))
	}
	if person.KnownForDepartment != "" {
		facts = append(facts, person.KnownForDepartment)
	}
	if person.Birthday != "" {
		facts = append(facts, "born "+person.Birthday)
	}
	if person.PlaceOfBirth != "" {
		facts = append(facts, person.PlaceOfBirth)
	}
	if len(facts) > 0 {
		lines = append(lines, "", style.Faint(strings.Join(facts, " • ")))
	}

	biography := strings.Split(wrap.String(person.BiographyOrDefault(), b.width), "\n")
	if len(biography) > biographyLines {
		biography = append(biography[:biographyLines-1], biography[biographyLines-1]+"…")
	}
	lines = append(lines, "", strings.Join(biography, "\n"))

	return strings.Join(lines, "\n")
}

func (b *statefulBubble) viewPerson() string {
	return lipgloss.JoinVertical(
		lipgloss.Left,
		paddingStyle.Render(b.personHeader()),
		listExtraPaddingStyle.Render(b.personC.View()),
	)
}

func (b *statefulBubble) viewError() string {
	errorStyle := lipgloss.NewStyle().Foreground(style.ErrorColor).Bold(true)
	message := "Something went wrong"
	if b.lastError != nil {
		message = b.lastError.Error()
	}

	return b.renderLines(
		true,
		[]string{
			style.ErrorTitle("Error"),
			"",
			icon.Get(icon.Fail) + " An error occurred:",
			"",
			wrap.String(errorStyle.Render(message), b.width),
		},
	)
}

func (b *statefulBubble) renderLines(addHelp bool, lines []string) string {
	l := strings.Join(lines, "\n")
	if addHelp {
		if h := lipgloss.Height(l); b.height > h {
			l += strings.Repeat("\n", b.height-h)
		}
		l += b.helpC.View(b.keymap)
	}

	return paddingStyle.Render(l)
}
