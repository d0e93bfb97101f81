// Package style holds the palette and rendering helpers of the terminal interface.
package style

import "github.com/charmbracelet/lipgloss"

// Screen-night palette. Accents double as media-type badges.
var (
	Base    = lipgloss.Color("#14121b")
	Text    = lipgloss.Color("#e8e3f0")
	Subtext = lipgloss.Color("#a59fb3")
	Overlay = lipgloss.Color("#6b657a")

	Mauve    = lipgloss.Color("#c792ea")
	Lavender = lipgloss.Color("#a9b1ff")
	Red      = lipgloss.Color("#ff6b81")
	Peach    = lipgloss.Color("#ffb38a")
	Yellow   = lipgloss.Color("#ffd866")
	Green    = lipgloss.Color("#9be28f")
	Teal     = lipgloss.Color("#7fdbca")
	Blue     = lipgloss.Color("#82aaff")

	AccentColor  = Mauve
	SuccessColor = Green
	WarningColor = Yellow
	ErrorColor   = Red
	HiRed        = Red
	FaintColor   = Overlay
)
