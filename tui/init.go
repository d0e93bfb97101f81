package tui

import (
	"github.com/cinemind-cli/cinemind/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/viper"
)

// Init opens the keys form when no TMDB key is stored, otherwise the first screen.
func (b *statefulBubble) Init() tea.Cmd {
	if !b.connect() {
		return b.openKeys()
	}

	switch {
	case b.options.History:
		return b.openHistory()
	case b.options.Library || viper.GetBool(key.TUIStartWithLibrary):
		return b.openLibrary()
	default:
		return tea.Batch(textinput.Blink, b.openTrending())
	}
}
