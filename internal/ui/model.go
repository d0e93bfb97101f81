// Package ui shows short-lived notifications under the TUI views.
package ui

import (
	"strings"
	"time"

	"github.com/cinemind-cli/cinemind/style"
	tea "github.com/charmbracelet/bubbletea"
)

// Duration is how long a notification stays visible.
const Duration = 3 * time.Second

// Model holds the current notification, if any.
type Model struct {
	notification string
	id           int
}

// NotificationMsg sets the notification text.
type NotificationMsg string

// ClearNotificationMsg clears the notification it was scheduled for.
type ClearNotificationMsg struct {
	id int
}

// Notify returns a command showing text.
func Notify(text string) tea.Cmd {
	return func() tea.Msg {
		return NotificationMsg(text)
	}
}

func clearAfter(id int) tea.Cmd {
	return tea.Tick(Duration, func(time.Time) tea.Msg {
		return ClearNotificationMsg{id: id}
	})
}

// Update handles notification messages. A newer notification is not cleared
// by the timer of an older one.
func (m *Model) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case NotificationMsg:
		m.id++
		m.notification = string(msg)
		return clearAfter(m.id)
	case ClearNotificationMsg:
		if msg.id == m.id {
			m.notification = ""
		}
	}
	return nil
}

// Text returns the visible notification.
func (m *Model) Text() string {
	return m.notification
}

// View appends the notification to the last line of content.
func (m *Model) View(content string) string {
	if m.notification == "" {
		return content
	}

	lines := strings.Split(content, "\n")
	lines[len(lines)-1] += "  " + style.Faint(m.notification)
	return strings.Join(lines, "\n")
}
