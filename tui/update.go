package tui

import (
	"errors"
	"fmt"

	"github.com/cinemind-cli/cinemind/discovery"
	"github.com/cinemind-cli/cinemind/history"
	"github.com/cinemind-cli/cinemind/internal/ui"
	"github.com/cinemind-cli/cinemind/key"
	"github.com/cinemind-cli/cinemind/library"
	"github.com/cinemind-cli/cinemind/log"
	"github.com/cinemind-cli/cinemind/query"
	"github.com/cinemind-cli/cinemind/tmdb"
	bubblesKey "github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/samber/mo"
	"github.com/spf13/viper"
)

func (b *statefulBubble) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Notifications are handled for every state
	cmd := b.notifier.Update(msg)

	switch msg := msg.(type) {
	case ui.NotificationMsg, ui.ClearNotificationMsg:
		return b, cmd
	case error:
		// a request abandoned with esc may still fail afterwards
		if !b.loading {
			return b, cmd
		}
		log.Error(msg)
		b.stopLoading()
		if errors.Is(msg, discovery.ErrNoAnalyzer) {
			b.setState(b.statesHistory.Pop())
			keysCmd := b.openKeys()
			b.keysError = discovery.MsgMissingGemini
			return b, tea.Batch(cmd, keysCmd)
		}
		b.raiseError(msg)
		return b, cmd
	case tea.WindowSizeMsg:
		b.resize(msg.Width, msg.Height)
	case progressMsg:
		if b.loading && msg.ctx.Err() == nil {
			b.progressStatus = msg.status
			return b, tea.Batch(cmd, b.waitForProgress(msg.ctx))
		}
		return b, cmd
	case resultMsg, detailMsg, personMsg, seasonMsg, keysSavedMsg, keysRejectedMsg:
		if !b.loading {
			return b, cmd
		}
		return b, tea.Batch(cmd, b.onLoaded(msg))
	case tea.KeyMsg:
		if bubblesKey.Matches(msg, b.keymap.forceQuit) {
			return b, tea.Quit
		}

		// an open episode summary swallows the next key
		if b.summary != nil {
			b.summary = nil
			return b, cmd
		}

		if bubblesKey.Matches(msg, b.keymap.back) {
			if b.state == searchState {
				b.inputC.SetValue("")
				b.searchSuggestion = mo.None[string]()
			}

			if b.loading {
				b.stopLoading()
			}

			if b.statesHistory.Len() == 0 {
				if b.state == loadingState || b.state == errorState {
					return b, tea.Quit
				}
				return b, cmd
			}

			b.previousState()
			return b, cmd
		}

		if !b.state.typing() && !b.loading {
			switch {
			case bubblesKey.Matches(msg, b.keymap.quit):
				return b, tea.Quit
			case bubblesKey.Matches(msg, b.keymap.search):
				return b, tea.Batch(cmd, b.openSearch())
			case bubblesKey.Matches(msg, b.keymap.trending):
				return b, tea.Batch(cmd, b.openTrending())
			case bubblesKey.Matches(msg, b.keymap.library):
				return b, tea.Batch(cmd, b.openLibrary())
			case bubblesKey.Matches(msg, b.keymap.history):
				return b, tea.Batch(cmd, b.openHistory())
			case bubblesKey.Matches(msg, b.keymap.keys):
				return b, tea.Batch(cmd, b.openKeys())
			}
		}
	}

	var stateCmd tea.Cmd
	switch b.state {
	case loadingState:
		stateCmd = b.updateLoading(msg)
	case keysState:
		stateCmd = b.updateKeys(msg)
	case searchState:
		stateCmd = b.updateSearch(msg)
	case resultsState:
		stateCmd = b.updateResults(msg)
	case detailState:
		stateCmd = b.updateDetail(msg)
	case personState:
		stateCmd = b.updatePerson(msg)
	case episodesState:
		stateCmd = b.updateEpisodes(msg)
	case libraryState:
		stateCmd = b.updateLibrary(msg)
	case historyState:
		stateCmd = b.updateHistory(msg)
	}

	return b, tea.Batch(cmd, stateCmd)
}

// replaceState moves to s after a load. Reopening the screen that was left for
// the load replaces it instead of stacking a copy.
func (b *statefulBubble) replaceState(s state) {
	if b.statesHistory.Len() > 0 && b.statesHistory.Peek() == s {
		b.statesHistory.Pop()
	}
	b.setState(loadingState)
	b.newState(s)
}

func (b *statefulBubble) onLoaded(msg tea.Msg) tea.Cmd {
	b.stopLoading()

	switch msg := msg.(type) {
	case resultMsg:
		result := msg.result
		if result.Query != "" {
			b.resultsC.Title = fmt.Sprintf("Results for %q", result.Query)
		} else {
			b.resultsC.Title = "Trending"
		}

		b.resultsC.ResetSelected()
		b.replaceState(resultsState)
		return tea.Batch(
			b.resultsC.SetItems(newItems(result.Items)),
			b.resultsC.NewStatusMessage(result.Explanation),
		)
	case detailMsg:
		recordView(msg.item)
		b.detail = msg.detail
		b.detailC.Title = "Cast, Seasons & More"
		b.detailC.ResetSelected()
		b.fitHeaders()
		b.replaceState(detailState)
		return b.detailC.SetItems(detailItems(msg.detail))
	case personMsg:
		b.person = msg.person
		b.personC.ResetSelected()
		b.fitHeaders()
		b.replaceState(personState)
		return b.personC.SetItems(newItems(msg.person.KnownFor()))
	case seasonMsg:
		b.show = msg.show
		b.season = msg.season
		b.episodesC.Title = fmt.Sprintf("%s · Season %d", msg.show.DisplayTitle(), msg.season)
		b.episodesC.ResetSelected()
		b.replaceState(episodesState)
		return b.episodesC.SetItems(newItems(msg.items))
	case keysSavedMsg:
		b.statesHistory.Clear()
		b.setState(loadingState)
		if !b.connect() {
			b.raiseError(fmt.Errorf("keys were saved but could not be read back"))
			return nil
		}
		return tea.Batch(ui.Notify("API keys saved"), b.openTrending())
	case keysRejectedMsg:
		b.keysError = msg.err.Error()
		b.previousState()
	}

	return nil
}

// detailItems lists the cast, then the seasons, then the recommendations.
func detailItems(detail *tmdb.MediaDetail) []list.Item {
	var items []list.Item
	items = append(items, newItems(detail.TopCast())...)
	if detail.MediaType == tmdb.TV {
		items = append(items, newItems(detail.PlayableSeasons())...)
	}
	return append(items, newItems(detail.RecommendedItems())...)
}

// wrapAround moves the cursor from one end of l to the other.
// It reports whether msg was consumed.
func (b *statefulBubble) wrapAround(l *list.Model, msg tea.KeyMsg) bool {
	n := len(l.Items())
	if n == 0 {
		return false
	}

	switch {
	case bubblesKey.Matches(msg, b.keymap.up) && l.Index() == 0:
		l.Select(n - 1)
		return true
	case bubblesKey.Matches(msg, b.keymap.down) && l.Index() == n-1:
		l.Select(0)
		return true
	}

	return false
}

func selected(l *list.Model) (*listItem, bool) {
	item, ok := l.SelectedItem().(*listItem)
	return item, ok && item != nil
}

func selectedMedia(l *list.Model) (*tmdb.MediaItem, bool) {
	item, ok := selected(l)
	if !ok {
		return nil, false
	}
	return item.media()
}

func (b *statefulBubble) updateLoading(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	b.spinnerC, cmd = b.spinnerC.Update(msg)
	return cmd
}

func (b *statefulBubble) updateKeys(msg tea.Msg) tea.Cmd {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case bubblesKey.Matches(msg, b.keymap.confirm):
			return b.saveKeys()
		case bubblesKey.Matches(msg, b.keymap.nextInput):
			if b.tmdbInputC.Focused() {
				b.tmdbInputC.Blur()
				return b.geminiInputC.Focus()
			}
			b.geminiInputC.Blur()
			return b.tmdbInputC.Focus()
		}
	}

	var cmd tea.Cmd
	if b.tmdbInputC.Focused() {
		b.tmdbInputC, cmd = b.tmdbInputC.Update(msg)
	} else {
		b.geminiInputC, cmd = b.geminiInputC.Update(msg)
	}
	return cmd
}

func (b *statefulBubble) updateSearch(msg tea.Msg) tea.Cmd {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case bubblesKey.Matches(msg, b.keymap.confirm) && b.inputC.Value() != "":
			q := b.inputC.Value()
			b.searchSuggestion = mo.None[string]()
			return b.submitSearch(q)
		case bubblesKey.Matches(msg, b.keymap.acceptSearchSuggestion) && b.searchSuggestion.IsPresent():
			b.inputC.SetValue(b.searchSuggestion.MustGet())
			b.searchSuggestion = mo.None[string]()
			b.inputC.SetCursor(len(b.inputC.Value()))
			return nil
		}
	}

	var cmd tea.Cmd
	b.inputC, cmd = b.inputC.Update(msg)

	if b.inputC.Value() != "" && viper.GetBool(key.SearchShowQuerySuggestions) {
		if suggestion, ok := query.Suggest(b.inputC.Value()).Get(); ok && suggestion != b.inputC.Value() {
			b.searchSuggestion = mo.Some(suggestion)
		} else {
			b.searchSuggestion = mo.None[string]()
		}
	} else if b.searchSuggestion.IsPresent() {
		b.searchSuggestion = mo.None[string]()
	}

	return cmd
}

// updateMediaList handles the keys shared by every list of titles.
func (b *statefulBubble) updateMediaList(l *list.Model, msg tea.Msg) (tea.Cmd, bool) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil, false
	}

	if b.wrapAround(l, keyMsg) {
		return nil, true
	}

	item, ok := selectedMedia(l)
	if !ok {
		return nil, false
	}

	switch {
	case bubblesKey.Matches(keyMsg, b.keymap.confirm):
		return b.openItem(item), true
	case bubblesKey.Matches(keyMsg, b.keymap.favorite):
		return toggle(library.Favorites, item), true
	case bubblesKey.Matches(keyMsg, b.keymap.watchlist):
		return toggle(library.Watchlist, item), true
	}

	return nil, false
}

func (b *statefulBubble) updateResults(msg tea.Msg) tea.Cmd {
	if cmd, ok := b.updateMediaList(&b.resultsC, msg); ok {
		return cmd
	}

	var cmd tea.Cmd
	b.resultsC, cmd = b.resultsC.Update(msg)
	return cmd
}

func (b *statefulBubble) updateDetail(msg tea.Msg) tea.Cmd {
	if msg, ok := msg.(tea.KeyMsg); ok && b.detail != nil {
		if b.wrapAround(&b.detailC, msg) {
			return nil
		}

		switch {
		case bubblesKey.Matches(msg, b.keymap.favorite):
			return toggle(library.Favorites, &b.detail.MediaItem)
		case bubblesKey.Matches(msg, b.keymap.watchlist):
			return toggle(library.Watchlist, &b.detail.MediaItem)
		case bubblesKey.Matches(msg, b.keymap.trailer):
			return openTrailer(b.detail)
		case bubblesKey.Matches(msg, b.keymap.letterboxd):
			return openURL(discovery.LetterboxdURL(&b.detail.MediaItem))
		case bubblesKey.Matches(msg, b.keymap.confirm):
			item, ok := selected(&b.detailC)
			if !ok {
				return nil
			}

			switch e := item.internal.(type) {
			case *tmdb.CastMember:
				return b.openPerson(e.ID, e.Name)
			case *tmdb.Season:
				return b.openSeason(b.detail, e.SeasonNumber)
			case *tmdb.MediaItem:
				return b.openItem(e)
			}
			return nil
		}
	}

	var cmd tea.Cmd
	b.detailC, cmd = b.detailC.Update(msg)
	return cmd
}

func (b *statefulBubble) updatePerson(msg tea.Msg) tea.Cmd {
	if msg, ok := msg.(tea.KeyMsg); ok && b.person != nil {
		if bubblesKey.Matches(msg, b.keymap.letterboxd) {
			return openURL(discovery.PersonLetterboxdURL(b.person.ID))
		}
	}

	if cmd, ok := b.updateMediaList(&b.personC, msg); ok {
		return cmd
	}

	var cmd tea.Cmd
	b.personC, cmd = b.personC.Update(msg)
	return cmd
}

func (b *statefulBubble) updateEpisodes(msg tea.Msg) tea.Cmd {
	if msg, ok := msg.(tea.KeyMsg); ok && b.show != nil {
		switch {
		case bubblesKey.Matches(msg, b.keymap.nextSeason):
			return b.switchSeason(1)
		case bubblesKey.Matches(msg, b.keymap.prevSeason):
			return b.switchSeason(-1)
		}
	}

	if cmd, ok := b.updateMediaList(&b.episodesC, msg); ok {
		return cmd
	}

	var cmd tea.Cmd
	b.episodesC, cmd = b.episodesC.Update(msg)
	return cmd
}

func (b *statefulBubble) updateLibrary(msg tea.Msg) tea.Cmd {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case bubblesKey.Matches(msg, b.keymap.switchList):
			b.libraryList = b.libraryList.Other()
			return b.refreshLibrary()
		case bubblesKey.Matches(msg, b.keymap.cycleFilter):
			b.libraryShown = b.libraryShown.Next()
			return b.refreshLibrary()
		case bubblesKey.Matches(msg, b.keymap.remove):
			item, ok := selectedMedia(&b.libraryC)
			if !ok {
				return nil
			}

			if err := library.Remove(b.libraryList, item); err != nil {
				b.raiseError(err)
				return nil
			}

			index := b.libraryC.Index()
			cmd := b.refreshLibrary()
			b.libraryC.Select(index)
			return tea.Batch(cmd, ui.Notify("Removed from "+b.libraryList.Title()))
		}
	}

	if cmd, ok := b.updateMediaList(&b.libraryC, msg); ok {
		// toggles may have removed the item from the open list
		if msg, ok := msg.(tea.KeyMsg); ok && bubblesKey.Matches(msg, b.keymap.favorite, b.keymap.watchlist) {
			return tea.Batch(cmd, b.refreshLibrary())
		}
		return cmd
	}

	var cmd tea.Cmd
	b.libraryC, cmd = b.libraryC.Update(msg)
	return cmd
}

func (b *statefulBubble) updateHistory(msg tea.Msg) tea.Cmd {
	if msg, ok := msg.(tea.KeyMsg); ok && bubblesKey.Matches(msg, b.keymap.remove) {
		item, ok := selected(&b.historyC)
		if !ok {
			return nil
		}

		entry := item.internal.(*history.Entry)
		if err := history.Remove(entry.Item); err != nil {
			b.raiseError(err)
			return nil
		}

		return tea.Batch(b.refreshHistory(), ui.Notify("Removed from history"))
	}

	if cmd, ok := b.updateMediaList(&b.historyC, msg); ok {
		return cmd
	}

	var cmd tea.Cmd
	b.historyC, cmd = b.historyC.Update(msg)
	return cmd
}
