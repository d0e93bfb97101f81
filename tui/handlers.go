package tui

import (
	"context"
	"fmt"
	"time"

	"github.com/cinemind-cli/cinemind/auth"
	"github.com/cinemind-cli/cinemind/discovery"
	"github.com/cinemind-cli/cinemind/history"
	"github.com/cinemind-cli/cinemind/internal/ui"
	"github.com/cinemind-cli/cinemind/key"
	"github.com/cinemind-cli/cinemind/library"
	"github.com/cinemind-cli/cinemind/log"
	"github.com/cinemind-cli/cinemind/open"
	"github.com/cinemind-cli/cinemind/query"
	"github.com/cinemind-cli/cinemind/tmdb"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/viper"
)

type (
	resultMsg struct {
		result *discovery.Result
	}

	detailMsg struct {
		item   *tmdb.MediaItem
		detail *tmdb.MediaDetail
	}

	personMsg struct {
		person *tmdb.PersonDetail
	}

	seasonMsg struct {
		show   *tmdb.MediaDetail
		season int
		items  []*tmdb.MediaItem
	}

	progressMsg struct {
		status string
		ctx    context.Context
	}

	keysSavedMsg    struct{}
	keysRejectedMsg struct {
		err error
	}
)

const keysTimeout = 15 * time.Second

// waitForProgress relays status lines of the running request until it ends.
func (b *statefulBubble) waitForProgress(ctx context.Context) tea.Cmd {
	return func() tea.Msg {
		select {
		case status := <-b.progressChannel:
			return progressMsg{status: status, ctx: ctx}
		case <-ctx.Done():
			return nil
		}
	}
}

func (b *statefulBubble) openTrending() tea.Cmd {
	if b.service == nil {
		return b.openKeys()
	}

	service := b.service
	ctx := b.request()
	return tea.Batch(b.startLoading("Fetching trending titles..."), func() tea.Msg {
		log.Info("fetching trending")
		result, err := service.Trending(ctx)
		if err != nil {
			return err
		}
		return resultMsg{result: result}
	})
}

func (b *statefulBubble) openSearch() tea.Cmd {
	b.summary = nil
	b.newState(searchState)
	b.inputC.Focus()
	return textinput.Blink
}

func (b *statefulBubble) submitSearch(q string) tea.Cmd {
	if b.service == nil {
		return b.openKeys()
	}

	go func() {
		if err := query.Remember(q, query.Typed); err != nil {
			log.Warn(err)
		}
	}()

	service := b.service
	ctx := b.request()
	return tea.Batch(
		b.startLoading(fmt.Sprintf("Analyzing %q...", q)),
		b.waitForProgress(ctx),
		func() tea.Msg {
			log.Info("searching for " + q)
			result, err := service.Search(ctx, q)
			if err != nil {
				return err
			}
			return resultMsg{result: result}
		},
	)
}

// openItem opens the details of a movie or show, the page of a person,
// or the summary of an episode.
func (b *statefulBubble) openItem(item *tmdb.MediaItem) tea.Cmd {
	switch {
	case item.IsEpisode():
		b.summary = item
		return nil
	case item.MediaType == tmdb.Person:
		return b.openPerson(item.ID, item.DisplayTitle())
	}

	service := b.service
	ctx := b.request()
	return tea.Batch(b.startLoading(fmt.Sprintf("Loading %s...", item.DisplayTitle())), func() tea.Msg {
		detail, err := service.Details(ctx, item)
		if err != nil {
			return err
		}
		return detailMsg{item: item, detail: detail}
	})
}

func (b *statefulBubble) openPerson(id int, name string) tea.Cmd {
	service := b.service
	ctx := b.request()
	return tea.Batch(b.startLoading(fmt.Sprintf("Loading %s...", name)), func() tea.Msg {
		person, err := service.Person(ctx, id)
		if err != nil {
			return err
		}
		return personMsg{person: person}
	})
}

func (b *statefulBubble) openSeason(show *tmdb.MediaDetail, season int) tea.Cmd {
	service := b.service
	ctx := b.request()
	return tea.Batch(b.startLoading(fmt.Sprintf("Loading season %d of %s...", season, show.DisplayTitle())), func() tea.Msg {
		items, err := service.Season(ctx, show.ID, season)
		if err != nil {
			return err
		}
		return seasonMsg{show: show, season: season, items: items}
	})
}

// switchSeason moves by delta among the playable seasons of the open show.
func (b *statefulBubble) switchSeason(delta int) tea.Cmd {
	seasons := b.show.PlayableSeasons()
	for i, s := range seasons {
		if s.SeasonNumber != b.season {
			continue
		}

		next := i + delta
		if next < 0 || next >= len(seasons) {
			return nil
		}
		return b.openSeason(b.show, seasons[next].SeasonNumber)
	}

	return nil
}

func (b *statefulBubble) refreshLibrary() tea.Cmd {
	items, err := library.Get(b.libraryList)
	if err != nil {
		b.raiseError(err)
		return nil
	}

	b.libraryC.Title = b.libraryList.Title()
	b.libraryC.ResetSelected()
	cmd := b.libraryC.SetItems(newItems(library.Apply(items, b.libraryShown)))
	return tea.Batch(cmd, b.libraryC.NewStatusMessage("filter: "+b.libraryShown.String()))
}

func (b *statefulBubble) openLibrary() tea.Cmd {
	cmd := b.refreshLibrary()
	b.newState(libraryState)
	return cmd
}

func (b *statefulBubble) refreshHistory() tea.Cmd {
	entries, err := history.Get()
	if err != nil {
		b.raiseError(err)
		return nil
	}

	return b.historyC.SetItems(newItems(entries))
}

func (b *statefulBubble) openHistory() tea.Cmd {
	cmd := b.refreshHistory()
	b.newState(historyState)
	return cmd
}

func (b *statefulBubble) openKeys() tea.Cmd {
	b.keysError = ""
	b.tmdbInputC.SetValue(auth.Get(auth.TMDB))
	b.geminiInputC.SetValue(auth.Get(auth.Gemini))
	b.tmdbInputC.Focus()
	b.geminiInputC.Blur()
	b.newState(keysState)
	return textinput.Blink
}

func (b *statefulBubble) saveKeys() tea.Cmd {
	tmdbKey, geminiKey := b.tmdbInputC.Value(), b.geminiInputC.Value()
	validator := b.options.Validator

	return tea.Batch(b.startLoading("Validating TMDB key..."), func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), keysTimeout)
		defer cancel()

		if err := auth.SaveKeys(ctx, validator, tmdbKey, geminiKey); err != nil {
			log.Warn(err)
			return keysRejectedMsg{err: err}
		}
		return keysSavedMsg{}
	})
}

// recordView remembers an opened detail page.
func recordView(item *tmdb.MediaItem) {
	if !viper.GetBool(key.HistorySaveOnView) {
		return
	}

	if err := history.Save(item); err != nil {
		log.Warn(err)
	}
}

func toggle(list library.List, item *tmdb.MediaItem) tea.Cmd {
	added, err := library.Toggle(list, item)
	if err != nil {
		return ui.Notify(err.Error())
	}

	if added {
		return ui.Notify("Added to " + list.Title())
	}
	return ui.Notify("Removed from " + list.Title())
}

func openURL(link string) tea.Cmd {
	if link == "" {
		return ui.Notify("Nothing to open")
	}

	if err := open.URL(link); err != nil {
		log.Error(err)
		return ui.Notify(err.Error())
	}
	return nil
}

func openTrailer(detail *tmdb.MediaDetail) tea.Cmd {
	if detail.TrailerURL() == "" {
		return ui.Notify("No trailer available")
	}
	return openURL(detail.TrailerURL())
}
