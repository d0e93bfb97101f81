// Package tui provides the primary terminal user interface implementation.
package tui

import (
	"context"
	"fmt"
	"time"

	"github.com/cinemind-cli/cinemind/constant"
	"github.com/cinemind-cli/cinemind/internal/ui"
	"github.com/cinemind-cli/cinemind/key"
	"github.com/cinemind-cli/cinemind/library"
	"github.com/cinemind-cli/cinemind/style"
	"github.com/cinemind-cli/cinemind/tmdb"
	"github.com/cinemind-cli/cinemind/util"
	"github.com/charmbracelet/bubbles/help"
	bubblesKey "github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/viper"
)

// statefulBubble encapsulates the application state, including component models and workflow tracking.
type statefulBubble struct {
	state         state
	statesHistory util.Stack[state]
	loading       bool

	keymap *statefulKeymap

	// components
	spinnerC     spinner.Model
	inputC       textinput.Model
	tmdbInputC   textinput.Model
	geminiInputC textinput.Model
	resultsC     list.Model
	detailC      list.Model
	personC      list.Model
	episodesC    list.Model
	libraryC     list.Model
	historyC     list.Model
	helpC        help.Model

	service Service
	// cancel aborts the request in flight, if any.
	cancel context.CancelFunc

	progressChannel chan string
	progressStatus  string

	detail       *tmdb.MediaDetail
	person       *tmdb.PersonDetail
	summary      *tmdb.MediaItem
	show         *tmdb.MediaDetail
	season       int
	libraryList  library.List
	libraryShown library.Filter
	keysError    string

	lastError        error
	width, height    int
	searchSuggestion mo.Option[string]
	notifier         *ui.Model

	options *Options
}

// raiseError dispatches an error and transitions the application to the failure view.
func (b *statefulBubble) raiseError(err error) {
	b.lastError = err
	b.newState(errorState)
}

func (b *statefulBubble) setState(s state) {
	b.state = s
	b.keymap.setState(s)
}

// newState moves to s, recording the previous state in the navigation history when appropriate.
func (b *statefulBubble) newState(s state) {
	if b.state == s {
		return
	}

	// Do not push these states to history
	if !lo.Contains([]state{
		loadingState,
		errorState,
	}, b.state) {
		b.statesHistory.Push(b.state)
	}

	b.setState(s)
}

// previousState restores the application to its immediate predecessor in the navigation stack.
func (b *statefulBubble) previousState() {
	if b.statesHistory.Len() > 0 {
		b.setState(b.statesHistory.Pop())
	}
}

// lists returns every list component.
func (b *statefulBubble) lists() []*list.Model {
	return []*list.Model{&b.resultsC, &b.detailC, &b.personC, &b.episodesC, &b.libraryC, &b.historyC}
}

// resize propagates terminal dimension changes to all child component models.
func (b *statefulBubble) resize(width, height int) {
	x, y := paddingStyle.GetFrameSize()
	xx, yy := listExtraPaddingStyle.GetFrameSize()

	listWidth := width - xx
	listHeight := height - yy

	for _, l := range b.lists() {
		l.SetSize(listWidth, listHeight)
		l.Help.Width = listWidth
	}

	b.width = width - x
	b.height = height - y
	b.helpC.Width = listWidth
	b.inputC.Width = listWidth
	b.tmdbInputC.Width = listWidth
	b.geminiInputC.Width = listWidth

	b.fitHeaders()
}

// fitHeaders shrinks the lists rendered under a text header.
func (b *statefulBubble) fitHeaders() {
	_, yy := listExtraPaddingStyle.GetFrameSize()
	listHeight := b.height + paddingStyle.GetVerticalFrameSize() - yy

	if b.detail != nil {
		b.detailC.SetHeight(util.Max(listHeight-lipgloss.Height(paddingStyle.Render(b.detailHeader())), 5))
	}

	if b.person != nil {
		b.personC.SetHeight(util.Max(listHeight-lipgloss.Height(paddingStyle.Render(b.personHeader())), 5))
	}
}

func (b *statefulBubble) startLoading(status string) tea.Cmd {
	b.loading = true
	b.progressStatus = status
	b.newState(loadingState)
	return b.spinnerC.Tick
}

func (b *statefulBubble) stopLoading() {
	b.loading = false
	b.progressStatus = ""
	if b.cancel != nil {
		b.cancel()
		b.cancel = nil
	}
}

// request returns a context for a new catalog request, cancelling the previous one.
func (b *statefulBubble) request() context.Context {
	if b.cancel != nil {
		b.cancel()
	}

	ctx, cancel := context.WithCancel(context.Background())
	b.cancel = cancel
	return ctx
}

// connect (re)builds the service from the stored credentials.
func (b *statefulBubble) connect() bool {
	service, ok := b.options.Connect(b.reportProgress).Get()
	if !ok {
		b.service = nil
		return false
	}

	b.service = service
	return true
}

func (b *statefulBubble) reportProgress(status string) {
	select {
	case b.progressChannel <- status:
	default:
	}
}

// newBubble performs a complete initialization of the application's primary UI model.
func newBubble(options *Options) *statefulBubble {
	keymap := newStatefulKeymap()
	bubble := statefulBubble{
		statesHistory:   util.Stack[state]{},
		keymap:          keymap,
		progressChannel: make(chan string, 8),
		libraryList:     library.Favorites,
		notifier:        &ui.Model{},
		options:         options,
	}

	if filter, err := library.ParseFilter(viper.GetString(key.LibraryDefaultFilter)); err == nil {
		bubble.libraryShown = filter
	} else {
		bubble.libraryShown = library.All
	}

	type listOptions struct {
		TitleStyle mo.Option[lipgloss.Style]
	}

	makeList := func(title string, description bool, options *listOptions) list.Model {
		delegate := list.NewDefaultDelegate()
		delegate.SetSpacing(viper.GetInt(key.TUIItemSpacing))
		delegate.ShowDescription = description
		delegate.Styles.SelectedTitle = lipgloss.NewStyle().
			Border(lipgloss.ThickBorder(), false, false, false, true).
			BorderForeground(style.AccentColor).
			Foreground(style.AccentColor).
			Padding(0, 0, 0, 1)
		delegate.Styles.NormalTitle = delegate.Styles.NormalTitle.Foreground(lipgloss.Color("7"))
		delegate.Styles.SelectedDesc = delegate.Styles.SelectedTitle

		listC := list.New([]list.Item{}, delegate, 0, 0)
		listC.KeyMap = bubble.keymap.forList()
		listC.AdditionalShortHelpKeys = bubble.keymap.ShortHelp
		listC.AdditionalFullHelpKeys = func() []bubblesKey.Binding {
			return bubble.keymap.FullHelp()[0]
		}
		listC.Title = title
		listC.Styles.NoItems = paddingStyle
		if titleStyle, ok := options.TitleStyle.Get(); ok {
			listC.Styles.Title = titleStyle
		}
		listC.StatusMessageLifetime = time.Hour * 999
		listC.SetShowPagination(false)
		listC.SetShowStatusBar(false)
		listC.SetFilteringEnabled(false)

		return listC
	}

	titled := func(bg lipgloss.Color) *listOptions {
		return &listOptions{
			TitleStyle: mo.Some(lipgloss.NewStyle().Foreground(style.Base).Background(bg).Padding(0, 1)),
		}
	}

	bubble.helpC = help.New()

	bubble.spinnerC = spinner.New()
	bubble.spinnerC.Spinner = spinner.Dot
	bubble.spinnerC.Style = lipgloss.NewStyle().Foreground(style.AccentColor)

	bubble.inputC = textinput.New()
	bubble.inputC.Placeholder = fmt.Sprintf("Describe what you want to watch (v%s)", constant.Version)
	bubble.inputC.CharLimit = 200
	bubble.inputC.Prompt = viper.GetString(key.TUISearchPromptString)

	bubble.tmdbInputC = textinput.New()
	bubble.tmdbInputC.Placeholder = "TMDB API key (required)"
	bubble.tmdbInputC.CharLimit = 128
	bubble.tmdbInputC.Prompt = "TMDB   > "
	bubble.tmdbInputC.EchoMode = textinput.EchoPassword

	bubble.geminiInputC = textinput.New()
	bubble.geminiInputC.Placeholder = "Gemini API key (optional, enables AI search)"
	bubble.geminiInputC.CharLimit = 128
	bubble.geminiInputC.Prompt = "Gemini > "
	bubble.geminiInputC.EchoMode = textinput.EchoPassword

	bubble.resultsC = makeList("Results", true, titled(style.Lavender))
	bubble.resultsC.SetStatusBarItemName("title", "titles")

	bubble.detailC = makeList("Cast, Seasons & More", true, titled(style.Mauve))
	bubble.personC = makeList("Known For", true, titled(style.Teal))
	bubble.episodesC = makeList("Episodes", true, titled(style.Peach))
	bubble.libraryC = makeList(library.Favorites.Title(), true, titled(style.Red))
	bubble.historyC = makeList("Recently Viewed", true, titled(style.Yellow))

	if w, h, err := util.TerminalSize(); err == nil {
		bubble.resize(w, h)
	}

	bubble.inputC.Focus()

	return &bubble
}
