// Package key defines the canonical set of configuration identifiers used for centralized settings management.
package key

// Catalog - TMDB client settings.
const (
	TMDBAPIKey   = "tmdb.api_key"
	TMDBBaseURL  = "tmdb.base_url"
	TMDBCache    = "tmdb.cache"
	TMDBLanguage = "tmdb.language"
)

// Language model - Gemini analyzer settings.
const (
	GeminiAPIKey  = "gemini.api_key"
	GeminiBaseURL = "gemini.base_url"
	GeminiModel   = "gemini.model"
	GeminiCache   = "gemini.cache"
)

// Search interaction.
const (
	SearchShowQuerySuggestions = "search.show_query_suggestions"
	SearchRankingLimit         = "search.ranking_limit"
)

// Recently viewed titles.
const (
	HistorySaveOnView = "history.save_on_view"
	HistoryLimit      = "history.limit"
)

// Library lists.
const (
	LibraryDefaultFilter = "library.default_filter"
)

// Mini mode.
const (
	MiniSearchLimit = "mini.search_limit"
)

// Iconography.
const (
	IconsVariant = "icons.variant"
)

// Terminal User Interface (TUI) - styling and behaviour of the interactive mode.
const (
	TUIItemSpacing        = "tui.item_spacing"
	TUISearchPromptString = "tui.search_prompt"
	TUIShowDates          = "tui.show_dates"
	TUIStartWithLibrary   = "tui.start_with_library"
)

// Local JSON API.
const (
	ServerAddress = "server.address"
)

// Logging.
const (
	LogsWrite = "logs.write"
	LogsLevel = "logs.level"
	LogsJson  = "logs.json"
)

// CLI execution environment.
const (
	CliColored      = "cli.colored"
	CliVersionCheck = "cli.version_check"
)
