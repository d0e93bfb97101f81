// Package config provides centralized management for application settings, defaults, and the Viper-based configuration engine.
package config

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"text/template"

	"github.com/cinemind-cli/cinemind/color"
	"github.com/cinemind-cli/cinemind/constant"
	"github.com/cinemind-cli/cinemind/key"
	"github.com/cinemind-cli/cinemind/style"
	"github.com/samber/lo"
	"github.com/spf13/viper"
)

// Field represents a configuration field definition.
type Field struct {
	Key         string
	Value       any
	Description string
}

// Pretty returns a colored string representation of the field for display.
func (f *Field) Pretty() string {
	var b strings.Builder
	lo.Must0(prettyTemplate.Execute(&b, f))
	return b.String()
}

// Env returns the environment variable name for this field.
func (f *Field) Env() string {
	env := strings.ToUpper(EnvKeyReplacer.Replace(f.Key))
	prefix := strings.ToUpper(constant.App + "_")
	if strings.HasPrefix(env, prefix) {
		return env
	}
	return prefix + env
}

// MarshalJSON customizes JSON output to include current and default values.
func (f *Field) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Key         string `json:"key"`
		Value       any    `json:"value"`
		Default     any    `json:"default"`
		Description string `json:"description"`
		Type        string `json:"type"`
	}{
		Key:         f.Key,
		Value:       viper.Get(f.Key),
		Default:     f.Value,
		Description: f.Description,
		Type:        f.typeName(),
	})
}

// typeName returns the string representation of the field's underlying value type.
func (f *Field) typeName() string {
	switch f.Value.(type) {
	case string:
		return "string"
	case int:
		return "int"
	case bool:
		return "bool"
	case []string:
		return "[]string"
	case []int:
		return "[]int"
	default:
		return "unknown"
	}
}

// Default holds the map of all configuration fields.
var Default = make(map[string]Field)

// EnvExposed holds keys that are bound to environment variables.
var EnvExposed []string

func init() {
	register := func(k string, v any, desc string) {
		if _, exists := Default[k]; exists {
			panic("Duplicate config key: " + k)
		}
		Default[k] = Field{Key: k, Value: v, Description: desc}
		EnvExposed = append(EnvExposed, k)
	}

	register(key.TMDBAPIKey, "", "TMDB API key.\nThe system keyring takes precedence, see \"cinemind keys\"")
	register(key.TMDBBaseURL, "https://api.themoviedb.org/3", "Base URL of the TMDB REST API")
	register(key.TMDBCache, true, "Cache details, people and seasons on disk for a day")
	register(key.TMDBLanguage, "en-US", "Language sent with trending, search and discover requests")
	register(key.GeminiAPIKey, "", "Gemini API key used to understand search queries.\nThe system keyring takes precedence, see \"cinemind keys\"")
	register(key.GeminiBaseURL, "https://generativelanguage.googleapis.com/v1beta", "Base URL of the Gemini API")
	register(key.GeminiModel, "gemini-2.5-flash", "Gemini model used to analyze queries")
	register(key.GeminiCache, true, "Remember analyzed queries for a week so repeated searches skip the model")
	register(key.SearchShowQuerySuggestions, true, "Show query suggestions when searching")
	register(key.SearchRankingLimit, 10, "Number of episodes returned by episode rankings when the query names no limit")
	register(key.HistorySaveOnView, true, "Remember titles whose details were opened")
	register(key.HistoryLimit, 50, "Maximum number of recently viewed titles to show")
	register(key.LibraryDefaultFilter, "all", "Filter applied when the library opens.\nAvailable options are: all, movie, tv, animation")
	register(key.MiniSearchLimit, 20, "Limit of search results to show in mini mode")
	register(key.IconsVariant, "plain", "Icons variant.\nAvailable options are: emoji, kaomoji, plain, squares, nerd (nerd-font required)")
	register(key.TUIItemSpacing, 1, "Spacing between items in the TUI")
	register(key.TUISearchPromptString, "> ", "Search prompt string to use")
	register(key.TUIShowDates, true, "Show release dates under list items")
	register(key.TUIStartWithLibrary, false, "Open the library instead of trending on startup")
	register(key.ServerAddress, "127.0.0.1:8642", "Listen address of \"cinemind serve\"")
	register(key.LogsWrite, false, "Write logs")
	register(key.LogsLevel, "info", "Available options are: (from less to most verbose)\npanic, fatal, error, warn, info, debug, trace")
	register(key.LogsJson, false, "Use json format for logs")
	register(key.CliColored, true, "Enable colored CLI output")
	register(key.CliVersionCheck, true, "Enable automatic version check")
}

var prettyTemplate = lo.Must(template.New("pretty").Funcs(template.FuncMap{
	"faint":    style.Faint,
	"bold":     style.Bold,
	"purple":   style.Fg(color.Purple),
	"blue":     style.Fg(color.Blue),
	"cyan":     style.Fg(color.Cyan),
	"value":    func(k string) any { return viper.Get(k) },
	"typename": func(v any) string { return reflect.TypeOf(v).String() },
	"hl": func(v any) string {
		switch value := v.(type) {
		case bool:
			b := strconv.FormatBool(value)
			if value {
				return style.Fg(color.Green)(b)
			}
			return style.Fg(color.Red)(b)
		case string:
			return style.Fg(color.Yellow)(value)
		default:
			return fmt.Sprint(value)
		}
	},
}).Parse(`{{ faint .Description }}
{{ blue "Key:" }}     {{ purple .Key }}
{{ blue "Env:" }}     {{ .Env }}
{{ blue "Value:" }}   {{ hl (value .Key) }}
{{ blue "Default:" }} {{ hl (.Value) }}
{{ blue "Type:" }}    {{ typename .Value }}`))
