package gemini

import (
	"encoding/json"
	"strconv"
	"strings"
)

// SearchType tells the discovery layer how to run a query.
type SearchType string

const (
	General        SearchType = "general"
	EpisodeRanking SearchType = "episode_ranking"
	PersonSearch   SearchType = "person"
	Trending       SearchType = "trending"
)

// FallbackExplanation accompanies the plain keyword search used when analysis fails.
const FallbackExplanation = "I couldn't quite understand the specific filters, so I'm doing a general search."

// Filter is the structured form of a natural-language query.
type Filter struct {
	SearchType  SearchType `json:"searchType" yaml:"search_type" jsonschema:"enum=general,enum=episode_ranking,enum=person,enum=trending"`
	MediaType   string     `json:"media_type,omitempty" yaml:"media_type,omitempty" jsonschema:"enum=movie,enum=tv"`
	Query       string     `json:"query,omitempty" yaml:"query,omitempty"`
	Genres      []int      `json:"genres,omitempty" yaml:"genres,omitempty"`
	Year        int        `json:"year,omitempty" yaml:"year,omitempty"`
	SortBy      string     `json:"sort_by,omitempty" yaml:"sort_by,omitempty"`
	WithPeople  string     `json:"with_people,omitempty" yaml:"with_people,omitempty"`
	Language    string     `json:"language,omitempty" yaml:"language,omitempty"`
	Limit       int        `json:"limit,omitempty" yaml:"limit,omitempty"`
	Explanation string     `json:"explanation,omitempty" yaml:"explanation,omitempty"`
}

// UnmarshalJSON accepts year and limit as numbers or quoted numbers, since
// models are not consistent about either. Unreadable values are dropped.
func (f *Filter) UnmarshalJSON(data []byte) error {
	type plain Filter
	aux := struct {
		*plain
		Year  json.RawMessage `json:"year,omitempty"`
		Limit json.RawMessage `json:"limit,omitempty"`
	}{plain: (*plain)(f)}

	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	f.Year = looseInt(aux.Year)
	f.Limit = looseInt(aux.Limit)
	return nil
}

func looseInt(raw json.RawMessage) int {
	s := strings.Trim(strings.TrimSpace(string(raw)), `"`)
	if n, err := strconv.Atoi(strings.TrimSpace(s)); err == nil {
		return n
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return int(f)
	}
	return 0
}

// Fallback is the filter used when a query could not be analysed.
func Fallback(query string) *Filter {
	return &Filter{
		SearchType:  General,
		Query:       query,
		Explanation: FallbackExplanation,
	}
}
