// Package discovery runs natural-language searches against the catalog.
package discovery

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/cinemind-cli/cinemind/gemini"
	"github.com/cinemind-cli/cinemind/log"
	"github.com/cinemind-cli/cinemind/tmdb"
	"github.com/samber/lo"
	"github.com/samber/mo"
)

// Catalog is the subset of the catalog client the service needs.
type Catalog interface {
	Trending(ctx context.Context) ([]*tmdb.MediaItem, error)
	SearchMulti(ctx context.Context, query string) ([]*tmdb.MediaItem, error)
	Discover(ctx context.Context, mediaType tmdb.MediaType, params url.Values) ([]*tmdb.MediaItem, error)
	Details(ctx context.Context, mediaType tmdb.MediaType, id int) (*tmdb.MediaDetail, error)
	PersonDetails(ctx context.Context, id int) (*tmdb.PersonDetail, error)
	FindIDByName(ctx context.Context, mediaType tmdb.MediaType, name string) (mo.Option[int], error)
	PersonID(ctx context.Context, name string) (mo.Option[int], error)
	ShowSeasons(ctx context.Context, showID int) ([]*tmdb.Season, error)
	SeasonEpisodes(ctx context.Context, showID, season int) ([]*tmdb.Episode, error)
}

// Analyzer turns a query into a filter.
type Analyzer interface {
	Analyze(ctx context.Context, query string) (*gemini.Filter, error)
}

const (
	DefaultSortBy       = "popularity.desc"
	DefaultExplanation  = "Results based on your search."
	TrendingExplanation = "Here's what's popular today across movies and TV."
	DefaultRankingLimit = 10
)

// Result is the outcome of a search or a trending request.
type Result struct {
	Query       string            `json:"query,omitempty" yaml:"query,omitempty"`
	Filter      *gemini.Filter    `json:"filter,omitempty" yaml:"filter,omitempty"`
	Items       []*tmdb.MediaItem `json:"items" yaml:"items"`
	Explanation string            `json:"explanation" yaml:"explanation"`
}

// Service combines the analyzer and the catalog.
type Service struct {
	catalog  Catalog
	analyzer Analyzer

	// Progress, when set, receives interim status lines of long searches.
	Progress func(status string)
}

// New returns a service. analyzer may be nil, in which case Search fails
// with ErrNoAnalyzer while every other operation works.
func New(catalog Catalog, analyzer Analyzer) *Service {
	return &Service{
		catalog:  catalog,
		analyzer: analyzer,
	}
}

// CanSearch reports whether natural-language search is available.
func (s *Service) CanSearch() bool {
	return s.analyzer != nil
}

func (s *Service) progress(status string) {
	if s.Progress != nil {
		s.Progress(status)
	}
}

// Trending lists what is popular today.
func (s *Service) Trending(ctx context.Context) (*Result, error) {
	items, err := s.catalog.Trending(ctx)
	if err != nil {
		log.Error(err)
		return nil, wrap(MsgTrendingFailed, err)
	}

	return &Result{Items: items, Explanation: TrendingExplanation}, nil
}

// Search analyses query and runs the matching catalog request.
func (s *Service) Search(ctx context.Context, query string) (*Result, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, ErrEmptyQuery
	}

	if s.analyzer == nil {
		return nil, ErrNoAnalyzer
	}

	analysis, err := s.analyzer.Analyze(ctx, query)
	if errors.Is(err, gemini.ErrMissingKey) {
		return nil, ErrNoAnalyzer
	}
	if err != nil {
		log.Error(err)
		return nil, wrap(MsgSearchFailed, err)
	}

	result, err := s.run(ctx, query, analysis)
	if err != nil {
		log.Errorf("search %q failed: %v", query, err)
		return nil, wrap(MsgSearchFailed, err)
	}

	result.Query = query
	result.Filter = analysis
	return result, nil
}

func (s *Service) run(ctx context.Context, query string, analysis *gemini.Filter) (*Result, error) {
	explanation := lo.Ternary(analysis.Explanation != "", analysis.Explanation, DefaultExplanation)

	switch {
	case analysis.SearchType == gemini.Trending:
		items, err := s.catalog.Trending(ctx)
		if err != nil {
			return nil, err
		}
		return &Result{Items: items, Explanation: explanation}, nil

	case analysis.SearchType == gemini.EpisodeRanking && analysis.Query != "":
		s.progress(fmt.Sprintf("Finding top ranked episodes for %q...", analysis.Query))

		items, err := s.RankEpisodes(ctx, analysis.Query, analysis.Limit)
		if err != nil {
			return nil, err
		}

		explanation = fmt.Sprintf("Top %d highest-rated episodes of %s.", len(items), analysis.Query)
		return &Result{Items: items, Explanation: explanation}, nil
	}

	params, err := s.discoverParams(ctx, analysis)
	if err != nil {
		return nil, err
	}

	var items []*tmdb.MediaItem
	if mediaType, err := tmdb.ParseMediaType(analysis.MediaType); err == nil {
		items, err = s.catalog.Discover(ctx, mediaType, params)
		if err != nil {
			return nil, err
		}
	} else {
		keywords := lo.Ternary(analysis.Query != "", analysis.Query, query)
		items, err = s.catalog.SearchMulti(ctx, keywords)
		if err != nil {
			return nil, err
		}
	}

	return &Result{Items: items, Explanation: explanation}, nil
}

// discoverParams builds the discover query of a general analysis.
// A named person is resolved to an id first.
func (s *Service) discoverParams(ctx context.Context, analysis *gemini.Filter) (url.Values, error) {
	params := url.Values{}
	params.Set("sort_by", lo.Ternary(analysis.SortBy != "", analysis.SortBy, DefaultSortBy))

	if len(analysis.Genres) > 0 {
		ids := lo.Map(analysis.Genres, func(id, _ int) string { return strconv.Itoa(id) })
		params.Set("with_genres", strings.Join(ids, ","))
	}

	if analysis.Year > 0 {
		year := strconv.Itoa(analysis.Year)
		params.Set("primary_release_year", year)
		params.Set("first_air_date_year", year)
	}

	if analysis.WithPeople != "" {
		id, err := s.catalog.PersonID(ctx, analysis.WithPeople)
		if err != nil {
			return nil, err
		}
		if personID, ok := id.Get(); ok {
			params.Set("with_people", strconv.Itoa(personID))
		}
	}

	if analysis.Language != "" {
		params.Set("with_original_language", analysis.Language)
	}

	return params, nil
}

// Details loads the full record of a movie or show.
func (s *Service) Details(ctx context.Context, item *tmdb.MediaItem) (*tmdb.MediaDetail, error) {
	if item.IsEpisode() {
		return nil, ErrEpisodeItem
	}

	if item.MediaType == tmdb.Person {
		return nil, ErrPersonItem
	}

	mediaType := item.MediaType
	if mediaType != tmdb.TV {
		mediaType = tmdb.Movie
	}

	detail, err := s.catalog.Details(ctx, mediaType, item.ID)
	if err != nil {
		log.Error(err)
		return nil, wrap(MsgDetailsFailed, err)
	}

	return detail, nil
}

// Person loads a person with their credits.
func (s *Service) Person(ctx context.Context, id int) (*tmdb.PersonDetail, error) {
	person, err := s.catalog.PersonDetails(ctx, id)
	if err != nil {
		log.Error(err)
		return nil, wrap(MsgPersonFailed, err)
	}

	return person, nil
}

// Season lists one season of a show as list items.
func (s *Service) Season(ctx context.Context, showID, season int) ([]*tmdb.MediaItem, error) {
	episodes, err := s.catalog.SeasonEpisodes(ctx, showID, season)
	if err != nil {
		log.Error(err)
		return nil, wrap(MsgDetailsFailed, err)
	}

	return lo.Map(episodes, func(e *tmdb.Episode, _ int) *tmdb.MediaItem {
		return e.Item(showID)
	}), nil
}
