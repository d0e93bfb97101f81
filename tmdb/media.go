package tmdb

import (
	"fmt"
	"strconv"

	"github.com/samber/lo"
	"golang.org/x/exp/slices"
)

// DisplayTitle is the movie title or the show, person or episode name.
func (m *MediaItem) DisplayTitle() string {
	if m.Title != "" {
		return m.Title
	}
	return m.Name
}

// Date is the first known date of the release, first air or air date.
func (m *MediaItem) Date() string {
	switch {
	case m.ReleaseDate != "":
		return m.ReleaseDate
	case m.FirstAirDate != "":
		return m.FirstAirDate
	default:
		return m.AirDate
	}
}

// Year is the leading year of Date, or "" when unknown.
func (m *MediaItem) Year() string {
	date := m.Date()
	if len(date) < 4 {
		return ""
	}
	return date[:4]
}

// IsEpisode reports whether the item stands for a single episode.
func (m *MediaItem) IsEpisode() bool {
	return m.SeasonNumber > 0 && m.EpisodeNumber > 0
}

// IsAnimation reports whether the item carries the animation genre.
func (m *MediaItem) IsAnimation() bool {
	return slices.Contains(m.GenreIDs, AnimationGenre)
}

// Key identifies the item across media types.
func (m *MediaItem) Key() string {
	return string(m.MediaType) + ":" + strconv.Itoa(m.ID)
}

// EpisodeLabel formats the season and episode numbers as S01E02.
func (m *MediaItem) EpisodeLabel() string {
	return fmt.Sprintf("S%02dE%02d", m.SeasonNumber, m.EpisodeNumber)
}

// Item converts an episode into a list item of the given show.
// The still is used as backdrop.
func (e *Episode) Item(showID int) *MediaItem {
	return &MediaItem{
		ID:            e.ID,
		Name:          e.Name,
		Overview:      e.Overview,
		VoteAverage:   e.VoteAverage,
		VoteCount:     e.VoteCount,
		AirDate:       e.AirDate,
		BackdropPath:  e.StillPath,
		StillPath:     e.StillPath,
		MediaType:     TV,
		SeasonNumber:  e.SeasonNumber,
		EpisodeNumber: e.EpisodeNumber,
		ShowID:        showID,
	}
}

var keyCrewJobs = []string{"Director", "Executive Producer", "Writer", "Screenplay", "Creator"}

const (
	keyCrewLimit = 6
	topCastLimit = 10
)

// KeyCrew lists the directors, writers, creators and executive producers,
// one entry per person.
func (d *MediaDetail) KeyCrew() []*CrewMember {
	if d.Credits == nil {
		return nil
	}

	crew := lo.Filter(d.Credits.Crew, func(c *CrewMember, _ int) bool {
		return slices.Contains(keyCrewJobs, c.Job)
	})
	crew = lo.UniqBy(crew, func(c *CrewMember) int { return c.ID })

	if len(crew) > keyCrewLimit {
		crew = crew[:keyCrewLimit]
	}
	return crew
}

// TopCast is the head of the billing order.
func (d *MediaDetail) TopCast() []*CastMember {
	if d.Credits == nil {
		return nil
	}

	cast := d.Credits.Cast
	if len(cast) > topCastLimit {
		cast = cast[:topCastLimit]
	}
	return cast
}

// Trailer returns the first YouTube trailer.
func (d *MediaDetail) Trailer() (*Video, bool) {
	if d.Videos == nil {
		return nil, false
	}

	return lo.Find(d.Videos.Results, func(v *Video) bool {
		return v.Type == "Trailer" && v.Site == "YouTube"
	})
}

// TrailerURL links to the trailer, or "" without one.
func (d *MediaDetail) TrailerURL() string {
	trailer, ok := d.Trailer()
	if !ok {
		return ""
	}
	return "https://www.youtube.com/watch?v=" + trailer.Key
}

// RuntimeLabel is "2h 16m" for movies and "5 Seasons" for shows.
func (d *MediaDetail) RuntimeLabel() string {
	switch {
	case d.Runtime > 0:
		return fmt.Sprintf("%dh %dm", d.Runtime/60, d.Runtime%60)
	case d.NumberOfSeasons > 0:
		return fmt.Sprintf("%d Seasons", d.NumberOfSeasons)
	default:
		return ""
	}
}

// PlayableSeasons drops specials, which the catalog numbers as season 0.
func (d *MediaDetail) PlayableSeasons() []*Season {
	return lo.Filter(d.Seasons, func(s *Season, _ int) bool {
		return s.SeasonNumber > 0
	})
}

// DefaultSeason is the first regular season, or 1.
func (d *MediaDetail) DefaultSeason() int {
	if seasons := d.PlayableSeasons(); len(seasons) > 0 {
		return seasons[0].SeasonNumber
	}
	return 1
}

// GenreNames lists the names of the detail's genres.
func (d *MediaDetail) GenreNames() []string {
	return lo.Map(d.Genres, func(g Genre, _ int) string { return g.Name })
}

// RecommendedItems returns the recommendations, or nil.
func (d *MediaDetail) RecommendedItems() []*MediaItem {
	if d.Recommendations == nil {
		return nil
	}
	return d.Recommendations.Results
}

const knownForLimit = 24

// KnownFor lists the person's titles with a poster, most voted first.
func (p *PersonDetail) KnownFor() []*MediaItem {
	credits := append(slices.Clone(p.CombinedCredits.Cast), p.CombinedCredits.Crew...)
	credits = lo.Filter(credits, func(m *MediaItem, _ int) bool {
		return m.PosterPath != ""
	})
	credits = lo.UniqBy(credits, func(m *MediaItem) int { return m.ID })

	slices.SortStableFunc(credits, func(a, b *MediaItem) int {
		return b.VoteCount - a.VoteCount
	})

	if len(credits) > knownForLimit {
		credits = credits[:knownForLimit]
	}
	return credits
}

// Roles lists "Actor" and "Crew" depending on the kinds of credits.
func (p *PersonDetail) Roles() []string {
	var roles []string
	if len(p.CombinedCredits.Cast) > 0 {
		roles = append(roles, "Actor")
	}
	if len(p.CombinedCredits.Crew) > 0 {
		roles = append(roles, "Crew")
	}
	return roles
}

// BiographyOrDefault returns the biography or a placeholder.
func (p *PersonDetail) BiographyOrDefault() string {
	if p.Biography == "" {
		return "No biography available for this person."
	}
	return p.Biography
}
