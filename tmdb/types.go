package tmdb

import (
	"fmt"
	"strings"
)

// MediaType is the catalog's discriminator for result entries.
type MediaType string

const (
	Movie  MediaType = "movie"
	TV     MediaType = "tv"
	Person MediaType = "person"
)

// ParseMediaType accepts "movie" or "tv" in any case.
func ParseMediaType(s string) (MediaType, error) {
	switch MediaType(strings.ToLower(strings.TrimSpace(s))) {
	case Movie:
		return Movie, nil
	case TV:
		return TV, nil
	default:
		return "", fmt.Errorf("unknown media type %q, expected movie or tv", s)
	}
}

// AnimationGenre is the genre id shared by movies and shows for animation.
const AnimationGenre = 16

// MediaItem is a movie, show, person or episode as it appears in result lists.
// Movies carry Title and ReleaseDate, shows carry Name and FirstAirDate.
type MediaItem struct {
	ID            int       `json:"id" yaml:"id"`
	Title         string    `json:"title,omitempty" yaml:"title,omitempty"`
	Name          string    `json:"name,omitempty" yaml:"name,omitempty"`
	PosterPath    string    `json:"poster_path,omitempty" yaml:"poster_path,omitempty"`
	BackdropPath  string    `json:"backdrop_path,omitempty" yaml:"backdrop_path,omitempty"`
	ProfilePath   string    `json:"profile_path,omitempty" yaml:"profile_path,omitempty"`
	Overview      string    `json:"overview,omitempty" yaml:"overview,omitempty"`
	VoteAverage   float64   `json:"vote_average" yaml:"vote_average"`
	VoteCount     int       `json:"vote_count,omitempty" yaml:"vote_count,omitempty"`
	Popularity    float64   `json:"popularity,omitempty" yaml:"popularity,omitempty"`
	ReleaseDate   string    `json:"release_date,omitempty" yaml:"release_date,omitempty"`
	FirstAirDate  string    `json:"first_air_date,omitempty" yaml:"first_air_date,omitempty"`
	AirDate       string    `json:"air_date,omitempty" yaml:"air_date,omitempty"`
	MediaType     MediaType `json:"media_type" yaml:"media_type"`
	GenreIDs      []int     `json:"genre_ids,omitempty" yaml:"genre_ids,omitempty"`
	Character     string    `json:"character,omitempty" yaml:"character,omitempty"`
	Job           string    `json:"job,omitempty" yaml:"job,omitempty"`
	SeasonNumber  int       `json:"season_number,omitempty" yaml:"season_number,omitempty"`
	EpisodeNumber int       `json:"episode_number,omitempty" yaml:"episode_number,omitempty"`
	StillPath     string    `json:"still_path,omitempty" yaml:"still_path,omitempty"`
	ShowID        int       `json:"show_id,omitempty" yaml:"show_id,omitempty"`
}

// Genre is a named genre on a detail record.
type Genre struct {
	ID   int    `json:"id" yaml:"id"`
	Name string `json:"name" yaml:"name"`
}

// CastMember is one acting credit of a title.
type CastMember struct {
	ID          int    `json:"id" yaml:"id"`
	Name        string `json:"name" yaml:"name"`
	Character   string `json:"character" yaml:"character"`
	ProfilePath string `json:"profile_path,omitempty" yaml:"profile_path,omitempty"`
}

// CrewMember is one production credit of a title.
type CrewMember struct {
	ID   int    `json:"id" yaml:"id"`
	Name string `json:"name" yaml:"name"`
	Job  string `json:"job" yaml:"job"`
}

// Video is an attached clip such as a trailer or teaser.
type Video struct {
	ID   string `json:"id" yaml:"id"`
	Key  string `json:"key" yaml:"key"`
	Name string `json:"name" yaml:"name"`
	Site string `json:"site" yaml:"site"`
	Type string `json:"type" yaml:"type"`
}

// Season is a season summary on a show's detail record.
type Season struct {
	ID           int    `json:"id" yaml:"id"`
	Name         string `json:"name" yaml:"name"`
	SeasonNumber int    `json:"season_number" yaml:"season_number"`
	EpisodeCount int    `json:"episode_count" yaml:"episode_count"`
	AirDate      string `json:"air_date,omitempty" yaml:"air_date,omitempty"`
	PosterPath   string `json:"poster_path,omitempty" yaml:"poster_path,omitempty"`
}

// Episode is one entry of a season listing.
type Episode struct {
	ID            int     `json:"id" yaml:"id"`
	Name          string  `json:"name" yaml:"name"`
	Overview      string  `json:"overview,omitempty" yaml:"overview,omitempty"`
	VoteAverage   float64 `json:"vote_average" yaml:"vote_average"`
	VoteCount     int     `json:"vote_count" yaml:"vote_count"`
	AirDate       string  `json:"air_date,omitempty" yaml:"air_date,omitempty"`
	EpisodeNumber int     `json:"episode_number" yaml:"episode_number"`
	SeasonNumber  int     `json:"season_number" yaml:"season_number"`
	StillPath     string  `json:"still_path,omitempty" yaml:"still_path,omitempty"`
}

// Credits groups the cast and crew of a title.
type Credits struct {
	Cast []*CastMember `json:"cast" yaml:"cast"`
	Crew []*CrewMember `json:"crew" yaml:"crew"`
}

// ExternalIDs links a title to other databases.
type ExternalIDs struct {
	ImdbID      string `json:"imdb_id,omitempty" yaml:"imdb_id,omitempty"`
	FacebookID  string `json:"facebook_id,omitempty" yaml:"facebook_id,omitempty"`
	InstagramID string `json:"instagram_id,omitempty" yaml:"instagram_id,omitempty"`
	TwitterID   string `json:"twitter_id,omitempty" yaml:"twitter_id,omitempty"`
}

// MediaDetail is the full record of a movie or show, including the appended
// credits, videos, recommendations and external ids.
type MediaDetail struct {
	MediaItem `yaml:",inline"`

	Genres           []Genre      `json:"genres" yaml:"genres"`
	Runtime          int          `json:"runtime,omitempty" yaml:"runtime,omitempty"`
	NumberOfSeasons  int          `json:"number_of_seasons,omitempty" yaml:"number_of_seasons,omitempty"`
	NumberOfEpisodes int          `json:"number_of_episodes,omitempty" yaml:"number_of_episodes,omitempty"`
	Tagline          string       `json:"tagline,omitempty" yaml:"tagline,omitempty"`
	Status           string       `json:"status" yaml:"status"`
	Budget           int64        `json:"budget,omitempty" yaml:"budget,omitempty"`
	Credits          *Credits     `json:"credits,omitempty" yaml:"credits,omitempty"`
	Videos           *VideoPage   `json:"videos,omitempty" yaml:"videos,omitempty"`
	Recommendations  *ItemPage    `json:"recommendations,omitempty" yaml:"recommendations,omitempty"`
	Seasons          []*Season    `json:"seasons,omitempty" yaml:"seasons,omitempty"`
	ExternalIDs      *ExternalIDs `json:"external_ids,omitempty" yaml:"external_ids,omitempty"`
}

// CombinedCredits lists every title a person worked on, as actor or crew.
type CombinedCredits struct {
	Cast []*MediaItem `json:"cast" yaml:"cast"`
	Crew []*MediaItem `json:"crew" yaml:"crew"`
}

// PersonDetail is the full record of a person.
type PersonDetail struct {
	ID                 int             `json:"id" yaml:"id"`
	Name               string          `json:"name" yaml:"name"`
	Biography          string          `json:"biography" yaml:"biography"`
	Birthday           string          `json:"birthday,omitempty" yaml:"birthday,omitempty"`
	PlaceOfBirth       string          `json:"place_of_birth,omitempty" yaml:"place_of_birth,omitempty"`
	ProfilePath        string          `json:"profile_path,omitempty" yaml:"profile_path,omitempty"`
	ImdbID             string          `json:"imdb_id,omitempty" yaml:"imdb_id,omitempty"`
	KnownForDepartment string          `json:"known_for_department,omitempty" yaml:"known_for_department,omitempty"`
	CombinedCredits    CombinedCredits `json:"combined_credits" yaml:"combined_credits"`
}

// VideoPage is the appended videos of a detail record.
type VideoPage struct {
	Results []*Video `json:"results" yaml:"results"`
}

// ItemPage is the appended recommendations of a detail record.
type ItemPage struct {
	Results []*MediaItem `json:"results" yaml:"results"`
}

// page is the envelope of every list endpoint.
type page[T any] struct {
	Results []*T `json:"results" yaml:"results"`
}
