package discovery

import (
	"net/url"
	"strconv"

	"github.com/cinemind-cli/cinemind/tmdb"
)

const letterboxd = "https://letterboxd.com"

// LetterboxdURL links a movie by its catalog id and searches anything else by title.
func LetterboxdURL(item *tmdb.MediaItem) string {
	if item.MediaType == tmdb.Movie {
		return letterboxd + "/tmdb/" + strconv.Itoa(item.ID)
	}

	return letterboxd + "/search/" + url.PathEscape(item.DisplayTitle())
}

// PersonLetterboxdURL links a person by their catalog id.
func PersonLetterboxdURL(id int) string {
	return letterboxd + "/tmdb/person/" + strconv.Itoa(id)
}
