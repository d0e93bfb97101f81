package tmdb

// ImageBaseURL is the root of every poster, backdrop, still and profile.
const ImageBaseURL = "https://image.tmdb.org/t/p/"

// ImageSize selects one of the rendition widths served by the image host.
type ImageSize string

const (
	Thumbnail ImageSize = "w200"
	Poster    ImageSize = "w500"
	Profile   ImageSize = "h632"
	Original  ImageSize = "original"
)

// ImageURL joins size and path. An empty path yields "".
func ImageURL(size ImageSize, path string) string {
	if path == "" {
		return ""
	}

	return ImageBaseURL + string(size) + path
}
