package discovery

import "errors"

// Messages shown to the user when a request fails.
const (
	MsgSearchFailed   = "Sorry, I had trouble finding that. Try a simpler search or check your keys."
	MsgTrendingFailed = "Failed to load trending content. Check your API Key."
	MsgDetailsFailed  = "Could not load details."
	MsgPersonFailed   = "Could not load person details."
	MsgMissingGemini  = "Please add your Gemini API Key in settings to use AI Search."
	MsgShowNotFound   = "Could not find that TV show."
)

var (
	ErrEmptyQuery   = errors.New("empty search query")
	ErrNoAnalyzer   = errors.New(MsgMissingGemini)
	ErrEpisodeItem  = errors.New("episodes have no details page")
	ErrPersonItem   = errors.New("people are opened with Person")
	ErrShowNotFound = errors.New(MsgShowNotFound)
)

// Error is a failure with a message fit for display.
// The underlying cause is kept for logs and errors.Is.
type Error struct {
	Message string
	Err     error
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

func wrap(message string, err error) error {
	return &Error{Message: message, Err: err}
}
