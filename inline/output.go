package inline

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/cinemind-cli/cinemind/gemini"
	"github.com/cinemind-cli/cinemind/tmdb"
	"gopkg.in/yaml.v3"
)

// Output is the document written by Run.
type Output struct {
	Query       string            `json:"query,omitempty" yaml:"query,omitempty"`
	Explanation string            `json:"explanation" yaml:"explanation"`
	Filter      *gemini.Filter    `json:"filter,omitempty" yaml:"filter,omitempty"`
	Result      []*tmdb.MediaItem `json:"result" yaml:"result"`
	Detail      *tmdb.MediaDetail `json:"detail,omitempty" yaml:"detail,omitempty"`
}

// Encode writes v as JSON or YAML.
func Encode(out io.Writer, format Format, v any) error {
	switch format {
	case YAML:
		encoder := yaml.NewEncoder(out)
		encoder.SetIndent(2)
		if err := encoder.Encode(v); err != nil {
			return err
		}
		return encoder.Close()
	case JSON:
		encoder := json.NewEncoder(out)
		encoder.SetIndent("", "  ")
		return encoder.Encode(v)
	default:
		return fmt.Errorf("%s cannot encode %T", format, v)
	}
}

// Line renders an item on one line, without styling.
func Line(item *tmdb.MediaItem) string {
	var b strings.Builder

	if item.IsEpisode() {
		b.WriteString(item.EpisodeLabel())
		b.WriteString(" ")
	}

	b.WriteString(item.DisplayTitle())

	if year := item.Year(); year != "" {
		fmt.Fprintf(&b, " (%s)", year)
	}

	if item.MediaType != "" {
		fmt.Fprintf(&b, " [%s]", item.MediaType)
	}

	if item.VoteAverage > 0 {
		fmt.Fprintf(&b, " %.1f", item.VoteAverage)
	}

	return b.String()
}

// WriteItems writes one line per item.
func WriteItems(out io.Writer, items []*tmdb.MediaItem) error {
	for _, item := range items {
		if _, err := fmt.Fprintln(out, Line(item)); err != nil {
			return err
		}
	}
	return nil
}

// WriteDetail writes a short plain summary of detail.
func WriteDetail(out io.Writer, detail *tmdb.MediaDetail) error {
	var b strings.Builder

	b.WriteString(Line(&detail.MediaItem))
	b.WriteString("\n")

	if detail.Tagline != "" {
		b.WriteString(detail.Tagline + "\n")
	}

	if meta := strings.Join(append(detail.GenreNames(), detail.RuntimeLabel()), ", "); strings.Trim(meta, ", ") != "" {
		b.WriteString(strings.Trim(meta, ", ") + "\n")
	}

	if detail.Overview != "" {
		b.WriteString("\n" + detail.Overview + "\n")
	}

	if url := detail.TrailerURL(); url != "" {
		b.WriteString("\nTrailer: " + url + "\n")
	}

	_, err := io.WriteString(out, b.String())
	return err
}

func write(out io.Writer, format Format, output *Output) error {
	if format != Plain {
		return Encode(out, format, output)
	}

	if output.Detail != nil {
		return WriteDetail(out, output.Detail)
	}

	return WriteItems(out, output.Result)
}
