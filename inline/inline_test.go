package inline

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/cinemind-cli/cinemind/discovery"
	"github.com/cinemind-cli/cinemind/filesystem"
	"github.com/cinemind-cli/cinemind/gemini"
	"github.com/cinemind-cli/cinemind/tmdb"
	"github.com/samber/mo"
	. "github.com/smartystreets/goconvey/convey"
	"gopkg.in/yaml.v3"
)

func init() {
	filesystem.SetMemMapFs()
}

type fakeService struct {
	items   []*tmdb.MediaItem
	err     error
	details int
}

func (f *fakeService) Trending(context.Context) (*discovery.Result, error) {
	return &discovery.Result{Items: f.items, Explanation: discovery.TrendingExplanation}, f.err
}

func (f *fakeService) Search(_ context.Context, q string) (*discovery.Result, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &discovery.Result{
		Query:       q,
		Filter:      &gemini.Filter{SearchType: gemini.General, Query: q},
		Items:       f.items,
		Explanation: "Found it.",
	}, nil
}

func (f *fakeService) Details(_ context.Context, item *tmdb.MediaItem) (*tmdb.MediaDetail, error) {
	f.details++
	return &tmdb.MediaDetail{MediaItem: *item, Tagline: "In space no one can hear you scream."}, nil
}

func TestRun(t *testing.T) {
	Convey("Given search results", t, func() {
		service := &fakeService{items: []*tmdb.MediaItem{
			{ID: 348, Title: "Alien", ReleaseDate: "1979-05-25", MediaType: tmdb.Movie, VoteAverage: 8.1},
			{ID: 679, Title: "Aliens", ReleaseDate: "1986-07-18", MediaType: tmdb.Movie},
		}}
		var out bytes.Buffer

		Convey("JSON output carries the query, filter and items", func() {
			err := Run(context.Background(), service, &Options{Out: &out, Query: "alien movies"})
			So(err, ShouldBeNil)

			var output Output
			So(json.Unmarshal(out.Bytes(), &output), ShouldBeNil)
			So(output.Query, ShouldEqual, "alien movies")
			So(output.Filter.Query, ShouldEqual, "alien movies")
			So(output.Result, ShouldHaveLength, 2)
			So(output.Detail, ShouldBeNil)
		})

		Convey("A picker with details keeps one item and its detail", func() {
			picker, err := ParsePicker("exact:aliens")
			So(err, ShouldBeNil)

			err = Run(context.Background(), service, &Options{
				Out:     &out,
				Query:   "alien movies",
				Picker:  mo.Some(picker),
				Details: true,
				Format:  YAML,
			})
			So(err, ShouldBeNil)
			So(service.details, ShouldEqual, 1)

			var output Output
			So(yaml.Unmarshal(out.Bytes(), &output), ShouldBeNil)
			So(output.Result, ShouldHaveLength, 1)
			So(output.Detail.Title, ShouldEqual, "Aliens")
		})

		Convey("Plain output prints one line per item", func() {
			err := Run(context.Background(), service, &Options{Out: &out, Trending: true, Format: Plain})
			So(err, ShouldBeNil)
			So(out.String(), ShouldEqual, "Alien (1979) [movie] 8.1\nAliens (1986) [movie]\n")
		})

		Convey("An empty pick is an empty result, not null", func() {
			picker, _ := ParsePicker("exact:Prometheus")
			err := Run(context.Background(), service, &Options{Out: &out, Query: "q", Picker: mo.Some(picker)})
			So(err, ShouldBeNil)
			So(out.String(), ShouldContainSubstring, `"result": []`)
		})

		Convey("Errors are returned as is", func() {
			service.err = errors.New("boom")
			So(Run(context.Background(), service, &Options{Out: &out, Query: "q"}), ShouldEqual, service.err)
			So(Run(context.Background(), service, &Options{Out: &out}), ShouldEqual, ErrNoInput)
		})
	})
}

func TestPickers(t *testing.T) {
	Convey("Given items", t, func() {
		items := []*tmdb.MediaItem{{ID: 1, Title: "A"}, {ID: 2, Title: "B"}, {ID: 3, Name: "C"}}

		for description, want := range map[string]int{"first": 1, "last": 3, "1": 2, "99": 3, "exact:c": 3} {
			picker, err := ParsePicker(description)
			So(err, ShouldBeNil)
			So(picker(items).ID, ShouldEqual, want)
		}

		first, _ := ParsePicker("first")
		So(first(nil), ShouldBeNil)

		_, err := ParsePicker("second")
		So(err, ShouldNotBeNil)
	})

	Convey("Formats parse with aliases", t, func() {
		f, err := ParseFormat("yml")
		So(err, ShouldBeNil)
		So(f, ShouldEqual, YAML)

		_, err = ParseFormat("xml")
		So(err, ShouldNotBeNil)
	})

	Convey("Schemas are generated for the output and the filter", t, func() {
		schema, err := Schema("output")
		So(err, ShouldBeNil)
		So(schema, ShouldNotBeNil)

		_, err = Schema("filter")
		So(err, ShouldBeNil)

		_, err = Schema("anime")
		So(err, ShouldNotBeNil)
	})
}
