package version

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/cinemind-cli/cinemind/filesystem"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestCompare(t *testing.T) {
	Convey("Versions compare component by component", t, func() {
		for _, c := range []struct {
			a, b string
			want int
		}{
			{"0.3.0", "0.3.0", 0},
			{"v1.0.0", "0.9.9", 1},
			{"0.3.0", "0.10.0", -1},
			{"1.2", "1.2.0", 0},
			{"1.3.0-rc.1", "1.2.9", 1},
		} {
			got, err := Compare(c.a, c.b)
			So(err, ShouldBeNil)
			So(got, ShouldEqual, c.want)
		}

		_, err := Compare("latest", "0.1.0")
		So(err, ShouldNotBeNil)
	})
}

func TestLatest(t *testing.T) {
	Convey("Given a releases endpoint", t, func() {
		var calls int
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls++
			_, _ = w.Write([]byte(`{"tag_name":"v1.2.3"}`))
		}))
		defer server.Close()

		previous := releasesURL
		releasesURL = server.URL
		defer func() { releasesURL = previous }()

		Convey("The tag is returned without its prefix and cached", func() {
			_ = versionCacher.Set("")

			version, err := Latest(context.Background())
			So(err, ShouldBeNil)
			So(version, ShouldEqual, "1.2.3")

			version, err = Latest(context.Background())
			So(err, ShouldBeNil)
			So(version, ShouldEqual, "1.2.3")
			So(calls, ShouldEqual, 1)
			So(ReleaseURL(version), ShouldEndWith, "/releases/tag/v1.2.3")
		})
	})
}
