package tmdb

import (
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"
)

func TestCacher(t *testing.T) {
	Convey("Given a cacher with a short lifetime", t, func() {
		c := newCacher[string]("tmdb_test_cache.json", 100*time.Millisecond)

		Convey("A stored entry is served", func() {
			So(c.Set("movie:1", "Alien"), ShouldBeNil)
			So(c.Get("movie:1").OrEmpty(), ShouldEqual, "Alien")
		})

		Convey("Later writes do not extend older entries", func() {
			So(c.Set("movie:1", "old"), ShouldBeNil)
			time.Sleep(70 * time.Millisecond)
			So(c.Set("movie:2", "new"), ShouldBeNil)
			time.Sleep(70 * time.Millisecond)

			So(c.Get("movie:1").IsAbsent(), ShouldBeTrue)
			So(c.Get("movie:2").OrEmpty(), ShouldEqual, "new")
		})

		Convey("Deleted entries are gone", func() {
			So(c.Set("tv:3", "Dark"), ShouldBeNil)
			So(c.Delete("tv:3"), ShouldBeNil)
			So(c.Get("tv:3").IsAbsent(), ShouldBeTrue)
		})
	})
}
