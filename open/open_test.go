package open

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestValidate(t *testing.T) {
	Convey("Web links are accepted", t, func() {
		So(Validate("https://www.youtube.com/watch?v=abc"), ShouldBeNil)
		So(Validate("http://letterboxd.com/tmdb/603"), ShouldBeNil)
	})

	Convey("Anything else is refused", t, func() {
		So(Validate(""), ShouldNotBeNil)
		So(Validate("file:///etc/passwd"), ShouldNotBeNil)
		So(Validate("letterboxd.com/tmdb/603"), ShouldNotBeNil)
		So(URL("javascript:alert(1)"), ShouldNotBeNil)
	})
}
