package util

import (
	"testing"

	"github.com/cinemind-cli/cinemind/filesystem"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestQuantify(t *testing.T) {
	Convey("Quantify", t, func() {
		So(Quantify(1, "season", "seasons"), ShouldEqual, "1 season")
		So(Quantify(3, "season", "seasons"), ShouldEqual, "3 seasons")
	})
}

func TestCapitalize(t *testing.T) {
	Convey("Capitalize", t, func() {
		So(Capitalize("drama"), ShouldEqual, "Drama")
		So(Capitalize("élan"), ShouldEqual, "Élan")
		So(Capitalize(""), ShouldEqual, "")
	})
}

func TestEllipsis(t *testing.T) {
	Convey("Ellipsis", t, func() {
		So(Ellipsis("Breaking Bad", 20), ShouldEqual, "Breaking Bad")
		So(Ellipsis("Breaking Bad", 5), ShouldEqual, "Brea…")
		So(Ellipsis("anything", 0), ShouldEqual, "")
	})
}

func TestWrap(t *testing.T) {
	Convey("Wrap", t, func() {
		So(Wrap("abcdef", 3), ShouldEqual, "abc\ndef")
		So(Wrap("abcdef", 0), ShouldEqual, "abcdef")
	})
}

func TestMaxMinClamp(t *testing.T) {
	Convey("Max/Min/Clamp", t, func() {
		So(Max(1, 5, 2), ShouldEqual, 5)
		So(Min(1, 5, 2), ShouldEqual, 1)
		So(Clamp(20, 0, 15), ShouldEqual, 15)
		So(Clamp(-1, 0, 15), ShouldEqual, 0)
	})
}

func TestDelete(t *testing.T) {
	Convey("Delete removes files and directories", t, func() {
		fs := filesystem.API()
		So(fs.MkdirAll("/tmp/cinemind/dir", 0o755), ShouldBeNil)
		So(fs.WriteFile("/tmp/cinemind/dir/a.json", []byte("{}"), 0o644), ShouldBeNil)

		So(Delete("/tmp/cinemind/dir/a.json"), ShouldBeNil)
		exists, _ := fs.Exists("/tmp/cinemind/dir/a.json")
		So(exists, ShouldBeFalse)

		So(Delete("/tmp/cinemind"), ShouldBeNil)
		exists, _ = fs.Exists("/tmp/cinemind")
		So(exists, ShouldBeFalse)

		So(Delete("/tmp/missing"), ShouldNotBeNil)
	})
}

func TestStack(t *testing.T) {
	Convey("Stack", t, func() {
		var s Stack[string]
		s.Push("trending")
		s.Push("detail")
		So(s.Len(), ShouldEqual, 2)
		So(s.Peek(), ShouldEqual, "detail")
		So(s.Pop(), ShouldEqual, "detail")
		So(s.Pop(), ShouldEqual, "trending")
		So(s.Pop(), ShouldEqual, "")
		s.Push("x")
		s.Clear()
		So(s.Len(), ShouldEqual, 0)
	})
}
