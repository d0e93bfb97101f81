package cmd

import (
	"testing"

	"github.com/cinemind-cli/cinemind/auth"
	"github.com/cinemind-cli/cinemind/key"
	"github.com/cinemind-cli/cinemind/library"
	. "github.com/smartystreets/goconvey/convey"
)

func TestConfigHelpers(t *testing.T) {
	Convey("Given a misspelled key", t, func() {
		err := errUnknownKey("tmdb.languag")

		Convey("The closest key is suggested", func() {
			So(err.Error(), ShouldContainSubstring, key.TMDBLanguage)
		})
	})

	Convey("Given raw values", t, func() {
		Convey("Integers are parsed for integer keys", func() {
			v, err := parseValue(key.HistoryLimit, []string{"25"})
			So(err, ShouldBeNil)
			So(v, ShouldEqual, 25)

			_, err = parseValue(key.HistoryLimit, []string{"many"})
			So(err, ShouldNotBeNil)
		})

		Convey("Booleans are parsed for boolean keys", func() {
			v, err := parseValue(key.TUIShowDates, []string{"false"})
			So(err, ShouldBeNil)
			So(v, ShouldEqual, false)
		})

		Convey("Strings are kept as they are", func() {
			v, err := parseValue(key.GeminiModel, []string{"gemini-2.5-pro"})
			So(err, ShouldBeNil)
			So(v, ShouldEqual, "gemini-2.5-pro")
		})
	})
}

func TestArguments(t *testing.T) {
	Convey("Credentials accept short and stored names", t, func() {
		c, err := parseCredential("tmdb")
		So(err, ShouldBeNil)
		So(c, ShouldEqual, auth.TMDB)

		c, err = parseCredential(string(auth.Gemini))
		So(err, ShouldBeNil)
		So(c, ShouldEqual, auth.Gemini)

		_, err = parseCredential("openai")
		So(err, ShouldNotBeNil)
	})

	Convey("Lists default to favorites", t, func() {
		So(listArg(nil), ShouldEqual, library.Favorites)
		So(listArg([]string{"Watchlist"}), ShouldEqual, library.Watchlist)
	})

	Convey("Every command is registered", t, func() {
		for _, name := range []string{"mini", "inline", "library", "keys", "serve", "config", "env", "where", "clear", "version"} {
			found, _, err := rootCmd.Find([]string{name})
			So(err, ShouldBeNil)
			So(found.Name(), ShouldEqual, name)
		}

		for _, name := range []string{"details", "person", "episodes", "rank", "schema"} {
			found, _, err := rootCmd.Find([]string{"inline", name})
			So(err, ShouldBeNil)
			So(found.Name(), ShouldEqual, name)
		}
	})
}
