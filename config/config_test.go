package config

import (
	"path/filepath"
	"sort"
	"strings"
	"testing"

	"github.com/cinemind-cli/cinemind/filesystem"
	"github.com/cinemind-cli/cinemind/key"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestSetup(t *testing.T) {
	Convey("Config Setup", t, func() {
		Convey("Should initialize without error", func() {
			So(Setup(), ShouldBeNil)
		})

		Convey("Should have default values populated", func() {
			So(Setup(), ShouldBeNil)
			for name := range Default {
				So(viper.Get(name), ShouldNotBeNil)
			}
			So(viper.GetString(key.GeminiModel), ShouldEqual, "gemini-2.5-flash")
			So(viper.GetInt(key.SearchRankingLimit), ShouldEqual, 10)
		})

		Convey("EnvKeyReplacer should convert dots to underscores", func() {
			So(EnvKeyReplacer.Replace("tmdb.api_key"), ShouldEqual, "tmdb_api_key")
		})
	})
}

func TestField(t *testing.T) {
	Convey("Given the tmdb key field", t, func() {
		field := Default[key.TMDBAPIKey]

		Convey("Its env name carries the app prefix once", func() {
			So(field.Env(), ShouldEqual, "CINEMIND_TMDB_API_KEY")
		})

		Convey("Its pretty form mentions the key", func() {
			So(field.Pretty(), ShouldContainSubstring, key.TMDBAPIKey)
		})

		Convey("Its type name is derived from the default", func() {
			So(field.typeName(), ShouldEqual, "string")
			limit := Default[key.HistoryLimit]
			So(limit.typeName(), ShouldEqual, "int")
		})
	})
}

func TestKeysAndPath(t *testing.T) {
	Convey("Keys are sorted and complete", t, func() {
		keys := Keys()
		So(len(keys), ShouldEqual, len(Default))
		So(sort.StringsAreSorted(keys), ShouldBeTrue)
	})

	Convey("Path points at the toml file", t, func() {
		So(filepath.Base(Path()), ShouldEqual, "cinemind.toml")
	})

	Convey("Save creates the file on first write", t, func() {
		So(Setup(), ShouldBeNil)
		viper.Set(key.HistoryLimit, 7)
		So(Save(), ShouldBeNil)

		data, err := filesystem.API().ReadFile(Path())
		So(err, ShouldBeNil)
		So(strings.Contains(string(data), "limit = 7"), ShouldBeTrue)
	})
}
