package auth

import (
	"context"
	"testing"

	"github.com/cinemind-cli/cinemind/key"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
	"github.com/zalando/go-keyring"
)

func init() {
	keyring.MockInit()
}

type fakeValidator bool

func (v fakeValidator) ValidateKey(context.Context) bool { return bool(v) }

func TestCredentials(t *testing.T) {
	Convey("Given an empty keyring", t, func() {
		So(Delete(TMDB), ShouldBeNil)
		So(Delete(Gemini), ShouldBeNil)
		viper.Set(key.TMDBAPIKey, "")

		Convey("Get falls back to the config value", func() {
			viper.Set(key.TMDBAPIKey, "  from-config ")
			So(Get(TMDB), ShouldEqual, "from-config")
		})

		Convey("Set stores a trimmed value that wins over config", func() {
			viper.Set(key.TMDBAPIKey, "from-config")
			So(Set(TMDB, "  stored  "), ShouldBeNil)
			So(Get(TMDB), ShouldEqual, "stored")
		})

		Convey("Setting an empty value deletes the credential", func() {
			So(Set(Gemini, "abc"), ShouldBeNil)
			So(Set(Gemini, "   "), ShouldBeNil)
			So(Get(Gemini), ShouldBeEmpty)
		})
	})
}

func TestSaveKeys(t *testing.T) {
	Convey("Given fresh credentials", t, func() {
		So(Delete(TMDB), ShouldBeNil)
		So(Delete(Gemini), ShouldBeNil)
		viper.Set(key.TMDBAPIKey, "")

		var validated string
		validator := func(valid bool) func(string) Validator {
			return func(k string) Validator {
				validated = k
				return fakeValidator(valid)
			}
		}

		Convey("An empty TMDB key is rejected before validation", func() {
			err := SaveKeys(context.Background(), validator(true), "   ", "g")
			So(err, ShouldEqual, ErrEmptyKey)
			So(validated, ShouldBeEmpty)
		})

		Convey("An invalid TMDB key persists nothing", func() {
			err := SaveKeys(context.Background(), validator(false), "bad", "g")
			So(err, ShouldEqual, ErrInvalidKey)
			So(Get(TMDB), ShouldBeEmpty)
			So(Get(Gemini), ShouldBeEmpty)
		})

		Convey("A valid TMDB key is trimmed, validated and stored with the Gemini key", func() {
			err := SaveKeys(context.Background(), validator(true), " good ", " gem ")
			So(err, ShouldBeNil)
			So(validated, ShouldEqual, "good")
			So(Get(TMDB), ShouldEqual, "good")
			So(Get(Gemini), ShouldEqual, "gem")
		})
	})
}

func TestMask(t *testing.T) {
	Convey("Mask", t, func() {
		So(Mask(""), ShouldEqual, "")
		So(Mask("short"), ShouldEqual, "•••••")
		So(Mask("0123456789abcdef"), ShouldEqual, "0123••••••••cdef")
	})
}
