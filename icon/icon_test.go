package icon

import (
	"testing"

	"github.com/cinemind-cli/cinemind/key"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func TestGet(t *testing.T) {
	Convey("Every registered icon renders for every variant", t, func() {
		for i := range icons {
			for _, variant := range AvailableVariants() {
				viper.Set(key.IconsVariant, variant)
				So(Get(i), ShouldNotBeEmpty)
			}
		}
	})

	Convey("It returns empty for an unknown variant", t, func() {
		viper.Set(key.IconsVariant, "")
		So(Get(Favorite), ShouldBeEmpty)
	})

	Convey("It returns empty for an unknown icon", t, func() {
		viper.Set(key.IconsVariant, "plain")
		So(Get(Icon(999)), ShouldBeEmpty)
	})
}

func TestMedia(t *testing.T) {
	Convey("Media maps catalog types to icons", t, func() {
		So(Media("movie"), ShouldEqual, Movie)
		So(Media("tv"), ShouldEqual, TV)
		So(Media("person"), ShouldEqual, Person)
		So(Media("other"), ShouldEqual, Search)
	})
}
