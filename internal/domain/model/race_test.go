package model_test

import (
	"testing"
	"time"

	model "github.com/okian/paddock/internal/domain/model"
	"github.com/smartystreets/goconvey/convey"
)

func TestRaceRecord(t *testing.T) {
	convey.Convey("Given a race record", t, func() {
		date, err := time.Parse(model.DateLayout, "13 May 1950")
		convey.So(err, convey.ShouldBeNil)

		rec := model.RaceRecord{
			Year:      1950,
			GrandPrix: "British",
			Date:      date,
			RawDate:   "13 May 1950",
			Winner:    "Nino Farina",
			Team:      "Alfa Romeo",
		}

		convey.Convey("Then day and month come from the parsed date", func() {
			convey.So(rec.Day(), convey.ShouldEqual, 13)
			convey.So(rec.Month(), convey.ShouldEqual, time.May)
		})

		convey.Convey("Then Value returns stored columns", func() {
			convey.So(rec.Value(model.FieldWinner), convey.ShouldEqual, "Nino Farina")
			convey.So(rec.Value(model.FieldTeam), convey.ShouldEqual, "Alfa Romeo")
			convey.So(rec.Value(model.FieldCountry), convey.ShouldEqual, "")
		})
	})
}

func TestParseField(t *testing.T) {
	convey.Convey("Given request field names", t, func() {
		convey.Convey("When the name is known", func() {
			for _, name := range []string{"winner", "team", "country"} {
				f, ok := model.ParseField(name)
				convey.So(ok, convey.ShouldBeTrue)
				convey.So(string(f), convey.ShouldEqual, name)
			}
		})

		convey.Convey("When the name is unknown", func() {
			_, ok := model.ParseField("circuit")
			convey.So(ok, convey.ShouldBeFalse)
		})
	})
}
