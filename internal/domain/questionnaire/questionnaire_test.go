package questionnaire_test

import (
	"errors"
	"testing"

	"github.com/okian/paddock/internal/domain/questionnaire"
	. "github.com/smartystreets/goconvey/convey"
)

func TestRecommend(t *testing.T) {
	Convey("Given the questionnaire", t, func() {
		qs := questionnaire.Questions()
		So(qs, ShouldHaveLength, 3)

		Convey("When every question is answered", func() {
			res, err := questionnaire.Recommend([]string{
				"A la ofensiva, siempre al límite",
				"Pasión y tradición",
				"Constante y técnico",
			})

			Convey("Then the first answered profile wins the tie", func() {
				So(err, ShouldBeNil)
				So(res, ShouldResemble, questionnaire.Result{Profile: "agresivo", Team: "Maserati"})
			})
		})

		Convey("When a question is left blank", func() {
			_, err := questionnaire.Recommend([]string{"Equilibrado, me adapto", "", "Constante y técnico"})
			So(errors.Is(err, questionnaire.ErrIncomplete), ShouldBeTrue)
		})

		Convey("When fewer answers than questions are given", func() {
			_, err := questionnaire.Recommend([]string{"Equilibrado, me adapto"})
			So(errors.Is(err, questionnaire.ErrIncomplete), ShouldBeTrue)
		})

		Convey("When an answer belongs to another question", func() {
			_, err := questionnaire.Recommend([]string{"Pasión y tradición", "Pasión y tradición", "Constante y técnico"})
			So(errors.Is(err, questionnaire.ErrUnknownOption), ShouldBeTrue)
		})

		Convey("When the returned questions are modified", func() {
			qs[0].Options[0].Text = "changed"
			So(questionnaire.Questions()[0].Options[0].Text, ShouldEqual, "Conservador, prefiero la estrategia")
		})
	})
}

func TestTeamFor(t *testing.T) {
	Convey("Known profiles map to their team", t, func() {
		So(questionnaire.TeamFor("valiente"), ShouldEqual, "BRM")
		So(questionnaire.TeamFor("preciso"), ShouldEqual, "Mercedes")
	})

	Convey("Unknown profiles fall back to the default team", t, func() {
		So(questionnaire.TeamFor("nobody"), ShouldEqual, questionnaire.DefaultTeam)
	})
}
