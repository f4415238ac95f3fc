// Package questionnaire recommends a 1950s team from three forced-choice
// answers.
package questionnaire

import "fmt"

// DefaultTeam is recommended when a profile has no team.
const DefaultTeam = "Ferrari"

// Option is one answer and the profile it counts toward.
type Option struct {
	Text    string `json:"text"`
	Profile string `json:"-"`
}

// Question is one forced-choice question.
type Question struct {
	Prompt  string   `json:"prompt"`
	Options []Option `json:"options"`
}

// Result is the outcome of a completed questionnaire.
type Result struct {
	Profile string `json:"profile"`
	Team    string `json:"team"`
}

var questions = []Question{
	{
		Prompt: "¿Cuál es tu estilo de conducción?",
		Options: []Option{
			{Text: "Conservador, prefiero la estrategia", Profile: "estratega"},
			{Text: "A la ofensiva, siempre al límite", Profile: "agresivo"},
			{Text: "Equilibrado, me adapto", Profile: "equilibrado"},
		},
	},
	{
		Prompt: "¿Qué valoras más en una escudería?",
		Options: []Option{
			{Text: "Innovación y tecnología", Profile: "innovador"},
			{Text: "Pasión y tradición", Profile: "tradicional"},
			{Text: "Precisión y eficiencia", Profile: "preciso"},
		},
	},
	{
		Prompt: "¿Qué tipo de piloto te identificas más?",
		Options: []Option{
			{Text: "Líder calmado y analítico", Profile: "calculador"},
			{Text: "Carismático y arriesgado", Profile: "valiente"},
			{Text: "Constante y técnico", Profile: "disciplinado"},
		},
	},
}

var profileTeam = map[string]string{
	"agresivo":     "Maserati",
	"estratega":    "Ferrari",
	"equilibrado":  "Vanwall",
	"tradicional":  "Alfa Romeo",
	"innovador":    "Cooper",
	"preciso":      "Mercedes",
	"valiente":     "BRM",
	"calculador":   "Ferrari",
	"disciplinado": "Gordini",
}

// Questions returns a copy of the questions in answer order.
func Questions() []Question {
	out := make([]Question, len(questions))
	for i, q := range questions {
		q.Options = append([]Option(nil), q.Options...)
		out[i] = q
	}
	return out
}

// TeamFor maps a profile to its team, or DefaultTeam.
func TeamFor(profile string) string {
	if team, ok := profileTeam[profile]; ok {
		return team
	}
	return DefaultTeam
}

// Recommend tallies the profiles behind answers, one per question in order,
// and returns the most frequent one with its team. Equal tallies go to the
// profile answered first.
func Recommend(answers []string) (Result, error) {
	if len(answers) != len(questions) {
		return Result{}, fmt.Errorf("%w: %d of %d answered", ErrIncomplete, len(answers), len(questions))
	}
	tally := make(map[string]int, len(answers))
	order := make([]string, 0, len(answers))
	for i, a := range answers {
		if a == "" {
			return Result{}, fmt.Errorf("%w: question %d", ErrIncomplete, i+1)
		}
		profile, ok := lookup(questions[i], a)
		if !ok {
			return Result{}, fmt.Errorf("%w: %q for question %d", ErrUnknownOption, a, i+1)
		}
		if tally[profile] == 0 {
			order = append(order, profile)
		}
		tally[profile]++
	}
	best := order[0]
	for _, p := range order[1:] {
		if tally[p] > tally[best] {
			best = p
		}
	}
	return Result{Profile: best, Team: TeamFor(best)}, nil
}

func lookup(q Question, text string) (string, bool) {
	for _, o := range q.Options {
		if o.Text == text {
			return o.Profile, true
		}
	}
	return "", false
}
