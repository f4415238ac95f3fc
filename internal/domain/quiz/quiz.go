// Package quiz holds the trivia question bank and the transitions of a quiz
// session. State is a plain value; every transition returns a new State and
// leaves its input untouched.
package quiz

import "slices"

// Question is one multiple-choice trivia question.
type Question struct {
	Prompt  string   `json:"prompt"`
	Options []string `json:"options"`
	Answer  string   `json:"-"`
}

// Bank is an ordered list of questions.
type Bank []Question

var defaultBank = Bank{
	{
		Prompt:  "¿Qué piloto ganó más carreras en la década de 1950?",
		Options: []string{"Juan Manuel Fangio", "Alberto Ascari", "Stirling Moss", "Mike Hawthorn"},
		Answer:  "Juan Manuel Fangio",
	},
	{
		Prompt:  "¿En qué circuito se corrió el primer GP en 1950?",
		Options: []string{"Monza", "Silverstone", "Indianápolis", "Zandvoort"},
		Answer:  "Silverstone",
	},
	{
		Prompt:  "¿Qué país sudamericano albergó Grandes Premios en los años 50?",
		Options: []string{"Brasil", "Argentina", "Chile", "Perú"},
		Answer:  "Argentina",
	},
	{
		Prompt:  "¿Qué piloto argentino fue cinco veces campeón del mundo en los 50s?",
		Options: []string{"Carlos Reutemann", "Juan Manuel Fangio", "Ricardo Zunino", "José Froilán González"},
		Answer:  "Juan Manuel Fangio",
	},
	{
		Prompt:  "¿Cuál fue la escudería más ganadora en los 50s?",
		Options: []string{"Ferrari", "Mercedes", "Maserati", "Alfa Romeo"},
		Answer:  "Ferrari",
	},
	{
		Prompt:  "¿En qué país se encuentra el circuito de Spa-Francorchamps?",
		Options: []string{"Francia", "Bélgica", "Países Bajos", "Suiza"},
		Answer:  "Bélgica",
	},
}

// DefaultBank returns a copy of the built-in six question bank.
func DefaultBank() Bank {
	out := make(Bank, len(defaultBank))
	for i, q := range defaultBank {
		q.Options = slices.Clone(q.Options)
		out[i] = q
	}
	return out
}

// State is the progress of one quiz session.
type State struct {
	Index    int    `json:"index"`
	Selected string `json:"selected,omitempty"`
	Answered bool   `json:"answered"`
	Correct  bool   `json:"correct"`
	Score    int    `json:"score"`
}

// Finished reports whether every question of bank has been passed.
func Finished(s State, bank Bank) bool {
	return s.Index >= len(bank)
}

// Current returns the question s is on.
func Current(s State, bank Bank) (Question, error) {
	if Finished(s, bank) {
		return Question{}, ErrFinished
	}
	return bank[s.Index], nil
}

// Select records option as the pending choice for the current question.
func Select(s State, bank Bank, option string) (State, error) {
	q, err := Current(s, bank)
	if err != nil {
		return s, err
	}
	if s.Answered {
		return s, ErrAlreadyAnswered
	}
	if !slices.Contains(q.Options, option) {
		return s, ErrUnknownOption
	}
	s.Selected = option
	return s, nil
}

// Submit checks the selected option and scores it.
func Submit(s State, bank Bank) (State, error) {
	q, err := Current(s, bank)
	if err != nil {
		return s, err
	}
	if s.Answered {
		return s, ErrAlreadyAnswered
	}
	if s.Selected == "" {
		return s, ErrNoSelection
	}
	s.Answered = true
	s.Correct = s.Selected == q.Answer
	if s.Correct {
		s.Score++
	}
	return s, nil
}

// Answer selects option and submits it in one step.
func Answer(s State, bank Bank, option string) (State, error) {
	s, err := Select(s, bank, option)
	if err != nil {
		return s, err
	}
	return Submit(s, bank)
}

// Next moves past an answered question and clears the per-question fields.
func Next(s State, bank Bank) (State, error) {
	if Finished(s, bank) {
		return s, ErrFinished
	}
	if !s.Answered {
		return s, ErrNotAnswered
	}
	return State{Index: s.Index + 1, Score: s.Score}, nil
}
