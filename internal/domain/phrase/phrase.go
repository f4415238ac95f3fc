// Package phrase renders leaderboard results as sentences. Counting lives in
// package aggregate; this package only decides the wording.
package phrase

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/okian/paddock/internal/domain/reference"
	"github.com/okian/paddock/internal/domain/types"
)

// Grammar describes how a locale joins a list of names.
type Grammar struct {
	// Conjunction joins the last two items, e.g. "y" or "and".
	Conjunction string
	// Euphony may replace the conjunction depending on the word that follows.
	Euphony func(conjunction, next string) string
}

// Spanish joins with "y", written "e" before a word that starts with an
// /i/ sound ("Italia", "Hilario"). Words opening with an i/hi diphthong
// ("Iowa", "hierro", "Ian") keep "y".
var Spanish = Grammar{
	Conjunction: "y",
	Euphony: func(conjunction, next string) string {
		w := strings.ToLower(strings.TrimSpace(next))
		w = strings.TrimPrefix(w, "h")
		if !strings.HasPrefix(w, "i") {
			return conjunction
		}
		for _, diphthong := range []string{"ia", "ie", "io", "iu"} {
			if strings.HasPrefix(w, diphthong) {
				return conjunction
			}
		}
		return "e"
	},
}

// English joins with "and".
var English = Grammar{Conjunction: "and"}

// conjunctionBefore returns the conjunction to place before next.
func (g Grammar) conjunctionBefore(next string) string {
	if g.Euphony == nil {
		return g.Conjunction
	}
	return g.Euphony(g.Conjunction, next)
}

// JoinList renders items as "A", "A y B" or "A, B y C".
func (g Grammar) JoinList(items []string) string {
	switch len(items) {
	case 0:
		return ""
	case 1:
		return items[0]
	}
	last := items[len(items)-1]
	head := strings.Join(items[:len(items)-1], ", ")
	return fmt.Sprintf("%s %s %s", head, g.conjunctionBefore(last), last)
}

// Templates holds the two sentence shapes of a leader summary. Both receive
// the joined names and the count.
type Templates struct {
	Singular string
	Plural   string
}

// Leader sentence templates per dimension.
var (
	CountryES = Templates{
		Singular: "%s fue el país con más Grandes Premios: %d en total.",
		Plural:   "%s fueron los países con más Grandes Premios: %d cada uno.",
	}
	WinnerES = Templates{
		Singular: "%s fue el piloto con más victorias: %d en total.",
		Plural:   "%s fueron los pilotos con más victorias: %d cada uno.",
	}
	TeamES = Templates{
		Singular: "%s fue la escudería con más victorias: %d en total.",
		Plural:   "%s fueron las escuderías con más victorias: %d cada una.",
	}
	CountryEN = Templates{
		Singular: "%s hosted the most Grands Prix: %d in total.",
		Plural:   "%s hosted the most Grands Prix: %d each.",
	}
	WinnerEN = Templates{
		Singular: "%s won the most races: %d in total.",
		Plural:   "%s won the most races: %d each.",
	}
	TeamEN = Templates{
		Singular: "%s was the most successful team: %d wins in total.",
		Plural:   "%s were the most successful teams: %d wins each.",
	}
)

// LeaderSentence renders leaders with the singular template for one key and
// the plural template otherwise.
func LeaderSentence(leaders types.Leaders, t Templates, g Grammar) string {
	if len(leaders.Keys) == 0 {
		return ""
	}
	tmpl := t.Plural
	if len(leaders.Keys) == 1 {
		tmpl = t.Singular
	}
	return Capitalize(fmt.Sprintf(tmpl, g.JoinList(leaders.Keys), leaders.Count))
}

// Capitalize upper-cases the first letter of s.
func Capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

// Locale bundles the grammar and templates of one language.
type Locale struct {
	Grammar   Grammar
	Country   Templates
	Winner    Templates
	Team      Templates
	Nearest   string
	NoMatch   string
	Match     string
	MapTitle  string
	MapVenues string
	IdealTeam string
}

var locales = map[string]Locale{
	reference.LocaleES: {
		Grammar:   Spanish,
		Country:   CountryES,
		Winner:    WinnerES,
		Team:      TeamES,
		Nearest:   "el GP de %s en %s fue la carrera más cercana a tu cumple. Ganó %s con %s.",
		NoMatch:   "No hubo ningún Grand Prix ese día.",
		Match:     "¡Sí hubo Grand Prix en tu cumpleaños!",
		MapTitle:  "%s: %d carreras",
		MapVenues: "Circuitos: %s",
		IdealTeam: "¡Tu escudería ideal es %s!",
	},
	reference.LocaleEN: {
		Grammar:   English,
		Country:   CountryEN,
		Winner:    WinnerEN,
		Team:      TeamEN,
		Nearest:   "the %s GP on %s was the closest race to your birthday. %s won with %s.",
		NoMatch:   "There was no Grand Prix on that day.",
		Match:     "There was a Grand Prix on your birthday!",
		MapTitle:  "%s: %d races",
		MapVenues: "Circuits: %s",
		IdealTeam: "Your ideal team is %s!",
	},
}

// ForLocale returns the wording for locale, falling back to Spanish.
func ForLocale(locale string) Locale {
	if l, ok := locales[locale]; ok {
		return l
	}
	return locales[reference.LocaleES]
}

// NearestSentence describes the closest race to a birthday.
func (l Locale) NearestSentence(place, date, winner, team string) string {
	return Capitalize(fmt.Sprintf(l.Nearest, place, date, winner, team))
}

// Tooltip renders the map marker text for a country.
func (l Locale) Tooltip(country string, races int, venues []string) string {
	return fmt.Sprintf(l.MapTitle, country, races) + "\n" + fmt.Sprintf(l.MapVenues, strings.Join(venues, ", "))
}

// Recommendation announces the questionnaire result.
func (l Locale) Recommendation(team string) string {
	return fmt.Sprintf(l.IdealTeam, team)
}
