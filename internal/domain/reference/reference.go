// Package reference holds the static lookup tables used to translate event
// names, months and countries for display.
package reference

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/okian/paddock/internal/domain/types"
)

// Lookup is the result of a reference lookup. Known reports whether the key
// was in the table; when it was not, Value carries the key unchanged.
type Lookup struct {
	Key   string
	Value string
	Known bool
}

// VenueLookup is the venue list for an event. Unknown events yield the event
// name itself as the only venue.
type VenueLookup struct {
	Key    string
	Venues []string
	Known  bool
}

// Tables serves the reference data for one locale. It is immutable and safe
// for concurrent use.
type Tables struct {
	countries map[string]string // code -> localized name
	codes     map[string]string // localized name -> code
	months    [12]string
}

// New returns the tables for locale.
func New(locale string) (*Tables, error) {
	names, ok := countryNames[locale]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownLocale, locale)
	}
	codes := make(map[string]string, len(names))
	for code, name := range names {
		codes[name] = code
	}
	return &Tables{
		countries: names,
		codes:     codes,
		months:    monthNames[locale],
	}, nil
}

// NormalizeEvent trims the event name and folds every Indianapolis variant
// into IndianapolisEvent.
func NormalizeEvent(name string) string {
	name = strings.TrimSpace(name)
	if strings.Contains(strings.ToLower(name), "indianapolis") {
		return IndianapolisEvent
	}
	return name
}

// Translate returns the country hosting event.
func (t *Tables) Translate(event string) Lookup {
	if code, ok := eventCountry[event]; ok {
		return Lookup{Key: event, Value: t.countries[code], Known: true}
	}
	return Lookup{Key: event, Value: event}
}

// Venues returns the circuits used by event, in table order.
func (t *Tables) Venues(event string) VenueLookup {
	if venues, ok := eventVenues[event]; ok {
		out := make([]string, len(venues))
		copy(out, venues)
		return VenueLookup{Key: event, Venues: out, Known: true}
	}
	return VenueLookup{Key: event, Venues: []string{event}}
}

// VenuesByCountry groups every known venue under its localized country,
// sorted alphabetically and without duplicates.
func (t *Tables) VenuesByCountry() map[string][]string {
	sets := make(map[string]map[string]struct{})
	for event, code := range eventCountry {
		name := t.countries[code]
		if sets[name] == nil {
			sets[name] = make(map[string]struct{})
		}
		for _, v := range eventVenues[event] {
			sets[name][v] = struct{}{}
		}
	}
	out := make(map[string][]string, len(sets))
	for name, set := range sets {
		venues := make([]string, 0, len(set))
		for v := range set {
			venues = append(venues, v)
		}
		sort.Strings(venues)
		out[name] = venues
	}
	return out
}

// Country returns the localized name of a country code such as "US".
func (t *Tables) Country(code string) (string, bool) {
	name, ok := t.countries[code]
	return name, ok
}

// Coordinates returns the approximate marker position for a localized
// country name.
func (t *Tables) Coordinates(country string) (lat, lon float64, ok bool) {
	code, found := t.codes[country]
	if !found {
		return 0, 0, false
	}
	c := countryCoords[code]
	return c[0], c[1], true
}

// TranslateMonth maps an English month abbreviation ("Jan".."Dec") to its
// localized name.
func (t *Tables) TranslateMonth(abbr string) (string, error) {
	for i, a := range monthAbbreviations {
		if a == abbr {
			return t.months[i], nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownMonth, abbr)
}

// MonthNames returns the localized month names, January first.
func (t *Tables) MonthNames() []string {
	out := make([]string, len(t.months))
	copy(out, t.months[:])
	return out
}

// MonthNumber resolves a localized month name (case-insensitive).
func (t *Tables) MonthNumber(name string) (time.Month, error) {
	name = strings.TrimSpace(name)
	for i, m := range t.months {
		if strings.EqualFold(m, name) {
			return time.Month(i + 1), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownMonth, name)
}

// FormatDate renders a date as "13 Mayo 1950" in the table locale.
func (t *Tables) FormatDate(d time.Time) string {
	month, err := t.TranslateMonth(d.Format("Jan"))
	if err != nil {
		month = d.Format("Jan")
	}
	return fmt.Sprintf("%d %s %d", d.Day(), month, d.Year())
}

// Timeline returns the season narrative, oldest first.
func Timeline() []types.TimelineEvent {
	out := make([]types.TimelineEvent, len(timeline))
	for i, e := range timeline {
		out[i] = types.TimelineEvent{Year: e.year, Text: e.text}
	}
	return out
}
