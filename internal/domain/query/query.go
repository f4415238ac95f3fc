// Package query answers day-of-year questions over the race table: which
// races fell on a given day and month, and which race came closest.
package query

import (
	"time"

	"github.com/okian/paddock/internal/domain/model"
)

const secondsPerDay = 24 * 60 * 60

// Birthday is the outcome of a day/month lookup. Exact is true when at
// least one race matched; otherwise Nearest holds the closest race and
// Distance its day distance.
type Birthday struct {
	Day      int
	Month    time.Month
	Exact    bool
	Matches  []model.RaceRecord
	Nearest  model.RaceRecord
	Distance int
}

// FindOnDay returns every record whose day of month and month equal day and
// month, in load order, ignoring the year.
func FindOnDay(records []model.RaceRecord, day int, month time.Month) []model.RaceRecord {
	var out []model.RaceRecord
	for _, r := range records {
		if r.Day() == day && r.Month() == month {
			out = append(out, r)
		}
	}
	return out
}

// ReferenceDate builds the calendar date for day/month in year. It fails
// with a *DateError when the combination does not exist, e.g. 30 February.
func ReferenceDate(day int, month time.Month, year int) (time.Time, error) {
	if month < time.January || month > time.December || day < 1 || day > 31 {
		return time.Time{}, &DateError{Day: day, Month: int(month), Year: year}
	}
	ref := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	if ref.Day() != day || ref.Month() != month {
		return time.Time{}, &DateError{Day: day, Month: int(month), Year: year}
	}
	return ref, nil
}

// FindNearest returns the record closest to day/month and its distance in
// days. Equal distances resolve to the earliest race date, then load order.
func FindNearest(records []model.RaceRecord, day int, month time.Month, opts ...Option) (model.RaceRecord, int, error) {
	o := newOptions(opts)
	ref, err := ReferenceDate(day, month, o.placeholderYear)
	if err != nil {
		return model.RaceRecord{}, 0, err
	}
	if len(records) == 0 {
		return model.RaceRecord{}, 0, ErrNoRecords
	}

	best := 0
	bestDist := Distance(ref, records[0].Date, o.mode)
	for i := 1; i < len(records); i++ {
		d := Distance(ref, records[i].Date, o.mode)
		if d < bestDist || (d == bestDist && records[i].Date.Before(records[best].Date)) {
			best, bestDist = i, d
		}
	}
	return records[best], bestDist, nil
}

// Distance measures the day distance between the reference date and date.
func Distance(ref, date time.Time, mode DistanceMode) int {
	if mode == DistanceCircular {
		return circularDistance(ref, date)
	}
	a := time.Date(ref.Year(), ref.Month(), ref.Day(), 0, 0, 0, 0, time.UTC)
	b := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	return abs(int((b.Unix() - a.Unix()) / secondsPerDay))
}

// circularDistance places date into the reference year and measures the
// shorter way around the calendar.
func circularDistance(ref, date time.Time) int {
	moved := time.Date(ref.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	yearLen := time.Date(ref.Year(), time.December, 31, 0, 0, 0, 0, time.UTC).YearDay()
	d := abs(moved.YearDay() - ref.YearDay())
	if yearLen-d < d {
		return yearLen - d
	}
	return d
}

// Resolve runs the exact day/month search and falls back to the nearest
// race only when nothing matched.
func Resolve(records []model.RaceRecord, day int, month time.Month, opts ...Option) (Birthday, error) {
	b := Birthday{Day: day, Month: month}
	if month < time.January || month > time.December || day < 1 || day > 31 {
		return b, &DateError{Day: day, Month: int(month), Year: newOptions(opts).placeholderYear}
	}
	if matches := FindOnDay(records, day, month); len(matches) > 0 {
		b.Exact = true
		b.Matches = matches
		return b, nil
	}
	nearest, dist, err := FindNearest(records, day, month, opts...)
	if err != nil {
		return b, err
	}
	b.Nearest = nearest
	b.Distance = dist
	return b, nil
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
