package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	geohash "github.com/TomiHiltunen/geohash-golang"

	"github.com/okian/paddock/internal/domain/aggregate"
	"github.com/okian/paddock/internal/domain/model"
	"github.com/okian/paddock/internal/domain/phrase"
	"github.com/okian/paddock/internal/domain/query"
	"github.com/okian/paddock/internal/domain/reference"
	"github.com/okian/paddock/internal/domain/types"
	"github.com/okian/paddock/pkg/metrics"
)

// MonthNames lists the month names Birthday accepts, January first.
func (s *Service) MonthNames(_ context.Context) ([]string, error) {
	_, tables, err := s.state()
	if err != nil {
		return nil, err
	}
	return tables.MonthNames(), nil
}

// Birthday lists the races held on day/month in any year. month is a
// number or a localized month name. When no race matches, the closest race
// is returned instead.
func (s *Service) Birthday(_ context.Context, day int, month string) (types.Birthday, error) {
	records, tables, err := s.state()
	if err != nil {
		return types.Birthday{}, err
	}
	m, err := parseMonth(tables, month)
	if err != nil {
		return types.Birthday{}, kind(ErrBadInput, err)
	}

	b, err := query.Resolve(records, day, m,
		query.WithPlaceholderYear(s.placeholderYear),
		query.WithDistanceMode(s.nearestMode))
	switch {
	case errors.Is(err, query.ErrInvalidInput):
		return types.Birthday{}, kind(ErrBadInput, err)
	case errors.Is(err, query.ErrNoRecords):
		return types.Birthday{}, kind(ErrNotFound, err)
	case err != nil:
		return types.Birthday{}, err
	}

	out := types.Birthday{Day: day, Month: int(m), MonthName: tables.MonthNames()[m-1], Exact: b.Exact}
	if b.Exact {
		metrics.RecordBirthdayLookup("exact")
		out.Message = s.locale.Match
		out.Races = toRaces(tables, b.Matches)
		return out, nil
	}

	metrics.RecordBirthdayLookup("nearest")
	nearest := toRace(tables, b.Nearest)
	out.Message = s.locale.NoMatch
	out.Nearest = &nearest
	out.Distance = b.Distance
	out.Sentence = s.locale.NearestSentence(nearest.Country, nearest.Date, nearest.Winner, nearest.Team)
	return out, nil
}

func parseMonth(tables *reference.Tables, month string) (time.Month, error) {
	month = strings.TrimSpace(month)
	if n, err := strconv.Atoi(month); err == nil {
		if n < 1 || n > 12 {
			return 0, fmt.Errorf("%w: month %d", query.ErrInvalidInput, n)
		}
		return time.Month(n), nil
	}
	return tables.MonthNumber(month)
}

// keyFor returns the grouping key of dimension.
func keyFor(tables *reference.Tables, dimension string) (model.Field, model.KeyFunc, error) {
	f, ok := model.ParseField(dimension)
	if !ok {
		return "", nil, kind(ErrBadInput, fmt.Errorf("%w: %q", ErrUnknownDimension, dimension))
	}
	switch f {
	case model.FieldWinner:
		return f, aggregate.ByWinner, nil
	case model.FieldTeam:
		return f, aggregate.ByTeam, nil
	default:
		return f, aggregate.ByCountry(tables), nil
	}
}

// Leaderboard ranks the values of dimension by count. limit <= 0 uses the
// configured default and larger values are capped. The country board
// always carries the United States row.
func (s *Service) Leaderboard(_ context.Context, dimension string, limit int) ([]types.Entry, error) {
	records, tables, err := s.state()
	if err != nil {
		return nil, err
	}
	f, key, err := keyFor(tables, dimension)
	if err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = s.leaderboardSize
	}
	if limit > s.maxLimit {
		limit = s.maxLimit
	}
	metrics.RecordLeaderboardQuery(string(f))

	all := aggregate.Counts(records, key)
	top := all
	if len(top) > limit {
		top = top[:limit]
	}
	if f == model.FieldCountry {
		if us, ok := tables.Country(reference.CodeUnitedStates); ok {
			top = aggregate.Pin(top, all, us)
		}
	}
	return top, nil
}

// Leaders returns every value of dimension sharing the top count, with a
// localized summary sentence.
func (s *Service) Leaders(_ context.Context, dimension string) (types.Leaders, error) {
	records, tables, err := s.state()
	if err != nil {
		return types.Leaders{}, err
	}
	f, key, err := keyFor(tables, dimension)
	if err != nil {
		return types.Leaders{}, err
	}
	metrics.RecordLeaderboardQuery(string(f))

	leaders, err := aggregate.LeadingWithTies(records, key)
	if err != nil {
		return types.Leaders{}, kind(ErrNotFound, err)
	}
	leaders.Summary = phrase.LeaderSentence(leaders, s.templates(f), s.locale.Grammar)
	return leaders, nil
}

func (s *Service) templates(f model.Field) phrase.Templates {
	switch f {
	case model.FieldWinner:
		return s.locale.Winner
	case model.FieldTeam:
		return s.locale.Team
	default:
		return s.locale.Country
	}
}

// MapPoints returns one marker per hosting country with known coordinates,
// ordered by race count.
func (s *Service) MapPoints(_ context.Context) ([]types.MapPoint, error) {
	records, tables, err := s.state()
	if err != nil {
		return nil, err
	}
	venues := tables.VenuesByCountry()
	counts := aggregate.Counts(records, aggregate.ByCountry(tables))

	points := make([]types.MapPoint, 0, len(counts))
	for _, c := range counts {
		lat, lon, ok := tables.Coordinates(c.Key)
		if !ok {
			continue
		}
		v := venues[c.Key]
		if v == nil {
			v = []string{}
		}
		points = append(points, types.MapPoint{
			Country: c.Key,
			Lat:     lat,
			Lon:     lon,
			Geohash: geohash.Encode(lat, lon),
			Races:   c.Count,
			Venues:  v,
			Tooltip: s.locale.Tooltip(c.Key, c.Count, v),
		})
	}
	return points, nil
}

// Timeline returns the season narrative.
func (s *Service) Timeline(_ context.Context) ([]types.TimelineEvent, error) {
	if _, _, err := s.state(); err != nil {
		return nil, err
	}
	return reference.Timeline(), nil
}

// drillKey accepts winner and team only.
func drillKey(dimension string) (model.KeyFunc, error) {
	switch f, _ := model.ParseField(dimension); f {
	case model.FieldWinner:
		return aggregate.ByWinner, nil
	case model.FieldTeam:
		return aggregate.ByTeam, nil
	}
	return nil, kind(ErrBadInput, fmt.Errorf("%w: %q", ErrUnknownDimension, dimension))
}

// Entities lists the distinct winners or teams, sorted.
func (s *Service) Entities(_ context.Context, dimension string) ([]string, error) {
	records, _, err := s.state()
	if err != nil {
		return nil, err
	}
	key, err := drillKey(dimension)
	if err != nil {
		return nil, err
	}
	return query.Distinct(records, key), nil
}

// Wins lists every race won by name, ordered by year. Unknown names fail
// with an *UnknownEntityError carrying suggestions.
func (s *Service) Wins(_ context.Context, dimension, name string) (types.Wins, error) {
	records, tables, err := s.state()
	if err != nil {
		return types.Wins{}, err
	}
	key, err := drillKey(dimension)
	if err != nil {
		return types.Wins{}, err
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return types.Wins{}, kind(ErrBadInput, errors.New("empty name"))
	}
	wins := query.WinsBy(records, key, name)
	if len(wins) == 0 {
		metrics.RecordDrilldownLookup(dimension, "not_found")
		return types.Wins{}, &UnknownEntityError{
			Dimension:   dimension,
			Name:        name,
			Suggestions: query.Suggest(query.Distinct(records, key), name, s.suggestionLimit),
		}
	}
	metrics.RecordDrilldownLookup(dimension, "found")
	return types.Wins{
		Dimension: dimension,
		Name:      name,
		Count:     len(wins),
		Races:     toRaces(tables, wins),
	}, nil
}

func toRace(tables *reference.Tables, r model.RaceRecord) types.Race {
	return types.Race{
		Year:      r.Year,
		GrandPrix: r.GrandPrix,
		Country:   tables.Translate(r.GrandPrix).Value,
		Date:      tables.FormatDate(r.Date),
		Winner:    r.Winner,
		Team:      r.Team,
	}
}

func toRaces(tables *reference.Tables, records []model.RaceRecord) []types.Race {
	out := make([]types.Race, len(records))
	for i, r := range records {
		out[i] = toRace(tables, r)
	}
	return out
}
