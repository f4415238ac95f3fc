// Package aggregate computes frequency leaderboards over race records.
package aggregate

import (
	"sort"
	"strings"

	"github.com/okian/paddock/internal/domain/model"
	"github.com/okian/paddock/internal/domain/reference"
	"github.com/okian/paddock/internal/domain/types"
)

// ByWinner groups by winning driver.
func ByWinner(r model.RaceRecord) string { return r.Winner }

// ByTeam groups by winning constructor.
func ByTeam(r model.RaceRecord) string { return r.Team }

// ByCountry groups by host country. Events missing from the tables count
// under their raw name, so every record lands in exactly one group.
func ByCountry(tables *reference.Tables) model.KeyFunc {
	return func(r model.RaceRecord) string {
		return tables.Translate(r.GrandPrix).Value
	}
}

// Counts returns every key with its count, ordered by count descending and
// then by the order in which the key was first seen.
func Counts(records []model.RaceRecord, key model.KeyFunc) []types.Entry {
	counts := make(map[string]int)
	order := make([]string, 0)
	for _, r := range records {
		k := key(r)
		if _, ok := counts[k]; !ok {
			order = append(order, k)
		}
		counts[k]++
	}

	entries := make([]types.Entry, len(order))
	for i, k := range order {
		entries[i] = types.Entry{Key: k, Count: counts[k]}
	}
	sort.SliceStable(entries, func(i, j int) bool { return entries[i].Count > entries[j].Count })
	for i := range entries {
		entries[i].Rank = i + 1
	}
	return entries
}

// TopN returns the n most frequent keys. n <= 0 returns every key.
func TopN(records []model.RaceRecord, key model.KeyFunc, n int) []types.Entry {
	entries := Counts(records, key)
	if n > 0 && len(entries) > n {
		entries = entries[:n]
	}
	return entries
}

// LeadingWithTies returns every key sharing the highest count, in ranking
// order. Blank keys never lead; records carrying only blank keys count as
// empty input.
func LeadingWithTies(records []model.RaceRecord, key model.KeyFunc) (types.Leaders, error) {
	var leaders types.Leaders
	for _, e := range Counts(records, key) {
		if strings.TrimSpace(e.Key) == "" {
			continue
		}
		if len(leaders.Keys) > 0 && e.Count != leaders.Count {
			break
		}
		leaders.Count = e.Count
		leaders.Keys = append(leaders.Keys, e.Key)
	}
	if len(leaders.Keys) == 0 {
		return types.Leaders{}, ErrEmptyInput
	}
	return leaders, nil
}

// Pin appends to top the entries of all whose key is listed in keys but
// missing from top. Appended rows keep their rank from all.
func Pin(top, all []types.Entry, keys ...string) []types.Entry {
	present := make(map[string]struct{}, len(top))
	for _, e := range top {
		present[e.Key] = struct{}{}
	}
	out := append([]types.Entry(nil), top...)
	for _, k := range keys {
		if _, ok := present[k]; ok {
			continue
		}
		for _, e := range all {
			if e.Key == k {
				out = append(out, e)
				present[k] = struct{}{}
				break
			}
		}
	}
	return out
}
