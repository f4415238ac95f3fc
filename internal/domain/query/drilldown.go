package query

import (
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
	"github.com/okian/paddock/internal/domain/model"
)

// WinsBy returns the records whose key equals name, ordered by year. Records
// of the same year keep load order.
func WinsBy(records []model.RaceRecord, key model.KeyFunc, name string) []model.RaceRecord {
	var out []model.RaceRecord
	for _, r := range records {
		if key(r) == name {
			out = append(out, r)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Year < out[j].Year })
	return out
}

// Distinct returns the sorted set of non-empty keys.
func Distinct(records []model.RaceRecord, key model.KeyFunc) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, r := range records {
		k := key(r)
		if k == "" {
			continue
		}
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Suggest ranks candidates by similarity to q and returns at most limit of
// them. A candidate containing q scores as an exact hit; others must be
// within half the query length in edit distance.
func Suggest(candidates []string, q string, limit int) []string {
	q = strings.ToLower(strings.TrimSpace(q))
	if q == "" || limit <= 0 {
		return nil
	}
	maxDist := len([]rune(q)) / 2
	if maxDist < 2 {
		maxDist = 2
	}

	type scored struct {
		name string
		dist int
	}
	var hits []scored
	for _, c := range candidates {
		lc := strings.ToLower(c)
		if strings.Contains(lc, q) {
			hits = append(hits, scored{name: c})
			continue
		}
		d := levenshtein.ComputeDistance(q, lc)
		// compare against the surname too, "fangio" vs "Juan Manuel Fangio"
		if i := strings.LastIndex(lc, " "); i >= 0 {
			if ds := levenshtein.ComputeDistance(q, lc[i+1:]); ds < d {
				d = ds
			}
		}
		if d <= maxDist {
			hits = append(hits, scored{name: c, dist: d})
		}
	}
	sort.SliceStable(hits, func(i, j int) bool {
		if hits[i].dist != hits[j].dist {
			return hits[i].dist < hits[j].dist
		}
		return hits[i].name < hits[j].name
	})
	if len(hits) > limit {
		hits = hits[:limit]
	}
	out := make([]string, len(hits))
	for i, h := range hits {
		out[i] = h.name
	}
	return out
}
