package algo

import (
	"sort"

	"github.com/projectparaiba/paraiba/schema"
)

// Rank sorts candidates by composite score in descending order. The sort is
// stable, so candidates with equal scores keep their input order.
func Rank(results []schema.RankedCandidate) []schema.RankedCandidate {
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Result.Score > results[j].Result.Score
	})
	return results
}

// Top returns the first 'limit' ranked candidates. If limit is zero or
// greater than the number of candidates, all of them are returned.
func Top(results []schema.RankedCandidate, limit int) []schema.RankedCandidate {
	if limit > 0 && len(results) > limit {
		return results[:limit]
	}
	return results
}
