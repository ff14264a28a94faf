// Package selection ranks scored articles and truncates to the configured maximum.
package selection

import (
	"sort"

	"github.com/jonathan/news-curator/internal/types"
)

// SelectTop orders articles by importance score descending, breaking ties by
// article date descending (more recent wins), and returns the first
// maxArticles entries. Articles equal on both keys keep their input order:
// the sort is stable, and that stability is part of this package's contract.
//
// The result length is min(maxArticles, len(scored)). A non-positive
// maxArticles selects nothing.
func SelectTop(scored []types.ScoredArticle, maxArticles int) []types.ScoredArticle {
	if maxArticles <= 0 {
		return nil
	}

	ordered := make([]types.ScoredArticle, len(scored))
	copy(ordered, scored)

	sort.SliceStable(ordered, func(i, j int) bool {
		if ordered[i].Score != ordered[j].Score {
			return ordered[i].Score > ordered[j].Score
		}
		return ordered[i].Date.After(ordered[j].Date)
	})

	if maxArticles < len(ordered) {
		ordered = ordered[:maxArticles]
	}
	return ordered
}
