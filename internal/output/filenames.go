package output

import (
	"fmt"

	"github.com/jonathan/news-curator/internal/types"
)

// AllocateFilenames assigns a deterministic, collision-free filename to each
// article, aligned by index with the input. Articles are grouped by canonical
// date; within each date the sequence counter starts at 1 and increments in
// the order articles are presented: selection order, not original row order.
//
// Filenames have the form "YYYY-MM-DD-NN.html" with the sequence zero-padded
// to two digits. A date with 100 or more articles widens past the padding;
// uniqueness still holds.
func AllocateFilenames(articles []types.ScoredArticle) []string {
	sequence := make(map[string]int, len(articles))
	filenames := make([]string, len(articles))

	for i := range articles {
		date := articles[i].DateKey()
		sequence[date]++
		filenames[i] = fmt.Sprintf("%s-%02d.html", date, sequence[date])
	}

	return filenames
}
