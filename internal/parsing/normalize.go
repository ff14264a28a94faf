package parsing

import (
	"fmt"
	"strings"
	"time"

	"github.com/jonathan/news-curator/internal/types"
)

// ExclusionMarker identifies non-article content. A record whose description
// contains this exact, case-sensitive substring is dropped before scoring.
// This is a content-type filter, not an error.
const ExclusionMarker = "Social Media Post"

// Normalize converts a raw record into a canonical article, or reports it as
// excluded. Field defaults:
//   - an unparsable date becomes now, with DateDefaulted set so callers can
//     distinguish parsed from defaulted
//   - a missing title becomes "Article <n>" from the 1-based row position
//   - all other missing fields become empty strings
//
// One malformed record never aborts a run; the caller logs exclusions and
// continues.
func Normalize(raw types.RawRecord, now time.Time, marker string) (*types.Article, bool) {
	if marker != "" && strings.Contains(raw.Description, marker) {
		return nil, true
	}

	article := &types.Article{
		Title:       raw.Title,
		Source:      raw.Source,
		Link:        raw.Link,
		Description: raw.Description,
	}

	if t, err := ParseDate(raw.Date); err == nil {
		article.Date = t
	} else {
		article.Date = now
		article.DateDefaulted = true
	}

	if strings.TrimSpace(article.Title) == "" {
		article.Title = fmt.Sprintf("Article %d", raw.Row)
	}

	return article, false
}
