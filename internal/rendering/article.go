package rendering

import (
	"strings"

	"github.com/jonathan/news-curator/internal/config"
	"github.com/jonathan/news-curator/internal/types"
)

// RenderArticle converts an article into HTML content: a heading, an
// optional metadata block, and the description split into emphasized
// paragraphs. The transform is deterministic; all record-derived text is
// HTML-escaped. Sources matching the configured important-source list are
// flagged with a distinct class and badge.
func RenderArticle(article *types.Article, cfg *config.Config) string {
	var b strings.Builder

	b.WriteString(`<h2 class="text-32 mb-4 font-700 elite-bold">`)
	b.WriteString(EscapeHTML(article.Title))
	b.WriteString("</h2>\n")

	// Metadata block is omitted entirely when neither source nor link is present.
	if article.Source != "" || article.Link != "" {
		b.WriteString("<div class=\"article-meta\">\n")
		if article.Source != "" {
			if cfg.IsImportantSource(article.Source) {
				b.WriteString(`  <p class="source important-source"><strong>Source:</strong> `)
				b.WriteString(EscapeHTML(article.Source))
				b.WriteString(` <span class="important-badge">★</span></p>`)
				b.WriteString("\n")
			} else {
				b.WriteString(`  <p class="source"><strong>Source:</strong> `)
				b.WriteString(EscapeHTML(article.Source))
				b.WriteString("</p>\n")
			}
		}
		if article.Link != "" {
			link := EscapeHTML(article.Link)
			b.WriteString(`  <p class="link"><strong>Link:</strong> <a href="`)
			b.WriteString(link)
			b.WriteString(`" target="_blank">`)
			b.WriteString(link)
			b.WriteString("</a></p>\n")
		}
		b.WriteString("</div>\n")
	}

	b.WriteString("<div class=\"description\">\n")
	for _, paragraph := range SplitParagraphs(article.Description) {
		b.WriteString("  <p>")
		b.WriteString(EmphasizePhrases(EscapeHTML(paragraph)))
		b.WriteString("</p>\n")
	}
	b.WriteString("</div>")

	return b.String()
}
