// Package rendering converts normalized articles into HTML markup.
package rendering

import "strings"

// EscapeHTML escapes the HTML special characters & < > " ' in text.
// All record-derived text is escaped before any markup is added, so emphasis
// spans are applied to already-safe content.
func EscapeHTML(text string) string {
	if text == "" {
		return ""
	}

	var result strings.Builder
	result.Grow(len(text) + len(text)/4)

	for _, r := range text {
		switch r {
		case '&':
			result.WriteString("&amp;")
		case '<':
			result.WriteString("&lt;")
		case '>':
			result.WriteString("&gt;")
		case '"':
			result.WriteString("&quot;")
		case '\'':
			result.WriteString("&#39;")
		default:
			result.WriteRune(r)
		}
	}

	return result.String()
}
