package rendering

import "regexp"

// emphasisPattern matches the fixed phrase set that gets visual emphasis.
// Matches are case-insensitive and whole-word; the original casing of the
// matched text is preserved in the output.
var emphasisPattern = regexp.MustCompile(`(?i)\b(What Happened|Why It Matters|Price Action|EXCLUSIVE|Breaking|Update)\b`)

// EmphasizePhrases wraps recognized phrases in an emphasis span. The input
// is expected to be HTML-escaped already; none of the phrases contain
// characters affected by escaping.
func EmphasizePhrases(paragraph string) string {
	return emphasisPattern.ReplaceAllString(paragraph, `<span class="font-700">$1</span>`)
}
