package rendering

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEscapeHTML(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", ""},
		{"plain text untouched", "Quarterly earnings beat estimates", "Quarterly earnings beat estimates"},
		{"ampersand", "Johnson & Johnson", "Johnson &amp; Johnson"},
		{"angle brackets", "<script>alert(1)</script>", "&lt;script&gt;alert(1)&lt;/script&gt;"},
		{"quotes", `He said "buy" at Bob's desk`, "He said &quot;buy&quot; at Bob&#39;s desk"},
		{"all specials", `&<>"'`, "&amp;&lt;&gt;&quot;&#39;"},
		{"unicode preserved", "Résumé — 株式", "Résumé — 株式"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, EscapeHTML(tt.input))
		})
	}
}

func TestEscapeHTML_AlreadyEscapedIsEscapedAgain(t *testing.T) {
	// Escaping is not idempotent; callers must escape exactly once.
	assert.Equal(t, "&amp;amp;", EscapeHTML("&amp;"))
}
