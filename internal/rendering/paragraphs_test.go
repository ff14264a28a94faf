package rendering

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitParagraphs_EmptyDescription(t *testing.T) {
	for _, input := range []string{"", "   ", "\n\n"} {
		got := SplitParagraphs(input)
		assert.Equal(t, []string{"No description available."}, got, "input %q", input)
	}
}

func TestSplitParagraphs_BlankLineSplit(t *testing.T) {
	got := SplitParagraphs("First block.\n\nSecond block.\n\n\n\nThird block.")

	assert.Equal(t, []string{"First block.", "Second block.", "Third block."}, got)
}

func TestSplitParagraphs_BlankLineSplitTakesPriority(t *testing.T) {
	// Even a very long first block is not re-split into sentences.
	long := strings.Repeat("A sentence. ", 40)
	got := SplitParagraphs(long + "\n\ntail")

	require.Len(t, got, 2)
	assert.Equal(t, "tail", got[1])
}

func TestSplitParagraphs_ShortDescriptionIsOneParagraph(t *testing.T) {
	got := SplitParagraphs("One sentence. Another sentence.")

	assert.Equal(t, []string{"One sentence. Another sentence."}, got)
}

func TestSplitParagraphs_SentencesReassembledUpToTarget(t *testing.T) {
	sentence := strings.Repeat("x", 120) // two sentences exceed the 200-char target
	description := sentence + ". " + sentence + ". " + sentence

	got := SplitParagraphs(description)

	require.Len(t, got, 2)
	assert.Equal(t, sentence+". "+sentence, got[0])
	assert.Equal(t, sentence, got[1])
}

func TestSplitParagraphs_ParagraphClosesOnlyAfterExceedingTarget(t *testing.T) {
	// 200 chars exactly does not close the paragraph; the next sentence joins it.
	first := strings.Repeat("a", 200)
	got := SplitParagraphs(first + ". next")

	require.Len(t, got, 1)
	assert.Equal(t, first+". next", got[0])
}

func TestSplitParagraphs_NoTextLost(t *testing.T) {
	description := strings.Repeat("Markets moved on the report. ", 20) + "End."

	got := SplitParagraphs(description)

	require.NotEmpty(t, got)
	joined := strings.Join(got, ". ")
	assert.Equal(t, strings.TrimSpace(description), joined)
}
