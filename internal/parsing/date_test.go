package parsing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate_SupportedFormats(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  time.Time
	}{
		{"ISO", "2024-03-15", time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)},
		{"US slash", "03/15/2024", time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)},
		{"EU slash", "15/03/2024", time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)},
		{"ISO slash", "2024/03/15", time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)},
		{"surrounding whitespace", "  2024-03-15 ", time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDate(tt.input)
			require.NoError(t, err)
			assert.True(t, got.Equal(tt.want), "got %s, want %s", got, tt.want)
		})
	}
}

func TestParseDate_AmbiguousBindsToMonthFirst(t *testing.T) {
	// 01/02/2024 matches both MM/DD and DD/MM; MM/DD is tried first.
	got, err := ParseDate("01/02/2024")
	require.NoError(t, err)
	assert.Equal(t, time.January, got.Month())
	assert.Equal(t, 2, got.Day())
}

func TestParseDate_DayFirstWhenMonthImpossible(t *testing.T) {
	// 31 cannot be a month, so the DD/MM/YYYY layout wins.
	got, err := ParseDate("31/12/2024")
	require.NoError(t, err)
	assert.Equal(t, time.December, got.Month())
	assert.Equal(t, 31, got.Day())
}

func TestParseDate_ExcelSerial(t *testing.T) {
	// Serial 45292 is 2024-01-01 in the 1900 date system.
	got, err := ParseDate("45292")
	require.NoError(t, err)
	assert.Equal(t, "2024-01-01", got.Format("2006-01-02"))
}

func TestParseDate_Unparsable(t *testing.T) {
	for _, input := range []string{"", "not a date", "2024-13-45", "March 15, 2024"} {
		_, err := ParseDate(input)
		assert.ErrorIs(t, err, ErrUnparsableDate, "input %q", input)
	}
}
