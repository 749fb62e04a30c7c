package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLocalDate(t *testing.T) {
	d, err := ParseLocalDate("2026-12-05")
	require.NoError(t, err)
	assert.Equal(t, 2026, d.Year())
	assert.Equal(t, time.December, d.Month())
	assert.Equal(t, 5, d.Day())
	assert.Equal(t, time.Local, d.Location())

	_, err = ParseLocalDate("")
	assert.Error(t, err)
	_, err = ParseLocalDate("05-12-2026")
	assert.Error(t, err)
}

func TestNightsBetween(t *testing.T) {
	in, _ := ParseLocalDate("2026-12-05")
	out, _ := ParseLocalDate("2026-12-07")
	assert.Equal(t, 2, NightsBetween(in, out))
	assert.Equal(t, 0, NightsBetween(in, in))
}

func TestRangeInOpenMonths(t *testing.T) {
	open := []int{11, 12, 1, 2}

	parse := func(s string) time.Time {
		d, err := ParseLocalDate(s)
		require.NoError(t, err)
		return d
	}

	// Fully inside the season, including the December to January rollover.
	assert.True(t, rangeInOpenMonths(parse("2026-11-10"), parse("2026-11-12"), open))
	assert.True(t, rangeInOpenMonths(parse("2026-12-30"), parse("2027-01-02"), open))

	// Touching a closed month anywhere in the range fails the whole range.
	assert.False(t, rangeInOpenMonths(parse("2026-10-31"), parse("2026-11-02"), open))
	assert.False(t, rangeInOpenMonths(parse("2027-02-27"), parse("2027-03-01"), open))
	assert.False(t, rangeInOpenMonths(parse("2026-06-10"), parse("2026-06-12"), open))

	// Inverted range.
	assert.False(t, rangeInOpenMonths(parse("2026-11-12"), parse("2026-11-10"), open))
}
