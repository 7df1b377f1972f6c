package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeDate(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"2021", "2021-01-01"},
		{"03/2020", "2020-03-01"},
		{"3/2020", "2020-03-01"},
		{"March 2019", "2019-03-01"},
		{"Mar 2019", "2019-03-01"},
		{"Sept 2018", "2018-09-01"},
		{"December 2022", "2022-12-01"},
		{"2021-06-15", "2021-06-15"}, // already normalized, passed through
		{"13/2020", "13/2020"},       // invalid month, passed through
		{"sometime", "sometime"},     // unrecognized, passed through
	}

	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			assert.Equal(t, tc.want, NormalizeDate(tc.in))
		})
	}
}

func TestParseDateRange(t *testing.T) {
	t.Run("month-year to present", func(t *testing.T) {
		r, ok := parseDateRange("Jan 2021 - Present")
		assert.True(t, ok)
		assert.Equal(t, "2021-01-01", r.start)
		assert.Empty(t, r.end)
		assert.True(t, r.current)
	})

	t.Run("year to year", func(t *testing.T) {
		r, ok := parseDateRange("2018 - 2022")
		assert.True(t, ok)
		assert.Equal(t, "2018-01-01", r.start)
		assert.Equal(t, "2022-01-01", r.end)
		assert.False(t, r.current)
	})

	t.Run("slash dates with en dash", func(t *testing.T) {
		r, ok := parseDateRange("03/2020 – 11/2021")
		assert.True(t, ok)
		assert.Equal(t, "2020-03-01", r.start)
		assert.Equal(t, "2021-11-01", r.end)
	})

	t.Run("ongoing counts as current", func(t *testing.T) {
		r, ok := parseDateRange("May 2023 - Ongoing")
		assert.True(t, ok)
		assert.True(t, r.current)
	})

	t.Run("single year is an open-ended start", func(t *testing.T) {
		r, ok := parseDateRange("2019")
		assert.True(t, ok)
		assert.Equal(t, "2019-01-01", r.start)
		assert.Empty(t, r.end)
		assert.False(t, r.current)
	})

	t.Run("two-digit years are not recognized", func(t *testing.T) {
		_, ok := parseDateRange("'18 - '20")
		assert.False(t, ok)
	})

	t.Run("plain prose does not match", func(t *testing.T) {
		_, ok := parseDateRange("San Francisco, CA")
		assert.False(t, ok)
	})
}
