package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testBounds = YearBounds{Min: 1800, Max: 2050, Default: 2050}

func TestParseView(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		v, err := ParseView("", "", testBounds)
		require.NoError(t, err)
		assert.Equal(t, ViewState{Year: 2050, Region: WholeWorld}, v)
	})

	t.Run("explicit values", func(t *testing.T) {
		v, err := ParseView(" 1900 ", "방글라데시", testBounds)
		require.NoError(t, err)
		assert.Equal(t, ViewState{Year: 1900, Region: "방글라데시"}, v)
	})

	t.Run("bounds are inclusive", func(t *testing.T) {
		_, err := ParseView("1800", "", testBounds)
		require.NoError(t, err)
		_, err = ParseView("2050", "", testBounds)
		require.NoError(t, err)
	})

	t.Run("rejections", func(t *testing.T) {
		cases := []struct {
			name, year, region string
		}{
			{"non-numeric year", "soon", ""},
			{"year below range", "1799", ""},
			{"year above range", "2051", ""},
			{"unknown region", "2000", "Atlantis"},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := ParseView(tc.year, tc.region, testBounds)
				require.ErrorIs(t, err, ErrInvalidArgument)
			})
		}
	})
}

func TestYearBounds_Contains(t *testing.T) {
	assert.True(t, testBounds.Contains(1800))
	assert.True(t, testBounds.Contains(2050))
	assert.False(t, testBounds.Contains(1799))
	assert.False(t, testBounds.Contains(2051))
}
