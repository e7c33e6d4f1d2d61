package resource

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseClock(t *testing.T) {
	t.Run("valid values", func(t *testing.T) {
		cases := []struct {
			in   string
			want int
		}{
			{"00:00", 0},
			{"09:00", 540},
			{"09:30", 570},
			{"23:59", 1439},
			{"08:00:00", 480},
			{"22:15:30", 1335}, // seconds ignored
		}
		for _, tc := range cases {
			got, err := ParseClock(tc.in)
			require.NoError(t, err, tc.in)
			assert.Equal(t, tc.want, got, tc.in)
		}
	})

	t.Run("invalid values", func(t *testing.T) {
		for _, in := range []string{"", "9", "24:00", "12:60", "-1:00", "12:-5", "ab:cd", "12:34:56:78"} {
			_, err := ParseClock(in)
			assert.ErrorIs(t, err, ErrInvalidClock, in)
		}
	})
}
