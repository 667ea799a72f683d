package engine

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPercent(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name      string
		completed int
		total     int
		want      int
	}{
		{"nothing done", 0, 10, 0},
		{"one of ten", 1, 10, 10},
		{"nine of ten", 9, 10, 90},
		{"all done", 10, 10, 100},
		{"one of three floors", 1, 3, 33},
		{"two of three floors", 2, 3, 66},
		{"large runs clamp below 100", 199, 200, 99},
		{"zero total", 0, 0, 0},
		{"negative completed", -1, 5, 0},
		{"completed past total", 7, 5, 100},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tc.want, Percent(tc.completed, tc.total))
		})
	}
}

func TestPercentNeverShows100Early(t *testing.T) {
	t.Parallel()

	for total := 1; total <= 25; total++ {
		for completed := 0; completed < total; completed++ {
			pct := Percent(completed, total)
			require.GreaterOrEqual(t, pct, 0)
			require.Less(t, pct, 100, "completed=%d total=%d", completed, total)
		}
		require.Equal(t, 100, Percent(total, total))
	}
}
