package interview

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestWeekBounds(t *testing.T) {
	// 2026-08-26 is a Wednesday.
	wednesday := time.Date(2026, 8, 26, 15, 4, 0, 0, time.UTC)
	start, end := weekBounds(wednesday)
	require.Equal(t, time.Date(2026, 8, 24, 0, 0, 0, 0, time.UTC), start)
	require.Equal(t, time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC), end)

	monday := time.Date(2026, 8, 24, 0, 0, 0, 0, time.UTC)
	start, end = weekBounds(monday)
	require.Equal(t, monday, start)
	require.Equal(t, monday.AddDate(0, 0, 7), end)

	sunday := time.Date(2026, 8, 30, 23, 59, 0, 0, time.UTC)
	start, _ = weekBounds(sunday)
	require.Equal(t, time.Date(2026, 8, 24, 0, 0, 0, 0, time.UTC), start)
}
