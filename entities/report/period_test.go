package report

import (
	"testing"
	"time"
	_ "time/tzdata"

	"gestaobikes/schemas"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func saoPaulo(t *testing.T) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation("America/Sao_Paulo")
	require.NoError(t, err)
	return loc
}

func TestPeriodBounds(t *testing.T) {
	loc := saoPaulo(t)
	ref := time.Date(2025, 2, 14, 15, 30, 0, 0, loc)
	lastNano := time.Second - time.Nanosecond

	cases := []struct {
		mode  string
		start time.Time
		end   time.Time
	}{
		{schemas.REPORT_PERIOD_DAY, time.Date(2025, 2, 14, 0, 0, 0, 0, loc), time.Date(2025, 2, 14, 23, 59, 59, int(lastNano), loc)},
		{schemas.REPORT_PERIOD_MONTH, time.Date(2025, 2, 1, 0, 0, 0, 0, loc), time.Date(2025, 2, 28, 23, 59, 59, int(lastNano), loc)},
		{schemas.REPORT_PERIOD_YEAR, time.Date(2025, 1, 1, 0, 0, 0, 0, loc), time.Date(2025, 12, 31, 23, 59, 59, int(lastNano), loc)},
	}

	for _, tc := range cases {
		t.Run(tc.mode, func(t *testing.T) {
			p, err := PeriodBounds(tc.mode, ref, loc)
			require.NoError(t, err)
			assert.True(t, tc.start.Equal(p.Start), "start %s", p.Start)
			assert.True(t, tc.end.Equal(p.End), "end %s", p.End)
			assert.True(t, p.Contains(ref))
			assert.False(t, p.Contains(p.End.Add(time.Nanosecond)))
		})
	}

	_, err := PeriodBounds("week", ref, loc)
	assert.Error(t, err)
}

func TestPeriodBoundsUsesLocalCalendar(t *testing.T) {
	loc := saoPaulo(t)
	// 01:00 UTC on March 1st is still February 28th in São Paulo.
	ref := time.Date(2025, 3, 1, 1, 0, 0, 0, time.UTC)

	p, err := PeriodBounds(schemas.REPORT_PERIOD_MONTH, ref, loc)
	require.NoError(t, err)
	assert.Equal(t, time.February, p.Start.Month())
}
