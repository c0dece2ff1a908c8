package report

import (
	"fmt"
	"time"

	"gestaobikes/schemas"
)

// Period is an inclusive [Start, End] window in the configured zone.
type Period struct {
	Mode  string    `json:"mode"`
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

func (p Period) Contains(t time.Time) bool {
	return !t.Before(p.Start) && !t.After(p.End)
}

func startOfDay(t time.Time, loc *time.Location) time.Time {
	t = t.In(loc)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
}

func endOfDay(t time.Time, loc *time.Location) time.Time {
	return startOfDay(t, loc).AddDate(0, 0, 1).Add(-time.Nanosecond)
}

// PeriodBounds returns the day, month or year around ref.
func PeriodBounds(mode string, ref time.Time, loc *time.Location) (Period, error) {
	ref = ref.In(loc)

	var start, end time.Time
	switch mode {
	case schemas.REPORT_PERIOD_DAY:
		start = startOfDay(ref, loc)
		end = endOfDay(ref, loc)
	case schemas.REPORT_PERIOD_MONTH:
		start = time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, loc)
		end = start.AddDate(0, 1, 0).Add(-time.Nanosecond)
	case schemas.REPORT_PERIOD_YEAR:
		start = time.Date(ref.Year(), time.January, 1, 0, 0, 0, 0, loc)
		end = start.AddDate(1, 0, 0).Add(-time.Nanosecond)
	default:
		return Period{}, fmt.Errorf("modo de período inválido %q, use day, month ou year", mode)
	}

	return Period{Mode: mode, Start: start, End: end}, nil
}
