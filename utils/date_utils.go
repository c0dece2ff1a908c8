package utils

import (
	"fmt"
	"time"
	_ "time/tzdata"
)

const QUERY_DATE_LAYOUT = "2006-01-02"

// ParseQueryDate reads a YYYY-MM-DD query parameter as a calendar date in loc.
// An empty value yields ok=false with no error.
func ParseQueryDate(dateStr string, loc *time.Location) (t time.Time, ok bool, err error) {
	if dateStr == "" {
		return time.Time{}, false, nil
	}
	t, err = time.ParseInLocation(QUERY_DATE_LAYOUT, dateStr, loc)
	if err != nil {
		return time.Time{}, false, fmt.Errorf("data inválida %q, use o formato AAAA-MM-DD", dateStr)
	}
	return t, true, nil
}

func LoadLocation(name string) (*time.Location, error) {
	if name == "" {
		name = DEFAULT_TIMEZONE
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("[ENV] Valor inválido para TIMEZONE: %s", name)
	}
	return loc, nil
}
