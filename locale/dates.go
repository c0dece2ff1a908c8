package locale

import (
	"regexp"
	"strings"
	"time"
)

const (
	DATE_LAYOUT_STORE   = "02-01-2006"
	DATE_LAYOUT_DISPLAY = "02/01/2006"
	DATE_LAYOUT_DAY     = "02/01"
)

var storeDatePattern = regexp.MustCompile(`^\d{2}-\d{2}-\d{4}$`)

var zonedLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02 15:04:05Z07:00",
	"2006-01-02 15:04:05.999999Z07:00",
}

var localLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ParseDate accepts the stored DD-MM-YYYY literal or a timestamp and returns
// the instant in loc.
func ParseDate(s string, loc *time.Location) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}

	if storeDatePattern.MatchString(s) {
		t, err := time.ParseInLocation(DATE_LAYOUT_STORE, s, loc)
		if err != nil {
			return time.Time{}, false
		}
		return t, true
	}

	for _, layout := range zonedLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.In(loc), true
		}
	}
	for _, layout := range localLayouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t, true
		}
	}

	return time.Time{}, false
}

// FormatDate shows a stored date as DD/MM/YYYY, echoing input it cannot read.
func FormatDate(s string, loc *time.Location) string {
	if storeDatePattern.MatchString(s) {
		return strings.ReplaceAll(s, "-", "/")
	}

	t, ok := ParseDate(s, loc)
	if !ok {
		return s
	}
	return t.Format(DATE_LAYOUT_DISPLAY)
}

// StoreDate renders t in the DD-MM-YYYY form the store keeps in text columns.
func StoreDate(t time.Time) string {
	return t.Format(DATE_LAYOUT_STORE)
}
