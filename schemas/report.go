package schemas

const (
	REPORT_PERIOD_DAY   = "day"
	REPORT_PERIOD_MONTH = "month"
	REPORT_PERIOD_YEAR  = "year"
)

// ValidPeriodMode reports whether mode is one of the dashboard period modes.
func ValidPeriodMode(mode string) bool {
	return mode == REPORT_PERIOD_DAY || mode == REPORT_PERIOD_MONTH || mode == REPORT_PERIOD_YEAR
}
