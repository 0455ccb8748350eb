package models

// Period is the aggregation window requested by the watch.
//
// Wire values are fixed by the watch app message keys:
// 0=daily, 1=weekly, 2=monthly. Anything else is treated as daily.
type Period int

const (
	PeriodDaily Period = iota
	PeriodWeekly
	PeriodMonthly
)

// ParsePeriod maps a raw wire value onto a Period, defaulting to daily
// for unknown values so the watch always gets an answer.
func ParsePeriod(v int) Period {
	switch Period(v) {
	case PeriodWeekly, PeriodMonthly:
		return Period(v)
	default:
		return PeriodDaily
	}
}

// String returns the human label used in logs.
func (p Period) String() string {
	switch p {
	case PeriodWeekly:
		return "Weekly"
	case PeriodMonthly:
		return "Monthly"
	default:
		return "Daily"
	}
}
