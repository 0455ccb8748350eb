// Package timerange computes the inclusive date range covered by a
// requested sales period. It is pure: all arithmetic is anchored on a
// single caller-supplied reference instant, so a request straddling
// midnight cannot produce a mixed-day range.
package timerange

import (
	"regexp"
	"strconv"
	"time"

	"github.com/thibautrey/PebbleShopApp/internal/domain/models"
)

// isoMillis renders an instant with millisecond precision and an explicit
// numeric UTC offset, e.g. "2024-07-15T00:00:00.000+02:00".
const isoMillis = "2006-01-02T15:04:05.000-07:00"

var offsetPattern = regexp.MustCompile(`^([+-])(\d{2}):(\d{2})$`)

// Compute returns the inclusive start/end boundaries for the given period
// around the reference instant `now`.
//
// Boundaries (all in the resolved offset):
//   - Daily:   midnight .. 23:59:59.999 of now's calendar day.
//   - Weekly:  Monday 00:00:00.000 .. Sunday 23:59:59.999 of now's week.
//   - Monthly: the 1st 00:00:00.000 .. last day 23:59:59.999 of now's month.
//
// offset must be "±HH:MM" or empty; anything else falls back to now's own
// location, matching the watch companion behavior of trusting the device
// offset when settings carry none.
func Compute(period models.Period, now time.Time, offset string) models.DateRange {
	loc := resolveLocation(offset, now)
	local := now.In(loc)

	start := startOfDay(local)
	end := endOfDay(local)

	switch period {
	case models.PeriodWeekly:
		// Shift back to Monday; time.Weekday has Sunday=0.
		shift := int(start.Weekday()) - 1
		if start.Weekday() == time.Sunday {
			shift = 6
		}
		start = start.AddDate(0, 0, -shift)
		end = endOfDay(start.AddDate(0, 0, 6))
	case models.PeriodMonthly:
		start = time.Date(local.Year(), local.Month(), 1, 0, 0, 0, 0, loc)
		// First instant of the next month minus 1ms gives the last day's
		// 23:59:59.999 without hard-coding month lengths; time.Date
		// normalizes month 13 into January of the next year.
		end = time.Date(local.Year(), local.Month()+1, 1, 0, 0, 0, 0, loc).Add(-time.Millisecond)
	}

	return models.DateRange{
		Start: start.Format(isoMillis),
		End:   end.Format(isoMillis),
	}
}

// resolveLocation turns a "±HH:MM" offset string into a fixed zone, or
// falls back to the reference instant's own location when the string is
// empty or malformed.
func resolveLocation(offset string, now time.Time) *time.Location {
	m := offsetPattern.FindStringSubmatch(offset)
	if m == nil {
		return now.Location()
	}
	hh, _ := strconv.Atoi(m[2])
	mm, _ := strconv.Atoi(m[3])
	secs := (hh*60 + mm) * 60
	if m[1] == "-" {
		secs = -secs
	}
	return time.FixedZone(offset, secs)
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func endOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, int(999*time.Millisecond), t.Location())
}
