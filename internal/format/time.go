package format

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"time"

	"github.com/arcadia-tracker/arcadia-ui/internal/model"
)

// RelativeTime renders t relative to the formatter's clock: "45s ago",
// "3m ago", "in 2h", "5d ago". The magnitude is floored in the largest unit
// that keeps it below the next threshold.
func (f *Formatter) RelativeTime(t time.Time) string {
	diff := f.now().Sub(t).Seconds()
	future := diff < 0
	abs := math.Abs(diff)

	var value int64
	var unit string
	switch {
	case abs < 60:
		value, unit = int64(math.Floor(abs)), "s"
	case abs < 3600:
		value, unit = int64(math.Floor(abs/60)), "m"
	case abs < 86400:
		value, unit = int64(math.Floor(abs/3600)), "h"
	default:
		value, unit = int64(math.Floor(abs/86400)), "d"
	}

	if future {
		return fmt.Sprintf("in %d%s", value, unit)
	}
	return fmt.Sprintf("%d%s ago", value, unit)
}

// AbsoluteTime renders t as "5 January 2024, 14:07" in the formatter's zone
func (f *Formatter) AbsoluteTime(t time.Time) string {
	local := t.In(f.location)
	return fmt.Sprintf("%d %s %d, %02d:%02d",
		local.Day(), f.monthName(local.Month()), local.Year(), local.Hour(), local.Minute())
}

// Layouts accepted for statistics periods. Periods without an offset are
// read as UTC.
var periodLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
	"2006-01",
	"2006",
}

func parsePeriod(period string) (time.Time, bool) {
	for _, layout := range periodLayouts {
		if t, err := time.ParseInLocation(layout, period, time.UTC); err == nil {
			return t.UTC(), true
		}
	}
	return time.Time{}, false
}

// DateTimeLabel renders a statistics bucket label in UTC with a precision
// matching interval: "2024", "January 2024", "Jan 5, 2024",
// "Jan 5, 2024, 03:00 PM" and "W1 2024" for ISO weeks. The year printed
// for weeks is the calendar year of period. Unparseable periods are
// returned unchanged.
func (f *Formatter) DateTimeLabel(period string, interval model.StatsInterval) string {
	t, ok := parsePeriod(period)
	if !ok {
		return period
	}

	switch interval {
	case model.StatsIntervalYear:
		return strconv.Itoa(t.Year())
	case model.StatsIntervalMonth:
		return fmt.Sprintf("%s %d", f.monthName(t.Month()), t.Year())
	case model.StatsIntervalWeek:
		_, week := t.ISOWeek()
		return fmt.Sprintf("W%d %d", week, t.Year())
	case model.StatsIntervalHour:
		return fmt.Sprintf("%s %d, %d, %s", f.shortMonthName(t.Month()), t.Day(), t.Year(), t.Format("03:04 PM"))
	default:
		return fmt.Sprintf("%s %d, %d", f.shortMonthName(t.Month()), t.Day(), t.Year())
	}
}

var localDatePrefix = regexp.MustCompile(`^(\d{4})-(\d{2})-(\d{2})`)

// ParseLocalDate reads a YYYY-MM-DD prefix as midnight in the formatter's
// zone. Out-of-range days roll over the same way time.Date does. It reports
// false when text does not start with a date.
func (f *Formatter) ParseLocalDate(text string) (time.Time, bool) {
	m := localDatePrefix.FindStringSubmatch(text)
	if m == nil {
		return time.Time{}, false
	}
	year, _ := strconv.Atoi(m[1])
	month, _ := strconv.Atoi(m[2])
	day, _ := strconv.Atoi(m[3])
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, f.location), true
}

// DateToLocalString renders the calendar date of t in the formatter's zone as YYYY-MM-DD
func (f *Formatter) DateToLocalString(t time.Time) string {
	return t.In(f.location).Format(time.DateOnly)
}
