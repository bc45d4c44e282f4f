// Package valueobject defines immutable value types shared across the domain.
package valueobject

import "time"

// DateFilter selects a reporting window relative to the current instant.
type DateFilter string

const (
	DateFilterToday   DateFilter = "today"
	DateFilterWeek    DateFilter = "week"
	DateFilterMonth   DateFilter = "month"
	DateFilterQuarter DateFilter = "quarter"
	DateFilterYear    DateFilter = "year"
	DateFilterCustom  DateFilter = "custom"
	DateFilterAll     DateFilter = "all"
)

// customDateLayout is the expected format for custom range bounds.
const customDateLayout = "2006-01-02"

// DateRange is a resolved reporting window. Both bounds are inclusive; Start
// is the first instant of the window and End the last representable one
// (23:59:59.999999). A nil Start and End means "no date filter".
type DateRange struct {
	Start *time.Time
	End   *time.Time
}

// ResolveDateRange maps a filter keyword to a concrete window around now.
//
// Every reporting endpoint resolves its window through this function so that
// "this month" means the same thing everywhere. Weeks start on Monday. A
// custom filter with missing or unparseable bounds falls back to the month
// window, as does any unrecognized keyword. The "all" filter resolves to an
// unbounded range.
func ResolveDateRange(now time.Time, filter DateFilter, startStr, endStr string) DateRange {
	if filter == DateFilterCustom {
		if r, ok := resolveCustomRange(now.Location(), startStr, endStr); ok {
			return r
		}
		filter = DateFilterMonth
	}

	switch filter {
	case DateFilterToday:
		start := startOfDay(now)
		return boundedRange(start, start.AddDate(0, 0, 1))

	case DateFilterWeek:
		// Monday of the current week.
		weekday := int(now.Weekday())
		if weekday == 0 {
			weekday = 7
		}
		start := startOfDay(now.AddDate(0, 0, -(weekday - 1)))
		return boundedRange(start, start.AddDate(0, 0, 7))

	case DateFilterQuarter:
		quarter := (int(now.Month()) - 1) / 3
		start := time.Date(now.Year(), time.Month(quarter*3+1), 1, 0, 0, 0, 0, now.Location())
		return boundedRange(start, start.AddDate(0, 3, 0))

	case DateFilterYear:
		start := time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, now.Location())
		return boundedRange(start, start.AddDate(1, 0, 0))

	case DateFilterAll:
		return DateRange{}

	default:
		// Month window, also the fallback for unknown filters.
		start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
		return boundedRange(start, start.AddDate(0, 1, 0))
	}
}

// resolveCustomRange parses explicit YYYY-MM-DD bounds. The start gets
// 00:00:00 and the end the last microsecond of its calendar day.
func resolveCustomRange(loc *time.Location, startStr, endStr string) (DateRange, bool) {
	if startStr == "" || endStr == "" {
		return DateRange{}, false
	}

	start, err := time.ParseInLocation(customDateLayout, startStr, loc)
	if err != nil {
		return DateRange{}, false
	}
	endDay, err := time.ParseInLocation(customDateLayout, endStr, loc)
	if err != nil {
		return DateRange{}, false
	}

	return boundedRange(start, endDay.AddDate(0, 0, 1)), true
}

// boundedRange builds an inclusive range from a start instant and the first
// instant past the window. The end lands on 23:59:59.999999 of the last day.
func boundedRange(start, next time.Time) DateRange {
	end := next.Add(-time.Microsecond)
	return DateRange{Start: &start, End: &end}
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
