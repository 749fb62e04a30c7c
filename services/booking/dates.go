package booking

import (
	"fmt"
	"math"
	"time"
)

const dateLayout = "2006-01-02"

// ParseLocalDate parses "YYYY-MM-DD" as a local calendar date at midnight.
// Parsing in the local zone avoids the off-by-one-day shift that comes from
// treating the string as UTC.
func ParseLocalDate(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, fmt.Errorf("empty date")
	}
	t, err := time.ParseInLocation(dateLayout, value, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", value, err)
	}
	return t, nil
}

// rangeInOpenMonths reports whether every calendar day in the inclusive range
// [start, end] falls in one of the resort's open months.
func rangeInOpenMonths(start, end time.Time, openMonths []int) bool {
	if end.Before(start) {
		return false
	}
	allowed := make(map[time.Month]bool, len(openMonths))
	for _, m := range openMonths {
		allowed[time.Month(m)] = true
	}
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		if !allowed[d.Month()] {
			return false
		}
	}
	return true
}

// NightsBetween returns the number of nights in the stay, matching the
// checkout computation: ceil((checkOut - checkIn) / 24h).
func NightsBetween(checkIn, checkOut time.Time) int {
	return int(math.Ceil(checkOut.Sub(checkIn).Hours() / 24))
}
