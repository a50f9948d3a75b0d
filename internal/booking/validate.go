// internal/booking/validate.go
package booking

import (
	"regexp"
	"time"
)

const dateLayout = "2006-01-02"

var (
	datePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	timePattern = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d$`)
)

// validateCreate runs the create validation pipeline in order, returning the
// first failure: required fields, date format, time formats, past date,
// time ordering. The overlap check runs separately against the store.
func validateCreate(in CreateInput, today time.Time) error {
	if in.Name == "" || in.Facility == "" || in.Date == "" || in.StartTime == "" || in.EndTime == "" {
		return ErrMissingField
	}

	date, ok := parseDate(in.Date)
	if !ok {
		return ErrInvalidDateFormat
	}

	if !timePattern.MatchString(in.StartTime) || !timePattern.MatchString(in.EndTime) {
		return ErrInvalidTimeFormat
	}

	midnight := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, today.Location())
	if date.Before(midnight) {
		return ErrPastDate
	}

	// HH:MM strings order lexicographically, same as the stored encoding.
	if in.StartTime >= in.EndTime {
		return ErrInvalidTimeRange
	}

	return nil
}

// parseDate accepts strictly zero-padded YYYY-MM-DD calendar dates.
// time.Parse alone is too lenient about padding, so the shape is checked first.
func parseDate(value string) (time.Time, bool) {
	if !datePattern.MatchString(value) {
		return time.Time{}, false
	}
	date, err := time.ParseInLocation(dateLayout, value, time.Local)
	if err != nil {
		return time.Time{}, false
	}
	return date, true
}
