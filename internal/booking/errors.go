// internal/booking/errors.go
package booking

import "errors"

var (
	// ErrMissingField is returned when a required create field is absent.
	ErrMissingField = errors.New("name, facility, date, start time and end time are required")

	// ErrInvalidDateFormat is returned when the date is not YYYY-MM-DD.
	ErrInvalidDateFormat = errors.New("date must be a valid YYYY-MM-DD date")

	// ErrInvalidTimeFormat is returned when a time is not 24-hour HH:MM.
	ErrInvalidTimeFormat = errors.New("start and end times must be valid HH:MM times")

	// ErrPastDate is returned for dates strictly before the current calendar day.
	ErrPastDate = errors.New("reservations cannot be made for past dates")

	// ErrInvalidTimeRange is returned when the start time is not before the end time.
	ErrInvalidTimeRange = errors.New("end time must be after start time")

	// ErrConflict is returned when the requested slot overlaps an existing reservation.
	ErrConflict = errors.New("the requested time slot is already reserved")

	// ErrMissingRangeBounds is returned when a range query lacks a bound.
	ErrMissingRangeBounds = errors.New("start and end dates are required")

	ErrNotFound = errors.New("reservation not found")
)
