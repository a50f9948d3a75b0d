package booking

import (
	"errors"
	"testing"
	"time"
)

var testToday = time.Date(2025, 6, 1, 14, 30, 0, 0, time.Local)

func TestValidateCreate(t *testing.T) {
	valid := CreateInput{
		Name:      "Jamie Park",
		Facility:  "Gymnasium",
		Date:      "2025-06-02",
		StartTime: "09:00",
		EndTime:   "10:00",
	}

	tests := []struct {
		name    string
		mutate  func(*CreateInput)
		wantErr error
	}{
		{"valid input", func(in *CreateInput) {}, nil},
		{"same-day booking allowed", func(in *CreateInput) { in.Date = "2025-06-01" }, nil},
		{"missing name", func(in *CreateInput) { in.Name = "" }, ErrMissingField},
		{"missing facility", func(in *CreateInput) { in.Facility = "" }, ErrMissingField},
		{"missing date", func(in *CreateInput) { in.Date = "" }, ErrMissingField},
		{"missing start time", func(in *CreateInput) { in.StartTime = "" }, ErrMissingField},
		{"missing end time", func(in *CreateInput) { in.EndTime = "" }, ErrMissingField},
		{"unpadded date", func(in *CreateInput) { in.Date = "2025-6-2" }, ErrInvalidDateFormat},
		{"slash date", func(in *CreateInput) { in.Date = "2025/06/02" }, ErrInvalidDateFormat},
		{"impossible date", func(in *CreateInput) { in.Date = "2025-02-30" }, ErrInvalidDateFormat},
		{"time without colon", func(in *CreateInput) { in.StartTime = "0900" }, ErrInvalidTimeFormat},
		{"hour out of range", func(in *CreateInput) { in.EndTime = "24:00" }, ErrInvalidTimeFormat},
		{"minute out of range", func(in *CreateInput) { in.StartTime = "09:60" }, ErrInvalidTimeFormat},
		{"past date", func(in *CreateInput) { in.Date = "2025-05-31" }, ErrPastDate},
		{"start equals end", func(in *CreateInput) { in.EndTime = "09:00" }, ErrInvalidTimeRange},
		{"start after end", func(in *CreateInput) { in.StartTime = "11:00" }, ErrInvalidTimeRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := valid
			tt.mutate(&in)

			err := validateCreate(in, testToday)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("validateCreate() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateCreateOrder(t *testing.T) {
	// A past date with malformed times must fail on the time format first:
	// the pipeline short-circuits in declaration order.
	in := CreateInput{
		Name:      "Jamie Park",
		Facility:  "Gymnasium",
		Date:      "2020-01-01",
		StartTime: "morning",
		EndTime:   "afternoon",
	}
	if err := validateCreate(in, testToday); !errors.Is(err, ErrInvalidTimeFormat) {
		t.Errorf("validateCreate() = %v, want %v", err, ErrInvalidTimeFormat)
	}

	// Missing fields win over everything else.
	in.Name = ""
	if err := validateCreate(in, testToday); !errors.Is(err, ErrMissingField) {
		t.Errorf("validateCreate() = %v, want %v", err, ErrMissingField)
	}
}
