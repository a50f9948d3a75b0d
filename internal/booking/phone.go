// internal/booking/phone.go
package booking

import (
	"strings"

	"github.com/nyaruka/phonenumbers"
)

const phoneRegion = "US"

// normalizePhone formats a provided phone number as E.164 when it parses as
// a valid number, and otherwise stores the trimmed input as given. The field
// is informational, so normalization never rejects a reservation.
func normalizePhone(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return DefaultPhone
	}
	number, err := phonenumbers.Parse(raw, phoneRegion)
	if err != nil || !phonenumbers.IsValidNumber(number) {
		return raw
	}
	return phonenumbers.Format(number, phonenumbers.E164)
}
