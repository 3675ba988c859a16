package sanitizer

import (
	"strings"

	"github.com/nyaruka/phonenumbers"
)

// Numbers without a country code are tried as Indian first, then US.
var supportedRegions = []string{
	"IN",
	"US",
}

// NormalizePhone returns the E.164 form of phone, or "" when no supported
// region yields a valid number.
func NormalizePhone(phone string) string {
	phone = strings.TrimSpace(phone)

	if phone == "" {
		return ""
	}

	for _, region := range supportedRegions {
		parsedNumber, err := phonenumbers.Parse(phone, region)
		if err == nil && phonenumbers.IsValidNumber(parsedNumber) {
			return phonenumbers.Format(parsedNumber, phonenumbers.E164)
		}
	}
	return ""
}
