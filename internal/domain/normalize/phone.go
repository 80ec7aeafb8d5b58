package normalize

import (
	"strings"

	"github.com/nyaruka/phonenumbers"
)

// DefaultPhoneRegion is used when no region is configured.
const DefaultPhoneRegion = "AU"

// NormalizePhone returns the E.164 form of raw when it parses as a valid
// number for region, otherwise the trimmed input unchanged.
func NormalizePhone(raw, region string) string {
	s := strings.TrimSpace(raw)
	if s == "" {
		return ""
	}
	if region == "" {
		region = DefaultPhoneRegion
	}
	parsed, err := phonenumbers.Parse(s, strings.ToUpper(region))
	if err != nil || !phonenumbers.IsValidNumber(parsed) {
		return s
	}
	return phonenumbers.Format(parsed, phonenumbers.E164)
}
