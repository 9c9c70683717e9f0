package everify

import (
	"strings"

	"github.com/nyaruka/phonenumbers"
)

const phoneSeparators = " -()."

// NormalizePhone returns phoneNumber in E.164 form, e.g. "+14155552671".
// The number must carry its country code; no default region is assumed.
func NormalizePhone(phoneNumber string) (string, error) {
	if strings.Count(phoneNumber, "+") != 1 || strings.ContainsFunc(phoneNumber, invalidPhoneRune) {
		return "", ErrInvalidPhoneNumber
	}

	num, err := phonenumbers.Parse(phoneNumber, "")
	if err != nil || !phonenumbers.IsValidNumber(num) {
		return "", ErrInvalidPhoneNumber
	}
	return phonenumbers.Format(num, phonenumbers.E164), nil
}

func invalidPhoneRune(r rune) bool {
	if r == '+' || (r >= '0' && r <= '9') {
		return false
	}
	return !strings.ContainsRune(phoneSeparators, r)
}

// PhoneRegion returns the ISO 3166-1 alpha-2 region of phoneNumber, or ""
// when it cannot be parsed.
func PhoneRegion(phoneNumber string) string {
	num, err := phonenumbers.Parse(phoneNumber, "")
	if err != nil {
		return ""
	}
	return phonenumbers.GetRegionCodeForNumber(num)
}
