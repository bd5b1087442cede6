// Package sms sends order notification texts through the Twilio messaging
// API. Message text and destination normalization live here; the application
// core only decides which message goes out when.
package sms

import "strings"

// FormatNumber normalizes a stored phone number to E.164 for the Indian
// market. Ten digits get the +91 country code; a twelve-digit number that
// already starts with 91 just gets the plus sign; anything else is passed
// through with its digits intact.
func FormatNumber(phone string) string {
	var digits strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	cleaned := digits.String()

	switch {
	case len(cleaned) == 10:
		return "+91" + cleaned
	case len(cleaned) == 12 && strings.HasPrefix(cleaned, "91"):
		return "+" + cleaned
	default:
		return "+" + cleaned
	}
}
