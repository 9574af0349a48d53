package util

import "regexp"

var (
	// Indian mobile number as entered on registration forms: ten digits
	// starting with 6-9.
	mobilePattern = regexp.MustCompile(`^[6-9]\d{9}$`)

	// Same number with the 91 country prefix, required by the SMS OTP
	// provider.
	mobileWithCountryPattern = regexp.MustCompile(`^91[6-9]\d{9}$`)
)

// IsValidMobile reports whether s is a ten-digit Indian mobile number.
func IsValidMobile(s string) bool {
	return mobilePattern.MatchString(s)
}

// IsValidMobileWithCountryCode reports whether s is an Indian mobile number
// prefixed with 91, the format the OTP provider expects.
func IsValidMobileWithCountryCode(s string) bool {
	return mobileWithCountryPattern.MatchString(s)
}
