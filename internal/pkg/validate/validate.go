// Package validate holds the field-format rules that gin binding tags
// cannot express.
package validate

import (
	"regexp"
)

var (
	emailPattern = regexp.MustCompile(`^[A-Za-z0-9._%+\-]+@[A-Za-z0-9.\-]+\.[A-Za-z]{2,}$`)

	// Australian mobiles: +61 or a leading 0, then 4 or 5, then 8 digits.
	auMobilePattern = regexp.MustCompile(`^(\+61|0)[4-5]\d{8}$`)
)

// Email reports whether s is a plausible local@domain.tld address.
func Email(s string) bool {
	return emailPattern.MatchString(s)
}

// AUMobile reports whether s is an Australian-format mobile number.
func AUMobile(s string) bool {
	return auMobilePattern.MatchString(s)
}
