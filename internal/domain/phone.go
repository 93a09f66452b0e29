package domain

import "regexp"

// phonePattern matches international phone numbers: optional leading "+",
// first digit 1-9, up to 15 digits total (E.164).
var phonePattern = regexp.MustCompile(`^\+?[1-9]\d{1,14}$`)

// ValidPhone reports whether s is an acceptable phone number.
func ValidPhone(s string) bool {
	return phonePattern.MatchString(s)
}
