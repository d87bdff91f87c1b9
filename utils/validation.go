// utils/validation.go
package utils

import (
	"regexp"
	"strings"
)

var phoneCleaner = strings.NewReplacer(" ", "", "-", "", "(", "", ")", "")

// ValidatePhone checks if a phone number is in a valid international
// format: optional + prefix followed by 7-15 digits.
func ValidatePhone(phone string) bool {
	cleaned := phoneCleaner.Replace(phone)
	match, _ := regexp.MatchString(`^\+?[1-9]\d{1,14}$`, cleaned)
	return match
}
