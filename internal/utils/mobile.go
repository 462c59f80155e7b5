package utils

import (
	"errors"
	"regexp"
	"strings"
)

var ErrInvalidMobile = errors.New("invalid mobile number")

// Bangladeshi operator numbers: 01 followed by an operator digit 3-9 and 8 digits
var bdMobilePattern = regexp.MustCompile(`^01[3-9]\d{8}$`)

// NormalizeMobile returns the local 01XXXXXXXXX form of a Bangladeshi mobile number.
// Accepted inputs include +8801XXXXXXXXX, 8801XXXXXXXXX and 01XXXXXXXXX with spaces or dashes.
func NormalizeMobile(mobile string) (string, error) {
	stripped := strings.ReplaceAll(mobile, "-", "")
	stripped = strings.ReplaceAll(stripped, " ", "")
	stripped = strings.TrimPrefix(stripped, "+")

	if strings.HasPrefix(stripped, "880") {
		stripped = "0" + stripped[3:]
	}

	if !bdMobilePattern.MatchString(stripped) {
		return "", ErrInvalidMobile
	}
	return stripped, nil
}

// MaskMobile keeps only the last 4 digits visible, for logs
func MaskMobile(mobile string) string {
	if len(mobile) <= 4 {
		return mobile
	}
	return strings.Repeat("*", len(mobile)-4) + mobile[len(mobile)-4:]
}
