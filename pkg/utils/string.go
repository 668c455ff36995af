package utils

import (
	"fmt"
	"math/rand"
	"strings"
	"unicode"
)

var letters = []rune("abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ123456789")

func GenerateRandomStringWithLength(n int) string {
	b := make([]rune, n)
	for i := range b {
		b[i] = letters[rand.Intn(len(letters))]
	}
	return string(b)
}

// DigitsOnly strips every non-digit rune from s.
func DigitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// FormatPhone renders a phone number in the "0 (5xx) xxx xx xx" display
// format used across the agency screens. Inputs shorter than 10 digits are
// returned as bare digits.
func FormatPhone(raw string) string {
	digits := DigitsOnly(raw)
	if len(digits) < 10 {
		return digits
	}
	d := digits[len(digits)-10:]
	return fmt.Sprintf("0 (%s) %s %s %s", d[0:3], d[3:6], d[6:8], d[8:10])
}
