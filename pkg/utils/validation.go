package utils

import (
	"fmt"
	"regexp"
)

type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

var (
	tcknPattern = regexp.MustCompile(`^[1-9][0-9]{10}$`)
	vknPattern  = regexp.MustCompile(`^[0-9]{10}$`)
)

// ValidateTCKN checks an 11-digit national identity number.
func ValidateTCKN(tckn string) (bool, error) {
	if !tcknPattern.MatchString(tckn) {
		return false, fmt.Errorf("tckn must be 11 digits and must not start with 0")
	}
	return true, nil
}

// ValidateVKN checks a 10-digit corporate tax number.
func ValidateVKN(vkn string) (bool, error) {
	if !vknPattern.MatchString(vkn) {
		return false, fmt.Errorf("vkn must be 10 digits")
	}
	return true, nil
}
