package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateTCKN(t *testing.T) {
	ok, err := ValidateTCKN("12345678901")
	assert.True(t, ok)
	assert.NoError(t, err)

	invalid := []string{"02345678901", "1234567890", "1234567890a", ""}
	for _, tckn := range invalid {
		ok, err := ValidateTCKN(tckn)
		assert.False(t, ok, "tckn %q", tckn)
		assert.Error(t, err, "tckn %q", tckn)
	}
}

func TestValidateVKN(t *testing.T) {
	ok, err := ValidateVKN("1234567890")
	assert.True(t, ok)
	assert.NoError(t, err)

	for _, vkn := range []string{"12345678901", "123456789x", ""} {
		ok, err := ValidateVKN(vkn)
		assert.False(t, ok, "vkn %q", vkn)
		assert.Error(t, err, "vkn %q", vkn)
	}
}

func TestFormatPhone(t *testing.T) {
	assert.Equal(t, "0 (532) 123 45 67", FormatPhone("5321234567"))
	assert.Equal(t, "0 (532) 123 45 67", FormatPhone("0 532 123 45 67"))
	assert.Equal(t, "0 (532) 123 45 67", FormatPhone("+90 532 123 45 67"))
	assert.Equal(t, "532123", FormatPhone("532123"), "short inputs pass through as digits")
}

func TestDigitsOnly(t *testing.T) {
	assert.Equal(t, "905321234567", DigitsOnly("+90 (532) 123-45-67"))
	assert.Equal(t, "", DigitsOnly("no digits"))
}
