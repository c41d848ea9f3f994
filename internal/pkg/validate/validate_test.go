package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEmail(t *testing.T) {
	valid := []string{
		"a@b.com",
		"user.name@example.com.au",
		"first+tag@sub.domain.org",
	}
	for _, s := range valid {
		assert.True(t, Email(s), "expected valid: %s", s)
	}

	invalid := []string{
		"",
		"plainaddress",
		"@missing-local.com",
		"user@nodot",
		"user@.com",
		"user name@example.com",
	}
	for _, s := range invalid {
		assert.False(t, Email(s), "expected invalid: %s", s)
	}
}

func TestAUMobile(t *testing.T) {
	valid := []string{
		"0412345678",
		"0512345678",
		"+61412345678",
		"+61512345678",
	}
	for _, s := range valid {
		assert.True(t, AUMobile(s), "expected valid: %s", s)
	}

	invalid := []string{
		"",
		"0312345678",   // landline prefix
		"041234567",    // too short
		"04123456789",  // too long
		"61412345678",  // missing + or 0
		"+62412345678", // wrong country code
		"0412 345 678", // spaces
		"abcdefghij",
	}
	for _, s := range invalid {
		assert.False(t, AUMobile(s), "expected invalid: %s", s)
	}
}
