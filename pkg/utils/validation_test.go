package utils

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsValidEmail(t *testing.T) {
	cases := map[string]bool{
		"user@example.com":         true,
		"first.last@sub.domain.io": true,
		"admin@mindjournal.com":    true,
		"":                         false,
		"plainaddress":             false,
		"user@domain":              false,
		"user@domain.c":            false,
		"user name@domain.com":     false,
		"user@@domain.com":         false,
		"user@domain.c0m":          false,
	}
	for email, want := range cases {
		assert.Equal(t, want, IsValidEmail(email), email)
	}
}

func TestIsValidUsername(t *testing.T) {
	assert.True(t, IsValidUsername("Bob"))
	assert.True(t, IsValidUsername("b"))
	assert.False(t, IsValidUsername("1bob"))
	assert.False(t, IsValidUsername(""))
	assert.False(t, IsValidUsername(" bob"))
	assert.False(t, IsValidUsername("_bob"))
}

func TestCheckPasswordStrength(t *testing.T) {
	weak := CheckPasswordStrength("aaaa")
	assert.Equal(t, StrengthWeak, weak.Strength)
	assert.Equal(t, 1, weak.Score)

	strong := CheckPasswordStrength("Aa1!aaaa")
	assert.Equal(t, StrengthStrong, strong.Strength)
	assert.Equal(t, 5, strong.Score)
	assert.Equal(t, "Strong: Excellent password!", strong.Message)

	medium := CheckPasswordStrength("abcdefgh1")
	assert.Equal(t, StrengthMedium, medium.Strength)
	assert.Equal(t, 3, medium.Score)

	assert.Equal(t, 6, CheckPasswordStrength("Aa1!aaaaaaaa").Score)
	assert.Equal(t, 0, CheckPasswordStrength("").Score)
}

func TestDoPasswordsMatch(t *testing.T) {
	assert.True(t, DoPasswordsMatch("secret", "secret"))
	assert.False(t, DoPasswordsMatch("secret", "Secret"))
}

func TestIsSuperAdmin(t *testing.T) {
	assert.True(t, IsSuperAdmin("admin@mindjournal.com"))
	assert.False(t, IsSuperAdmin("Admin@mindjournal.com"))
	assert.False(t, IsSuperAdmin("someone@mindjournal.com"))
}

func TestNormalizeTags(t *testing.T) {
	got := NormalizeTags([]string{" Work ", "work", "self,care", "", "  ", "SLEEP", "sleep"})
	assert.Equal(t, []string{"work", "selfcare", "sleep"}, got)

	empty := NormalizeTags(nil)
	require.NotNil(t, empty)
	assert.Len(t, empty, 0)
}

func TestValidationErrors(t *testing.T) {
	var errs ValidationErrors
	require.NoError(t, errs.Err())

	errs.Add("name", "Name is required")
	errs.Add("email", "Email is required")
	errs.Add("name", "second message")

	err := errs.Err()
	require.Error(t, err)
	assert.Equal(t, "Name is required; Email is required; second message", err.Error())
	assert.Equal(t, map[string]string{"name": "Name is required", "email": "Email is required"}, errs.Fields())

	var target ValidationErrors
	assert.True(t, errors.As(err, &target))
}
