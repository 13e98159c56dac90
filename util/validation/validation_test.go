package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "a@b.com", NormalizeEmail("A@B.com "))
	assert.Equal(t, "jo.doe@example.no", NormalizeEmail("  Jo.Doe@Example.NO"))
	assert.Equal(t, "", NormalizeEmail(""))
	assert.Equal(t, "", NormalizeEmail("   "))
}

func TestIsValidEmail(t *testing.T) {
	valid := []string{"a@b.com", "jo.doe@example.no", "x@y.z"}
	for _, email := range valid {
		assert.True(t, IsValidEmail(email), email)
	}

	invalid := []string{"", "plainstring", "missing-at.com", "missing@dot"}
	for _, email := range invalid {
		assert.False(t, IsValidEmail(email), email)
	}
}

func TestIsValidDateOnly(t *testing.T) {
	valid := []string{"1990-05-10", "2000-02-29", "2025-12-31", "0001-01-01"}
	for _, date := range valid {
		assert.True(t, IsValidDateOnly(date), date)
	}

	invalid := []string{
		"",
		"1990-5-10",  // not zero-padded
		"10-05-1990", // wrong order
		"1990/05/10", // wrong separator
		"2025-13-01", // month out of range
		"2025-02-31", // impossible calendar date, must not roll over
		"2023-02-29", // not a leap year
		"1990-05-10T00:00:00Z",
		"1990-05-10 ",
	}
	for _, date := range invalid {
		assert.False(t, IsValidDateOnly(date), date)
	}
}

func TestRequireString(t *testing.T) {
	assert.NoError(t, RequireString("home.city", "Oslo"))

	err := RequireString("home.city", "   ")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "home.city")
}

func TestRequireNumber(t *testing.T) {
	salary := 50000.0
	assert.NoError(t, RequireNumber("work.salary", &salary))

	err := RequireNumber("work.salary", nil)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "work.salary")
}
