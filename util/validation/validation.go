// Package validation holds the pure field checks and normalizers used at the
// request boundary. Nothing here touches storage.
package validation

import (
	"strings"
	"time"

	"census-api/util/common"
)

// DateOnlyLayout is the accepted calendar date format (ISO date, no time part).
const DateOnlyLayout = "2006-01-02"

// NormalizeEmail trims and lower-cases an email address. Missing input is
// treated as an empty string.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// IsValidEmail reports whether the string looks like an email address.
// Intentionally permissive: an "@" and a "." are enough, full RFC parsing is
// out of scope.
func IsValidEmail(email string) bool {
	return strings.Contains(email, "@") && strings.Contains(email, ".")
}

// IsValidDateOnly reports whether value is an exact YYYY-MM-DD date.
// Re-formatting the parsed time guards against values that parse but do not
// round-trip, and time.Parse itself rejects impossible dates such as
// 2025-02-31 instead of rolling them over.
func IsValidDateOnly(value string) bool {
	t, err := time.Parse(DateOnlyLayout, value)
	if err != nil {
		return false
	}
	return t.Format(DateOnlyLayout) == value
}

// RequireString fails with a field-specific error when value is empty or
// whitespace only.
func RequireString(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return common.NewErrorf("%s is required and must be a non-empty string", field)
	}
	return nil
}

// RequireNumber fails with a field-specific error when the numeric field was
// absent from the payload.
func RequireNumber(field string, value *float64) error {
	if value == nil {
		return common.NewErrorf("%s is required and must be a number", field)
	}
	return nil
}
