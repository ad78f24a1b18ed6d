package validator

import (
	"regexp"
	"strings"
)

// FieldError names the offending field so the panel can render the message
// inline next to the input.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type FieldErrors []FieldError

func (e FieldErrors) Error() string {
	parts := make([]string, 0, len(e))
	for _, fe := range e {
		parts = append(parts, fe.Field+": "+fe.Message)
	}
	return strings.Join(parts, "; ")
}

func (e *FieldErrors) Add(field string, message string) {
	*e = append(*e, FieldError{Field: field, Message: message})
}

var (
	// up to 6 integer digits and up to 2 fraction digits
	priceRe = regexp.MustCompile(`^\d{1,6}(\.\d{1,2})?$`)

	emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

	hexColorRe = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)
)

// ValidPrice reports whether s is an acceptable price literal:
// "999999.99" passes, "1234567.00" does not.
func ValidPrice(s string) bool {
	return priceRe.MatchString(s)
}

func ValidEmail(s string) bool {
	return emailRe.MatchString(s)
}

func ValidHexColor(s string) bool {
	return hexColorRe.MatchString(s)
}

// ValidQuantity checks a product stock quantity, [0,100] inclusive.
func ValidQuantity(n int64) bool {
	return n >= 0 && n <= 100
}
