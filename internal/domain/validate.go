package domain

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// IsValidEmail reports whether s is a syntactically valid email address
func IsValidEmail(s string) bool {
	return validate.Var(strings.TrimSpace(s), "required,email") == nil
}

// StringNilOrEmpty checks if a string pointer is nil or blank
func StringNilOrEmpty(s *string) bool {
	return s == nil || strings.TrimSpace(*s) == ""
}

// StringPtr returns a pointer to s
func StringPtr(s string) *string {
	return &s
}
