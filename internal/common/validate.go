package common

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

// ValidationError reports the first failing field of an inbound payload.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func newValidationError(field, format string, args ...interface{}) *ValidationError {
	return &ValidationError{
		Field:   field,
		Message: fmt.Sprintf(format, args...),
	}
}

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// ContactInput carries the raw contact-form fields. Validation trims the
// fields in place, so the values that reach persistence are normalized.
type ContactInput struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Message string `json:"message"`
	Captcha string `json:"captcha"`
}

// ValidateContact checks the contact-form fields and stops at the first
// violation. No side effect may happen before this passes.
func ValidateContact(in *ContactInput) error {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.TrimSpace(in.Email)
	in.Phone = strings.TrimSpace(in.Phone)
	in.Message = strings.TrimSpace(in.Message)

	// Bounds count characters, not bytes; accented input must not shift them.
	if l := utf8.RuneCountInString(in.Name); l < 3 || l > 100 {
		return newValidationError("name", "name must be between 3 and 100 characters")
	}
	if !emailPattern.MatchString(in.Email) {
		return newValidationError("email", "email must be a valid email address")
	}
	if l := utf8.RuneCountInString(in.Phone); l < 7 || l > 20 {
		return newValidationError("phone", "phone must be between 7 and 20 characters")
	}
	if l := utf8.RuneCountInString(in.Message); l < 5 || l > 1000 {
		return newValidationError("message", "message must be between 5 and 1000 characters")
	}
	if in.Captcha == "" {
		return newValidationError("captcha", "captcha is required")
	}
	return nil
}
