// Package validation collects field-level validation failures so callers
// can report every problem with an input at once.
package validation

import (
	"fmt"
	"net/mail"
	"strings"
	"unicode/utf8"
)

// FieldError describes a single failed rule on a named field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Errors is the accumulated set of failures for one input.
type Errors []FieldError

func (e Errors) Error() string {
	if len(e) == 0 {
		return "validation failed"
	}
	parts := make([]string, len(e))
	for i, fe := range e {
		parts[i] = fmt.Sprintf("%s: %s", fe.Field, fe.Message)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Validator accumulates rule failures. Rules never short-circuit; Err
// returns everything collected.
type Validator struct {
	errs Errors
}

func New() *Validator {
	return &Validator{}
}

// Add records a failure for field.
func (v *Validator) Add(field, message string) {
	v.errs = append(v.errs, FieldError{Field: field, Message: message})
}

// Check records message for field when ok is false.
func (v *Validator) Check(field string, ok bool, message string) {
	if !ok {
		v.Add(field, message)
	}
}

// Require fails when value is empty or whitespace-only.
func (v *Validator) Require(field, value string) {
	if strings.TrimSpace(value) == "" {
		v.Add(field, "is required")
	}
}

// MinLen fails when a non-empty value is shorter than min runes.
// Emptiness is Require's concern.
func (v *Validator) MinLen(field, value string, min int) {
	if value != "" && utf8.RuneCountInString(value) < min {
		v.Add(field, fmt.Sprintf("must be at least %d characters", min))
	}
}

// MaxLen fails when value is longer than max runes.
func (v *Validator) MaxLen(field, value string, max int) {
	if utf8.RuneCountInString(value) > max {
		v.Add(field, fmt.Sprintf("must be at most %d characters", max))
	}
}

// Digits fails when a non-empty value contains anything but ASCII digits.
func (v *Validator) Digits(field, value string) {
	for _, r := range value {
		if r < '0' || r > '9' {
			v.Add(field, "must contain only digits")
			return
		}
	}
}

// Email fails when a non-empty value is not a parseable address.
func (v *Validator) Email(field, value string) {
	if value == "" {
		return
	}
	if _, err := mail.ParseAddress(value); err != nil {
		v.Add(field, "must be a valid email address")
	}
}

// Err returns the collected failures, or nil when everything passed.
func (v *Validator) Err() error {
	if len(v.errs) == 0 {
		return nil
	}
	return v.errs
}
