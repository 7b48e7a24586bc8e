package apperr

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ValidationError carries per-field messages for a rejected request.
// Services return it for anything the caller can fix (missing field,
// malformed value, uniqueness violation); everything else is a plain error.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Fields[k])
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Validation builds a single-field ValidationError.
func Validation(field, msg string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: msg}}
}

// Add appends another field message and returns the receiver for chaining.
func (e *ValidationError) Add(field, msg string) *ValidationError {
	if e.Fields == nil {
		e.Fields = map[string]string{}
	}
	e.Fields[field] = msg
	return e
}

// AsValidation reports whether err is (or wraps) a ValidationError.
func AsValidation(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}

// FromBinding converts a gin binding failure into a ValidationError.
// Gin validates with go-playground/validator, so the usual case is a
// validator.ValidationErrors; anything else (bad JSON etc.) gets a single
// "body" message.
func FromBinding(err error) *ValidationError {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		out := &ValidationError{Fields: make(map[string]string, len(verrs))}
		for _, fe := range verrs {
			out.Fields[fieldPath(fe)] = fieldMessage(fe)
		}
		return out
	}
	return Validation("body", err.Error())
}

// fieldPath renders "CustomerRegisterIn.Account.Email" as "user.email" style
// paths are not recoverable from validator; fall back to the struct path
// minus the root type, lowercased.
func fieldPath(fe validator.FieldError) string {
	ns := fe.StructNamespace()
	if i := strings.Index(ns, "."); i >= 0 {
		ns = ns[i+1:]
	}
	return strings.ToLower(ns)
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "this field is required"
	case "email":
		return "must be a valid email address"
	case "min":
		return fmt.Sprintf("must be at least %s characters", fe.Param())
	case "oneof":
		return "must be one of: " + fe.Param()
	case "datetime":
		return "must match format " + fe.Param()
	default:
		return "invalid value"
	}
}
