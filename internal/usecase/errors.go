package usecase

import (
	"errors"
	"sort"
	"strings"

	"meditrack/pkg/validator"
)

// ErrNotFound is wrapped by every "<kind> not found" error
var ErrNotFound = errors.New("not found")

// ValidationError rejects an input field. Nothing is stored when it is returned.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func newValidationError(v *validator.CustomValidator, err error) error {
	fieldErrors := v.FieldErrors(err)
	if len(fieldErrors) == 0 {
		return err
	}
	return &ValidationError{
		Field:   fieldErrors[0].Field,
		Message: fieldErrors[0].Message,
	}
}

func requireID(id string) error {
	if strings.TrimSpace(id) == "" {
		return &ValidationError{Field: "id", Message: "id must not be blank"}
	}
	return nil
}

// lessID orders ids like D2 before D10
func lessID(a, b string) bool {
	if len(a) != len(b) {
		return len(a) < len(b)
	}
	return a < b
}

func sortByID[T any](items []T, id func(T) string) {
	sort.Slice(items, func(i, j int) bool {
		return lessID(id(items[i]), id(items[j]))
	})
}
