package order

import (
	"errors"
	"strings"
)

var (
	ErrValidation        = errors.New("validation error")
	ErrOrderNotFound     = errors.New("order not found")
	ErrInvalidTransition = errors.New("invalid transition")
	ErrPermissionDenied  = errors.New("permission denied")

	// ErrAssignmentConflict проигрыш гонки за заказ. Обычно обёрнут вместе с
	// ErrInvalidTransition или ErrPermissionDenied по актуальному состоянию заказа.
	ErrAssignmentConflict = errors.New("assignment conflict")
	ErrStoreUnavailable   = errors.New("order store unavailable")

	ErrRestaurantNotFound     = errors.New("restaurant not found")
	ErrRestaurantNotAccepting = errors.New("restaurant is not accepting orders")
)

// ValidationError перечисляет отсутствующие или невалидные поля запроса.
type ValidationError struct {
	Fields []string
}

func newValidationError(fields ...string) *ValidationError {
	return &ValidationError{Fields: fields}
}

func (e *ValidationError) Error() string {
	return "Validation error: Required fields missing or invalid: " + strings.Join(e.Fields, ", ")
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

func (e *ValidationError) InvalidFields() []string {
	return e.Fields
}
