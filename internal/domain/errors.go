package domain

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownResourceType  = errors.New("unknown resource type")
	ErrUnknownStatus        = errors.New("unknown booking status")
	ErrUnknownPaymentStatus = errors.New("unknown payment status")
	ErrUnknownPaymentMethod = errors.New("unknown payment method")
)

// FieldError validation error bound to a form field
type FieldError struct {
	Field Field
	Err   error
}

func NewFieldError(field Field, err error) *FieldError {
	return &FieldError{Field: field, Err: err}
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%v: %s", e.Err, e.Field)
}

func (e *FieldError) Unwrap() error {
	return e.Err
}
