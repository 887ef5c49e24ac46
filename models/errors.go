// Package models defines the ShopEase entity shapes and their
// construction contracts.
package models

import (
	"errors"
	"fmt"
)

// NotFoundError is returned when a mutation targets an id that is not in
// the collection.
type NotFoundError struct {
	Entity string
	ID     string
}

// Error implements the error interface for NotFoundError
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: id=%s", e.Entity, e.ID)
}

// Is allows proper error type checking with errors.Is()
func (e *NotFoundError) Is(target error) bool {
	_, ok := target.(*NotFoundError)
	return ok
}

// ValidationError is returned when entity validation fails.
type ValidationError struct {
	Entity string
	Field  string
	Reason string
	Value  interface{}
}

// Error implements the error interface for ValidationError
func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: field=%s, reason=%s, value=%v", e.Entity, e.Field, e.Reason, e.Value)
}

// Is allows proper error type checking with errors.Is()
func (e *ValidationError) Is(target error) bool {
	_, ok := target.(*ValidationError)
	return ok
}

// NewNotFoundError creates a new NotFoundError
func NewNotFoundError(entity, id string) error {
	return &NotFoundError{Entity: entity, ID: id}
}

// NewValidationError creates a new ValidationError
func NewValidationError(entity, field, reason string, value interface{}) error {
	return &ValidationError{Entity: entity, Field: field, Reason: reason, Value: value}
}

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
