package domain

import (
	"errors"
	"fmt"
)

// Kind identifies which entity an error refers to.
type Kind string

const (
	KindBook     Kind = "book"
	KindCustomer Kind = "customer"
	KindOrder    Kind = "order"
)

// NotFoundError signals that a requested identifier has no stored record.
// It is returned by get/update/delete on a missing target and by order
// creation when an embedded book or customer reference does not resolve.
type NotFoundError struct {
	Kind Kind
	ID   int64
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found with id: %d", e.Kind, e.ID)
}

// NewNotFound builds a NotFoundError for the given entity kind and id.
func NewNotFound(kind Kind, id int64) error {
	return &NotFoundError{Kind: kind, ID: id}
}

// IsNotFound reports whether err is (or wraps) a NotFoundError.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

// ValidationError signals that a candidate record violates a field
// constraint before it reaches the store.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

func newValidation(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}
