package httperr

import "errors"

// ===============================
// Validação (erro por campo)
// ===============================

type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

func ErrValidation(field, message string) error {
	return ValidationError{Field: field, Message: message}
}

func AsValidation(err error) (ValidationError, bool) {
	var ve ValidationError
	ok := errors.As(err, &ve)
	return ve, ok
}

// ===============================
// Not found
// ===============================

type NotFoundError struct {
	Entity string
}

func (e NotFoundError) Error() string {
	return e.Entity + "_not_found"
}

func ErrNotFound(entity string) error {
	return NotFoundError{Entity: entity}
}

func IsNotFound(err error) bool {
	var nf NotFoundError
	return errors.As(err, &nf)
}

// ===============================
// Conflito (double booking)
// ===============================

type ConflictError struct {
	Message string
}

func (e ConflictError) Error() string {
	return e.Message
}

func ErrConflict(message string) error {
	return ConflictError{Message: message}
}

func IsConflict(err error) bool {
	var ce ConflictError
	return errors.As(err, &ce)
}
