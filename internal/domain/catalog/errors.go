package catalog

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// NotFoundError means a referenced entity or row is absent.
type NotFoundError struct {
	Entity string
	Search string
}

func (e *NotFoundError) Error() string {
	if e.Search == "" {
		return e.Entity + " not found"
	}
	return fmt.Sprintf("%s not found: %s", e.Entity, e.Search)
}

// ConflictError means a uniqueness rule would be broken.
type ConflictError struct {
	Entity   string
	Conflict string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%s already exists: %s", e.Entity, e.Conflict)
}

type InvalidArgumentError struct {
	Reason string
}

func (e *InvalidArgumentError) Error() string {
	return "invalid argument: " + e.Reason
}

// DatabaseError wraps failures of the store itself.
type DatabaseError struct {
	Inner error
}

func (e *DatabaseError) Error() string {
	return "database operation failed: " + e.Inner.Error()
}

func (e *DatabaseError) Unwrap() error {
	return e.Inner
}

func NotFound(entity, format string, args ...any) error {
	return &NotFoundError{Entity: entity, Search: fmt.Sprintf(format, args...)}
}

func Conflict(entity, format string, args ...any) error {
	return &ConflictError{Entity: entity, Conflict: fmt.Sprintf(format, args...)}
}

func InvalidArgument(format string, args ...any) error {
	return &InvalidArgumentError{Reason: fmt.Sprintf(format, args...)}
}

// WrapError turns a gorm error into one of the catalog error types. Errors
// that already belong to the taxonomy pass through untouched.
func WrapError(err error, entity, operation, details string) error {
	if err == nil {
		return nil
	}

	var (
		notFound *NotFoundError
		conflict *ConflictError
		invalid  *InvalidArgumentError
		dbErr    *DatabaseError
	)
	if errors.As(err, &notFound) || errors.As(err, &conflict) ||
		errors.As(err, &invalid) || errors.As(err, &dbErr) {
		return err
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &NotFoundError{Entity: entity, Search: details}
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return &ConflictError{Entity: entity, Conflict: details}
	}

	return &DatabaseError{Inner: fmt.Errorf("%s (%s): %w", operation, details, err)}
}
