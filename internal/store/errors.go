package store

import (
	"errors"
	"fmt"

	"github.com/lib/pq"
)

// The four failure classes every mutating operation resolves to. Handlers
// map them onto HTTP status codes; anything raised inside a transaction
// triggers an unconditional rollback before it propagates.

// ValidationError covers missing required fields, empty line-item lists,
// invalid dates and non-numeric amounts. It is always raised before any
// write happens.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

// Validationf builds a ValidationError.
func Validationf(format string, args ...any) error {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}

// NotFoundError is returned when a mutating operation addresses a record
// that does not exist. Empty read results are not errors.
type NotFoundError struct {
	Entity string
	Key    string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Entity, e.Key)
}

// ConflictError is a duplicate unique key (UASG, CNPJ, product code/name,
// commitment number), detected either by the fast-path pre-check or by the
// database unique constraint.
type ConflictError struct {
	Field string
	Value string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%s %q already registered", e.Field, e.Value)
}

// InfrastructureError wraps datastore and I/O failures unrelated to the
// validity of the submitted data.
type InfrastructureError struct {
	Op  string
	Err error
}

func (e *InfrastructureError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *InfrastructureError) Unwrap() error { return e.Err }

// Infrastructuref wraps err as an InfrastructureError for operation op.
func Infrastructuref(op string, err error) error {
	return &InfrastructureError{Op: op, Err: err}
}

const (
	pqUniqueViolation     = "23505"
	pqForeignKeyViolation = "23503"
)

// mapWriteError converts a driver error into the domain taxonomy. The
// unique constraint is the authoritative duplicate guard; the pre-checks on
// the registration pages are only a fast path for a friendlier message.
// A foreign-key violation means the caller referenced a record that does
// not exist, a caller error rather than an infrastructure failure.
func mapWriteError(op string, err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch string(pqErr.Code) {
		case pqUniqueViolation:
			return &ConflictError{Field: pqErr.Constraint, Value: pqErr.Detail}
		case pqForeignKeyViolation:
			return &NotFoundError{Entity: "record referenced by", Key: pqErr.Constraint}
		}
	}
	return Infrastructuref(op, err)
}
