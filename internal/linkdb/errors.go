package linkdb

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument is wrapped by every *InvalidArgumentError.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrDatabaseRead is returned when the database file cannot be read or parsed.
	ErrDatabaseRead = errors.New("cannot read link database")
	// ErrDatabaseWrite is returned when the updated database cannot be persisted.
	ErrDatabaseWrite = errors.New("cannot write link database")
	// ErrURIConflict is returned when the database already holds the uri.
	ErrURIConflict = errors.New("uri already exists")
	// ErrIDConflict is returned when the database already holds the id.
	ErrIDConflict = errors.New("id already exists")
)

// InvalidArgumentError describes a malformed call. It is raised with panic,
// never returned.
type InvalidArgumentError struct {
	Field  string // empty when the options value itself is wrong
	Reason string
	Value  any
}

func (e *InvalidArgumentError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("%s: %s. Value: `%v`", ErrInvalidArgument, e.Reason, e.Value)
	}
	return fmt.Sprintf("%s: option %q %s. Value: `%v`", ErrInvalidArgument, e.Field, e.Reason, e.Value)
}

func (e *InvalidArgumentError) Unwrap() error { return ErrInvalidArgument }

// fault panics with an *InvalidArgumentError.
func fault(field, reason string, value any) {
	panic(&InvalidArgumentError{Field: field, Reason: reason, Value: value})
}

// ConflictError reports which unique key of a candidate entry is taken.
type ConflictError struct {
	Kind     Conflict
	Value    string
	Database string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("link database %s already contains an entry with %s %q", e.Database, e.Kind, e.Value)
}

func (e *ConflictError) Unwrap() error {
	if e.Kind == ConflictID {
		return ErrIDConflict
	}
	return ErrURIConflict
}
