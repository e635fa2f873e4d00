// Package database owns the schema lifecycle and the constraint-error
// taxonomy. Sentinel values let handlers distinguish failure classes
// without parsing driver messages: a duplicate email and a duplicate
// junction key are both ErrUniqueViolation, a write against a missing
// parent is ErrForeignKeyViolation, and so on.
package database

import (
	"errors"
	"fmt"
	"strings"

	sqlite3 "github.com/mattn/go-sqlite3"
	"gorm.io/gorm"
)

var (
	ErrUniqueViolation     = errors.New("unique violation")
	ErrForeignKeyViolation = errors.New("foreign key violation")
	ErrNotNullViolation    = errors.New("not null violation")
	ErrEnumViolation       = errors.New("enum violation")
)

// ConstraintError is the structured form handed to callers: the violated
// constraint class plus the entity and, when the driver names it, the
// offending field. errors.Is matches against the sentinel kinds.
type ConstraintError struct {
	Kind   error
	Entity string
	Field  string
	cause  error
}

func (e *ConstraintError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: %s on %s.%s", e.Kind, e.cause, e.Entity, e.Field)
	}
	return fmt.Sprintf("%s: %s on %s", e.Kind, e.cause, e.Entity)
}

func (e *ConstraintError) Unwrap() error { return e.Kind }

// Classify maps a storage error onto the taxonomy. Entity names the row
// being written. Errors outside the taxonomy pass through unchanged.
func Classify(entity string, err error) error {
	if err == nil {
		return nil
	}

	var serr sqlite3.Error
	if errors.As(err, &serr) {
		switch serr.ExtendedCode {
		case sqlite3.ErrConstraintUnique, sqlite3.ErrConstraintPrimaryKey:
			return &ConstraintError{Kind: ErrUniqueViolation, Entity: entity, Field: fieldFromMessage(serr.Error()), cause: err}
		case sqlite3.ErrConstraintForeignKey:
			return &ConstraintError{Kind: ErrForeignKeyViolation, Entity: entity, cause: err}
		case sqlite3.ErrConstraintNotNull:
			return &ConstraintError{Kind: ErrNotNullViolation, Entity: entity, Field: fieldFromMessage(serr.Error()), cause: err}
		case sqlite3.ErrConstraintCheck:
			return &ConstraintError{Kind: ErrEnumViolation, Entity: entity, Field: fieldFromMessage(serr.Error()), cause: err}
		}
	}

	// Fallback when the driver error was already swallowed by the ORM's
	// own translation.
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return &ConstraintError{Kind: ErrUniqueViolation, Entity: entity, cause: err}
	}
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return &ConstraintError{Kind: ErrForeignKeyViolation, Entity: entity, cause: err}
	}

	return err
}

// fieldFromMessage extracts the column from driver messages shaped like
// "UNIQUE constraint failed: guests.email" or
// "CHECK constraint failed: chk_bookings_payment_status".
func fieldFromMessage(msg string) string {
	idx := strings.LastIndex(msg, ": ")
	if idx < 0 {
		return ""
	}
	ref := msg[idx+2:]
	if dot := strings.LastIndex(ref, "."); dot >= 0 {
		ref = ref[dot+1:]
	}
	return strings.TrimSpace(ref)
}
