package db

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

var (
	ErrDuplicateKey = errors.New("duplicate key violation")
	ErrForeignKey   = errors.New("foreign key violation")
	ErrCanceled     = errors.New("operation canceled")
)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// Error wraps a store failure with the operation and table it came from.
type Error struct {
	Op         string
	Table      string
	Constraint string
	Err        error
}

func (e *Error) Error() string {
	parts := []string{"db: " + e.Op}
	if e.Table != "" {
		parts = append(parts, "table="+e.Table)
	}
	if e.Constraint != "" {
		parts = append(parts, "constraint="+e.Constraint)
	}
	if e.Err != nil {
		parts = append(parts, e.Err.Error())
	}
	return strings.Join(parts, ": ")
}

func (e *Error) Unwrap() error { return e.Err }

// Classify maps driver errors from Postgres (pgconn), gorm's translated
// errors and SQLite messages onto ErrDuplicateKey / ErrForeignKey. Anything
// else is wrapped with op/table context and returned as is.
func Classify(err error, op, table string) error {
	if err == nil {
		return nil
	}
	var already *Error
	if errors.As(err, &already) {
		return err
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return &Error{Op: op, Table: table, Constraint: pgErr.ConstraintName, Err: fmt.Errorf("%w: %s", ErrDuplicateKey, pgErr.Message)}
		case pgForeignKeyViolation:
			return &Error{Op: op, Table: table, Constraint: pgErr.ConstraintName, Err: fmt.Errorf("%w: %s", ErrForeignKey, pgErr.Message)}
		}
	}

	switch {
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return &Error{Op: op, Table: table, Err: fmt.Errorf("%w: %v", ErrDuplicateKey, err)}
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return &Error{Op: op, Table: table, Err: fmt.Errorf("%w: %v", ErrForeignKey, err)}
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return &Error{Op: op, Table: table, Err: fmt.Errorf("%w: %v", ErrCanceled, err)}
	}

	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "unique constraint failed"),
		strings.Contains(msg, "duplicate key value violates unique constraint"):
		return &Error{Op: op, Table: table, Err: fmt.Errorf("%w: %v", ErrDuplicateKey, err)}
	case strings.Contains(msg, "foreign key constraint failed"),
		strings.Contains(msg, "violates foreign key constraint"):
		return &Error{Op: op, Table: table, Err: fmt.Errorf("%w: %v", ErrForeignKey, err)}
	}
	return &Error{Op: op, Table: table, Err: err}
}

func IsDuplicateKey(err error) bool { return errors.Is(err, ErrDuplicateKey) }
func IsForeignKey(err error) bool   { return errors.Is(err, ErrForeignKey) }
