package repository

import (
	"database/sql"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

var (
	// ErrNotFound is returned when no row matches the requested id.
	ErrNotFound = errors.New("record not found")
	// ErrConstraintViolation is returned when a write would duplicate a unique key.
	ErrConstraintViolation = errors.New("record violates a uniqueness constraint")
	// ErrReferenced is returned when deleting a row other rows still point at.
	ErrReferenced = errors.New("record is referenced by other records")
	// ErrInvalidReference is returned when a write points at a row that does not exist.
	ErrInvalidReference = errors.New("referenced record does not exist")
)

type violation int

const (
	violationNone violation = iota
	violationUnique
	violationForeignKey
)

func classifyViolation(err error) violation {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505":
			return violationUnique
		case "23503":
			return violationForeignKey
		}
		return violationNone
	}

	var liteErr *sqlite.Error
	if errors.As(err, &liteErr) {
		switch liteErr.Code() {
		case sqlite3.SQLITE_CONSTRAINT_UNIQUE, sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY:
			return violationUnique
		case sqlite3.SQLITE_CONSTRAINT_FOREIGNKEY, sqlite3.SQLITE_CONSTRAINT_TRIGGER:
			// ON DELETE RESTRICT is enforced as a trigger-class constraint.
			return violationForeignKey
		}
	}
	return violationNone
}

// writeErr maps an insert or update failure onto the package sentinels.
func writeErr(err error) error {
	if err == nil {
		return nil
	}
	switch classifyViolation(err) {
	case violationUnique:
		return ErrConstraintViolation
	case violationForeignKey:
		return ErrInvalidReference
	}
	return err
}

// deleteErr maps a delete failure onto the package sentinels.
func deleteErr(err error) error {
	if err == nil {
		return nil
	}
	if classifyViolation(err) == violationForeignKey {
		return ErrReferenced
	}
	return err
}

// readErr maps sql.ErrNoRows to ErrNotFound.
func readErr(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	return err
}
