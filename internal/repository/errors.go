package repository

import (
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Postgres error codes the engine reacts to.
const (
	codeUniqueViolation      = "23505"
	codeSerializationFailure = "40001"
	codeDeadlockDetected     = "40P01"
	codeLockNotAvailable     = "55P03"
)

func pgError(err error) *pgconn.PgError {
	var pgerr *pgconn.PgError
	if errors.As(err, &pgerr) {
		return pgerr
	}
	return nil
}

// IsDuplicate - signals that the error is a unique constraint violation.
func IsDuplicate(err error) bool {
	pgerr := pgError(err)
	return pgerr != nil && pgerr.Code == codeUniqueViolation
}

// ConstraintName returns the violated constraint, or "" when the error is not
// a constraint violation.
func ConstraintName(err error) string {
	if pgerr := pgError(err); pgerr != nil {
		return pgerr.ConstraintName
	}
	return ""
}

// IsNotFound - signals that the error is a not found error.
func IsNotFound(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}

// IsConflict - signals a serialization failure, deadlock or lock timeout.
// The enclosing transaction is safe to retry.
func IsConflict(err error) bool {
	pgerr := pgError(err)
	if pgerr == nil {
		return false
	}
	switch pgerr.Code {
	case codeSerializationFailure, codeDeadlockDetected, codeLockNotAvailable:
		return true
	default:
		return false
	}
}
