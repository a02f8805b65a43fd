package repository

import (
	"errors"
	"hotel/shared/constant"

	"github.com/lib/pq"
)

// IsUniqueViolation reports whether err carries a postgres unique_violation,
// optionally restricted to one constraint.
func IsUniqueViolation(err error, constraint ...string) bool {
	return hasCode(err, constant.PqErrorCodeUniqueViolation, constraint...)
}

// IsForeignKeyViolation reports whether err carries a postgres foreign_key_violation.
func IsForeignKeyViolation(err error, constraint ...string) bool {
	return hasCode(err, constant.PqErrorCodeFkViolation, constraint...)
}

func hasCode(err error, code string, constraint ...string) bool {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) || string(pqErr.Code) != code {
		return false
	}

	if len(constraint) == 0 {
		return true
	}

	for _, name := range constraint {
		if pqErr.Constraint == name {
			return true
		}
	}

	return false
}
