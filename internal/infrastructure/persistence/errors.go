package persistence

import (
	"errors"

	"github.com/glosas/backend/internal/domain/shared"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// Postgres error codes, see https://www.postgresql.org/docs/current/errcodes-appendix.html
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// translateError maps driver-level errors onto domain error sentinels so
// callers never depend on gorm or postgres types.
func translateError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return shared.ErrNotFound
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch string(pqErr.Code) {
		case pgUniqueViolation:
			return shared.ErrAlreadyExists
		case pgForeignKeyViolation:
			return shared.ErrIntegrity
		}
	}
	return err
}
