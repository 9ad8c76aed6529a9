package rental

import (
	"errors"

	"github.com/lib/pq"
)

const (
	pqExclusionViolation   = "23P01"
	pqSerializationFailure = "40001"
)

// mapPQError переводит ошибки Postgres, значимые для бизнес-логики, в ошибки репозитория.
// Остальные ошибки возвращаются как fallback.
func mapPQError(err error, fallback error) error {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return fallback
	}

	switch pqErr.Code {
	case pqExclusionViolation:
		return ErrAssetUnavailable
	case pqSerializationFailure:
		return ErrSerializationFailure
	default:
		return fallback
	}
}
