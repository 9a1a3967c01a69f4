package service

import (
	"errors"

	"connectvault/internal/apperr"

	"gorm.io/gorm"
)

// storeErr translates repository failures into the API taxonomy: a missing
// row (including rows owned by someone else) is NotFound, anything else is
// a retryable store failure.
func storeErr(op, resource string, err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperr.NotFound(resource)
	}
	return apperr.Store(op, err)
}
