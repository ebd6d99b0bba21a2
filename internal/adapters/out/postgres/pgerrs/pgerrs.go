// Package pgerrs classifies GORM errors for the repositories. The database
// must be opened with gorm.Config{TranslateError: true} so that unique
// violations surface as gorm.ErrDuplicatedKey.
package pgerrs

import (
	"context"
	"errors"

	"courierhub/internal/pkg/errs"

	"gorm.io/gorm"
)

// Wrap turns a driver failure into a retryable errs.StorageError. Context
// cancellation is passed through untouched.
func Wrap(op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	return errs.NewStorageError(op, err)
}

func IsDuplicate(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey)
}

func IsNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
