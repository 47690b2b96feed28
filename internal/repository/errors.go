package repository

import (
	"errors"

	"gorm.io/gorm"
)

// ErrNotFound is returned when no record matches a lookup. It replaces
// the ORM's not-found error at the repository boundary so callers never
// depend on gorm.
var ErrNotFound = errors.New("record not found")

func mapNotFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
