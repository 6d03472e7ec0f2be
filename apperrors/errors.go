package apperrors

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

var (
	ErrNotFound           = errors.New("record not found")
	ErrConflict           = errors.New("record already exists")
	ErrForeignKey         = errors.New("referenced record does not exist")
	ErrInvalidInput       = errors.New("invalid input")
	ErrBackendUnavailable = errors.New("database unavailable")
)

// FromDB classifies a gorm error into the taxonomy above. Requires the
// connection to be opened with TranslateError so constraint violations arrive
// as gorm sentinels regardless of driver.
func FromDB(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return ErrConflict
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return ErrForeignKey
	default:
		return fmt.Errorf("%w: %v", ErrBackendUnavailable, err)
	}
}
