package repositories

import (
	"errors"
	"fmt"

	"productorders/internal/shared"

	"gorm.io/gorm"
)

// translateError maps GORM errors onto the shared error kinds. Anything it
// does not recognise is wrapped unchanged.
func translateError(err error, format string, args ...any) error {
	msg := fmt.Sprintf(format, args...)
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return fmt.Errorf("%s: %w", msg, shared.ErrNotFound)
	case errors.Is(err, gorm.ErrDuplicatedKey), errors.Is(err, gorm.ErrForeignKeyViolated):
		return fmt.Errorf("%s: %w: %v", msg, shared.ErrConflict, err)
	default:
		return fmt.Errorf("%s: %w", msg, err)
	}
}
