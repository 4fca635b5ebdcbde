package postgres

import (
	"strings"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// isForeignKeyViolation detects a rejected reference to a missing parent row.
// Both the GORM translated sentinel and the raw PostgreSQL error are checked,
// since error translation is driver-configuration dependent.
func isForeignKeyViolation(err error) bool {
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return true
	}

	errMsg := strings.ToLower(err.Error())

	return strings.Contains(errMsg, "foreign key") ||
		strings.Contains(errMsg, "23503") // PostgreSQL foreign_key_violation
}
