package postgres

import (
	"strings"

	"courtcrowd/internal/errors"

	"gorm.io/gorm"
)

// Helper functions for PostgreSQL error checking.
// GORM only translates driver errors when TranslateError is enabled, so SQLSTATE codes are matched as well.

func isForeignKeyConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return true
	}

	errMsg := strings.ToLower(err.Error())

	return strings.Contains(errMsg, "sqlstate 23503") ||
		strings.Contains(errMsg, "violates foreign key constraint")
}

func isNotNullConstraintViolation(err error) bool {
	errMsg := strings.ToLower(err.Error())

	return strings.Contains(errMsg, "sqlstate 23502") ||
		strings.Contains(errMsg, "violates not-null constraint")
}

func isCheckConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrCheckConstraintViolated) {
		return true
	}

	errMsg := strings.ToLower(err.Error())

	return strings.Contains(errMsg, "sqlstate 23514") ||
		strings.Contains(errMsg, "violates check constraint")
}
