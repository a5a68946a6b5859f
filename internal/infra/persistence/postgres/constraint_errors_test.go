package postgres

import (
	"testing"

	"courtcrowd/internal/errors"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestConstraintViolationHelpers(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		err        error
		foreignKey bool
		notNull    bool
		check      bool
	}{
		{
			name:       "gorm foreign key",
			err:        errors.Wrap(gorm.ErrForeignKeyViolated, "insert"),
			foreignKey: true,
		},
		{
			name:       "postgres foreign key message",
			err:        errors.New(`ERROR: insert or update on table "court_presence" violates foreign key constraint "court_presence_court_id_fkey" (SQLSTATE 23503)`),
			foreignKey: true,
		},
		{
			name:    "postgres not null",
			err:     errors.New(`ERROR: null value in column "court_id" violates not-null constraint (SQLSTATE 23502)`),
			notNull: true,
		},
		{
			name:  "postgres check",
			err:   errors.New(`ERROR: new row violates check constraint "chk_court_presence_exit_after_entry" (SQLSTATE 23514)`),
			check: true,
		},
		{
			name: "unrelated",
			err:  errors.New("connection refused"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.foreignKey, isForeignKeyConstraintViolation(tt.err))
			assert.Equal(t, tt.notNull, isNotNullConstraintViolation(tt.err))
			assert.Equal(t, tt.check, isCheckConstraintViolation(tt.err))
		})
	}
}
