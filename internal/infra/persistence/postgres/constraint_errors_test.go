package postgres

import (
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestConstraintViolations(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		unique     bool
		foreignKey bool
		notNull    bool
	}{
		{
			name:   "driver unique violation",
			err:    errors.Wrap(&pgconn.PgError{Code: sqlStateUniqueViolation, Message: "users_email_key"}, "insert"),
			unique: true,
		},
		{
			name:   "translated duplicate key",
			err:    gorm.ErrDuplicatedKey,
			unique: true,
		},
		{
			name:       "driver foreign key violation",
			err:        &pgconn.PgError{Code: sqlStateForeignKeyViolation},
			foreignKey: true,
		},
		{
			name:    "not null text",
			err:     errors.New(`null value in column "email" violates not-null constraint`),
			notNull: true,
		},
		{
			name: "unrelated",
			err:  errors.New("connection reset"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.unique, isUniqueConstraintViolation(tt.err))
			assert.Equal(t, tt.foreignKey, isForeignKeyConstraintViolation(tt.err))
			assert.Equal(t, tt.notNull, isNotNullConstraintViolation(tt.err))
		})
	}
}
