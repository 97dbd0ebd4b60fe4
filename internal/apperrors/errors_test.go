package apperrors

import (
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromPostgresNoRows(t *testing.T) {
	err := FromPostgres(pgx.ErrNoRows, "inventory item")

	var nfe *ResourceNotFoundError
	require.True(t, errors.As(err, &nfe))
	assert.Equal(t, "inventory item", nfe.Resource)
	assert.Equal(t, CodeNotFound, CodeOf(err))
}

func TestFromPostgresCodeMapping(t *testing.T) {
	tests := []struct {
		pgCode string
		want   Code
	}{
		{"42501", CodeUnauthorized},
		{"28000", CodeUnauthorized},
		{"23503", CodeValidation},
		{"23514", CodeValidation},
		{"23505", CodeAlreadyExists},
		{"57014", CodeDBQuery}, // unmapped codes fall through to a db error
	}

	for _, tt := range tests {
		t.Run(tt.pgCode, func(t *testing.T) {
			err := FromPostgres(&pgconn.PgError{Code: tt.pgCode}, "item")
			assert.Equal(t, tt.want, CodeOf(err))
		})
	}
}

func TestFromPostgresNil(t *testing.T) {
	assert.NoError(t, FromPostgres(nil, "item"))
}

func TestCodeOfUnknown(t *testing.T) {
	assert.Equal(t, CodeUnknown, CodeOf(errors.New("plain")))
}

func TestDuplicateIsValidationWithConflictCode(t *testing.T) {
	err := FromPostgres(&pgconn.PgError{Code: "23505"}, "user")

	var ve *ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, CodeAlreadyExists, ve.Code)
}
