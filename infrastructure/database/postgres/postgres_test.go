package postgres

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConnection_RunInTransaction(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(mock sqlmock.Sqlmock)
		fn      func(tx *sql.Tx) error
		wantErr bool
	}{
		{
			name: "Commit quando a função termina sem erro",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec("UPDATE users").WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectCommit()
			},
			fn: func(tx *sql.Tx) error {
				_, err := tx.Exec("UPDATE users SET active = true")
				return err
			},
		},
		{
			name: "Rollback quando a função retorna erro",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectRollback()
			},
			fn: func(tx *sql.Tx) error {
				return assert.AnError
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			tt.setup(mock)

			conn := &Connection{DB: db}
			err = conn.RunInTransaction(context.Background(), tt.fn)
			if tt.wantErr {
				assert.ErrorIs(t, err, assert.AnError)
			} else {
				assert.NoError(t, err)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestWrapError(t *testing.T) {
	assert.Nil(t, WrapError(nil, "ignorado"))

	err := WrapError(&pq.Error{Code: "42P01", Message: "relation does not exist"}, "erro ao buscar procedimentos")
	assert.Contains(t, err.Error(), "sqlstate 42P01")

	var pqErr *pq.Error
	assert.ErrorAs(t, err, &pqErr)

	err = WrapError(assert.AnError, "erro ao buscar procedimentos")
	assert.ErrorIs(t, err, assert.AnError)
	assert.Contains(t, err.Error(), "erro ao buscar procedimentos")
}
