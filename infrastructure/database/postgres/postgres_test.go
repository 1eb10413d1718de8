package postgres

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConnection_RunInTransaction(t *testing.T) {
	t.Run("Commit quando a função não falha", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		conn := &Connection{DB: db}

		mock.ExpectBegin()
		mock.ExpectExec("UPDATE saved_audits").WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		err = conn.RunInTransaction(context.Background(), func(tx *sql.Tx) error {
			_, err := tx.Exec("UPDATE saved_audits SET domain = domain")
			return err
		})

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Rollback quando a função falha", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		conn := &Connection{DB: db}
		expected := errors.New("falha")

		mock.ExpectBegin()
		mock.ExpectRollback()

		err = conn.RunInTransaction(context.Background(), func(tx *sql.Tx) error {
			return expected
		})

		assert.ErrorIs(t, err, expected)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
