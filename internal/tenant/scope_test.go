package tenant

import (
	"context"
	"database/sql"
	"io"
	"log/slog"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gharrison91/camp-connect-sub002/internal/database"
	apperrors "github.com/gharrison91/camp-connect-sub002/internal/errors"
)

func testBinder() *Binder {
	return NewBinder("app.current_org", slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func newMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		db.Close()
		assert.NoError(t, mock.ExpectationsWereMet())
	})
	return db, mock
}

func TestParseID(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		raw := "0192b2c4-7e15-7d30-93e5-3f7a11a5a001"
		id, err := ParseID(raw)
		require.NoError(t, err)
		assert.Equal(t, raw, id.String())
		assert.False(t, id.IsZero())
	})

	t.Run("Failure_NotAUUID", func(t *testing.T) {
		_, err := ParseID("1 OR 1=1")
		assert.ErrorIs(t, err, ErrMalformedID)
		assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
	})

	t.Run("Failure_Empty", func(t *testing.T) {
		_, err := ParseID("")
		assert.ErrorIs(t, err, ErrMalformedID)
	})
}

func TestIDFrom(t *testing.T) {
	raw := uuid.Must(uuid.NewV7())
	id := IDFrom(raw)
	assert.Equal(t, raw, id.UUID())
	assert.False(t, id.IsZero())

	assert.True(t, IDFrom(uuid.Nil).IsZero())
}

func TestBinderBind(t *testing.T) {
	orgID := uuid.Must(uuid.NewV7())

	t.Run("Success_SetsTransactionLocalScope", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectBegin()
		mock.ExpectExec("SET LOCAL app.current_org = '" + orgID.String() + "'").
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectCommit()

		binder := testBinder()
		err := database.NewTxManager(db).WithTx(context.Background(), func(txCtx context.Context) error {
			return binder.Bind(txCtx, IDFrom(orgID))
		})

		assert.NoError(t, err)
	})

	t.Run("Failure_ZeroID", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectBegin()
		mock.ExpectRollback()

		binder := testBinder()
		err := database.NewTxManager(db).WithTx(context.Background(), func(txCtx context.Context) error {
			return binder.Bind(txCtx, ID{})
		})

		assert.ErrorIs(t, err, ErrMalformedID)
	})

	t.Run("Failure_NoTransaction", func(t *testing.T) {
		binder := testBinder()
		err := binder.Bind(context.Background(), IDFrom(orgID))

		assert.ErrorIs(t, err, ErrNoTransaction)
	})

	t.Run("Failure_ExecError", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectBegin()
		mock.ExpectExec("SET LOCAL app.current_org").WillReturnError(assert.AnError)
		mock.ExpectRollback()

		binder := testBinder()
		err := database.NewTxManager(db).WithTx(context.Background(), func(txCtx context.Context) error {
			return binder.Bind(txCtx, IDFrom(orgID))
		})

		assert.Error(t, err)
	})
}

func TestBinderCurrent(t *testing.T) {
	orgID := uuid.Must(uuid.NewV7())

	t.Run("Success_ReadsBackScope", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectBegin()
		mock.ExpectQuery("SELECT current_setting").
			WithArgs("app.current_org").
			WillReturnRows(sqlmock.NewRows([]string{"current_setting"}).AddRow(orgID.String()))
		mock.ExpectCommit()

		binder := testBinder()
		err := database.NewTxManager(db).WithTx(context.Background(), func(txCtx context.Context) error {
			value, err := binder.Current(txCtx, db)
			if err != nil {
				return err
			}
			assert.Equal(t, orgID.String(), value)
			return nil
		})

		assert.NoError(t, err)
	})

	t.Run("Success_UnsetScopeIsEmpty", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectQuery("SELECT current_setting").
			WithArgs("app.current_org").
			WillReturnRows(sqlmock.NewRows([]string{"current_setting"}).AddRow(nil))

		binder := testBinder()
		value, err := binder.Current(context.Background(), db)

		require.NoError(t, err)
		assert.Empty(t, value)
	})
}
