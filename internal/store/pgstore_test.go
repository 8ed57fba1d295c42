package store

import (
	"context"
	"regexp"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPGStoreMock(t *testing.T) (*PGStore, sqlmock.Sqlmock, func()) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	mock.ExpectExec("CREATE TABLE IF NOT EXISTS snapshots").WillReturnResult(sqlmock.NewResult(0, 0))
	store, err := NewPGStore(sqlx.NewDb(db, "sqlmock"))
	require.NoError(t, err)
	return store, mock, func() { db.Close() }
}

func TestPGStoreLoad(t *testing.T) {
	store, mock, cleanup := newPGStoreMock(t)
	defer cleanup()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT value FROM snapshots WHERE key = $1")).
		WithArgs(KeyPopup).
		WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow([]byte(`{"enabled":false}`)))

	raw, found, err := store.Load(context.Background(), KeyPopup)
	require.NoError(t, err)
	assert.True(t, found)
	assert.JSONEq(t, `{"enabled":false}`, string(raw))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPGStoreLoadMissing(t *testing.T) {
	store, mock, cleanup := newPGStoreMock(t)
	defer cleanup()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT value FROM snapshots WHERE key = $1")).
		WithArgs(KeyStudents).
		WillReturnRows(sqlmock.NewRows([]string{"value"}))

	_, found, err := store.Load(context.Background(), KeyStudents)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestPGStoreApplyRunsInTransaction(t *testing.T) {
	store, mock, cleanup := newPGStoreMock(t)
	defer cleanup()

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO snapshots").
		WithArgs(KeyCourses, []byte(`[]`)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO snapshots").
		WithArgs(KeyStudents, []byte(`[]`)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM snapshots WHERE key = $1")).
		WithArgs(KeyRole).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	batch := NewBatch()
	batch.Set(KeyCourses, []byte(`[]`))
	batch.Set(KeyStudents, []byte(`[]`))
	batch.Delete(KeyRole)

	require.NoError(t, store.Apply(context.Background(), batch))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPGStoreApplyEmptyBatchNoop(t *testing.T) {
	store, mock, cleanup := newPGStoreMock(t)
	defer cleanup()

	require.NoError(t, store.Apply(context.Background(), NewBatch()))
	assert.NoError(t, mock.ExpectationsWereMet())
}
