package storage

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestPostgres(t *testing.T) (*Postgres, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewPostgres(db), mock
}

func TestPostgres_Get(t *testing.T) {
	s, mock := newTestPostgres(t)

	mock.ExpectQuery("SELECT value FROM kv_store").
		WithArgs("users").
		WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow([]byte(`[]`)))

	got, err := s.Get(context.Background(), "users")
	require.NoError(t, err)
	assert.Equal(t, `[]`, string(got))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgres_GetMissing(t *testing.T) {
	s, mock := newTestPostgres(t)

	mock.ExpectQuery("SELECT value FROM kv_store").
		WithArgs("users").
		WillReturnRows(sqlmock.NewRows([]string{"value"}))

	_, err := s.Get(context.Background(), "users")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgres_GetError(t *testing.T) {
	s, mock := newTestPostgres(t)

	mock.ExpectQuery("SELECT value FROM kv_store").
		WithArgs("users").
		WillReturnError(errors.New("connection reset"))

	_, err := s.Get(context.Background(), "users")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotFound)
}

func TestPostgres_SetUpserts(t *testing.T) {
	s, mock := newTestPostgres(t)

	mock.ExpectExec("INSERT INTO kv_store").
		WithArgs("mood_data_u1", []byte(`[]`)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, s.Set(context.Background(), "mood_data_u1", []byte(`[]`)))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgres_Delete(t *testing.T) {
	s, mock := newTestPostgres(t)

	mock.ExpectExec("DELETE FROM kv_store").
		WithArgs("mood_data_u1").
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, s.Delete(context.Background(), "mood_data_u1"))
	assert.NoError(t, mock.ExpectationsWereMet())
}
