package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adityarama/fleetops/internal/pkg/apperrors"
	"github.com/adityarama/fleetops/internal/pkg/models"
)

func newMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return sqlx.NewDb(db, "sqlmock"), mock
}

func TestStopRepo_CreateStop(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewStopRepository(db)

	lat, lon := 23.8103, 90.4125
	stop := &models.Stop{
		ID:        uuid.New(),
		Name:      "Motijheel office",
		Latitude:  &lat,
		Longitude: &lon,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	mock.ExpectExec("INSERT INTO stops").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.CreateStop(context.Background(), stop)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStopRepo_UpdateStop_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewStopRepository(db)

	stop := &models.Stop{ID: uuid.New(), Name: "Motijheel office"}

	mock.ExpectExec("UPDATE stops").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdateStop(context.Background(), stop)

	assert.True(t, apperrors.IsNotFound(err))
}

func TestStopRepo_GetStop_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewStopRepository(db)

	id := uuid.New()
	mock.ExpectQuery("SELECT (.+) FROM stops").
		WithArgs(id).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := repo.GetStop(context.Background(), id)

	assert.True(t, apperrors.IsNotFound(err))
}

func TestStopRepo_GetStopsByIDs_EmptyInput(t *testing.T) {
	db, _ := newMockDB(t)
	repo := NewStopRepository(db)

	out, err := repo.GetStopsByIDs(context.Background(), nil)

	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestStopRepo_GetStopsByIDs(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewStopRepository(db)

	id1, id2 := uuid.New(), uuid.New()
	now := time.Now()

	mock.ExpectQuery("SELECT (.+) FROM stops").
		WillReturnRows(sqlmock.NewRows(
			[]string{"id", "name", "latitude", "longitude", "description", "created_at", "updated_at"},
		).
			AddRow(id1, "Stop one", 23.8103, 90.4125, "", now, now).
			AddRow(id2, "Stop two", nil, nil, "", now, now))

	out, err := repo.GetStopsByIDs(context.Background(), []uuid.UUID{id1, id2})

	require.NoError(t, err)
	require.Len(t, out, 2)
	stop1, stop2 := out[id1], out[id2]
	assert.True(t, stop1.HasCoordinates())
	assert.False(t, stop2.HasCoordinates())
}
