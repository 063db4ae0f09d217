package postgres

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"filestore/internal/repository"
)

func TestUserPostgres_FindByCredentials(t *testing.T) {
	db, mock := newMock(t)
	repo := NewUserPostgres(db)
	ctx := context.Background()

	t.Run("match", func(t *testing.T) {
		mock.ExpectQuery("SELECT id, email, password FROM users WHERE email").
			WithArgs("bob@dylan.com", "89cad29e3ebc1035b29b1478a8e70854f25fa2b2").
			WillReturnRows(sqlmock.NewRows([]string{"id", "email", "password"}).
				AddRow(userUUID, "bob@dylan.com", "89cad29e3ebc1035b29b1478a8e70854f25fa2b2"))

		u, err := repo.FindByCredentials(ctx, "bob@dylan.com", "89cad29e3ebc1035b29b1478a8e70854f25fa2b2")

		require.NoError(t, err)
		assert.Equal(t, userUUID, u.ID)
	})

	t.Run("no match", func(t *testing.T) {
		mock.ExpectQuery("SELECT id, email, password FROM users WHERE email").
			WithArgs("bob@dylan.com", "bad").
			WillReturnError(sql.ErrNoRows)

		_, err := repo.FindByCredentials(ctx, "bob@dylan.com", "bad")

		assert.ErrorIs(t, err, repository.ErrNotFound)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserPostgres_FindByID(t *testing.T) {
	db, mock := newMock(t)
	repo := NewUserPostgres(db)

	_, err := repo.FindByID(context.Background(), "bogus")
	assert.ErrorIs(t, err, repository.ErrNotFound)

	mock.ExpectQuery("SELECT id, email, password FROM users WHERE id").
		WithArgs(userUUID).
		WillReturnRows(sqlmock.NewRows([]string{"id", "email", "password"}).AddRow(userUUID, "a@b.c", "h"))

	u, err := repo.FindByID(context.Background(), userUUID)
	require.NoError(t, err)
	assert.Equal(t, "a@b.c", u.Email)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserPostgres_Count(t *testing.T) {
	db, mock := newMock(t)
	repo := NewUserPostgres(db)

	mock.ExpectQuery("SELECT COUNT").WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))

	n, err := repo.Count(context.Background())

	require.NoError(t, err)
	assert.Equal(t, int64(3), n)
}
