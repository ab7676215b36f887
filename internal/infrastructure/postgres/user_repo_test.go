package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ErlanBelekov/communication-service/internal/domain"
	"github.com/ErlanBelekov/communication-service/internal/repository"
)

var userCols = []string{"id", "email", "password_hash", "created_at", "updated_at"}

func newMock(t *testing.T) pgxmock.PgxPoolIface {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err, "failed to create mock")
	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
		mock.Close()
	})
	return mock
}

func TestUserRepository_Create(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name      string
		setupMock func(mock pgxmock.PgxPoolIface)
		wantErr   error
	}{
		{
			name: "inserted",
			setupMock: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(`INSERT INTO users`).
					WithArgs("alice@example.com", "hash").
					WillReturnRows(pgxmock.NewRows(userCols).
						AddRow("user-1", "alice@example.com", "hash", now, now))
			},
		},
		{
			name: "duplicate email",
			setupMock: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(`INSERT INTO users`).
					WithArgs("alice@example.com", "hash").
					WillReturnError(&pgconn.PgError{Code: pgerrcode.UniqueViolation})
			},
			wantErr: domain.ErrEmailTaken,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := newMock(t)
			tt.setupMock(mock)

			u, err := NewUserRepository(mock).Create(context.Background(), "alice@example.com", "hash")
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "user-1", u.ID)
			assert.Equal(t, "hash", u.PasswordHash)
		})
	}
}

func TestUserRepository_FindByEmail(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		mock := newMock(t)
		now := time.Now()
		mock.ExpectQuery(`SELECT (.+) FROM users WHERE lower\(email\) = lower\(\$1\)`).
			WithArgs("Alice@Example.com").
			WillReturnRows(pgxmock.NewRows(userCols).
				AddRow("user-1", "alice@example.com", "hash", now, now))

		u, err := NewUserRepository(mock).FindByEmail(context.Background(), "Alice@Example.com")
		require.NoError(t, err)
		assert.Equal(t, "user-1", u.ID)
	})

	t.Run("not found", func(t *testing.T) {
		mock := newMock(t)
		mock.ExpectQuery(`SELECT (.+) FROM users WHERE lower\(email\) = lower\(\$1\)`).
			WithArgs("nobody@example.com").
			WillReturnError(pgx.ErrNoRows)

		_, err := NewUserRepository(mock).FindByEmail(context.Background(), "nobody@example.com")
		assert.ErrorIs(t, err, domain.ErrUserNotFound)
	})
}

func TestUserRepository_FindByID_MalformedID(t *testing.T) {
	mock := newMock(t)
	mock.ExpectQuery(`SELECT (.+) FROM users WHERE id = \$1`).
		WithArgs("not-a-uuid").
		WillReturnError(&pgconn.PgError{Code: pgerrcode.InvalidTextRepresentation})

	_, err := NewUserRepository(mock).FindByID(context.Background(), "not-a-uuid")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestUserRepository_Delete(t *testing.T) {
	t.Run("deleted", func(t *testing.T) {
		mock := newMock(t)
		mock.ExpectExec(`DELETE FROM users`).
			WithArgs("user-1").
			WillReturnResult(pgxmock.NewResult("DELETE", 1))

		assert.NoError(t, NewUserRepository(mock).Delete(context.Background(), "user-1"))
	})

	t.Run("missing", func(t *testing.T) {
		mock := newMock(t)
		mock.ExpectExec(`DELETE FROM users`).
			WithArgs("user-1").
			WillReturnResult(pgxmock.NewResult("DELETE", 0))

		err := NewUserRepository(mock).Delete(context.Background(), "user-1")
		assert.ErrorIs(t, err, domain.ErrUserNotFound)
	})

	t.Run("db error", func(t *testing.T) {
		mock := newMock(t)
		mock.ExpectExec(`DELETE FROM users`).
			WithArgs("user-1").
			WillReturnError(errors.New("connection refused"))

		err := NewUserRepository(mock).Delete(context.Background(), "user-1")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "connection refused")
	})
}

func TestUserRepository_List(t *testing.T) {
	mock := newMock(t)
	now := time.Now()

	mock.ExpectQuery(`SELECT COUNT`).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(int64(12)))
	mock.ExpectQuery(`ORDER BY created_at ASC`).
		WithArgs(10, 10).
		WillReturnRows(pgxmock.NewRows(userCols).
			AddRow("user-11", "k@example.com", "h", now, now).
			AddRow("user-12", "l@example.com", "h", now, now))

	users, total, err := NewUserRepository(mock).List(context.Background(), repository.Page{Offset: 10, Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, 12, total)
	require.Len(t, users, 2)
	assert.Equal(t, "user-11", users[0].ID)
}

func TestUserRepository_Search_EscapesWildcards(t *testing.T) {
	mock := newMock(t)
	mock.ExpectQuery(`WHERE  email ILIKE \$1`).
		WithArgs(`%50\%\_off%`, 20).
		WillReturnRows(pgxmock.NewRows(userCols))

	users, err := NewUserRepository(mock).Search(context.Background(), "50%_off", 20)
	require.NoError(t, err)
	assert.Empty(t, users)
}
