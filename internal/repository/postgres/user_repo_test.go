package postgres

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/require"

	"campustimetable/internal/domain"
)

var userRowColumns = []string{"id", "email", "password_hash", "salt", "name", "created_at", "updated_at"}

func TestUserRepository_Create(t *testing.T) {
	ctx := context.Background()
	createdAt := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		mock    func(mock sqlmock.Sqlmock)
		wantID  string
		wantErr bool
		errIs   error
	}{
		{
			name: "success",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`INSERT INTO users`).
					WithArgs("alice@example.com", "hash", "salt", "Alice", createdAt, createdAt).
					WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("user-uuid-1"))
			},
			wantID: "user-uuid-1",
		},
		{
			name: "unique violation returns ErrDuplicateEmail",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`INSERT INTO users`).
					WillReturnError(&pq.Error{Code: "23505"})
			},
			wantErr: true,
			errIs:   domain.ErrDuplicateEmail,
		},
		{
			name: "db error",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`INSERT INTO users`).
					WillReturnError(sql.ErrConnDone)
			},
			wantErr: true,
			errIs:   sql.ErrConnDone,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			tt.mock(mock)
			u := &domain.User{Email: "alice@example.com", PasswordHash: "hash", Salt: "salt", Name: "Alice", CreatedAt: createdAt, UpdatedAt: createdAt}
			err = NewUserRepository(db).Create(ctx, u)
			if tt.wantErr {
				require.ErrorIs(t, err, tt.errIs)
			} else {
				require.NoError(t, err)
				require.Equal(t, tt.wantID, u.ID)
			}
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestUserRepository_Get(t *testing.T) {
	ctx := context.Background()
	createdAt := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		byEmail bool
		arg     string
		mock    func(mock sqlmock.Sqlmock, arg string)
		errIs   error
	}{
		{
			name:    "by email",
			byEmail: true,
			arg:     "alice@example.com",
			mock: func(mock sqlmock.Sqlmock, arg string) {
				mock.ExpectQuery(regexp.QuoteMeta(`FROM users WHERE email = $1`)).
					WithArgs(arg).
					WillReturnRows(sqlmock.NewRows(userRowColumns).AddRow("user-1", "alice@example.com", "hash", "salt", "Alice", createdAt, createdAt))
			},
		},
		{
			name: "by id",
			arg:  "user-1",
			mock: func(mock sqlmock.Sqlmock, arg string) {
				mock.ExpectQuery(regexp.QuoteMeta(`FROM users WHERE id = $1`)).
					WithArgs(arg).
					WillReturnRows(sqlmock.NewRows(userRowColumns).AddRow("user-1", "alice@example.com", "hash", "salt", "Alice", createdAt, createdAt))
			},
		},
		{
			name: "not found",
			arg:  "missing",
			mock: func(mock sqlmock.Sqlmock, arg string) {
				mock.ExpectQuery(`FROM users`).WithArgs(arg).WillReturnError(sql.ErrNoRows)
			},
			errIs: domain.ErrUserNotFound,
		},
		{
			name:    "db error",
			byEmail: true,
			arg:     "alice@example.com",
			mock: func(mock sqlmock.Sqlmock, arg string) {
				mock.ExpectQuery(`FROM users`).WithArgs(arg).WillReturnError(sql.ErrConnDone)
			},
			errIs: sql.ErrConnDone,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			tt.mock(mock, tt.arg)
			repo := NewUserRepository(db)
			var u *domain.User
			if tt.byEmail {
				u, err = repo.GetByEmail(ctx, tt.arg)
			} else {
				u, err = repo.GetByID(ctx, tt.arg)
			}
			if tt.errIs != nil {
				require.ErrorIs(t, err, tt.errIs)
				require.Nil(t, u)
			} else {
				require.NoError(t, err)
				require.Equal(t, "user-1", u.ID)
				require.Equal(t, "alice@example.com", u.Email)
				require.Equal(t, "hash", u.PasswordHash)
				require.Equal(t, "salt", u.Salt)
				require.Equal(t, createdAt, u.CreatedAt)
			}
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
