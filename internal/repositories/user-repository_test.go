package repositories_test

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Trunday/kalfa-api/internal/entities"
	"github.com/Trunday/kalfa-api/internal/repositories"
	apperrors "github.com/Trunday/kalfa-api/pkg/errors"
)

var userColumns = []string{
	"id", "username", "password", "email", "role", "full_name", "phone",
	"notes", "address", "birth_date", "active", "created_at", "updated_at",
}

func userRow(id uint64, username, role string, active bool) []any {
	now := time.Now()
	return []any{
		id, username, "$2a$10$hash", "mail@example.com", role, "Ad Soyad", nil,
		nil, nil, nil, active, now, now,
	}
}

func TestFindUserByID(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		t.Parallel()
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		repo := repositories.NewUserRepository(mock, zap.NewNop())

		mock.ExpectQuery(`SELECT .+ FROM users WHERE id = \$1`).
			WithArgs(uint64(7)).
			WillReturnRows(pgxmock.NewRows(userColumns).AddRow(userRow(7, "usta", entities.RoleEmployee, true)...))

		user, err := repo.FindUserByID(ctx, 7)

		require.NoError(t, err)
		assert.Equal(t, uint64(7), user.ID)
		assert.Equal(t, "usta", user.Username)
		assert.Equal(t, entities.RoleEmployee, user.Role)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("not found", func(t *testing.T) {
		t.Parallel()
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		repo := repositories.NewUserRepository(mock, zap.NewNop())

		mock.ExpectQuery(`SELECT .+ FROM users WHERE id = \$1`).
			WithArgs(uint64(404)).
			WillReturnRows(pgxmock.NewRows(userColumns))

		_, err = repo.FindUserByID(ctx, 404)

		require.ErrorIs(t, err, apperrors.ErrNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestFindUserByUsernameOrEmail(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := repositories.NewUserRepository(mock, zap.NewNop())

	// One placeholder serves both columns, so a login can be either value.
	mock.ExpectQuery(`SELECT .+ FROM users WHERE username = \$1 OR email = \$1`).
		WithArgs("mail@example.com").
		WillReturnRows(pgxmock.NewRows(userColumns).AddRow(userRow(3, "usta", entities.RoleUser, true)...))

	user, err := repo.FindUserByUsernameOrEmail(ctx, "mail@example.com")

	require.NoError(t, err)
	assert.Equal(t, "usta", user.Username)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestExistsByUsernameOrEmail(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := repositories.NewUserRepository(mock, zap.NewNop())

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT EXISTS (SELECT 1 FROM users WHERE username = $1 OR ($2 <> '' AND email = $2))`)).
		WithArgs("usta", "").
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(true))

	exists, err := repo.ExistsByUsernameOrEmail(ctx, "usta", "")

	require.NoError(t, err)
	assert.True(t, exists)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateUserDuplicate(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := repositories.NewUserRepository(mock, zap.NewNop())

	mock.ExpectQuery(`INSERT INTO users`).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "users_username_key"})

	_, err = repo.CreateUser(ctx, &entities.User{Username: "usta", Password: "x", Role: entities.RoleUser})

	var httpErr *apperrors.HttpError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, 400, httpErr.Code)
	assert.Contains(t, httpErr.Message, "kullanıcı adı")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeactivateUser(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("flips active", func(t *testing.T) {
		t.Parallel()
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		repo := repositories.NewUserRepository(mock, zap.NewNop())

		mock.ExpectExec(regexp.QuoteMeta(`UPDATE users SET active = FALSE, updated_at = NOW() WHERE id = $1`)).
			WithArgs(uint64(5)).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		require.NoError(t, repo.DeactivateUser(ctx, 5))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing row", func(t *testing.T) {
		t.Parallel()
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		repo := repositories.NewUserRepository(mock, zap.NewNop())

		mock.ExpectExec(regexp.QuoteMeta(`UPDATE users SET active = FALSE, updated_at = NOW() WHERE id = $1`)).
			WithArgs(uint64(404)).
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))

		require.ErrorIs(t, repo.DeactivateUser(ctx, 404), apperrors.ErrNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGetUsersFiltersRoleAndActive(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := repositories.NewUserRepository(mock, zap.NewNop())

	mock.ExpectQuery(`SELECT .+ FROM users WHERE role = \$1 AND active = \$2 ORDER BY id`).
		WithArgs(entities.RoleEmployee, true).
		WillReturnRows(pgxmock.NewRows(userColumns).
			AddRow(userRow(1, "ahmet", entities.RoleEmployee, true)...).
			AddRow(userRow(2, "mehmet", entities.RoleEmployee, true)...))

	users, err := repo.GetUsers(ctx, entities.RoleEmployee, true)

	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, "ahmet", users[0].Username)
	assert.NoError(t, mock.ExpectationsWereMet())
}
