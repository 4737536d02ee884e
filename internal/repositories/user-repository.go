package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"

	"github.com/Trunday/kalfa-api/internal/entities"
	apperrors "github.com/Trunday/kalfa-api/pkg/errors"
)

const userTable = "users"
const userSelectFields = "id, username, password, email, role, full_name, phone, notes, address, birth_date, active, created_at, updated_at"

type UserRepositoryInterface interface {
	GetUsers(ctx context.Context, role string, activeOnly bool) ([]entities.User, error)
	FindUserByID(ctx context.Context, id uint64) (*entities.User, error)
	FindUserByUsernameOrEmail(ctx context.Context, login string) (*entities.User, error)
	ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error)
	CreateUser(ctx context.Context, entity *entities.User) (*entities.User, error)
	UpdateUser(ctx context.Context, entity *entities.User) (*entities.User, error)
	DeactivateUser(ctx context.Context, id uint64) error
}

type UserRepository struct {
	storage Database
	logger  *zap.Logger
}

func NewUserRepository(storage Database, logger *zap.Logger) UserRepositoryInterface {
	return &UserRepository{storage: storage, logger: logger}
}

func scanUser(row pgx.Row) (*entities.User, error) {
	var user entities.User
	err := row.Scan(
		&user.ID, &user.Username, &user.Password, &user.Email, &user.Role,
		&user.FullName, &user.Phone, &user.Notes, &user.Address,
		&user.BirthDate, &user.Active, &user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan user row: %w", err)
	}
	return &user, nil
}

// mapUserConstraintError converts unique-constraint hits into the 400 errors
// the registration contract promises.
func mapUserConstraintError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		switch {
		case strings.Contains(pgErr.ConstraintName, "username"):
			return apperrors.NewDuplicateError("kullanıcı adı", err)
		case strings.Contains(pgErr.ConstraintName, "email"):
			return apperrors.NewDuplicateError("e-posta", err)
		case strings.Contains(pgErr.ConstraintName, "phone"):
			return apperrors.NewDuplicateError("telefon", err)
		}
	}
	return err
}

func (r *UserRepository) GetUsers(ctx context.Context, role string, activeOnly bool) ([]entities.User, error) {
	builder := sq.StatementBuilder.PlaceholderFormat(sq.Dollar).
		Select(userSelectFields).
		From(userTable).
		OrderBy("id")

	if role != "" {
		builder = builder.Where(sq.Eq{"role": role})
	}
	if activeOnly {
		builder = builder.Where(sq.Eq{"active": true})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build user list query: %w", err)
	}
	r.logger.Debug("executing user list query", zap.String("query", query))

	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query users: %w", err)
	}
	defer rows.Close()

	users := make([]entities.User, 0)
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, *user)
	}
	return users, rows.Err()
}

func (r *UserRepository) FindUserByID(ctx context.Context, id uint64) (*entities.User, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE id = $1`, userSelectFields, userTable)
	return scanUser(r.storage.QueryRow(ctx, query, id))
}

func (r *UserRepository) FindUserByUsernameOrEmail(ctx context.Context, login string) (*entities.User, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE username = $1 OR email = $1`, userSelectFields, userTable)
	return scanUser(r.storage.QueryRow(ctx, query, login))
}

func (r *UserRepository) ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS (SELECT 1 FROM users WHERE username = $1 OR ($2 <> '' AND email = $2))`
	if err := r.storage.QueryRow(ctx, query, username, email).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check user existence: %w", err)
	}
	return exists, nil
}

func (r *UserRepository) CreateUser(ctx context.Context, entity *entities.User) (*entities.User, error) {
	query := fmt.Sprintf(`
		INSERT INTO %s (username, password, email, role, full_name, phone, notes, address, birth_date, active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING %s`, userTable, userSelectFields)

	row := r.storage.QueryRow(ctx, query,
		entity.Username, entity.Password, entity.Email, entity.Role,
		entity.FullName, entity.Phone, entity.Notes, entity.Address,
		entity.BirthDate, entity.Active,
	)

	created, err := scanUser(row)
	if err != nil {
		return nil, mapUserConstraintError(err)
	}
	return created, nil
}

func (r *UserRepository) UpdateUser(ctx context.Context, entity *entities.User) (*entities.User, error) {
	query := fmt.Sprintf(`
		UPDATE %s SET username = $1, password = $2, email = $3, role = $4, full_name = $5,
			phone = $6, notes = $7, address = $8, birth_date = $9, active = $10, updated_at = NOW()
		WHERE id = $11
		RETURNING %s`, userTable, userSelectFields)

	row := r.storage.QueryRow(ctx, query,
		entity.Username, entity.Password, entity.Email, entity.Role,
		entity.FullName, entity.Phone, entity.Notes, entity.Address,
		entity.BirthDate, entity.Active, entity.ID,
	)

	updated, err := scanUser(row)
	if err != nil {
		return nil, mapUserConstraintError(err)
	}
	return updated, nil
}

// DeactivateUser soft-deletes: the row stays, active flips to false.
func (r *UserRepository) DeactivateUser(ctx context.Context, id uint64) error {
	query := `UPDATE users SET active = FALSE, updated_at = NOW() WHERE id = $1`
	result, err := r.storage.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to deactivate user: %w", err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
