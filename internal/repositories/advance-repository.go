package repositories

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"

	"github.com/Trunday/kalfa-api/internal/entities"
	apperrors "github.com/Trunday/kalfa-api/pkg/errors"
)

const advanceTable = "avanslar"
const advanceSelectFields = "id, date, amount, user_id"

type AdvanceRepositoryInterface interface {
	GetAdvances(ctx context.Context, userID uint64) ([]entities.Advance, error)
	FindAdvance(ctx context.Context, id uint64) (*entities.Advance, error)
	CreateAdvance(ctx context.Context, entity *entities.Advance) (*entities.Advance, error)
	UpdateAdvance(ctx context.Context, entity *entities.Advance) (*entities.Advance, error)
	DeleteAdvance(ctx context.Context, id uint64) error
}

type AdvanceRepository struct {
	storage Database
	logger  *zap.Logger
}

func NewAdvanceRepository(storage Database, logger *zap.Logger) AdvanceRepositoryInterface {
	return &AdvanceRepository{storage: storage, logger: logger}
}

func scanAdvance(row pgx.Row) (*entities.Advance, error) {
	var advance entities.Advance
	err := row.Scan(&advance.ID, &advance.Date, &advance.Amount, &advance.UserID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan advance row: %w", err)
	}
	return &advance, nil
}

func mapAdvanceForeignKeyError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23503" {
		return apperrors.NewBadRequestError("Geçersiz çalışan (user_id).")
	}
	return err
}

// GetAdvances lists all advances, optionally narrowed to one employee.
func (r *AdvanceRepository) GetAdvances(ctx context.Context, userID uint64) ([]entities.Advance, error) {
	builder := sq.StatementBuilder.PlaceholderFormat(sq.Dollar).
		Select(advanceSelectFields).
		From(advanceTable).
		OrderBy("id")

	if userID != 0 {
		builder = builder.Where(sq.Eq{"user_id": userID})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build advance list query: %w", err)
	}
	r.logger.Debug("executing advance list query", zap.String("query", query))

	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query advances: %w", err)
	}
	defer rows.Close()

	advances := make([]entities.Advance, 0)
	for rows.Next() {
		advance, err := scanAdvance(rows)
		if err != nil {
			return nil, err
		}
		advances = append(advances, *advance)
	}
	return advances, rows.Err()
}

func (r *AdvanceRepository) FindAdvance(ctx context.Context, id uint64) (*entities.Advance, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE id = $1`, advanceSelectFields, advanceTable)
	return scanAdvance(r.storage.QueryRow(ctx, query, id))
}

func (r *AdvanceRepository) CreateAdvance(ctx context.Context, entity *entities.Advance) (*entities.Advance, error) {
	query := fmt.Sprintf(`
		INSERT INTO %s (date, amount, user_id)
		VALUES ($1, $2, $3)
		RETURNING %s`, advanceTable, advanceSelectFields)

	row := r.storage.QueryRow(ctx, query, entity.Date, entity.Amount, entity.UserID)

	created, err := scanAdvance(row)
	if err != nil {
		return nil, mapAdvanceForeignKeyError(err)
	}
	return created, nil
}

func (r *AdvanceRepository) UpdateAdvance(ctx context.Context, entity *entities.Advance) (*entities.Advance, error) {
	query := fmt.Sprintf(`
		UPDATE %s SET date = $1, amount = $2, user_id = $3
		WHERE id = $4
		RETURNING %s`, advanceTable, advanceSelectFields)

	row := r.storage.QueryRow(ctx, query, entity.Date, entity.Amount, entity.UserID, entity.ID)

	updated, err := scanAdvance(row)
	if err != nil {
		return nil, mapAdvanceForeignKeyError(err)
	}
	return updated, nil
}

func (r *AdvanceRepository) DeleteAdvance(ctx context.Context, id uint64) error {
	result, err := r.storage.Exec(ctx, `DELETE FROM avanslar WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete advance: %w", err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
