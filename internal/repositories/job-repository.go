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

const jobTable = "isler"
const jobSelectFields = "id, date, quantity, unit, unit_price, total_price, description, status, project_name, user_id"

// allowedJobFilters whitelists the query-string filters the list endpoint
// accepts, keyed by JSON name.
var allowedJobFilters = map[string]string{
	"user_id":      "user_id",
	"status":       "status",
	"project_name": "project_name",
}

type JobRepositoryInterface interface {
	GetJobs(ctx context.Context, filters map[string]string) ([]entities.Job, error)
	FindJob(ctx context.Context, id uint64) (*entities.Job, error)
	CreateJob(ctx context.Context, entity *entities.Job) (*entities.Job, error)
	UpdateJob(ctx context.Context, entity *entities.Job) (*entities.Job, error)
	DeleteJob(ctx context.Context, id uint64) error
}

type JobRepository struct {
	storage Database
	logger  *zap.Logger
}

func NewJobRepository(storage Database, logger *zap.Logger) JobRepositoryInterface {
	return &JobRepository{storage: storage, logger: logger}
}

func scanJob(row pgx.Row) (*entities.Job, error) {
	var job entities.Job
	err := row.Scan(
		&job.ID, &job.Date, &job.Quantity, &job.Unit, &job.UnitPrice,
		&job.TotalPrice, &job.Description, &job.Status, &job.ProjectName, &job.UserID,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan job row: %w", err)
	}
	return &job, nil
}

func mapJobForeignKeyError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23503" {
		return apperrors.NewBadRequestError("Geçersiz çalışan (user_id).")
	}
	return err
}

func (r *JobRepository) GetJobs(ctx context.Context, filters map[string]string) ([]entities.Job, error) {
	builder := sq.StatementBuilder.PlaceholderFormat(sq.Dollar).
		Select(jobSelectFields).
		From(jobTable).
		OrderBy("id")

	for jsonField, value := range filters {
		col, ok := allowedJobFilters[jsonField]
		if !ok {
			continue
		}
		builder = builder.Where(sq.Eq{col: value})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build job list query: %w", err)
	}
	r.logger.Debug("executing job list query", zap.String("query", query))

	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query jobs: %w", err)
	}
	defer rows.Close()

	jobs := make([]entities.Job, 0)
	for rows.Next() {
		job, err := scanJob(rows)
		if err != nil {
			return nil, err
		}
		jobs = append(jobs, *job)
	}
	return jobs, rows.Err()
}

func (r *JobRepository) FindJob(ctx context.Context, id uint64) (*entities.Job, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE id = $1`, jobSelectFields, jobTable)
	return scanJob(r.storage.QueryRow(ctx, query, id))
}

func (r *JobRepository) CreateJob(ctx context.Context, entity *entities.Job) (*entities.Job, error) {
	query := fmt.Sprintf(`
		INSERT INTO %s (date, quantity, unit, unit_price, total_price, description, status, project_name, user_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING %s`, jobTable, jobSelectFields)

	row := r.storage.QueryRow(ctx, query,
		entity.Date, entity.Quantity, entity.Unit, entity.UnitPrice,
		entity.TotalPrice, entity.Description, entity.Status, entity.ProjectName, entity.UserID,
	)

	created, err := scanJob(row)
	if err != nil {
		return nil, mapJobForeignKeyError(err)
	}
	return created, nil
}

func (r *JobRepository) UpdateJob(ctx context.Context, entity *entities.Job) (*entities.Job, error) {
	query := fmt.Sprintf(`
		UPDATE %s SET date = $1, quantity = $2, unit = $3, unit_price = $4, total_price = $5,
			description = $6, status = $7, project_name = $8, user_id = $9
		WHERE id = $10
		RETURNING %s`, jobTable, jobSelectFields)

	row := r.storage.QueryRow(ctx, query,
		entity.Date, entity.Quantity, entity.Unit, entity.UnitPrice,
		entity.TotalPrice, entity.Description, entity.Status, entity.ProjectName,
		entity.UserID, entity.ID,
	)

	updated, err := scanJob(row)
	if err != nil {
		return nil, mapJobForeignKeyError(err)
	}
	return updated, nil
}

func (r *JobRepository) DeleteJob(ctx context.Context, id uint64) error {
	result, err := r.storage.Exec(ctx, `DELETE FROM isler WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete job: %w", err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
