package repositories

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/Trunday/kalfa-api/internal/entities"
)

type ReportRepositoryInterface interface {
	GetJobReport(ctx context.Context) ([]entities.JobReportItem, error)
}

type ReportRepository struct {
	storage Database
	logger  *zap.Logger
}

func NewReportRepository(storage Database, logger *zap.Logger) ReportRepositoryInterface {
	return &ReportRepository{storage: storage, logger: logger}
}

// GetJobReport joins jobs with their owner. The owner label prefers the
// legacy full name and falls back to the username.
func (r *ReportRepository) GetJobReport(ctx context.Context) ([]entities.JobReportItem, error) {
	query := `
		SELECT i.id, i.date, i.project_name, i.quantity, i.unit, i.unit_price, i.total_price, i.status,
			COALESCE(u.full_name, u.username) AS employee_name
		FROM isler i
		LEFT JOIN users u ON i.user_id = u.id
		ORDER BY i.date, i.id`

	rows, err := r.storage.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query job report: %w", err)
	}
	defer rows.Close()

	items := make([]entities.JobReportItem, 0)
	for rows.Next() {
		var item entities.JobReportItem
		err := rows.Scan(
			&item.JobID, &item.Date, &item.ProjectName, &item.Quantity, &item.Unit,
			&item.UnitPrice, &item.TotalPrice, &item.Status, &item.EmployeeName,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan job report row: %w", err)
		}
		items = append(items, item)
	}
	return items, rows.Err()
}
