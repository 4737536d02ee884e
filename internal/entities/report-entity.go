package entities

import (
	"time"

	"github.com/aarondl/null/v8"
)

// JobReportItem is one row of the jobs export: a job joined with its owner.
type JobReportItem struct {
	JobID        uint64       `db:"id"`
	Date         time.Time    `db:"date"`
	ProjectName  null.String  `db:"project_name"`
	Quantity     float64      `db:"quantity"`
	Unit         string       `db:"unit"`
	UnitPrice    float64      `db:"unit_price"`
	TotalPrice   null.Float64 `db:"total_price"`
	Status       null.String  `db:"status"`
	EmployeeName null.String  `db:"employee_name"`
}
