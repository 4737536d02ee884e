package entities

import (
	"time"

	"github.com/aarondl/null/v8"
)

// Job is a unit of completed work. TotalPrice is derived from
// Quantity * UnitPrice by the service layer.
type Job struct {
	ID          uint64       `json:"id" db:"id"`
	Date        time.Time    `json:"date" db:"date"`
	Quantity    float64      `json:"quantity" db:"quantity"`
	Unit        string       `json:"unit" db:"unit"`
	UnitPrice   float64      `json:"unit_price" db:"unit_price"`
	TotalPrice  null.Float64 `json:"total_price" db:"total_price"`
	Description null.String  `json:"description" db:"description"`
	Status      null.String  `json:"status" db:"status"`
	ProjectName null.String  `json:"project_name" db:"project_name"`
	UserID      null.Uint64  `json:"user_id" db:"user_id"`
}
