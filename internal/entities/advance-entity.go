package entities

import (
	"time"

	"github.com/aarondl/null/v8"
)

// Advance is a cash advance handed to an employee, offset later against
// payments. Pure record, no derived fields.
type Advance struct {
	ID     uint64      `json:"id" db:"id"`
	Date   time.Time   `json:"date" db:"date"`
	Amount float64     `json:"amount" db:"amount"`
	UserID null.Uint64 `json:"user_id" db:"user_id"`
}
