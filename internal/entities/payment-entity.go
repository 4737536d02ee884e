package entities

import (
	"time"

	"github.com/aarondl/null/v8"
)

// Payment kinds accepted by the odeme table.
const (
	PaymentKindAdvance   = "advance"
	PaymentKindSalary    = "salary"
	PaymentKindBonus     = "bonus"
	PaymentKindIncentive = "incentive"
)

// Payment is any disbursement to a user.
type Payment struct {
	ID          uint64      `json:"id" db:"id"`
	Date        time.Time   `json:"date" db:"date"`
	Amount      float64     `json:"amount" db:"amount"`
	Description null.String `json:"description" db:"description"`
	PaymentKind string      `json:"payment_kind" db:"payment_kind"`
	PaymentType null.String `json:"payment_type" db:"payment_type"`
	UserID      null.Uint64 `json:"user_id" db:"user_id"`

	// User is populated only when the caller asked to include the owner.
	// The password column is never selected for it.
	User *User `json:"user,omitempty" db:"-"`
}
