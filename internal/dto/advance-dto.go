package dto

type CreateAdvanceDTO struct {
	Date   string   `json:"date" validate:"required"`
	Amount *float64 `json:"amount" validate:"required"`
	UserID *uint64  `json:"user_id" validate:"required"`
}

// UpdateAdvanceDTO is a full overwrite: every field must be sent, there is no
// partial merge for advances.
type UpdateAdvanceDTO struct {
	Date   string   `json:"date" validate:"required"`
	Amount *float64 `json:"amount" validate:"required"`
	UserID *uint64  `json:"user_id" validate:"required"`
}
