package dto

type CreatePaymentDTO struct {
	Date        string   `json:"date" validate:"required"`
	Amount      *float64 `json:"amount" validate:"required"`
	Description *string  `json:"description" validate:"omitempty"`
	PaymentKind string   `json:"payment_kind" validate:"omitempty,oneof=advance salary bonus incentive"`
	PaymentType *string  `json:"payment_type" validate:"omitempty"`
	UserID      *uint64  `json:"user_id" validate:"omitempty"`
}

type UpdatePaymentDTO struct {
	Date        *string  `json:"date" validate:"omitempty"`
	Amount      *float64 `json:"amount" validate:"omitempty"`
	Description *string  `json:"description" validate:"omitempty"`
	PaymentKind *string  `json:"payment_kind" validate:"omitempty,oneof=advance salary bonus incentive"`
	PaymentType *string  `json:"payment_type" validate:"omitempty"`
	UserID      *uint64  `json:"user_id" validate:"omitempty"`
}
