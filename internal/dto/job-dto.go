package dto

type CreateJobDTO struct {
	Date        string   `json:"date" validate:"required"`
	Quantity    *float64 `json:"quantity" validate:"required"`
	Unit        string   `json:"unit" validate:"required"`
	UnitPrice   *float64 `json:"unit_price" validate:"required"`
	Description *string  `json:"description" validate:"omitempty"`
	Status      *string  `json:"status" validate:"omitempty"`
	ProjectName *string  `json:"project_name" validate:"omitempty"`
	UserID      *uint64  `json:"user_id" validate:"omitempty"`
}

// UpdateJobDTO merges into the stored record; the derived total is always
// recomputed from the merged quantity and unit price.
type UpdateJobDTO struct {
	Date        *string  `json:"date" validate:"omitempty"`
	Quantity    *float64 `json:"quantity" validate:"omitempty"`
	Unit        *string  `json:"unit" validate:"omitempty"`
	UnitPrice   *float64 `json:"unit_price" validate:"omitempty"`
	Description *string  `json:"description" validate:"omitempty"`
	Status      *string  `json:"status" validate:"omitempty"`
	ProjectName *string  `json:"project_name" validate:"omitempty"`
	UserID      *uint64  `json:"user_id" validate:"omitempty"`
}
