package dto

type CreateEmployeeDTO struct {
	Username  string  `json:"username" validate:"required"`
	Password  string  `json:"password" validate:"required"`
	Email     *string `json:"email" validate:"omitempty,email"`
	FullName  *string `json:"full_name" validate:"omitempty"`
	Phone     *string `json:"phone" validate:"omitempty"`
	Notes     *string `json:"notes" validate:"omitempty"`
	Address   *string `json:"address" validate:"omitempty"`
	BirthDate *string `json:"birth_date" validate:"omitempty"`
}

// UpdateEmployeeDTO carries only the fields present in the request body;
// nil means "leave as stored".
type UpdateEmployeeDTO struct {
	Username  *string `json:"username" validate:"omitempty"`
	Password  *string `json:"password" validate:"omitempty"`
	Email     *string `json:"email" validate:"omitempty,email"`
	FullName  *string `json:"full_name" validate:"omitempty"`
	Phone     *string `json:"phone" validate:"omitempty"`
	Notes     *string `json:"notes" validate:"omitempty"`
	Address   *string `json:"address" validate:"omitempty"`
	BirthDate *string `json:"birth_date" validate:"omitempty"`
	Active    *bool   `json:"active" validate:"omitempty"`
}
