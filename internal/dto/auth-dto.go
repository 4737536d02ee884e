package dto

import "github.com/Trunday/kalfa-api/internal/entities"

type RegisterDTO struct {
	Username string  `json:"username" validate:"required"`
	Password string  `json:"password" validate:"required"`
	Email    *string `json:"email" validate:"omitempty,email"`
	FullName *string `json:"full_name" validate:"omitempty"`
	Role     string  `json:"role" validate:"omitempty,oneof=admin user manager kalfa employee"`
}

type LoginDTO struct {
	// Username also accepts the account email, matching the lookup rule.
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type ForgotPasswordDTO struct {
	Email string `json:"email" validate:"required,email"`
}

type AuthResponseDTO struct {
	Message string         `json:"message"`
	Token   string         `json:"token"`
	User    *entities.User `json:"user,omitempty"`
}
