package entities

import (
	"time"

	"github.com/aarondl/null/v8"
)

// Role values carried by User.Role. The storage layer enforces the enum;
// everything beyond that is advisory.
const (
	RoleAdmin    = "admin"
	RoleUser     = "user"
	RoleManager  = "manager"
	RoleKalfa    = "kalfa"
	RoleEmployee = "employee"
)

// User is the unified account/worker record. Legacy employee fields
// (full_name, phone) live here as optional columns.
type User struct {
	ID        uint64      `json:"id" db:"id"`
	Username  string      `json:"username" db:"username"`
	Password  string      `json:"-" db:"password"`
	Email     null.String `json:"email" db:"email"`
	Role      string      `json:"role" db:"role"`
	FullName  null.String `json:"full_name" db:"full_name"`
	Phone     null.String `json:"phone" db:"phone"`
	Notes     null.String `json:"notes" db:"notes"`
	Address   null.String `json:"address" db:"address"`
	BirthDate null.Time   `json:"birth_date" db:"birth_date"`
	Active    bool        `json:"active" db:"active"`
	CreatedAt time.Time   `json:"created_at" db:"created_at"`
	UpdatedAt time.Time   `json:"updated_at" db:"updated_at"`
}
