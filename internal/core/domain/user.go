package domain

import "errors"

// Role display names the dashboard recognises. Any other name coming back
// from the backend is ignored during statistics aggregation.
const (
	RoleAdmin = "Admin"
	RoleUser  = "User"
	RoleGuest = "Guest"
)

var ErrUserNotFound = errors.New("user not found")
var ErrPageNotFound = errors.New("page not found")

// User is the full user record as owned by the external backend.
// ID and CreatedAt are assigned by the backend and never change.
type User struct {
	ID          int    `json:"id"`
	Email       string `json:"email"`
	FirstName   string `json:"firstName"`
	MiddleName  string `json:"middleName,omitempty"`
	LastName    string `json:"lastName"`
	DateOfBirth string `json:"dateOfBirth"`
	Role        string `json:"role"`
	RoleID      int    `json:"roleId"`
	IsActive    bool   `json:"isActive"`
	Country     string `json:"country"`
	CreatedAt   string `json:"createdAt"`
}

// UserFormData is the normalized create payload forwarded to the backend.
// MiddleName is always sent, as an empty string when unset.
type UserFormData struct {
	Email       string `json:"email"`
	FirstName   string `json:"firstName"`
	MiddleName  string `json:"middleName"`
	LastName    string `json:"lastName"`
	DateOfBirth string `json:"dateOfBirth"`
	RoleID      int    `json:"roleId"`
	IsActive    bool   `json:"isActive"`
	Country     string `json:"country"`
}

// UserUpdate is a partial update payload. Nil fields are omitted from the
// outgoing JSON entirely: absent means "leave unchanged", never "set to null".
type UserUpdate struct {
	Email       *string `json:"email,omitempty"`
	FirstName   *string `json:"firstName,omitempty"`
	MiddleName  *string `json:"middleName,omitempty"`
	LastName    *string `json:"lastName,omitempty"`
	DateOfBirth *string `json:"dateOfBirth,omitempty"`
	RoleID      *int    `json:"roleId,omitempty"`
	IsActive    *bool   `json:"isActive,omitempty"`
	Country     *string `json:"country,omitempty"`
}

// Role is backend-owned reference data.
type Role struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}
