package models

// User is an operator account for the records interface. Accounts are
// seeded at startup; there is no self-registration.
type User struct {
	ID       int64    `json:"id" db:"id"`
	Username string   `json:"username" db:"username"`
	Password string   `json:"-" db:"password"`
	RoleType RoleType `json:"roleType" db:"role_type" example:"ADMIN"`
}
