package models

// Role identifies the persona a user account belongs to.
type Role string

const (
	RolePresident   Role = "PRESIDENT"
	RoleDean        Role = "DEAN"
	RoleStudent     Role = "STUDENT"
	RoleMaintenance Role = "MAINTENANCE"
	RoleAdvisor     Role = "ADVISOR"
	RoleAdmin       Role = "ADMIN"
)

// User defines the base identity row shared by students, deans, advisors
// and maintenance staff.
type User struct {
	UserID       int64  `json:"userId" db:"user_id"`
	FirstName    string `json:"firstName" db:"first_name"`
	LastName     string `json:"lastName" db:"last_name"`
	Email        string `json:"email" db:"email"`
	PasswordHash string `json:"-" db:"password_hash"`
	Role         Role   `json:"role" db:"role"`
}
