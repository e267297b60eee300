package domain

import "time"

const (
	RoleOwner   = "owner"
	RoleClerk   = "clerk"
	RoleVisitor = "visitor"
)

type User struct {
	ID        uint      `json:"id"`
	Email     string    `json:"email"`
	Password  string    `json:"-"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// IsStaff reports whether the user may manage gallery resources.
func (u User) IsStaff() bool {
	return u.Role == RoleOwner || u.Role == RoleClerk
}
