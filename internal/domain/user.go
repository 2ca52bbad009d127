package domain

// User is a read-only view of an account owned by the external application.
// Role is nil when the column is NULL.
type User struct {
	Role     *string `db:"role"`
	Username string  `db:"username"`
	ID       int64   `db:"id"`
}

// RoleLabel returns the role, or NoValue for a NULL role.
func (u User) RoleLabel() string {
	if u.Role == nil {
		return NoValue
	}
	return *u.Role
}
