package user

type Role string

const (
	RoleAdmin    Role = "admin"    // Can approve preferences and manage the schedule
	RoleEmployee Role = "employee" // Regular staff member
)

type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Role  Role   `json:"role"`
	Email string `json:"email"`

	// Never serialized into snapshots; verified via bcrypt on login.
	PasswordHash string `json:"-"`
}

// IsAdmin checks if user is an administrator
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// CanApprove checks if user can approve shift preferences
func (u *User) CanApprove() bool {
	return u.IsAdmin()
}

// CanManageSchedule checks if user can create shifts and change shift statuses
func (u *User) CanManageSchedule() bool {
	return u.IsAdmin()
}
