package domain

const (
	RoleMaster   = "master"
	RoleStandard = "standard"
)

// User models an authenticated actor in the system.
type User struct {
	ID           string `json:"id"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
	Role         string `json:"role"`
}

// IsMaster reports whether the user holds the elevated cross-owner role.
func (u User) IsMaster() bool {
	return u.Role == RoleMaster
}
