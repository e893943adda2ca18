package domain

import "time"

// Role tags an account with its function in the practice. Roles are stored
// and reported but not enforced against endpoints.
type Role string

const (
	RoleAdmin        Role = "admin"
	RoleUser         Role = "user"
	RoleDentist      Role = "dentist"
	RoleReceptionist Role = "receptionist"
)

// Roles lists every accepted role.
var Roles = []Role{RoleAdmin, RoleUser, RoleDentist, RoleReceptionist}

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	for _, known := range Roles {
		if r == known {
			return true
		}
	}
	return false
}

// Account is a registered user of the records system.
type Account struct {
	ID           int64
	FirstName    string
	LastName     string
	Email        string
	PasswordHash string
	Role         Role
	CreatedAt    time.Time
}

// AccountView is the public projection of an Account. It never carries the
// password hash.
type AccountView struct {
	ID        int64  `json:"id"`
	FirstName string `json:"firstname"`
	LastName  string `json:"lastname"`
	Email     string `json:"email"`
	Role      Role   `json:"role"`
}

// View projects the account into its public form.
func (a *Account) View() *AccountView {
	if a == nil {
		return nil
	}
	return &AccountView{
		ID:        a.ID,
		FirstName: a.FirstName,
		LastName:  a.LastName,
		Email:     a.Email,
		Role:      a.Role,
	}
}
