package domain

import "time"

// Role is the single effective authorization role of an account.
type Role string

const (
	RoleAnonymous Role = ""
	RoleEmployee  Role = "employee"
	RoleTech      Role = "tech"
	RoleAdmin     Role = "admin"
)

// Group names recognised by ResolveRole.
const (
	GroupTech     = "Tech"
	GroupEmployee = "Employee"
)

// Valid reports whether r can be stored on an account. Anonymous is not.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleTech, RoleEmployee:
		return true
	}
	return false
}

// Rank orders roles by precedence: admin > tech > employee > anonymous.
func (r Role) Rank() int {
	switch r {
	case RoleAdmin:
		return 3
	case RoleTech:
		return 2
	case RoleEmployee:
		return 1
	default:
		return 0
	}
}

func (r Role) String() string {
	if r == RoleAnonymous {
		return "anonymous"
	}
	return string(r)
}

// ParseRole accepts the stored role names.
func ParseRole(s string) (Role, bool) {
	r := Role(s)
	return r, r.Valid()
}

// ResolveRole collapses the superuser/staff flags and group memberships of an
// account into one role. Admin wins over Tech, Tech over Employee. An account
// that belongs to no known group is an employee.
func ResolveRole(isSuperuser, isStaff bool, groups []string) Role {
	if isSuperuser || isStaff {
		return RoleAdmin
	}
	for _, g := range groups {
		if g == GroupTech {
			return RoleTech
		}
	}
	return RoleEmployee
}

// User models an account that can sign in to the ITSM panel.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Identity is the authenticated caller of a single request. The zero value
// is the anonymous visitor.
type Identity struct {
	UserID   string
	Username string
	Role     Role
}

func Anonymous() Identity { return Identity{} }

func (i Identity) IsAuthenticated() bool {
	return i.UserID != "" && i.Role.Valid()
}

// Is reports whether the identity belongs to the account with the given id.
func (i Identity) Is(userID string) bool {
	return i.UserID != "" && i.UserID == userID
}
