package employee

import "time"

// Employee is a registered profile belonging to exactly one company. Rows are
// owned by the identity provider; this service reads them only.
type Employee struct {
	ID        string
	CompanyID string
	FirstName *string
	LastName  *string
	Email     string
	Role      Role
	CreatedAt time.Time
}

type Role string

const (
	RoleEmployee   Role = "employee"
	RoleHRAdmin    Role = "hr_admin"
	RoleSuperAdmin Role = "super_admin"
)

// DisplayName returns "first last" trimmed, falling back to the local part
// of the email address when both names are empty.
func (e Employee) DisplayName() string {
	name := joinName(e.FirstName, e.LastName)
	if name != "" {
		return name
	}
	for i := 0; i < len(e.Email); i++ {
		if e.Email[i] == '@' {
			return e.Email[:i]
		}
	}
	return e.Email
}

func joinName(first, last *string) string {
	var name string
	if first != nil {
		name = *first
	}
	if last != nil {
		if name != "" {
			name += " "
		}
		name += *last
	}
	return name
}
