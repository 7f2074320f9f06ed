package model

type RoleAlias string

const (
	Member RoleAlias = "member"
	Admin  RoleAlias = "admin"
)

func (r RoleAlias) IsValid() bool {
	switch r {
	case Member, Admin:
		return true
	}
	return false
}

// IsAdmin reports whether the role carries the admin capability required
// for mint and burn operations
func (r RoleAlias) IsAdmin() bool {
	return r == Admin
}

func (r RoleAlias) String() string {
	return string(r)
}
