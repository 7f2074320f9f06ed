package model

import "time"

// UserStatus defines the lifecycle state of a user
type UserStatus string

const (
	// UserStatusPending when the user is created but not yet activated
	UserStatusPending UserStatus = "pending"
	// UserStatusActive when the user can use the ledger
	UserStatusActive UserStatus = "active"
	// UserStatusBlocked when an admin blocked the user
	UserStatusBlocked UserStatus = "blocked"
)

func (s UserStatus) String() string {
	return string(s)
}

// User owns at most one ledger account. Identity is managed by the
// upstream platform, this service only reads the user records.
type User struct {
	ID uint64 `sql:"type: bigint" gorm:"primary_key" json:"id"`

	FirstName string     `gorm:"column:first_name" json:"first_name"`
	LastName  string     `gorm:"column:last_name" json:"last_name"`
	Email     string     `gorm:"unique;" json:"email"`
	RoleAlias string     `gorm:"column:role_alias" json:"role_alias"`
	Status    UserStatus `sql:"not null;type:user_status_t" json:"status"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
