package model

import (
	"encoding/json"
	"time"

	"github.com/ericlagergren/decimal/sql/postgres"
	"gitlab.com/smartstart-platform/buz_ledger_api/conv"
	"gitlab.com/smartstart-platform/buz_ledger_api/utils"
)

// Account holds the BUZ balances owed to a single user.
// Created lazily on first reference and never deleted, only deactivated.
type Account struct {
	ID     uint64 `gorm:"PRIMARY_KEY" json:"id"`
	UserID uint64 `gorm:"column:user_id;unique" json:"user_id"`

	Available      *postgres.Decimal `sql:"type:decimal(36,18)" json:"available"`
	Staked         *postgres.Decimal `sql:"type:decimal(36,18)" json:"staked"`
	LifetimeEarned *postgres.Decimal `gorm:"column:lifetime_earned" sql:"type:decimal(36,18)" json:"lifetime_earned"`
	LifetimeSpent  *postgres.Decimal `gorm:"column:lifetime_spent" sql:"type:decimal(36,18)" json:"lifetime_spent"`
	LifetimeBurned *postgres.Decimal `gorm:"column:lifetime_burned" sql:"type:decimal(36,18)" json:"lifetime_burned"`

	IsActive       bool      `gorm:"column:is_active" json:"is_active"`
	LastActivityAt time.Time `gorm:"column:last_activity_at" json:"last_activity_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewAccount creates an account with every balance set to zero
func NewAccount(userID uint64) *Account {
	return &Account{
		UserID:         userID,
		Available:      &postgres.Decimal{V: conv.NewDecimalWithPrecision()},
		Staked:         &postgres.Decimal{V: conv.NewDecimalWithPrecision()},
		LifetimeEarned: &postgres.Decimal{V: conv.NewDecimalWithPrecision()},
		LifetimeSpent:  &postgres.Decimal{V: conv.NewDecimalWithPrecision()},
		LifetimeBurned: &postgres.Decimal{V: conv.NewDecimalWithPrecision()},
		IsActive:       true,
		LastActivityAt: time.Now(),
		CreatedAt:      time.Now(),
		UpdatedAt:      time.Now(),
	}
}

// MarshalJSON JSON encoding of an account
func (account *Account) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]interface{}{
		"user_id":          account.UserID,
		"available":        utils.FmtDecimal(account.Available),
		"staked":           utils.FmtDecimal(account.Staked),
		"lifetime_earned":  utils.FmtDecimal(account.LifetimeEarned),
		"lifetime_spent":   utils.FmtDecimal(account.LifetimeSpent),
		"lifetime_burned":  utils.FmtDecimal(account.LifetimeBurned),
		"is_active":        account.IsActive,
		"last_activity_at": account.LastActivityAt,
	})
}

// AccountList structure
type AccountList struct {
	Accounts []Account
	Meta     PagingMeta
}
