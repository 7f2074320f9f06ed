package ops

import (
	"github.com/ericlagergren/decimal"
	postgres2 "github.com/ericlagergren/decimal/sql/postgres"
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"gitlab.com/smartstart-platform/buz_ledger_api/conv"
	"gitlab.com/smartstart-platform/buz_ledger_api/service/fms"
)

// EnsureAccount resolves the user's account, creating an empty one on
// first reference and registering it with the funds engine
func (o *Ops) EnsureAccount(userID uint64) (*fms.AccountBalances, error) {
	if balances, err := o.funds.GetAccountBalances(userID); err == nil {
		return balances, nil
	}

	if _, err := o.repo.GetUserByID(userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fms.ErrUnknownAccount
		}
		return nil, err
	}

	tx := o.repo.Conn.Begin()
	account, err := o.repo.GetOrCreateAccount(tx, userID)
	if err != nil {
		tx.Rollback()
		return nil, err
	}
	if err := tx.Commit().Error; err != nil {
		return nil, err
	}

	return o.funds.InitAccountBalances(account, false)
}

// persistBalances writes the post-operation balances of one account to
// its row. Runs inside the caller's transaction, under the account lock,
// before the matching in-memory mutation is applied.
func (o *Ops) persistBalances(tx *gorm.DB, userID uint64, available, staked *decimal.Big, updates map[string]interface{}) error {
	if updates == nil {
		updates = map[string]interface{}{}
	}
	updates["available"] = &postgres2.Decimal{V: conv.CloneToPrecision(available)}
	updates["staked"] = &postgres2.Decimal{V: conv.CloneToPrecision(staked)}
	updates["last_activity_at"] = o.now()
	updates["updated_at"] = o.now()

	return tx.Table("accounts").Where("user_id = ?", userID).Updates(updates).Error
}

// bumpLifetime returns the counter increased by amount, counters only grow
func bumpLifetime(counter *postgres2.Decimal, amount *decimal.Big) *postgres2.Decimal {
	next := conv.NewDecimalWithPrecision()
	if counter != nil && counter.V != nil {
		next.Copy(counter.V)
	}
	next.Add(next, amount)
	return &postgres2.Decimal{V: next}
}
