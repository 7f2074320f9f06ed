package queries

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"gitlab.com/smartstart-platform/buz_ledger_api/model"
)

// GetAccountByUserID retrieves the account owned by the user
func (repo *Repo) GetAccountByUserID(userID uint64) (*model.Account, error) {
	account := model.Account{}
	db := repo.ConnReader.First(&account, "user_id = ?", userID)
	if db.Error != nil {
		return nil, db.Error
	}
	return &account, nil
}

// GetAllAccounts loads every account, used to warm the funds engine at boot
func (repo *Repo) GetAllAccounts() ([]model.Account, error) {
	accounts := make([]model.Account, 0)
	db := repo.ConnReader.Table("accounts").Order("user_id ASC").Find(&accounts)
	if db.Error != nil {
		return nil, db.Error
	}
	return accounts, nil
}

// GetOrCreateAccount loads the user's account inside the given transaction,
// creating a zero balance account on first reference
func (repo *Repo) GetOrCreateAccount(tx *gorm.DB, userID uint64) (*model.Account, error) {
	account := model.Account{}
	db := tx.Where("user_id = ?", userID).First(&account)
	if db.Error == nil {
		return &account, nil
	}
	if !errors.Is(db.Error, gorm.ErrRecordNotFound) {
		return nil, db.Error
	}
	created := model.NewAccount(userID)
	if err := tx.Create(created).Error; err != nil {
		return nil, err
	}
	return created, nil
}
