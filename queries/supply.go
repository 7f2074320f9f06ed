package queries

import (
	"gorm.io/gorm"

	"gitlab.com/smartstart-platform/buz_ledger_api/model"
)

// GetSupplyRegistry loads the singleton supply row
func (repo *Repo) GetSupplyRegistry() (*model.SupplyRegistry, error) {
	supply := model.SupplyRegistry{}
	db := repo.ConnReader.First(&supply, "id = ?", model.SupplyRegistryID)
	if db.Error != nil {
		return nil, db.Error
	}
	return &supply, nil
}

// GetSupplyRegistryForUpdate locks the supply row inside the transaction.
// Mint, burn and reward flows serialize on this lock.
func (repo *Repo) GetSupplyRegistryForUpdate(tx *gorm.DB) (*model.SupplyRegistry, error) {
	supply := model.SupplyRegistry{}
	db := tx.Raw("SELECT * FROM supply_registries WHERE id = ? FOR UPDATE", model.SupplyRegistryID).Scan(&supply)
	if db.Error != nil {
		return nil, db.Error
	}
	return &supply, nil
}
