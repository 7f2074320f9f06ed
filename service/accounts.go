package service

import (
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"gitlab.com/smartstart-platform/buz_ledger_api/model"
	"gitlab.com/smartstart-platform/buz_ledger_api/service/fms"
	"gitlab.com/smartstart-platform/buz_ledger_api/utils"
)

// GetBalance returns the user's account, creating an empty one on first
// reference. Reads only confirmed state.
func (service *Service) GetBalance(userID uint64) (*model.Account, error) {
	account, err := service.repo.GetAccountByUserID(userID)
	if err == nil {
		return account, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	if _, err := service.ops.EnsureAccount(userID); err != nil {
		return nil, err
	}
	return service.repo.GetAccountByUserID(userID)
}

// DeactivateAccount flags the account inactive. Accounts are never
// deleted, balances stay on the books.
func (service *Service) DeactivateAccount(userID uint64) error {
	if _, err := service.repo.GetAccountByUserID(userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fms.ErrUnknownAccount
		}
		return err
	}

	db := service.repo.Conn.Table("accounts").
		Where("user_id = ?", userID).
		Update("is_active", false)
	if db.Error != nil {
		return db.Error
	}

	log.Info().
		Str("section", "service").
		Str("action", "deactivate_account").
		Uint64("user_id", userID).
		Msg("Account deactivated")
	return nil
}

// GetSystemStats aggregates ledger wide counters for the stats endpoint
func (service *Service) GetSystemStats() (*model.SystemStats, error) {
	users, err := service.repo.GetUsersCount()
	if err != nil {
		return nil, err
	}
	transactions, err := service.repo.GetTransactionsCount()
	if err != nil {
		return nil, err
	}
	activePositions, err := service.repo.GetActiveStakingPositionsCount()
	if err != nil {
		return nil, err
	}
	supply, err := service.repo.GetSupplyRegistry()
	if err != nil {
		return nil, err
	}

	return &model.SystemStats{
		TotalUsers:             users,
		TotalTransactions:      transactions,
		ActiveStakingPositions: activePositions,
		TotalStaked:            utils.FmtDecimal(supply.StakedSupply),
		TotalBurned:            utils.FmtDecimal(supply.BurnedSupply),
		CirculatingSupply:      utils.FmtDecimal(supply.CirculatingSupply),
	}, nil
}
