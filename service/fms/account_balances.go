package fms

import (
	"github.com/ericlagergren/decimal"

	"gitlab.com/smartstart-platform/buz_ledger_api/conv"
)

func (ab *AccountBalances) GetUserID() uint64 {
	return ab.userID
}

func (ab *AccountBalances) LockAccount() {
	ab.balancesLock.Lock()
}

func (ab *AccountBalances) UnlockAccount() {
	ab.balancesLock.Unlock()
}

func (ab *AccountBalances) RLockAccount() {
	ab.balancesLock.RLock()
}

func (ab *AccountBalances) RUnlockAccount() {
	ab.balancesLock.RUnlock()
}

// GetAvailable returns a copy of the available balance
func (ab *AccountBalances) GetAvailable() *decimal.Big {
	ab.balancesLock.RLock()
	defer ab.balancesLock.RUnlock()
	return conv.CloneToPrecision(ab.available)
}

// GetStaked returns a copy of the staked balance
func (ab *AccountBalances) GetStaked() *decimal.Big {
	ab.balancesLock.RLock()
	defer ab.balancesLock.RUnlock()
	return conv.CloneToPrecision(ab.staked)
}

// GetTotal returns available plus staked
func (ab *AccountBalances) GetTotal() *decimal.Big {
	ab.balancesLock.RLock()
	defer ab.balancesLock.RUnlock()
	return conv.NewDecimalWithPrecision().Add(ab.available, ab.staked)
}

// view exposes the balance pointers, the caller must hold the account lock
func (ab *AccountBalances) view() BalanceView {
	return BalanceView{
		Available: ab.available,
		Staked:    ab.staked,
	}
}
