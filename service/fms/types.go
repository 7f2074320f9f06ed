package fms

import (
	"context"
	"sync"

	"github.com/ericlagergren/decimal"

	"gitlab.com/smartstart-platform/buz_ledger_api/queries"
)

// BalanceView exposes the mutable balance pointers of an account
// to callbacks running under the account lock
type BalanceView struct {
	Available *decimal.Big `json:"available"`
	Staked    *decimal.Big `json:"staked"`
}

type AccountBalances struct {
	balancesLock *sync.RWMutex
	available    *decimal.Big
	staked       *decimal.Big
	userID       uint64
}

// FundsEngine keeps the authoritative in-memory balance of every
// account. Every balance mutation passes through it, the database
// rows trail the engine inside the same operation.
type FundsEngine struct {
	ctx          context.Context
	accountsLock *sync.RWMutex
	repo         *queries.Repo
	accounts     map[uint64]*AccountBalances
}
