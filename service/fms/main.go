package fms

import (
	"context"
	"sync"

	"github.com/rs/zerolog/log"

	"gitlab.com/smartstart-platform/buz_ledger_api/conv"
	"gitlab.com/smartstart-platform/buz_ledger_api/model"
	"gitlab.com/smartstart-platform/buz_ledger_api/queries"
)

func Init(repo *queries.Repo, ctx context.Context) *FundsEngine {
	return &FundsEngine{
		ctx:          ctx,
		accountsLock: &sync.RWMutex{},
		accounts:     map[uint64]*AccountBalances{},
		repo:         repo,
	}
}

// InitAccounts loads every ledger account from the database into the engine
func (fe *FundsEngine) InitAccounts() error {
	fe.accountsLock.Lock()
	defer fe.accountsLock.Unlock()

	accounts, err := fe.repo.GetAllAccounts()
	if err != nil {
		log.Error().Err(err).Str("section", "FMS").Msg("Unable to load ledger accounts")
		return err
	}

	for i := range accounts {
		if _, err := fe.InitAccountBalances(&accounts[i], true); err != nil {
			return err
		}
	}

	return nil
}

// InitAccountBalances registers one account with the engine. Used at boot
// for every stored account and at runtime when an account is lazily created.
func (fe *FundsEngine) InitAccountBalances(account *model.Account, skipLock bool) (*AccountBalances, error) {
	log.Debug().Str("package", "FMS").Str("func", "InitAccountBalances").Uint64("user_id", account.UserID).Msg("Init account balances")

	if !skipLock {
		fe.accountsLock.Lock()
		defer fe.accountsLock.Unlock()
	}

	if existing, ok := fe.accounts[account.UserID]; ok {
		return existing, nil
	}

	ab := &AccountBalances{
		balancesLock: &sync.RWMutex{},
		available:    conv.CloneToPrecision(account.Available.V),
		staked:       conv.CloneToPrecision(account.Staked.V),
		userID:       account.UserID,
	}
	fe.accounts[account.UserID] = ab

	log.Warn().Str("package", "FMS").Str("func", "InitAccountBalances").
		Uint64("user_id", account.UserID).
		Str("available", ab.available.String()).
		Str("staked", ab.staked.String()).
		Msg("Account balance loaded")

	return ab, nil
}

func (fe *FundsEngine) GetAccountBalances(userID uint64) (*AccountBalances, error) {
	log.Debug().Str("package", "FMS").Str("func", "GetAccountBalances").Uint64("user_id", userID).Msg("Get account balances")
	fe.accountsLock.RLock()
	account, ok := fe.accounts[userID]
	fe.accountsLock.RUnlock()

	if !ok {
		log.Debug().Str("package", "FMS").Str("func", "GetAccountBalances").Uint64("user_id", userID).Msg("unable to find the account balances")
		return nil, ErrUnknownAccount
	}

	return account, nil
}
