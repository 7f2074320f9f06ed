package ops

import (
	"github.com/ericlagergren/decimal"
	"github.com/rs/zerolog/log"

	"gitlab.com/smartstart-platform/buz_ledger_api/conv"
	"gitlab.com/smartstart-platform/buz_ledger_api/model"
	"gitlab.com/smartstart-platform/buz_ledger_api/monitor"
	"gitlab.com/smartstart-platform/buz_ledger_api/service/fms"
)

// Credit pays the user from the user rewards bucket. Appends a confirmed
// REWARD transaction with no source account.
func (o *Ops) Credit(userID uint64, amount *decimal.Big, reason, description string) (*model.Transaction, error) {
	if err := validateAmount(amount); err != nil {
		return nil, err
	}
	if _, err := o.EnsureAccount(userID); err != nil {
		return nil, err
	}

	var txn *model.Transaction
	err := o.funds.Wrap(userID, func(balance fms.BalanceView) error {
		tx := o.repo.Conn.Begin()

		account, err := o.repo.GetOrCreateAccount(tx, userID)
		if err != nil {
			tx.Rollback()
			return err
		}
		supply, err := o.repo.GetSupplyRegistryForUpdate(tx)
		if err != nil {
			tx.Rollback()
			return err
		}
		if amount.Cmp(supply.UserRewardsBucket.V) == 1 {
			tx.Rollback()
			return ErrInsufficientBucket
		}

		txn = model.NewTransaction(model.TransactionType_Reward, model.TransactionStatus_Confirmed, nil, &userID, conv.CloneToPrecision(amount), reason, description)
		if err := tx.Create(txn).Error; err != nil {
			tx.Rollback()
			return err
		}

		newAvailable := conv.NewDecimalWithPrecision().Add(balance.Available, amount)
		updates := map[string]interface{}{
			"lifetime_earned": bumpLifetime(account.LifetimeEarned, amount),
		}
		if err := o.persistBalances(tx, userID, newAvailable, balance.Staked, updates); err != nil {
			tx.Rollback()
			return err
		}
		if err := o.moveSupply(tx, supply, func(s *model.SupplyRegistry) {
			s.UserRewardsBucket.V.Sub(s.UserRewardsBucket.V, amount)
			s.CirculatingSupply.V.Add(s.CirculatingSupply.V, amount)
		}); err != nil {
			tx.Rollback()
			return err
		}

		if err := tx.Commit().Error; err != nil {
			return err
		}

		balance.Available.Add(balance.Available, amount)
		return nil
	})
	if err != nil {
		monitor.LedgerOperations.WithLabelValues("credit", "error").Inc()
		return nil, err
	}

	monitor.LedgerOperations.WithLabelValues("credit", "success").Inc()
	return txn, nil
}

// Transfer moves the amount between two users as a single atomic unit.
// One confirmed TRANSFER transaction links both sides.
func (o *Ops) Transfer(fromUserID, toUserID uint64, amount *decimal.Big, reason, description string) (*model.Transaction, error) {
	if err := validateAmount(amount); err != nil {
		return nil, err
	}
	if fromUserID == toUserID {
		return nil, fms.ErrInvalidAmount
	}
	if _, err := o.EnsureAccount(fromUserID); err != nil {
		return nil, err
	}
	if _, err := o.EnsureAccount(toUserID); err != nil {
		return nil, err
	}

	var txn *model.Transaction
	err := o.funds.WrapPair(fromUserID, toUserID, func(from, to fms.BalanceView) error {
		if amount.Cmp(from.Available) == 1 {
			return fms.ErrInsufficientBalance
		}

		tx := o.repo.Conn.Begin()

		fromAccount, err := o.repo.GetOrCreateAccount(tx, fromUserID)
		if err != nil {
			tx.Rollback()
			return err
		}
		toAccount, err := o.repo.GetOrCreateAccount(tx, toUserID)
		if err != nil {
			tx.Rollback()
			return err
		}

		txn = model.NewTransaction(model.TransactionType_Transfer, model.TransactionStatus_Confirmed, &fromUserID, &toUserID, conv.CloneToPrecision(amount), reason, description)
		if err := tx.Create(txn).Error; err != nil {
			tx.Rollback()
			return err
		}

		newFromAvailable := conv.NewDecimalWithPrecision().Sub(from.Available, amount)
		newToAvailable := conv.NewDecimalWithPrecision().Add(to.Available, amount)
		if err := o.persistBalances(tx, fromUserID, newFromAvailable, from.Staked, map[string]interface{}{
			"lifetime_spent": bumpLifetime(fromAccount.LifetimeSpent, amount),
		}); err != nil {
			tx.Rollback()
			return err
		}
		if err := o.persistBalances(tx, toUserID, newToAvailable, to.Staked, map[string]interface{}{
			"lifetime_earned": bumpLifetime(toAccount.LifetimeEarned, amount),
		}); err != nil {
			tx.Rollback()
			return err
		}

		if err := tx.Commit().Error; err != nil {
			return err
		}

		from.Available.Sub(from.Available, amount)
		to.Available.Add(to.Available, amount)
		return nil
	})
	if err != nil {
		monitor.LedgerOperations.WithLabelValues("transfer", "error").Inc()
		return nil, err
	}

	monitor.LedgerOperations.WithLabelValues("transfer", "success").Inc()
	return txn, nil
}

// Mint issues new tokens to the user out of the reserve bucket. Appends
// a confirmed MINT transaction with no source account. Refuses to run
// while the supply is halted.
func (o *Ops) Mint(toUserID uint64, amount *decimal.Big, reason, description string) (*model.Transaction, error) {
	if o.IsHalted() {
		log.Error().Str("section", "ops").Str("action", "mint").Msg("Supply halted, mint rejected")
		return nil, ErrSupplyHalted
	}
	if err := validateAmount(amount); err != nil {
		return nil, err
	}
	if _, err := o.EnsureAccount(toUserID); err != nil {
		return nil, err
	}

	var txn *model.Transaction
	err := o.funds.Wrap(toUserID, func(balance fms.BalanceView) error {
		tx := o.repo.Conn.Begin()

		account, err := o.repo.GetOrCreateAccount(tx, toUserID)
		if err != nil {
			tx.Rollback()
			return err
		}
		supply, err := o.repo.GetSupplyRegistryForUpdate(tx)
		if err != nil {
			tx.Rollback()
			return err
		}
		if amount.Cmp(supply.ReserveBucket.V) == 1 {
			tx.Rollback()
			return ErrInsufficientBucket
		}

		txn = model.NewTransaction(model.TransactionType_Mint, model.TransactionStatus_Confirmed, nil, &toUserID, conv.CloneToPrecision(amount), reason, description)
		if err := tx.Create(txn).Error; err != nil {
			tx.Rollback()
			return err
		}

		newAvailable := conv.NewDecimalWithPrecision().Add(balance.Available, amount)
		if err := o.persistBalances(tx, toUserID, newAvailable, balance.Staked, map[string]interface{}{
			"lifetime_earned": bumpLifetime(account.LifetimeEarned, amount),
		}); err != nil {
			tx.Rollback()
			return err
		}
		if err := o.moveSupply(tx, supply, func(s *model.SupplyRegistry) {
			s.ReserveBucket.V.Sub(s.ReserveBucket.V, amount)
			s.CirculatingSupply.V.Add(s.CirculatingSupply.V, amount)
		}); err != nil {
			tx.Rollback()
			return err
		}

		if err := tx.Commit().Error; err != nil {
			return err
		}

		balance.Available.Add(balance.Available, amount)
		return nil
	})
	if err != nil {
		monitor.LedgerOperations.WithLabelValues("mint", "error").Inc()
		return nil, err
	}

	monitor.LedgerOperations.WithLabelValues("mint", "success").Inc()
	return txn, nil
}

// Burn destroys tokens from the user's available balance. Burned supply
// only grows, it never returns to a bucket. Appends a confirmed BURN
// transaction with no destination account.
func (o *Ops) Burn(fromUserID uint64, amount *decimal.Big, reason, description string) (*model.Transaction, error) {
	if o.IsHalted() {
		log.Error().Str("section", "ops").Str("action", "burn").Msg("Supply halted, burn rejected")
		return nil, ErrSupplyHalted
	}
	if err := validateAmount(amount); err != nil {
		return nil, err
	}
	if _, err := o.EnsureAccount(fromUserID); err != nil {
		return nil, err
	}

	var txn *model.Transaction
	err := o.funds.Wrap(fromUserID, func(balance fms.BalanceView) error {
		if amount.Cmp(balance.Available) == 1 {
			return fms.ErrInsufficientBalance
		}

		tx := o.repo.Conn.Begin()

		account, err := o.repo.GetOrCreateAccount(tx, fromUserID)
		if err != nil {
			tx.Rollback()
			return err
		}
		supply, err := o.repo.GetSupplyRegistryForUpdate(tx)
		if err != nil {
			tx.Rollback()
			return err
		}

		txn = model.NewTransaction(model.TransactionType_Burn, model.TransactionStatus_Confirmed, &fromUserID, nil, conv.CloneToPrecision(amount), reason, description)
		if err := tx.Create(txn).Error; err != nil {
			tx.Rollback()
			return err
		}

		newAvailable := conv.NewDecimalWithPrecision().Sub(balance.Available, amount)
		if err := o.persistBalances(tx, fromUserID, newAvailable, balance.Staked, map[string]interface{}{
			"lifetime_burned": bumpLifetime(account.LifetimeBurned, amount),
		}); err != nil {
			tx.Rollback()
			return err
		}
		if err := o.moveSupply(tx, supply, func(s *model.SupplyRegistry) {
			s.CirculatingSupply.V.Sub(s.CirculatingSupply.V, amount)
			s.BurnedSupply.V.Add(s.BurnedSupply.V, amount)
		}); err != nil {
			tx.Rollback()
			return err
		}

		if err := tx.Commit().Error; err != nil {
			return err
		}

		balance.Available.Sub(balance.Available, amount)
		return nil
	})
	if err != nil {
		monitor.LedgerOperations.WithLabelValues("burn", "error").Inc()
		return nil, err
	}

	monitor.LedgerOperations.WithLabelValues("burn", "success").Inc()
	return txn, nil
}
