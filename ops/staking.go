package ops

import (
	"github.com/ericlagergren/decimal"
	postgres2 "github.com/ericlagergren/decimal/sql/postgres"
	"github.com/rs/zerolog/log"

	"gitlab.com/smartstart-platform/buz_ledger_api/conv"
	"gitlab.com/smartstart-platform/buz_ledger_api/model"
	"gitlab.com/smartstart-platform/buz_ledger_api/monitor"
	"gitlab.com/smartstart-platform/buz_ledger_api/service/fms"
)

// Stake locks part of the user's available balance into a new position.
// The maturity date and expected reward come from the tier terms.
func (o *Ops) Stake(userID uint64, amount *decimal.Big, tier model.StakingTier) (*model.StakingPosition, error) {
	if err := validateAmount(amount); err != nil {
		return nil, err
	}
	if !tier.IsValid() {
		return nil, ErrInvalidTier
	}
	if _, err := o.EnsureAccount(userID); err != nil {
		return nil, err
	}

	var position *model.StakingPosition
	err := o.funds.Wrap(userID, func(balance fms.BalanceView) error {
		if amount.Cmp(balance.Available) == 1 {
			return fms.ErrInsufficientBalance
		}

		tx := o.repo.Conn.Begin()

		supply, err := o.repo.GetSupplyRegistryForUpdate(tx)
		if err != nil {
			tx.Rollback()
			return err
		}

		txn := model.NewTransaction(model.TransactionType_Stake, model.TransactionStatus_Confirmed, &userID, &userID, conv.CloneToPrecision(amount), "staking", string(tier))
		if err := tx.Create(txn).Error; err != nil {
			tx.Rollback()
			return err
		}

		position = model.NewStakingPosition(userID, conv.CloneToPrecision(amount), tier, o.now(), txn.RefID)
		if err := tx.Create(position).Error; err != nil {
			tx.Rollback()
			return err
		}

		newAvailable := conv.NewDecimalWithPrecision().Sub(balance.Available, amount)
		newStaked := conv.NewDecimalWithPrecision().Add(balance.Staked, amount)
		if err := o.persistBalances(tx, userID, newAvailable, newStaked, nil); err != nil {
			tx.Rollback()
			return err
		}
		if err := o.moveSupply(tx, supply, func(s *model.SupplyRegistry) {
			s.CirculatingSupply.V.Sub(s.CirculatingSupply.V, amount)
			s.StakedSupply.V.Add(s.StakedSupply.V, amount)
		}); err != nil {
			tx.Rollback()
			return err
		}

		if err := tx.Commit().Error; err != nil {
			return err
		}

		balance.Available.Sub(balance.Available, amount)
		balance.Staked.Add(balance.Staked, amount)
		return nil
	})
	if err != nil {
		monitor.LedgerOperations.WithLabelValues("stake", "error").Inc()
		return nil, err
	}

	monitor.LedgerOperations.WithLabelValues("stake", "success").Inc()
	return position, nil
}

// CheckMaturity reports the position's state at the current clock and
// flips an active position past its end date to matured
func (o *Ops) CheckMaturity(positionID uint64) (model.StakingStatus, error) {
	position, err := o.repo.GetStakingPositionByID(positionID)
	if err != nil {
		return "", err
	}

	if position.Status != model.StakingStatusActive || !position.IsMatured(o.now()) {
		return position.Status, nil
	}

	db := o.repo.Conn.Table("staking_positions").
		Where("id = ? AND status = ?", positionID, model.StakingStatusActive).
		Update("status", model.StakingStatusMatured)
	if db.Error != nil {
		return "", db.Error
	}
	if db.RowsAffected > 0 {
		monitor.StakingPositionsMatured.Inc()
	}

	return model.StakingStatusMatured, nil
}

// MaturitySweep flips every overdue active position to matured, used by
// the cron schedule
func (o *Ops) MaturitySweep() (int64, error) {
	matured, err := o.repo.UpdateMaturedStakingPositions()
	if err != nil {
		return 0, err
	}
	for i := int64(0); i < matured; i++ {
		monitor.StakingPositionsMatured.Inc()
	}
	return matured, nil
}

// WithdrawStake closes the position, releasing the principal and paying
// the reward out of the staking rewards bucket. Appends an UNSTAKE and,
// when a reward is due, a REWARD transaction. An early exit forfeits
// the reward and returns only the principal.
func (o *Ops) WithdrawStake(positionID uint64, allowEarlyExit bool) (*model.StakingPosition, error) {
	position, err := o.repo.GetStakingPositionByID(positionID)
	if err != nil {
		return nil, err
	}
	if position.Status == model.StakingStatusWithdrawn {
		return nil, ErrPositionWithdrawn
	}

	matured := position.IsMatured(o.now())
	if !matured && !allowEarlyExit {
		return nil, ErrNotMatured
	}

	principal := conv.CloneToPrecision(position.Amount.V)
	reward := conv.NewDecimalWithPrecision()
	if matured {
		reward = conv.CloneToPrecision(position.ExpectedReward.V)
	}
	payReward := reward.Sign() > 0

	userID := position.UserID
	err = o.funds.Wrap(userID, func(balance fms.BalanceView) error {
		if principal.Cmp(balance.Staked) == 1 {
			return fms.ErrInsufficientStake
		}

		tx := o.repo.Conn.Begin()

		// re-check under the transaction, the first read was unlocked
		stored := model.StakingPosition{}
		if err := tx.First(&stored, "id = ?", positionID).Error; err != nil {
			tx.Rollback()
			return err
		}
		if stored.Status == model.StakingStatusWithdrawn {
			tx.Rollback()
			return ErrPositionWithdrawn
		}

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
		if payReward && reward.Cmp(supply.StakingRewardsBucket.V) == 1 {
			tx.Rollback()
			return ErrInsufficientBucket
		}

		unstake := model.NewTransaction(model.TransactionType_Unstake, model.TransactionStatus_Confirmed, &userID, &userID, conv.CloneToPrecision(principal), "staking withdrawal", position.RefID)
		if err := tx.Create(unstake).Error; err != nil {
			tx.Rollback()
			return err
		}
		if payReward {
			rewardTxn := model.NewTransaction(model.TransactionType_Reward, model.TransactionStatus_Confirmed, nil, &userID, conv.CloneToPrecision(reward), "staking reward", position.RefID)
			if err := tx.Create(rewardTxn).Error; err != nil {
				tx.Rollback()
				return err
			}
		}

		err = tx.Table("staking_positions").Where("id = ?", positionID).Updates(map[string]interface{}{
			"status":        model.StakingStatusWithdrawn,
			"actual_reward": &postgres2.Decimal{V: conv.CloneToPrecision(reward)},
			"updated_at":    o.now(),
		}).Error
		if err != nil {
			tx.Rollback()
			return err
		}

		newAvailable := conv.NewDecimalWithPrecision().Add(balance.Available, principal)
		newAvailable.Add(newAvailable, reward)
		newStaked := conv.NewDecimalWithPrecision().Sub(balance.Staked, principal)
		updates := map[string]interface{}{}
		if payReward {
			updates["lifetime_earned"] = bumpLifetime(account.LifetimeEarned, reward)
		}
		if err := o.persistBalances(tx, userID, newAvailable, newStaked, updates); err != nil {
			tx.Rollback()
			return err
		}
		if err := o.moveSupply(tx, supply, func(s *model.SupplyRegistry) {
			s.StakedSupply.V.Sub(s.StakedSupply.V, principal)
			s.CirculatingSupply.V.Add(s.CirculatingSupply.V, principal)
			if payReward {
				s.StakingRewardsBucket.V.Sub(s.StakingRewardsBucket.V, reward)
				s.CirculatingSupply.V.Add(s.CirculatingSupply.V, reward)
			}
		}); err != nil {
			tx.Rollback()
			return err
		}

		if err := tx.Commit().Error; err != nil {
			return err
		}

		balance.Staked.Sub(balance.Staked, principal)
		balance.Available.Add(balance.Available, principal)
		balance.Available.Add(balance.Available, reward)
		return nil
	})
	if err != nil {
		monitor.LedgerOperations.WithLabelValues("withdraw", "error").Inc()
		return nil, err
	}

	monitor.LedgerOperations.WithLabelValues("withdraw", "success").Inc()

	position.Status = model.StakingStatusWithdrawn
	position.ActualReward = &postgres2.Decimal{V: reward}
	log.Info().
		Str("section", "ops").
		Str("action", "withdraw_stake").
		Uint64("position_id", positionID).
		Uint64("user_id", userID).
		Str("principal", principal.String()).
		Str("reward", reward.String()).
		Msg("Staking position withdrawn")
	return position, nil
}
