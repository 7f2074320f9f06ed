package ops

import (
	"github.com/ericlagergren/decimal"
	postgres2 "github.com/ericlagergren/decimal/sql/postgres"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"gitlab.com/smartstart-platform/buz_ledger_api/conv"
	"gitlab.com/smartstart-platform/buz_ledger_api/model"
	"gitlab.com/smartstart-platform/buz_ledger_api/monitor"
	"gitlab.com/smartstart-platform/buz_ledger_api/service/fms"
)

func validateAmount(amount *decimal.Big) error {
	if amount == nil || conv.NewDecimalWithPrecision().CheckNaNs(amount, nil) {
		return fms.ErrInvalidAmount
	}
	if amount.Sign() <= 0 {
		return fms.ErrInvalidAmount
	}
	return nil
}

// moveSupply applies the mutation to the locked supply row and writes
// every aggregate back inside the caller's transaction
func (o *Ops) moveSupply(tx *gorm.DB, supply *model.SupplyRegistry, mutate func(*model.SupplyRegistry)) error {
	mutate(supply)
	updates := map[string]interface{}{
		"reserve_bucket":         supply.ReserveBucket,
		"team_bucket":            supply.TeamBucket,
		"community_bucket":       supply.CommunityBucket,
		"liquidity_bucket":       supply.LiquidityBucket,
		"staking_rewards_bucket": supply.StakingRewardsBucket,
		"user_rewards_bucket":    supply.UserRewardsBucket,
		"venture_fund_bucket":    supply.VentureFundBucket,
		"circulating_supply":     supply.CirculatingSupply,
		"staked_supply":          supply.StakedSupply,
		"burned_supply":          supply.BurnedSupply,
		"updated_at":             o.now(),
	}
	return tx.Table("supply_registries").Where("id = ?", model.SupplyRegistryID).Updates(updates).Error
}

// ComputeSupplyFold folds the confirmed transaction log into the
// aggregate supply numbers it implies. Pure, no database access.
func ComputeSupplyFold(transactions []model.Transaction) *model.SupplyFold {
	minted := conv.NewDecimalWithPrecision()
	burned := conv.NewDecimalWithPrecision()
	staked := conv.NewDecimalWithPrecision()
	rewarded := conv.NewDecimalWithPrecision()

	for i := range transactions {
		t := &transactions[i]
		if t.Status != model.TransactionStatus_Confirmed {
			continue
		}
		if t.Amount == nil || t.Amount.V == nil {
			continue
		}
		switch t.TxType {
		case model.TransactionType_Mint:
			minted.Add(minted, t.Amount.V)
		case model.TransactionType_Burn:
			burned.Add(burned, t.Amount.V)
		case model.TransactionType_Stake:
			staked.Add(staked, t.Amount.V)
		case model.TransactionType_Unstake:
			staked.Sub(staked, t.Amount.V)
		case model.TransactionType_Reward:
			rewarded.Add(rewarded, t.Amount.V)
		}
	}

	circulating := conv.NewDecimalWithPrecision()
	circulating.Add(circulating, minted)
	circulating.Add(circulating, rewarded)
	circulating.Sub(circulating, burned)
	circulating.Sub(circulating, staked)

	return &model.SupplyFold{
		Minted:      minted,
		Burned:      burned,
		Staked:      staked,
		Rewarded:    rewarded,
		Circulating: circulating,
	}
}

// Reconcile recomputes the supply aggregates from the confirmed
// transaction log and compares them with the stored registry, then
// verifies the bucket conservation equation on the stored row. Read
// only, never corrects anything. A divergence latches the halt so mint
// and burn stop until a manual audit clears the ledger.
func (o *Ops) Reconcile() (*model.SupplyFold, error) {
	transactions, err := o.repo.GetConfirmedTransactions()
	if err != nil {
		return nil, err
	}
	supply, err := o.repo.GetSupplyRegistry()
	if err != nil {
		return nil, err
	}

	fold := ComputeSupplyFold(transactions)

	if fold.Circulating.Cmp(supply.CirculatingSupply.V) != 0 ||
		fold.Staked.Cmp(supply.StakedSupply.V) != 0 ||
		fold.Burned.Cmp(supply.BurnedSupply.V) != 0 {
		monitor.ConservationFailures.Inc()
		o.Halt()
		log.Error().
			Str("section", "ops").
			Str("action", "reconcile").
			Str("fold_circulating", fold.Circulating.String()).
			Str("stored_circulating", supply.CirculatingSupply.V.String()).
			Str("fold_staked", fold.Staked.String()).
			Str("stored_staked", supply.StakedSupply.V.String()).
			Str("fold_burned", fold.Burned.String()).
			Str("stored_burned", supply.BurnedSupply.V.String()).
			Msg("Supply registry diverged from the transaction log, minting halted")
		return fold, ErrConservationViolation
	}

	if !supply.ConservationHolds() {
		monitor.ConservationFailures.Inc()
		o.Halt()
		log.Error().
			Str("section", "ops").
			Str("action", "reconcile").
			Str("buckets_total", supply.BucketsTotal().String()).
			Str("stored_circulating", supply.CirculatingSupply.V.String()).
			Str("stored_staked", supply.StakedSupply.V.String()).
			Str("stored_burned", supply.BurnedSupply.V.String()).
			Str("total_supply", supply.TotalSupply.V.String()).
			Msg("Supply registry no longer sums to the total supply, minting halted")
		return fold, ErrConservationViolation
	}

	return fold, nil
}

// SetMarketData stores the externally observed token price and the
// market cap it implies. Price data never affects balances.
func (o *Ops) SetMarketData(price *decimal.Big) (*model.SupplyRegistry, error) {
	if price == nil || conv.NewDecimalWithPrecision().CheckNaNs(price, nil) || price.Sign() < 0 {
		return nil, fms.ErrInvalidAmount
	}

	tx := o.repo.Conn.Begin()
	supply, err := o.repo.GetSupplyRegistryForUpdate(tx)
	if err != nil {
		tx.Rollback()
		return nil, err
	}

	marketCap := conv.NewDecimalWithPrecision().Add(supply.CirculatingSupply.V, supply.StakedSupply.V)
	marketCap.Mul(marketCap, price)
	conv.RoundToPrecision(marketCap)

	supply.CurrentPrice = &postgres2.Decimal{V: conv.CloneToPrecision(price)}
	supply.MarketCap = &postgres2.Decimal{V: marketCap}

	err = tx.Table("supply_registries").Where("id = ?", model.SupplyRegistryID).Updates(map[string]interface{}{
		"current_price": supply.CurrentPrice,
		"market_cap":    supply.MarketCap,
		"updated_at":    o.now(),
	}).Error
	if err != nil {
		tx.Rollback()
		return nil, err
	}
	if err := tx.Commit().Error; err != nil {
		return nil, err
	}

	return supply, nil
}
