package model

import (
	"encoding/json"
	"time"

	"github.com/ericlagergren/decimal"
	"github.com/ericlagergren/decimal/sql/postgres"

	"gitlab.com/smartstart-platform/buz_ledger_api/conv"
	"gitlab.com/smartstart-platform/buz_ledger_api/utils"
)

// SupplyRegistryID is the primary key of the singleton supply row
const SupplyRegistryID uint64 = 1

// SupplyRegistry is the singleton record of global issuance.
// Allocation buckets are fixed at genesis; circulating, staked and burned
// are the aggregates maintained by mint, burn, stake and withdraw.
// Invariant: circulating + staked + burned + all buckets == total.
type SupplyRegistry struct {
	ID uint64 `gorm:"PRIMARY_KEY" json:"id"`

	TotalSupply *postgres.Decimal `gorm:"column:total_supply" sql:"type:decimal(36,18)" json:"total_supply"`

	ReserveBucket        *postgres.Decimal `gorm:"column:reserve_bucket" sql:"type:decimal(36,18)" json:"reserve_bucket"`
	TeamBucket           *postgres.Decimal `gorm:"column:team_bucket" sql:"type:decimal(36,18)" json:"team_bucket"`
	CommunityBucket      *postgres.Decimal `gorm:"column:community_bucket" sql:"type:decimal(36,18)" json:"community_bucket"`
	LiquidityBucket      *postgres.Decimal `gorm:"column:liquidity_bucket" sql:"type:decimal(36,18)" json:"liquidity_bucket"`
	StakingRewardsBucket *postgres.Decimal `gorm:"column:staking_rewards_bucket" sql:"type:decimal(36,18)" json:"staking_rewards_bucket"`
	UserRewardsBucket    *postgres.Decimal `gorm:"column:user_rewards_bucket" sql:"type:decimal(36,18)" json:"user_rewards_bucket"`
	VentureFundBucket    *postgres.Decimal `gorm:"column:venture_fund_bucket" sql:"type:decimal(36,18)" json:"venture_fund_bucket"`

	CirculatingSupply *postgres.Decimal `gorm:"column:circulating_supply" sql:"type:decimal(36,18)" json:"circulating_supply"`
	StakedSupply      *postgres.Decimal `gorm:"column:staked_supply" sql:"type:decimal(36,18)" json:"staked_supply"`
	BurnedSupply      *postgres.Decimal `gorm:"column:burned_supply" sql:"type:decimal(36,18)" json:"burned_supply"`

	CurrentPrice *postgres.Decimal `gorm:"column:current_price" sql:"type:decimal(36,18)" json:"current_price"`
	MarketCap    *postgres.Decimal `gorm:"column:market_cap" sql:"type:decimal(36,18)" json:"market_cap"`

	UpdatedAt time.Time `json:"updated_at"`
}

// BucketsTotal sums the fixed allocation buckets
func (s *SupplyRegistry) BucketsTotal() *decimal.Big {
	total := conv.NewDecimalWithPrecision()
	for _, bucket := range []*postgres.Decimal{
		s.ReserveBucket,
		s.TeamBucket,
		s.CommunityBucket,
		s.LiquidityBucket,
		s.StakingRewardsBucket,
		s.UserRewardsBucket,
		s.VentureFundBucket,
	} {
		if bucket != nil && bucket.V != nil {
			total.Add(total, bucket.V)
		}
	}
	return total
}

// ConservationHolds verifies circulating + staked + burned + buckets == total
func (s *SupplyRegistry) ConservationHolds() bool {
	sum := s.BucketsTotal()
	sum.Add(sum, s.CirculatingSupply.V)
	sum.Add(sum, s.StakedSupply.V)
	sum.Add(sum, s.BurnedSupply.V)
	return sum.Cmp(s.TotalSupply.V) == 0
}

func (s *SupplyRegistry) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]interface{}{
		"total_supply":           utils.FmtDecimal(s.TotalSupply),
		"reserve_bucket":         utils.FmtDecimal(s.ReserveBucket),
		"team_bucket":            utils.FmtDecimal(s.TeamBucket),
		"community_bucket":       utils.FmtDecimal(s.CommunityBucket),
		"liquidity_bucket":       utils.FmtDecimal(s.LiquidityBucket),
		"staking_rewards_bucket": utils.FmtDecimal(s.StakingRewardsBucket),
		"user_rewards_bucket":    utils.FmtDecimal(s.UserRewardsBucket),
		"venture_fund_bucket":    utils.FmtDecimal(s.VentureFundBucket),
		"circulating_supply":     utils.FmtDecimal(s.CirculatingSupply),
		"staked_supply":          utils.FmtDecimal(s.StakedSupply),
		"burned_supply":          utils.FmtDecimal(s.BurnedSupply),
		"current_price":          utils.FmtDecimal(s.CurrentPrice),
		"market_cap":             utils.FmtDecimal(s.MarketCap),
		"updated_at":             s.UpdatedAt,
	})
}

// SupplyFold is the result of folding the confirmed transaction log,
// used to verify the stored aggregates
type SupplyFold struct {
	Minted      *decimal.Big
	Burned      *decimal.Big
	Staked      *decimal.Big
	Rewarded    *decimal.Big
	Circulating *decimal.Big
}

// SystemStats is the aggregate snapshot returned by the stats endpoint
type SystemStats struct {
	TotalUsers             int64  `json:"total_users"`
	TotalTransactions      int64  `json:"total_transactions"`
	ActiveStakingPositions int64  `json:"active_staking_positions"`
	TotalStaked            string `json:"total_staked"`
	TotalBurned            string `json:"total_burned"`
	CirculatingSupply      string `json:"circulating_supply"`
}
