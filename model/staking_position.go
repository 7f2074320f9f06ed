package model

import (
	"encoding/json"
	"time"

	"github.com/ericlagergren/decimal"
	"github.com/ericlagergren/decimal/sql/postgres"

	"gitlab.com/smartstart-platform/buz_ledger_api/conv"
	"gitlab.com/smartstart-platform/buz_ledger_api/utils"
)

type StakingStatus string

const (
	StakingStatusActive    StakingStatus = "active"
	StakingStatusMatured   StakingStatus = "matured"
	StakingStatusWithdrawn StakingStatus = "withdrawn"
)

func (s StakingStatus) String() string {
	return string(s)
}

type StakingTier string

const (
	StakingTierBasic      StakingTier = "basic"
	StakingTierPremium    StakingTier = "premium"
	StakingTierVip        StakingTier = "vip"
	StakingTierGovernance StakingTier = "governance"
)

func (t StakingTier) String() string {
	return string(t)
}

func (t StakingTier) IsValid() bool {
	switch t {
	case StakingTierBasic,
		StakingTierPremium,
		StakingTierVip,
		StakingTierGovernance:
		return true
	default:
		return false
	}
}

// DurationDays for the tier. Fixed terms, not configurable at runtime.
func (t StakingTier) DurationDays() int {
	switch t {
	case StakingTierBasic:
		return 30
	case StakingTierPremium:
		return 90
	case StakingTierVip:
		return 180
	case StakingTierGovernance:
		return 365
	default:
		return 0
	}
}

// APYPercent for the tier as a fixed point decimal
func (t StakingTier) APYPercent() *decimal.Big {
	switch t {
	case StakingTierBasic:
		return decimal.New(500, 2)
	case StakingTierPremium:
		return decimal.New(1000, 2)
	case StakingTierVip:
		return decimal.New(1500, 2)
	case StakingTierGovernance:
		return decimal.New(2000, 2)
	default:
		return decimal.New(0, 0)
	}
}

// GetExpirationTime computes the maturity date from the given start
func (t StakingTier) GetExpirationTime(start time.Time) time.Time {
	return start.AddDate(0, 0, t.DurationDays())
}

// ExpectedReward computes amount * (apy/100) * (days/365) at ledger precision
func (t StakingTier) ExpectedReward(amount *decimal.Big) *decimal.Big {
	reward := conv.CloneToPrecision(amount)
	reward.Mul(reward, t.APYPercent())
	reward.Quo(reward, decimal.New(100, 0))
	reward.Mul(reward, decimal.New(int64(t.DurationDays()), 0))
	reward.Quo(reward, decimal.New(365, 0))
	return conv.RoundToPrecision(reward)
}

// StakingPosition locks a portion of a user's available balance until the
// tier maturity date. Transitions ACTIVE -> MATURED -> WITHDRAWN, never
// skipping a state and never being deleted.
type StakingPosition struct {
	ID     uint64 `gorm:"PRIMARY_KEY" json:"id"`
	UserID uint64 `gorm:"column:user_id" json:"user_id"`

	Amount         *postgres.Decimal `sql:"type:decimal(36,18)" json:"amount"`
	Tier           StakingTier       `gorm:"tier" json:"tier"`
	StartDate      time.Time         `gorm:"column:start_date" json:"start_date"`
	EndDate        time.Time         `gorm:"column:end_date" json:"end_date"`
	ExpectedReward *postgres.Decimal `gorm:"column:expected_reward" sql:"type:decimal(36,18)" json:"expected_reward"`
	ActualReward   *postgres.Decimal `gorm:"column:actual_reward" sql:"type:decimal(36,18)" json:"actual_reward"`
	Status         StakingStatus     `gorm:"status" json:"status"`
	RefID          string            `gorm:"column:ref_id" json:"-"`

	CreatedAt time.Time `gorm:"created_at" json:"created_at"`
	UpdatedAt time.Time `gorm:"updated_at" json:"updated_at"`
}

// NewStakingPosition creates an active position starting at the given time
func NewStakingPosition(userID uint64, amount *decimal.Big, tier StakingTier, start time.Time, refID string) *StakingPosition {
	return &StakingPosition{
		UserID:         userID,
		Amount:         &postgres.Decimal{V: amount},
		Tier:           tier,
		StartDate:      start,
		EndDate:        tier.GetExpirationTime(start),
		ExpectedReward: &postgres.Decimal{V: tier.ExpectedReward(amount)},
		ActualReward:   &postgres.Decimal{V: conv.NewDecimalWithPrecision()},
		Status:         StakingStatusActive,
		RefID:          refID,
		CreatedAt:      start,
		UpdatedAt:      start,
	}
}

// IsMatured reports whether the maturity date passed at the given time
func (p *StakingPosition) IsMatured(now time.Time) bool {
	return !now.Before(p.EndDate)
}

func (p *StakingPosition) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]interface{}{
		"id":              p.ID,
		"user_id":         p.UserID,
		"amount":          utils.FmtDecimal(p.Amount),
		"tier":            p.Tier,
		"start_date":      p.StartDate,
		"end_date":        p.EndDate,
		"expected_reward": utils.FmtDecimal(p.ExpectedReward),
		"actual_reward":   utils.FmtDecimal(p.ActualReward),
		"status":          p.Status,
		"created_at":      p.CreatedAt,
	})
}

// StakingPositionList structure
type StakingPositionList struct {
	Positions []StakingPosition `json:"positions"`
	Meta      PagingMeta        `json:"meta"`
}

// CreateStakingRequest is the payload to open a new position
type CreateStakingRequest struct {
	Tier   string       `json:"tier"`
	Amount *decimal.Big `json:"amount"`
}
