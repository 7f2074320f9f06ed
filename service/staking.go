package service

import (
	"github.com/rs/zerolog/log"

	"gitlab.com/smartstart-platform/buz_ledger_api/model"
	"gitlab.com/smartstart-platform/buz_ledger_api/ops"
)

// CreateStaking opens a staking position for the user
func (service *Service) CreateStaking(userID uint64, data *model.CreateStakingRequest) (*model.StakingPosition, error) {
	logger := log.With().
		Str("service", "staking").
		Str("method", "CreateStaking").
		Uint64("user_id", userID).
		Str("tier", data.Tier).
		Logger()

	tier := model.StakingTier(data.Tier)
	if !tier.IsValid() {
		logger.Error().Msg("wrong tier")
		return nil, ops.ErrInvalidTier
	}

	position, err := service.ops.Stake(userID, data.Amount, tier)
	if err != nil {
		logger.Error().Err(err).Msg("unable to create staking position")
		return nil, err
	}

	return position, nil
}

// WithdrawStaking closes a matured position, or an active one when the
// early exit policy is enabled. The position must belong to the user.
func (service *Service) WithdrawStaking(userID, positionID uint64) (*model.StakingPosition, error) {
	logger := log.With().
		Str("service", "staking").
		Str("method", "WithdrawStaking").
		Uint64("user_id", userID).
		Uint64("position_id", positionID).
		Logger()

	position, err := service.repo.GetStakingPositionByID(positionID)
	if err != nil {
		return nil, err
	}
	if position.UserID != userID {
		logger.Warn().Msg("withdrawal attempted on another user's position")
		return nil, ErrUnauthorized
	}

	withdrawn, err := service.ops.WithdrawStake(positionID, service.cfg.Staking.AllowEarlyExit)
	if err != nil {
		logger.Error().Err(err).Msg("unable to withdraw staking position")
		return nil, err
	}

	return withdrawn, nil
}

// CheckStakingMaturity reports and persists the position's maturity state
func (service *Service) CheckStakingMaturity(userID, positionID uint64) (model.StakingStatus, error) {
	position, err := service.repo.GetStakingPositionByID(positionID)
	if err != nil {
		return "", err
	}
	if position.UserID != userID {
		return "", ErrUnauthorized
	}

	return service.ops.CheckMaturity(positionID)
}

// GetStakingPositions lists the user's positions with optional status filter
func (service *Service) GetStakingPositions(userID uint64, status model.StakingStatus, limit, page int) (*model.StakingPositionList, error) {
	return service.repo.GetStakingPositionsByUser(userID, status, limit, page)
}

// GetStakingTiers returns the fixed tier terms
func (service *Service) GetStakingTiers() []map[string]interface{} {
	tiers := []model.StakingTier{
		model.StakingTierBasic,
		model.StakingTierPremium,
		model.StakingTierVip,
		model.StakingTierGovernance,
	}
	result := make([]map[string]interface{}, 0, len(tiers))
	for _, tier := range tiers {
		result = append(result, map[string]interface{}{
			"tier":          tier,
			"duration_days": tier.DurationDays(),
			"apy_percent":   tier.APYPercent().String(),
		})
	}
	return result
}
