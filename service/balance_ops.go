package service

import (
	"errors"

	"github.com/ericlagergren/decimal"
	"github.com/rs/zerolog/log"

	"gitlab.com/smartstart-platform/buz_ledger_api/model"
)

var ErrUnauthorized = errors.New("UNAUTHORIZED")

// Transfer moves tokens from one user to another as a single atomic unit
func (service *Service) Transfer(fromUserID uint64, data *model.TransferRequest) (*model.Transaction, error) {
	logger := log.With().
		Str("service", "balance_ops").
		Str("method", "Transfer").
		Uint64("from_user_id", fromUserID).
		Uint64("to_user_id", data.ToUserID).
		Logger()

	txn, err := service.ops.Transfer(fromUserID, data.ToUserID, data.Amount, data.Reason, data.Description)
	if err != nil {
		logger.Error().Err(err).Msg("unable to transfer")
		return nil, err
	}

	return txn, nil
}

// Mint issues new tokens to a user. Admin only, the role check guards
// the supply itself.
func (service *Service) Mint(actorRole string, toUserID uint64, amount *decimal.Big, reason, description string) (*model.Transaction, error) {
	logger := log.With().
		Str("service", "balance_ops").
		Str("method", "Mint").
		Uint64("to_user_id", toUserID).
		Str("actor_role", actorRole).
		Logger()

	if !model.RoleAlias(actorRole).IsAdmin() {
		logger.Warn().Msg("mint attempted by a non admin actor")
		return nil, ErrUnauthorized
	}

	txn, err := service.ops.Mint(toUserID, amount, reason, description)
	if err != nil {
		logger.Error().Err(err).Msg("unable to mint")
		return nil, err
	}

	return txn, nil
}

// Burn destroys tokens from a user's available balance. Admin only.
func (service *Service) Burn(actorRole string, fromUserID uint64, amount *decimal.Big, reason, description string) (*model.Transaction, error) {
	logger := log.With().
		Str("service", "balance_ops").
		Str("method", "Burn").
		Uint64("from_user_id", fromUserID).
		Str("actor_role", actorRole).
		Logger()

	if !model.RoleAlias(actorRole).IsAdmin() {
		logger.Warn().Msg("burn attempted by a non admin actor")
		return nil, ErrUnauthorized
	}

	txn, err := service.ops.Burn(fromUserID, amount, reason, description)
	if err != nil {
		logger.Error().Err(err).Msg("unable to burn")
		return nil, err
	}

	return txn, nil
}

// RewardUser credits a user out of the user rewards bucket. Admin only.
func (service *Service) RewardUser(actorRole string, toUserID uint64, amount *decimal.Big, reason, description string) (*model.Transaction, error) {
	if !model.RoleAlias(actorRole).IsAdmin() {
		log.Warn().
			Str("service", "balance_ops").
			Str("method", "RewardUser").
			Uint64("to_user_id", toUserID).
			Msg("reward attempted by a non admin actor")
		return nil, ErrUnauthorized
	}

	return service.ops.Credit(toUserID, amount, reason, description)
}
