package service

import (
	"github.com/ericlagergren/decimal"
	"github.com/rs/zerolog/log"

	"gitlab.com/smartstart-platform/buz_ledger_api/model"
)

// GetSupplyInfo returns the singleton supply registry
func (service *Service) GetSupplyInfo() (*model.SupplyRegistry, error) {
	return service.repo.GetSupplyRegistry()
}

// Reconcile verifies the stored aggregates against the transaction log.
// Admin only. A divergence halts mint and burn.
func (service *Service) Reconcile(actorRole string) (*model.SupplyFold, error) {
	if !model.RoleAlias(actorRole).IsAdmin() {
		return nil, ErrUnauthorized
	}

	fold, err := service.ops.Reconcile()
	if err != nil {
		return fold, err
	}

	log.Info().
		Str("service", "supply").
		Str("method", "Reconcile").
		Str("circulating", fold.Circulating.String()).
		Str("staked", fold.Staked.String()).
		Str("burned", fold.Burned.String()).
		Msg("Supply registry reconciled")
	return fold, nil
}

// SetMarketData stores the externally observed token price. Admin only.
func (service *Service) SetMarketData(actorRole string, price *decimal.Big) (*model.SupplyRegistry, error) {
	if !model.RoleAlias(actorRole).IsAdmin() {
		return nil, ErrUnauthorized
	}

	return service.ops.SetMarketData(price)
}
