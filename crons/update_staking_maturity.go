package crons

import (
	"github.com/rs/zerolog/log"

	"gitlab.com/smartstart-platform/buz_ledger_api/ops"
)

// CronUpdateStakingMaturity flips overdue active positions to matured
func CronUpdateStakingMaturity(op *ops.Ops) {
	matured, err := op.MaturitySweep()
	if err != nil {
		log.Error().Err(err).Msg("Unable to update staking positions maturity")
		return
	}
	if matured > 0 {
		log.Info().Int64("matured", matured).Msg("Staking positions matured")
	}
}
