package crons

import (
	"github.com/rs/zerolog/log"

	"gitlab.com/smartstart-platform/buz_ledger_api/ops"
)

// CronReconcileSupply periodically verifies the supply registry against
// the transaction log
func CronReconcileSupply(op *ops.Ops) {
	if _, err := op.Reconcile(); err != nil {
		log.Error().Err(err).Msg("Supply reconciliation failed")
	}
}
