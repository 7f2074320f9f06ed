package crons

import (
	"github.com/robfig/cron"

	"gitlab.com/smartstart-platform/buz_ledger_api/config"
	"gitlab.com/smartstart-platform/buz_ledger_api/ops"
	"gitlab.com/smartstart-platform/buz_ledger_api/queries"
)

var cronService *cron.Cron

// Start Initiate the crons based on the given configuration file
func Start(crons config.Crons, repo *queries.Repo, op *ops.Ops) {
	cronService = cron.New()
	for id, schedule := range crons {
		callback := GetCronByID(id, repo, op)
		_ = cronService.AddFunc(schedule, callback)
	}
	cronService.Start()
}

// GetCronByID get a function to execute based on the id
func GetCronByID(id string, repo *queries.Repo, op *ops.Ops) func() {
	switch id {
	case "update_staking_maturity":
		return func() {
			CronUpdateStakingMaturity(op)
		}
	case "reconcile_supply":
		return func() {
			CronReconcileSupply(op)
		}
	}
	return (func() {})
}

// Close godoc
func Close() {
	cronService.Stop()
}
