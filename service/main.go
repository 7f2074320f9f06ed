package service

import (
	"context"

	"github.com/rs/zerolog/log"

	"gitlab.com/smartstart-platform/buz_ledger_api/config"
	"gitlab.com/smartstart-platform/buz_ledger_api/crons"
	"gitlab.com/smartstart-platform/buz_ledger_api/ops"
	"gitlab.com/smartstart-platform/buz_ledger_api/queries"
	"gitlab.com/smartstart-platform/buz_ledger_api/service/fms"
)

// Service structure
type Service struct {
	apiConfig   config.APIConfig
	adminConfig config.AdminConfig
	repo        *queries.Repo
	ctx         context.Context
	cfg         config.Config
	ops         *ops.Ops
	FundsEngine *fms.FundsEngine
}

// NewService constructor
func NewService(ctx context.Context, cfg config.Config) *Service {
	// connect to the database
	repo := queries.NewRepo(
		cfg.DatabaseCluster.Writer,
		cfg.DatabaseCluster.Reader,
		cfg.DatabaseCluster.ReaderAdmin,
	)

	fmsInstance := fms.Init(repo, ctx)
	if err := fmsInstance.InitAccounts(); err != nil {
		log.Fatal().Err(err).Str("section", "FMS").Msg("Unable to init account balances")
	} else {
		log.Warn().Str("section", "FMS").Msg("Account balances loaded successfully")
	}

	op := ops.New(repo, fmsInstance)

	service := &Service{
		apiConfig:   cfg.Server.API,
		adminConfig: cfg.Server.Admin,
		cfg:         cfg,
		repo:        repo,
		ctx:         ctx,
		ops:         op,
		FundsEngine: fmsInstance,
	}

	return service
}

// GetRepo godoc
func (s *Service) GetRepo() *queries.Repo {
	return s.repo
}

// GetOps godoc
func (s *Service) GetOps() *ops.Ops {
	return s.ops
}

// Start godoc
func (s *Service) Start() {
	log.Debug().Str("section", "service").Str("action", "crons:start").Msg("Starting cron service")
	crons.Start(s.cfg.Crons, s.repo, s.ops)

	// verify the stored aggregates before serving traffic
	if _, err := s.ops.Reconcile(); err != nil {
		log.Error().Err(err).Str("section", "service").Str("action", "start").Msg("Supply reconciliation failed at boot")
	}
}

// CloseCrons stop the cron scheduler
func (s *Service) CloseCrons() {
	crons.Close()
}
