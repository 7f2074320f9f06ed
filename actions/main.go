package actions

import (
	"context"

	"gitlab.com/smartstart-platform/buz_ledger_api/config"
	"gitlab.com/smartstart-platform/buz_ledger_api/service"
)

// Actions structure
type Actions struct {
	ctx            context.Context
	cfg            config.Config
	service        *service.Service
	jwtTokenSecret string
}

// NewActions constructor
func NewActions(cfg config.Config, service *service.Service, jwtTokenSecret string, ctx context.Context) *Actions {
	return &Actions{ctx, cfg, service, jwtTokenSecret}
}
