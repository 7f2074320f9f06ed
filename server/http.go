package server

import (
	"fmt"
	"net/http"

	limit "github.com/bu/gin-access-limit"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"gitlab.com/smartstart-platform/buz_ledger_api/logger"
)

func (srv *server) ListenToRequests() {
	log.Info().Str("worker", "http_listen_to_requests").Str("action", "start").Msg("HTTP Listen to requests - started")
	defer log.Info().Str("worker", "http_listen_to_requests").Str("action", "stop").Msg("HTTP Listen to requests - stopped")

	a := srv.actions

	r := gin.New()

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowCredentials = true
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowHeaders = []string{"Origin", "X-Requested-With", "Content-Length", "Content-Type", "Accept", "X-Api-Key", "Authorization"}
	corsConfig.AllowMethods = []string{"GET", "PUT", "POST", "DELETE", "PATCH", "OPTIONS"}

	r.Use(cors.New(corsConfig)) // Allow requests from anywhere
	r.Use(gin.Recovery())       // Recovery middleware recovers from any panics and writes a 500 if there was one.

	r.Use(logger.SetLogger())

	// public endpoints
	{
		r.GET("/ping", a.Ping)
		r.GET("/stats", a.GetSystemStats)
		r.GET("/supply", a.GetSupplyInfo)
		r.GET("/staking/tiers", a.GetStakingTiers)
	}

	// balance and transaction history
	{
		r.GET("/balance", a.Restrict(false), a.GetBalance)
		r.GET("/transactions", a.Restrict(false), a.GetUserTransactions)
		r.GET("/transactions/export", a.Restrict(false), a.ExportUserTransactions)
		r.POST("/transfer", a.Restrict(true), a.Transfer)
	}

	// staking API
	staking := r.Group("/staking", a.Restrict(true))
	{
		staking.POST("/create", a.CreateStaking)
		staking.GET("/list", a.GetStakingPositions)
		staking.POST("/withdraw/:position_id", a.WithdrawStaking)
		staking.GET("/maturity/:position_id", a.CheckStakingMaturity)
	}

	// admin functionality
	admin := r.Group("/admin", a.Restrict(false), a.RequireAdmin(), a.TrackAdminActivity())
	{
		if srv.config.Server.Admin.AllowedCIDR != "" {
			limit.TrustedHeaderField = "X-Forwarded-For"
			admin.Use(limit.CIDR(srv.config.Server.Admin.AllowedCIDR))
		}

		admin.POST("/mint", a.Mint)
		admin.POST("/burn", a.Burn)
		admin.POST("/reward", a.RewardUser)
		admin.POST("/supply/reconcile", a.ReconcileSupply)
		admin.POST("/supply/market-data", a.SetMarketData)
		admin.POST("/accounts/:user_id/deactivate", a.DeactivateAccount)
	}

	srv.HTTP = &http.Server{
		Addr:    fmt.Sprintf(":%d", srv.config.Server.API.Port),
		Handler: r,
	}

	srv.HTTP.SetKeepAlivesEnabled(srv.config.Server.API.KeepAlive)

	port := srv.config.Server.API.Port
	httpServer := srv.HTTP
	if err := httpServer.ListenAndServe(); err != nil {
		if err != http.ErrServerClosed {
			log.Error().Err(err).Str("section", "server").Str("action", "ListenToRequests").Msgf("Unable to listen %d port", port)
		}
	}
}
