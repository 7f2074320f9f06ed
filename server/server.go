package server

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	// import http profilling when the server profilling configuration is set
	_ "net/http/pprof"

	"github.com/rs/zerolog/log"

	"gitlab.com/smartstart-platform/buz_ledger_api/actions"
	"gitlab.com/smartstart-platform/buz_ledger_api/config"
	"gitlab.com/smartstart-platform/buz_ledger_api/monitor"
	"gitlab.com/smartstart-platform/buz_ledger_api/queries"
	"gitlab.com/smartstart-platform/buz_ledger_api/service"
)

// Server interface
type Server interface {
	Listen()
}

type server struct {
	config  config.Config
	actions *actions.Actions
	service *service.Service
	ctx     context.Context
	close   context.CancelFunc
	HTTP    *http.Server
}

// NewServer constructor
func NewServer(cfg config.Config) Server {
	ctx, close := context.WithCancel(context.Background())

	dataServices := service.NewService(ctx, cfg)
	userActions := actions.NewActions(cfg, dataServices, cfg.Server.API.JWTTokenSecret, ctx)

	// start the crons and the boot time supply reconciliation
	dataServices.Start()

	return &server{
		config:  cfg,
		service: dataServices,
		actions: userActions,
		ctx:     ctx,
		close:   close,
	}
}

// Listen for incoming requests and process them
func (srv *server) Listen() {
	go srv.ListenToRequests()
	go monitor.LoopProfilingServer(srv.config.Server.Monitoring)

	srv.stopOnSignal()
}

func (srv *server) stopOnSignal() {
	// listen for termination signals
	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigc

	log.Info().Str("section", "server").Str("app_event", "terminate").Str("signal", sig.String()).Msg("Shutting down services")
	srv.closeApp(5 * time.Second)
}

func (srv *server) closeApp(timeout time.Duration) {
	// define a timeout in which the graceful shutdown procedure should happen before forcing the shutdown
	timeoutFunc := time.AfterFunc(timeout, func() {
		log.Printf("timeout %d ms has been elapsed, force exit", timeout.Milliseconds())
		os.Exit(0)
	})
	defer timeoutFunc.Stop()

	monitor.ShutdownServer()
	if err := srv.HTTP.Shutdown(context.Background()); err != nil {
		log.Error().Err(err).Str("section", "server").Str("action", "terminate").Msg("Unable to shutdown HTTP server")
	}

	// close crons
	srv.service.CloseCrons()

	srv.close()
	// make sure database connection is closed on program exit
	queries.Close()

	log.Info().Str("section", "server").Str("app_event", "terminate").Str("state", "complete").Msg("All workers terminated")
}
