package cmd

import (
	"github.com/rs/zerolog/log"

	"gitlab.com/smartstart-platform/buz_ledger_api/cmd/commands"
	"gitlab.com/smartstart-platform/buz_ledger_api/config"
	"gitlab.com/smartstart-platform/buz_ledger_api/server"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.AddCommand(startCmd)
}

var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the ledger service and listen for balance and staking requests",
	Long:  `Connect to the configured database, run the pending migrations and serve the ledger API`,
	Run: func(cmd *cobra.Command, args []string) {
		// load server configuration from server
		log.Debug().Msg("Loading server configuration")
		if viper.ConfigFileUsed() != "" {
			log.Debug().Str("section", "init").Str("path", viper.ConfigFileUsed()).Msg("Configuration file loaded")
		}
		cfg := config.LoadConfig(viper.GetViper())
		// Running migrations
		log.Debug().Msg("Running migrations")
		commands.Migrate(cfg)

		// start a new server
		log.Debug().Str("section", "init").Msg("Starting new server instance")
		srv := server.NewServer(cfg)
		// listen for new requests
		log.Info().Str("section", "init").Msg("Listening for incoming requests")
		srv.Listen()
	},
}
