package config

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"

	"gitlab.com/smartstart-platform/buz_ledger_api/monitor"
)

// Config structure
type Config struct {
	Server          ServerConfig
	DatabaseCluster DatabaseClusterConfig `mapstructure:"database_cluster"`
	Crons           Crons                 `mapstructure:"crons"`
	Staking         StakingConfig         `mapstructure:"staking"`
}

// ServerConfig structure
type ServerConfig struct {
	Monitoring monitor.Config `mapstructure:"monitoring"`
	API        APIConfig      `mapstructure:"api"`
	Admin      AdminConfig    `mapstructure:"admin"`
}

type APIConfig struct {
	Port           int
	KeepAlive      bool `mapstructure:"keep_alive"`
	Domain         string
	JWTTokenSecret string `mapstructure:"jwt_token_secret"`
}

// AdminConfig structure
type AdminConfig struct {
	Domain string
	// AllowedCIDR restricts the admin endpoints to the given network
	AllowedCIDR string `mapstructure:"allowed_cidr"`
}

// Crons maps a cron job id to its schedule expression
type Crons map[string]string

// StakingConfig structure
type StakingConfig struct {
	// AllowEarlyExit lets users withdraw an active position forfeiting
	// the reward. Off by default.
	AllowEarlyExit bool `mapstructure:"allow_early_exit"`
	// Limits bounds the amount of a single position per tier. Tiers
	// without an entry accept any amount.
	Limits map[string]StakingLimit `mapstructure:"limits"`
}

// StakingLimit structure
type StakingLimit struct {
	Max float64 `mapstructure:"max" json:"max"`
	Min float64 `mapstructure:"min" json:"min"`
}

// DatabaseClusterConfig structure
type DatabaseClusterConfig struct {
	Writer      DatabaseConfig `mapstructure:"writer"`
	Reader      DatabaseConfig `mapstructure:"reader"`
	ReaderAdmin DatabaseConfig `mapstructure:"reader_admin"`
}

// DatabaseConfig structure
type DatabaseConfig struct {
	Type            string // postgres
	Host            string
	Username        string
	Password        string
	Name            string
	SSLmode         string `mapstructure:"sslmode"`
	ApplicationName string `mapstructure:"application_name"`
	Port            int
}

// LoadConfig Load server configuration from the yaml file
func LoadConfig(viperConf *viper.Viper) Config {
	var config Config

	err := viperConf.Unmarshal(&config)
	if err != nil {
		log.Fatal().Err(err).Msg("Unable to decode config into struct")
	}
	return config
}

// OpenConfig godoc
func OpenConfig(file string) {
	// Don't forget to read config either from cfgFile, from current directory or from home directory!
	if file != "" {
		// Use config file from the flag.
		viper.SetConfigFile(file)
	}

	viper.SetConfigType("yaml")
	viper.SetConfigName(".config")
	viper.AddConfigPath(".")                      // First try to load the config from the current directory
	viper.AddConfigPath("$HOME")                  // Then try to load it from the HOME directory
	viper.AddConfigPath("/etc/buz_ledger_api/")   // As a last resort try to load it from /etc/
	viper.SetEnvPrefix("CFG")
	viper.AutomaticEnv()
	setDefaultVariables()

	err := viper.ReadInConfig() // Find and read the config file
	if err != nil {             // Handle errors reading the config file
		log.Fatal().Err(err).Msg("Unable to read configuration file")
	}
}

func setDefaultVariables() {
	viper.SetDefault("server.api.port", 8080)
	viper.SetDefault("staking.allow_early_exit", false)
}
