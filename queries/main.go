package queries

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	glogger "gorm.io/gorm/logger"

	"gitlab.com/smartstart-platform/buz_ledger_api/config"
)

// Repo holds the database connections used by the ledger.
// Conn is the writer, ConnReader serves user reads and
// ConnReaderAdmin serves heavy admin reads and exports.
type Repo struct {
	Conn            *gorm.DB
	ConnReader      *gorm.DB
	ConnReaderAdmin *gorm.DB
}

var repo *Repo

// NewRepo connects to the database cluster and keeps the
// instance available through GetRepo
func NewRepo(writer, reader, readerAdmin config.DatabaseConfig) *Repo {
	repo = &Repo{
		Conn:            connect(writer),
		ConnReader:      connect(reader),
		ConnReaderAdmin: connect(readerAdmin),
	}
	return repo
}

// GetRepo returns the repo instance created by NewRepo
func GetRepo() *Repo {
	return repo
}

func connect(cfg config.DatabaseConfig) *gorm.DB {
	dsn := fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s application_name=%s",
		cfg.Host,
		cfg.Port,
		cfg.Username,
		cfg.Password,
		cfg.Name,
		cfg.SSLmode,
		cfg.ApplicationName,
	)
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: glogger.Default.LogMode(glogger.Silent),
	})
	if err != nil {
		log.Fatal().Err(err).
			Str("section", "queries").
			Str("action", "connect").
			Str("host", cfg.Host).
			Msg("Unable to connect to the database")
	}
	return db
}

// Close all database connections
func Close() {
	if repo == nil {
		return
	}
	for _, conn := range []*gorm.DB{repo.Conn, repo.ConnReader, repo.ConnReaderAdmin} {
		if conn == nil {
			continue
		}
		sqlDB, err := conn.DB()
		if err != nil {
			log.Error().Err(err).Str("section", "queries").Str("action", "close").Msg("Unable to get the underlying connection")
			continue
		}
		if err := sqlDB.Close(); err != nil {
			log.Error().Err(err).Str("section", "queries").Str("action", "close").Msg("Unable to close the database connection")
		}
	}
}
