package ops

import (
	"context"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/ericlagergren/decimal"
	postgres2 "github.com/ericlagergren/decimal/sql/postgres"
	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"gitlab.com/smartstart-platform/buz_ledger_api/conv"
	"gitlab.com/smartstart-platform/buz_ledger_api/model"
	"gitlab.com/smartstart-platform/buz_ledger_api/queries"
	"gitlab.com/smartstart-platform/buz_ledger_api/service/fms"
)

func setupOps() (*Ops, sqlmock.Sqlmock) {
	logger := log.With().Str("test", "ops").Str("method", "setupOps").Logger()
	db, mock, err := sqlmock.New()
	if err != nil {
		logger.Fatal().Msgf("can't create sqlmock: %s", err)
	}

	dialector := postgres.New(postgres.Config{
		DSN:                  "postgres-mock",
		DriverName:           "postgres",
		Conn:                 db,
		PreferSimpleProtocol: true,
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		logger.Fatal().Msgf("can't open gorm connection: %s", err)
	}

	repo := &queries.Repo{
		Conn:            gormDB,
		ConnReader:      gormDB,
		ConnReaderAdmin: gormDB,
	}
	return New(repo, fms.Init(repo, context.TODO())), mock
}

// registerAccount seeds the funds engine directly, keeping the database
// mock free for the statements under test
func registerAccount(o *Ops, userID uint64, available string) {
	account := model.NewAccount(userID)
	account.Available.V.SetString(available)
	if _, err := o.funds.InitAccountBalances(account, false); err != nil {
		log.Fatal().Err(err).Uint64("user_id", userID).Msg("can't register test account")
	}
}

func dec(value string) *decimal.Big {
	d := conv.NewDecimalWithPrecision()
	d.SetString(value)
	return conv.RoundToPrecision(d)
}

func col(value string) *postgres2.Decimal {
	return &postgres2.Decimal{V: dec(value)}
}

var supplyColumns = []string{
	"id", "total_supply",
	"reserve_bucket", "team_bucket", "community_bucket", "liquidity_bucket",
	"staking_rewards_bucket", "user_rewards_bucket", "venture_fund_bucket",
	"circulating_supply", "staked_supply", "burned_supply",
}

// supplyRows builds the singleton supply row. The genesis allocation
// sums to the one billion total only with the full reserve bucket.
func supplyRows(reserve, circulating, staked, burned string) *sqlmock.Rows {
	return sqlmock.NewRows(supplyColumns).AddRow(
		model.SupplyRegistryID, col("1000000000"),
		col(reserve), col("150000000"), col("150000000"), col("100000000"),
		col("150000000"), col("100000000"), col("50000000"),
		col(circulating), col(staked), col(burned),
	)
}

var positionColumns = []string{
	"id", "user_id", "amount", "tier", "start_date", "end_date",
	"expected_reward", "actual_reward", "status", "ref_id",
}

func positionRows(p *model.StakingPosition, status model.StakingStatus) *sqlmock.Rows {
	return sqlmock.NewRows(positionColumns).AddRow(
		p.ID, p.UserID, p.Amount, p.Tier.String(), p.StartDate, p.EndDate,
		p.ExpectedReward, p.ActualReward, status.String(), p.RefID,
	)
}

var accountColumns = []string{
	"id", "user_id", "available", "staked",
	"lifetime_earned", "lifetime_spent", "lifetime_burned", "is_active",
}

func accountRows(userID uint64, available, staked string) *sqlmock.Rows {
	return sqlmock.NewRows(accountColumns).AddRow(
		userID, userID, col(available), col(staked),
		col(available), col("0"), col("0"), true,
	)
}

func idRows(id uint64) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id"}).AddRow(id)
}
