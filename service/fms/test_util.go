package fms

import (
	"context"

	"github.com/DATA-DOG/go-sqlmock"
	postgres2 "github.com/ericlagergren/decimal/sql/postgres"
	"github.com/rs/zerolog/log"

	"gitlab.com/smartstart-platform/buz_ledger_api/conv"
	"gitlab.com/smartstart-platform/buz_ledger_api/queries"
)

var (
	Zero = conv.NewDecimalWithPrecision()
)

// GetTestFE loads an engine with three accounts of 1000 available each
func GetTestFE(r *queries.Repo, mock sqlmock.Sqlmock, ctx context.Context) *FundsEngine {
	fm := Init(r, ctx)

	accountRows := sqlmock.NewRows([]string{"id", "user_id", "available", "staked", "lifetime_earned", "lifetime_spent", "lifetime_burned", "is_active"})
	for i := 1; i <= 3; i++ {
		available := conv.NewDecimalWithPrecision()
		available.SetString("1000")
		accountRows.AddRow(i, i, &postgres2.Decimal{V: available}, &postgres2.Decimal{V: Zero}, &postgres2.Decimal{V: available}, &postgres2.Decimal{V: Zero}, &postgres2.Decimal{V: Zero}, true)
	}

	mock.
		ExpectQuery("SELECT * FROM \"accounts\" ORDER BY user_id ASC").
		WillReturnRows(accountRows)

	err := fm.InitAccounts()
	if err != nil {
		log.Error().Err(err).
			Msg("Unable to initiate account balances")
	}

	return fm
}
