package ops

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/ericlagergren/decimal"
	. "github.com/smartystreets/goconvey/convey"

	"gitlab.com/smartstart-platform/buz_ledger_api/conv"
	"gitlab.com/smartstart-platform/buz_ledger_api/model"
)

func TestStakingLifecycle(t *testing.T) {
	o, mock := setupOps()
	registerAccount(o, 1, "1000")

	base := time.Date(2026, 1, 10, 12, 0, 0, 0, time.UTC)
	o.SetClock(func() time.Time { return base })

	Convey("staking locks the amount and opens an active position", t, func() {
		mock.ExpectBegin()
		mock.
			ExpectQuery(`SELECT (.+) FROM supply_registries (.+) FOR UPDATE`).
			WillReturnRows(supplyRows("300000000", "1000", "0", "0"))
		mock.
			ExpectQuery(`INSERT INTO "transactions"`).
			WillReturnRows(idRows(1))
		mock.
			ExpectQuery(`INSERT INTO "staking_positions"`).
			WillReturnRows(idRows(10))
		mock.
			ExpectExec(`UPDATE "accounts"`).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.
			ExpectExec(`UPDATE "supply_registries"`).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		position, err := o.Stake(1, decimal.New(200, 0), model.StakingTierBasic)
		So(err, ShouldBeNil)
		So(position.ID, ShouldEqual, 10)
		So(position.Status, ShouldEqual, model.StakingStatusActive)
		So(position.EndDate, ShouldResemble, base.AddDate(0, 0, 30))

		balances, _ := o.funds.GetAccountBalances(1)
		So(balances.GetAvailable().Cmp(decimal.New(800, 0)), ShouldEqual, 0)
		So(balances.GetStaked().Cmp(decimal.New(200, 0)), ShouldEqual, 0)

		Convey("crossing the end date flips the position to matured", func() {
			o.SetClock(func() time.Time { return position.EndDate.Add(time.Hour) })

			mock.
				ExpectQuery(`SELECT (.+) FROM "staking_positions"`).
				WillReturnRows(positionRows(position, model.StakingStatusActive))
			mock.ExpectBegin()
			mock.
				ExpectExec(`UPDATE "staking_positions"`).
				WillReturnResult(sqlmock.NewResult(0, 1))
			mock.ExpectCommit()

			status, err := o.CheckMaturity(position.ID)
			So(err, ShouldBeNil)
			So(status, ShouldEqual, model.StakingStatusMatured)

			Convey("withdrawing pays back the principal plus the reward", func() {
				mock.
					ExpectQuery(`SELECT (.+) FROM "staking_positions"`).
					WillReturnRows(positionRows(position, model.StakingStatusMatured))
				mock.ExpectBegin()
				mock.
					ExpectQuery(`SELECT (.+) FROM "staking_positions"`).
					WillReturnRows(positionRows(position, model.StakingStatusMatured))
				mock.
					ExpectQuery(`SELECT (.+) FROM "accounts"`).
					WillReturnRows(accountRows(1, "800", "200"))
				mock.
					ExpectQuery(`SELECT (.+) FROM supply_registries (.+) FOR UPDATE`).
					WillReturnRows(supplyRows("300000000", "800", "200", "0"))
				mock.
					ExpectQuery(`INSERT INTO "transactions"`).
					WillReturnRows(idRows(2))
				mock.
					ExpectQuery(`INSERT INTO "transactions"`).
					WillReturnRows(idRows(3))
				mock.
					ExpectExec(`UPDATE "staking_positions"`).
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.
					ExpectExec(`UPDATE "accounts"`).
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.
					ExpectExec(`UPDATE "supply_registries"`).
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectCommit()

				withdrawn, err := o.WithdrawStake(position.ID, false)
				So(err, ShouldBeNil)
				So(withdrawn.Status, ShouldEqual, model.StakingStatusWithdrawn)
				So(withdrawn.ActualReward.V.Cmp(position.ExpectedReward.V), ShouldEqual, 0)

				balances, _ := o.funds.GetAccountBalances(1)
				expected := conv.NewDecimalWithPrecision().Add(decimal.New(1000, 0), position.ExpectedReward.V)
				So(balances.GetAvailable().Cmp(expected), ShouldEqual, 0)
				So(balances.GetStaked().Sign(), ShouldEqual, 0)
				So(mock.ExpectationsWereMet(), ShouldBeNil)
			})
		})
	})
}
