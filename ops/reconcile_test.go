package ops

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/ericlagergren/decimal"
	. "github.com/smartystreets/goconvey/convey"

	"gitlab.com/smartstart-platform/buz_ledger_api/model"
)

func confirmedTxn(txType model.TransactionType, amount int64) model.Transaction {
	var from, to uint64 = 1, 2
	return *model.NewTransaction(txType, model.TransactionStatus_Confirmed, &from, &to, decimal.New(amount, 0), "test", "")
}

func TestComputeSupplyFold(t *testing.T) {
	Convey("the fold recomputes every aggregate from the confirmed log", t, func() {
		transactions := []model.Transaction{
			confirmedTxn(model.TransactionType_Mint, 1000),
			confirmedTxn(model.TransactionType_Transfer, 300),
			confirmedTxn(model.TransactionType_Stake, 200),
			confirmedTxn(model.TransactionType_Burn, 50),
			confirmedTxn(model.TransactionType_Unstake, 100),
			confirmedTxn(model.TransactionType_Reward, 5),
		}

		fold := ComputeSupplyFold(transactions)

		So(fold.Minted.Cmp(decimal.New(1000, 0)), ShouldEqual, 0)
		So(fold.Burned.Cmp(decimal.New(50, 0)), ShouldEqual, 0)
		So(fold.Staked.Cmp(decimal.New(100, 0)), ShouldEqual, 0)
		So(fold.Rewarded.Cmp(decimal.New(5, 0)), ShouldEqual, 0)
		// 1000 + 5 - 50 - 100
		So(fold.Circulating.Cmp(decimal.New(855, 0)), ShouldEqual, 0)
	})

	Convey("pending and failed transactions never affect the fold", t, func() {
		pending := confirmedTxn(model.TransactionType_Mint, 500)
		pending.Status = model.TransactionStatus_Pending
		failed := confirmedTxn(model.TransactionType_Burn, 500)
		failed.Status = model.TransactionStatus_Failed

		fold := ComputeSupplyFold([]model.Transaction{
			confirmedTxn(model.TransactionType_Mint, 1000),
			pending,
			failed,
		})

		So(fold.Minted.Cmp(decimal.New(1000, 0)), ShouldEqual, 0)
		So(fold.Burned.Sign(), ShouldEqual, 0)
		So(fold.Circulating.Cmp(decimal.New(1000, 0)), ShouldEqual, 0)
	})

	Convey("transfers are supply neutral", t, func() {
		fold := ComputeSupplyFold([]model.Transaction{
			confirmedTxn(model.TransactionType_Mint, 1000),
			confirmedTxn(model.TransactionType_Transfer, 999),
		})

		So(fold.Circulating.Cmp(decimal.New(1000, 0)), ShouldEqual, 0)
	})

	Convey("folding the same log twice yields identical numbers", t, func() {
		transactions := []model.Transaction{
			confirmedTxn(model.TransactionType_Mint, 777),
			confirmedTxn(model.TransactionType_Stake, 111),
			confirmedTxn(model.TransactionType_Burn, 9),
		}

		first := ComputeSupplyFold(transactions)
		second := ComputeSupplyFold(transactions)

		So(first.Circulating.Cmp(second.Circulating), ShouldEqual, 0)
		So(first.Staked.Cmp(second.Staked), ShouldEqual, 0)
		So(first.Burned.Cmp(second.Burned), ShouldEqual, 0)
	})

	Convey("an empty log folds to zero everywhere", t, func() {
		fold := ComputeSupplyFold(nil)

		So(fold.Minted.Sign(), ShouldEqual, 0)
		So(fold.Circulating.Sign(), ShouldEqual, 0)
	})
}

func TestReconcileConservation(t *testing.T) {
	Convey("a consistent registry reconciles cleanly", t, func() {
		o, mock := setupOps()

		mock.
			ExpectQuery(`SELECT (.+) FROM "transactions"`).
			WillReturnRows(sqlmock.NewRows([]string{"id"}))
		mock.
			ExpectQuery(`SELECT (.+) FROM "supply_registries"`).
			WillReturnRows(supplyRows("300000000", "0", "0", "0"))

		fold, err := o.Reconcile()
		So(err, ShouldBeNil)
		So(fold.Circulating.Sign(), ShouldEqual, 0)
		So(o.IsHalted(), ShouldBeFalse)
		So(mock.ExpectationsWereMet(), ShouldBeNil)
	})

	Convey("bucket drift the aggregates cannot explain trips the halt", t, func() {
		o, mock := setupOps()

		// the aggregates match an empty log but ten tokens left the
		// reserve bucket without a transaction
		mock.
			ExpectQuery(`SELECT (.+) FROM "transactions"`).
			WillReturnRows(sqlmock.NewRows([]string{"id"}))
		mock.
			ExpectQuery(`SELECT (.+) FROM "supply_registries"`).
			WillReturnRows(supplyRows("299999990", "0", "0", "0"))

		fold, err := o.Reconcile()
		So(err, ShouldResemble, ErrConservationViolation)
		So(fold, ShouldNotBeNil)
		So(o.IsHalted(), ShouldBeTrue)
		So(mock.ExpectationsWereMet(), ShouldBeNil)
	})

	Convey("aggregate divergence from the log trips the halt", t, func() {
		o, mock := setupOps()

		mock.
			ExpectQuery(`SELECT (.+) FROM "transactions"`).
			WillReturnRows(sqlmock.NewRows([]string{"id"}))
		mock.
			ExpectQuery(`SELECT (.+) FROM "supply_registries"`).
			WillReturnRows(supplyRows("300000000", "10", "0", "0"))

		_, err := o.Reconcile()
		So(err, ShouldResemble, ErrConservationViolation)
		So(o.IsHalted(), ShouldBeTrue)
	})
}

func TestHaltLatch(t *testing.T) {
	Convey("the halt latch starts open and stays closed once tripped", t, func() {
		o := New(nil, nil)

		So(o.IsHalted(), ShouldBeFalse)
		o.Halt()
		So(o.IsHalted(), ShouldBeTrue)
		o.Halt()
		So(o.IsHalted(), ShouldBeTrue)
	})
}
