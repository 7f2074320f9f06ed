package fms

import (
	"context"
	"sync"
	"testing"

	"github.com/ericlagergren/decimal"
	. "github.com/smartystreets/goconvey/convey"

	"gitlab.com/smartstart-platform/buz_ledger_api/conv"
)

// debitUnderLock mirrors how the ledger operations use the view, a
// guard on the available balance followed by the mutation
func debitUnderLock(fm *FundsEngine, userID uint64, amount *decimal.Big) error {
	return fm.Wrap(userID, func(balance BalanceView) error {
		if amount.Cmp(balance.Available) == 1 {
			return ErrInsufficientBalance
		}
		balance.Available.Sub(balance.Available, amount)
		return nil
	})
}

func transferUnderLock(fm *FundsEngine, fromID, toID uint64, amount *decimal.Big) error {
	return fm.WrapPair(fromID, toID, func(from, to BalanceView) error {
		if amount.Cmp(from.Available) == 1 {
			return ErrInsufficientBalance
		}
		from.Available.Sub(from.Available, amount)
		to.Available.Add(to.Available, amount)
		return nil
	})
}

func TestFundsEngine_Wrap(t *testing.T) {
	r, mock := setupRepo()
	fm := GetTestFE(r, mock, context.TODO())

	Convey("mutations through the view stick to the engine balances", t, func() {
		err := fm.Wrap(1, func(balance BalanceView) error {
			balance.Available.Add(balance.Available, decimal.New(500, 0))
			balance.Staked.Add(balance.Staked, decimal.New(200, 0))
			return nil
		})
		So(err, ShouldBeNil)

		balances, _ := fm.GetAccountBalances(1)
		So(balances.GetAvailable().Cmp(decimal.New(1500, 0)), ShouldEqual, 0)
		So(balances.GetStaked().Cmp(decimal.New(200, 0)), ShouldEqual, 0)
	})

	Convey("a callback error leaves the guard rejection visible to the caller", t, func() {
		err := debitUnderLock(fm, 2, decimal.New(100000, 0))
		So(err, ShouldResemble, ErrInsufficientBalance)

		balances, _ := fm.GetAccountBalances(2)
		So(balances.GetAvailable().Cmp(decimal.New(1000, 0)), ShouldEqual, 0)
	})

	Convey("an unknown account never runs the callback", t, func() {
		called := false
		err := fm.Wrap(9, func(balance BalanceView) error {
			called = true
			return nil
		})
		So(err, ShouldResemble, ErrUnknownAccount)
		So(called, ShouldBeFalse)
	})
}

func TestFundsEngine_ConcurrentWrap(t *testing.T) {
	r, mock := setupRepo()
	fm := GetTestFE(r, mock, context.TODO())

	Convey("two debits racing for the full balance succeed exactly once", t, func() {
		var wg sync.WaitGroup
		results := make(chan error, 2)

		for i := 0; i < 2; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				results <- debitUnderLock(fm, 1, decimal.New(1000, 0))
			}()
		}
		wg.Wait()
		close(results)

		succeeded := 0
		failed := 0
		for err := range results {
			if err == nil {
				succeeded++
			} else {
				So(err, ShouldResemble, ErrInsufficientBalance)
				failed++
			}
		}
		So(succeeded, ShouldEqual, 1)
		So(failed, ShouldEqual, 1)

		balances, _ := fm.GetAccountBalances(1)
		So(balances.GetAvailable().Sign(), ShouldEqual, 0)
	})
}

func TestFundsEngine_WrapPair(t *testing.T) {
	r, mock := setupRepo()
	fm := GetTestFE(r, mock, context.TODO())

	Convey("the pair callback moves funds between two accounts", t, func() {
		err := transferUnderLock(fm, 1, 2, decimal.New(300, 0))
		So(err, ShouldBeNil)

		from, _ := fm.GetAccountBalances(1)
		to, _ := fm.GetAccountBalances(2)
		So(from.GetAvailable().Cmp(decimal.New(700, 0)), ShouldEqual, 0)
		So(to.GetAvailable().Cmp(decimal.New(1300, 0)), ShouldEqual, 0)
	})

	Convey("a rejected pair callback leaves both sides untouched", t, func() {
		err := transferUnderLock(fm, 1, 2, decimal.New(701, 0))
		So(err, ShouldResemble, ErrInsufficientBalance)

		from, _ := fm.GetAccountBalances(1)
		to, _ := fm.GetAccountBalances(2)
		So(from.GetAvailable().Cmp(decimal.New(700, 0)), ShouldEqual, 0)
		So(to.GetAvailable().Cmp(decimal.New(1300, 0)), ShouldEqual, 0)
	})

	Convey("a pair with an unknown side never runs the callback", t, func() {
		called := false
		err := fm.WrapPair(1, 9, func(first, second BalanceView) error {
			called = true
			return nil
		})
		So(err, ShouldResemble, ErrUnknownAccount)
		So(called, ShouldBeFalse)
	})

	Convey("wrapping an account with itself hands out a single view", t, func() {
		err := fm.WrapPair(3, 3, func(first, second BalanceView) error {
			first.Available.Sub(first.Available, decimal.New(100, 0))
			second.Available.Add(second.Available, decimal.New(100, 0))
			return nil
		})
		So(err, ShouldBeNil)

		balances, _ := fm.GetAccountBalances(3)
		So(balances.GetAvailable().Cmp(decimal.New(1000, 0)), ShouldEqual, 0)
	})

	Convey("opposite transfers between the same pair do not deadlock", t, func() {
		var wg sync.WaitGroup
		for i := 0; i < 50; i++ {
			wg.Add(2)
			go func() {
				defer wg.Done()
				_ = transferUnderLock(fm, 1, 2, decimal.New(10, 0))
			}()
			go func() {
				defer wg.Done()
				_ = transferUnderLock(fm, 2, 1, decimal.New(10, 0))
			}()
		}
		wg.Wait()

		from, _ := fm.GetAccountBalances(1)
		to, _ := fm.GetAccountBalances(2)
		total := conv.NewDecimalWithPrecision().Add(from.GetAvailable(), to.GetAvailable())
		So(total.Cmp(decimal.New(2000, 0)), ShouldEqual, 0)
	})
}
