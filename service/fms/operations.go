package fms

import (
	"errors"
)

var ErrInsufficientBalance = errors.New("INSUFFICIENT_BALANCE")
var ErrInsufficientStake = errors.New("INSUFFICIENT_STAKE")
var ErrInvalidAmount = errors.New("INVALID_AMOUNT")
var ErrUnknownAccount = errors.New("UNKNOWN_ACCOUNT")

type WrappedCallable func(balance BalanceView) error

// Wrap runs the callback while holding the account lock. The callback
// mutates the balances through the view pointers, usually after it has
// persisted the matching rows.
func (fe *FundsEngine) Wrap(userID uint64, callback WrappedCallable) error {
	fe.accountsLock.RLock()
	account, ok := fe.accounts[userID]
	fe.accountsLock.RUnlock()
	if !ok {
		return ErrUnknownAccount
	}

	account.balancesLock.Lock()
	defer account.balancesLock.Unlock()

	return callback(account.view())
}

type WrappedPairCallable func(first, second BalanceView) error

// WrapPair locks two accounts in user id order before running the
// callback. The fixed order keeps concurrent transfers between the same
// pair from deadlocking.
func (fe *FundsEngine) WrapPair(firstID, secondID uint64, callback WrappedPairCallable) error {
	if firstID == secondID {
		return fe.Wrap(firstID, func(balance BalanceView) error {
			return callback(balance, balance)
		})
	}

	fe.accountsLock.RLock()
	first, okFirst := fe.accounts[firstID]
	second, okSecond := fe.accounts[secondID]
	fe.accountsLock.RUnlock()
	if !okFirst || !okSecond {
		return ErrUnknownAccount
	}

	lower, higher := first, second
	if secondID < firstID {
		lower, higher = second, first
	}
	lower.balancesLock.Lock()
	defer lower.balancesLock.Unlock()
	higher.balancesLock.Lock()
	defer higher.balancesLock.Unlock()

	return callback(first.view(), second.view())
}
