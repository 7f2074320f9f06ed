package queries

import (
	"time"

	"gitlab.com/smartstart-platform/buz_ledger_api/model"
)

// TransactionFilter narrows a transaction history query.
// Zero valued fields are ignored.
type TransactionFilter struct {
	TxType   model.TransactionType
	Status   model.TransactionStatus
	FromDate time.Time
	ToDate   time.Time
}

// GetTransactionsByUser lists the transactions a user took part in,
// newest first, with optional filters and pagination
func (repo *Repo) GetTransactionsByUser(userID uint64, filter TransactionFilter, limit, page int) (*model.TransactionList, error) {
	transactions := make([]model.Transaction, 0)
	var rowCount int64

	q := repo.ConnReader.Table("transactions").
		Where("from_user_id = ? OR to_user_id = ?", userID, userID)
	if filter.TxType != "" {
		q = q.Where("tx_type = ?", filter.TxType)
	}
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}
	if !filter.FromDate.IsZero() {
		q = q.Where("created_at >= ?", filter.FromDate)
	}
	if !filter.ToDate.IsZero() {
		q = q.Where("created_at <= ?", filter.ToDate)
	}

	dbc := q.Count(&rowCount)
	if dbc.Error != nil {
		return nil, dbc.Error
	}

	q = q.Order("id DESC")
	if limit > 0 {
		q = q.Limit(limit).Offset((page - 1) * limit)
	}
	db := q.Find(&transactions)
	if db.Error != nil {
		return nil, db.Error
	}

	list := model.TransactionList{
		Transactions: transactions,
		Meta: model.PagingMeta{
			Page:  page,
			Count: rowCount,
			Limit: limit,
		},
	}
	return &list, nil
}

// GetConfirmedTransactions streams the full confirmed log in insertion order,
// used by the supply reconciliation fold
func (repo *Repo) GetConfirmedTransactions() ([]model.Transaction, error) {
	transactions := make([]model.Transaction, 0)
	db := repo.ConnReaderAdmin.Table("transactions").
		Where("status = ?", model.TransactionStatus_Confirmed).
		Order("id ASC").
		Find(&transactions)
	if db.Error != nil {
		return nil, db.Error
	}
	return transactions, nil
}

// GetTransactionsCount returns the total number of transactions
func (repo *Repo) GetTransactionsCount() (int64, error) {
	var count int64
	db := repo.ConnReader.Table("transactions").Count(&count)
	return count, db.Error
}
