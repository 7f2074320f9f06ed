package service

import (
	"errors"
	"strconv"
	"time"

	"gitlab.com/smartstart-platform/buz_ledger_api/model"
	"gitlab.com/smartstart-platform/buz_ledger_api/queries"
	"gitlab.com/smartstart-platform/buz_ledger_api/utils"
)

// GetUserTransactions lists the transactions the user took part in
func (service *Service) GetUserTransactions(userID uint64, filter queries.TransactionFilter, limit, page int) (*model.TransactionList, error) {
	return service.repo.GetTransactionsByUser(userID, filter, limit, page)
}

// ExportUserTransactions generates a csv or pdf report of the user's history
func (service *Service) ExportUserTransactions(userID uint64, format string, filter queries.TransactionFilter) (*model.GeneratedFile, error) {
	list, err := service.repo.GetTransactionsByUser(userID, filter, 0, 0)
	if err != nil {
		return nil, err
	}

	data := [][]string{{"ID", "Type", "From", "To", "Amount", "Reason", "Status", "Date"}}
	widths := []int{20, 30, 30, 30, 60, 60, 30, 60}

	for _, txn := range list.Transactions {
		from, to := "-", "-"
		if txn.FromUserID != nil {
			from = strconv.FormatUint(*txn.FromUserID, 10)
		}
		if txn.ToUserID != nil {
			to = strconv.FormatUint(*txn.ToUserID, 10)
		}
		data = append(data, []string{
			strconv.FormatUint(txn.ID, 10),
			txn.TxType.String(),
			from,
			to,
			utils.FmtDecimal(txn.Amount),
			txn.Reason,
			string(txn.Status),
			txn.CreatedAt.Format(time.RFC3339),
		})
	}

	var resp []byte
	var generatedFile model.GeneratedFile

	switch format {
	case "csv":
		resp, err = CSVExport(data)
		generatedFile.Type = "csv"
		generatedFile.DataType = "text/csv"
	case "pdf":
		resp, err = PDFExport(data, widths, "Transactions Report")
		generatedFile.Type = "pdf"
		generatedFile.DataType = "application/pdf"
	default:
		err = errors.New("format not supported")
	}
	if err != nil {
		return nil, err
	}

	generatedFile.Data = resp
	return &generatedFile, nil
}
