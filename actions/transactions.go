package actions

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"gitlab.com/smartstart-platform/buz_ledger_api/conv"
	"gitlab.com/smartstart-platform/buz_ledger_api/model"
	"gitlab.com/smartstart-platform/buz_ledger_api/queries"
)

func getTransactionFilter(c *gin.Context) queries.TransactionFilter {
	filter := queries.TransactionFilter{
		TxType: model.TransactionType(c.Query("type")),
		Status: model.TransactionStatus(c.Query("status")),
	}
	if from, err := strconv.ParseInt(c.Query("fromDate"), 10, 64); err == nil && from > 0 {
		filter.FromDate = time.Unix(from, 0)
	}
	if to, err := strconv.ParseInt(c.Query("toDate"), 10, 64); err == nil && to > 0 {
		filter.ToDate = time.Unix(to, 0)
	}
	return filter
}

// GetUserTransactions godoc
// swagger:route GET /transactions transaction get_user_transactions
// Get transactions
//
// Get the transaction history for the authenticated user
//
//	Produces:
//	- application/json
//
//	Schemes: http, https
//
//	Security:
//	  UserToken:
//
//	Responses:
//	  200: TransactionList
//	  500: RequestErrorResp
func (actions *Actions) GetUserTransactions(c *gin.Context) {
	userID, _ := getUserID(c)
	limit, page := getPagination(c)
	filter := getTransactionFilter(c)

	transactions, err := actions.service.GetUserTransactions(userID, filter, limit, page)
	if err != nil {
		abortWithError(c, ServerError, "Unable to load the transactions")
		return
	}

	c.JSON(OK, transactions)
}

// ExportUserTransactions godoc
// swagger:route GET /transactions/export transaction export_user_transactions
// Export transactions
//
// Export the transaction history for the authenticated user as csv or pdf
//
//	Produces:
//	- application/json
//
//	Schemes: http, https
//
//	Security:
//	  UserToken:
//
//	Responses:
//	  200: GeneratedFile
//	  404: RequestErrorResp
func (actions *Actions) ExportUserTransactions(c *gin.Context) {
	userID, _ := getUserID(c)
	format := c.Query("format")
	filter := getTransactionFilter(c)

	data, err := actions.service.ExportUserTransactions(userID, format, filter)
	if err != nil {
		abortWithError(c, NotFound, "Could not export")
		return
	}

	c.JSON(OK, data)
}

// Transfer godoc
// swagger:route POST /transfer transaction transfer
// Transfer
//
// Transfer tokens from the authenticated user to another user
//
//	Consumes:
//	- application/x-www-form-urlencoded
//
//	Produces:
//	- application/json
//
//	Schemes: http, https
//
//	Security:
//	  UserToken:
//
//	Responses:
//	  200: Transaction
//	  400: RequestErrorResp
//	  422: RequestErrorResp
func (actions *Actions) Transfer(c *gin.Context) {
	userID, _ := getUserID(c)

	toUserID, err := strconv.ParseUint(c.PostForm("to_user_id"), 10, 64)
	if err != nil {
		abortWithError(c, BadRequest, "Invalid recipient provided")
		return
	}
	amount, err := conv.ParseAmount(c.PostForm("amount"))
	if err != nil {
		abortWithError(c, ValidationFailed, "Invalid amount provided")
		return
	}

	data := model.TransferRequest{
		ToUserID:    toUserID,
		Amount:      amount,
		Reason:      c.PostForm("reason"),
		Description: c.PostForm("description"),
	}

	transaction, err := actions.service.Transfer(userID, &data)
	if err != nil {
		abortWithError(c, BadRequest, err.Error())
		return
	}

	c.JSON(OK, transaction)
}
