package actions

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"gitlab.com/smartstart-platform/buz_ledger_api/conv"
)

// Mint godoc
// swagger:route POST /admin/mint admin mint
// Mint
//
// Create new tokens from the reserve bucket and credit them to a user
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
//	  AdminToken:
//
//	Responses:
//	  200: Transaction
//	  400: RequestErrorResp
//	  422: RequestErrorResp
func (actions *Actions) Mint(c *gin.Context) {
	role, _ := getUserRole(c)

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

	transaction, err := actions.service.Mint(role, toUserID, amount, c.PostForm("reason"), c.PostForm("description"))
	if err != nil {
		abortWithError(c, BadRequest, err.Error())
		return
	}

	c.JSON(OK, transaction)
}

// Burn godoc
// swagger:route POST /admin/burn admin burn
// Burn
//
// Destroy tokens from a user balance, moving them to the burned supply
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
//	  AdminToken:
//
//	Responses:
//	  200: Transaction
//	  400: RequestErrorResp
//	  422: RequestErrorResp
func (actions *Actions) Burn(c *gin.Context) {
	role, _ := getUserRole(c)

	fromUserID, err := strconv.ParseUint(c.PostForm("from_user_id"), 10, 64)
	if err != nil {
		abortWithError(c, BadRequest, "Invalid user provided")
		return
	}
	amount, err := conv.ParseAmount(c.PostForm("amount"))
	if err != nil {
		abortWithError(c, ValidationFailed, "Invalid amount provided")
		return
	}

	transaction, err := actions.service.Burn(role, fromUserID, amount, c.PostForm("reason"), c.PostForm("description"))
	if err != nil {
		abortWithError(c, BadRequest, err.Error())
		return
	}

	c.JSON(OK, transaction)
}

// RewardUser godoc
// swagger:route POST /admin/reward admin reward_user
// Reward user
//
// Credit a user from the user rewards bucket
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
//	  AdminToken:
//
//	Responses:
//	  200: Transaction
//	  400: RequestErrorResp
//	  422: RequestErrorResp
func (actions *Actions) RewardUser(c *gin.Context) {
	role, _ := getUserRole(c)

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

	transaction, err := actions.service.RewardUser(role, toUserID, amount, c.PostForm("reason"), c.PostForm("description"))
	if err != nil {
		abortWithError(c, BadRequest, err.Error())
		return
	}

	c.JSON(OK, transaction)
}

// ReconcileSupply godoc
// swagger:route POST /admin/supply/reconcile admin reconcile_supply
// Reconcile supply
//
// Recompute the supply aggregates from the confirmed transaction log and
// compare them against the registry
//
//	Produces:
//	- application/json
//
//	Schemes: http, https
//
//	Security:
//	  AdminToken:
//
//	Responses:
//	  200: SupplyFold
//	  500: RequestErrorResp
func (actions *Actions) ReconcileSupply(c *gin.Context) {
	role, _ := getUserRole(c)

	fold, err := actions.service.Reconcile(role)
	if err != nil {
		abortWithError(c, ServerError, err.Error())
		return
	}

	c.JSON(OK, fold)
}

// SetMarketData godoc
// swagger:route POST /admin/supply/market-data admin set_market_data
// Set market data
//
// Update the token price and recompute the market cap
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
//	  AdminToken:
//
//	Responses:
//	  200: SupplyRegistry
//	  400: RequestErrorResp
//	  422: RequestErrorResp
func (actions *Actions) SetMarketData(c *gin.Context) {
	role, _ := getUserRole(c)

	price, err := conv.ParseAmount(c.PostForm("price"))
	if err != nil {
		abortWithError(c, ValidationFailed, "Invalid price provided")
		return
	}

	supply, err := actions.service.SetMarketData(role, price)
	if err != nil {
		abortWithError(c, BadRequest, err.Error())
		return
	}

	c.JSON(OK, supply)
}

// DeactivateAccount godoc
// swagger:route POST /admin/accounts/{user_id}/deactivate admin deactivate_account
// Deactivate account
//
// Mark a user account as inactive. Accounts are never deleted.
//
//	Produces:
//	- application/json
//
//	Schemes: http, https
//
//	Security:
//	  AdminToken:
//
//	Responses:
//	  200: StringResp
//	  400: RequestErrorResp
func (actions *Actions) DeactivateAccount(c *gin.Context) {
	userID, err := strconv.ParseUint(c.Param("user_id"), 10, 64)
	if err != nil {
		abortWithError(c, BadRequest, "Invalid user id provided")
		return
	}

	if err := actions.service.DeactivateAccount(userID); err != nil {
		abortWithError(c, BadRequest, err.Error())
		return
	}

	c.JSON(OK, map[string]interface{}{"success": true})
}
