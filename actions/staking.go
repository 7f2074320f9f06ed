package actions

import (
	"fmt"
	"strconv"

	"github.com/ericlagergren/decimal"
	"github.com/gin-gonic/gin"

	"gitlab.com/smartstart-platform/buz_ledger_api/conv"
	"gitlab.com/smartstart-platform/buz_ledger_api/model"
)

// CreateStaking godoc
// swagger:route POST /staking/create staking create_staking
// Create staking
//
// Lock an amount of tokens into a new staking position
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
//	  201: StakingPosition
//	  400: RequestErrorResp
//	  422: RequestErrorResp
func (actions *Actions) CreateStaking(c *gin.Context) {
	userID, _ := getUserID(c)

	amount, err := conv.ParseAmount(c.PostForm("amount"))
	if err != nil {
		abortWithError(c, ValidationFailed, "Invalid amount provided")
		return
	}

	data := model.CreateStakingRequest{
		Tier:   c.PostForm("tier"),
		Amount: amount,
	}

	if limit, ok := actions.cfg.Staking.Limits[data.Tier]; ok {
		limitMax := new(decimal.Big).SetFloat64(limit.Max)
		if amount.Cmp(limitMax) == 1 {
			abortWithError(c, BadRequest, fmt.Sprintf("maximum allowed staking amount is %f", limit.Max))
			return
		}

		limitMin := new(decimal.Big).SetFloat64(limit.Min)
		if amount.Cmp(limitMin) == -1 {
			abortWithError(c, BadRequest, fmt.Sprintf("minimum allowed staking amount is %f", limit.Min))
			return
		}
	}

	position, err := actions.service.CreateStaking(userID, &data)
	if err != nil {
		abortWithError(c, BadRequest, err.Error())
		return
	}

	c.JSON(Created, position)
}

// GetStakingPositions godoc
// swagger:route GET /staking/list staking get_staking_positions
// Get staking positions
//
// List the staking positions of the authenticated user
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
//	  200: StakingPositionList
//	  500: RequestErrorResp
func (actions *Actions) GetStakingPositions(c *gin.Context) {
	userID, _ := getUserID(c)
	limit, page := getPagination(c)
	status := model.StakingStatus(c.Query("status"))

	positions, err := actions.service.GetStakingPositions(userID, status, limit, page)
	if err != nil {
		abortWithError(c, ServerError, "Unable to load the staking positions")
		return
	}

	c.JSON(OK, positions)
}

// GetStakingTiers godoc
// swagger:route GET /staking/tiers staking get_staking_tiers
// Get staking tiers
//
// List the available staking tiers with their terms
//
//	Produces:
//	- application/json
//
//	Schemes: http, https
//
//	Responses:
//	  200: StakingTiers
func (actions *Actions) GetStakingTiers(c *gin.Context) {
	c.JSON(OK, actions.service.GetStakingTiers())
}

// WithdrawStaking godoc
// swagger:route POST /staking/withdraw/{position_id} staking withdraw_staking
// Withdraw staking
//
// Close a staking position and release the principal, paying the reward
// when the position matured
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
//	  200: StakingPosition
//	  400: RequestErrorResp
func (actions *Actions) WithdrawStaking(c *gin.Context) {
	userID, _ := getUserID(c)

	positionID, err := strconv.ParseUint(c.Param("position_id"), 10, 64)
	if err != nil {
		abortWithError(c, BadRequest, "Invalid position id provided")
		return
	}

	position, err := actions.service.WithdrawStaking(userID, positionID)
	if err != nil {
		abortWithError(c, BadRequest, err.Error())
		return
	}

	c.JSON(OK, position)
}

// CheckStakingMaturity godoc
// swagger:route GET /staking/maturity/{position_id} staking check_staking_maturity
// Check staking maturity
//
// Return the current status of a staking position, flipping it to matured
// when its end date passed
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
//	  200: StringResp
//	  400: RequestErrorResp
func (actions *Actions) CheckStakingMaturity(c *gin.Context) {
	userID, _ := getUserID(c)

	positionID, err := strconv.ParseUint(c.Param("position_id"), 10, 64)
	if err != nil {
		abortWithError(c, BadRequest, "Invalid position id provided")
		return
	}

	status, err := actions.service.CheckStakingMaturity(userID, positionID)
	if err != nil {
		abortWithError(c, BadRequest, err.Error())
		return
	}

	c.JSON(OK, map[string]interface{}{"status": status})
}
