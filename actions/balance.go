package actions

import (
	"github.com/gin-gonic/gin"
)

// GetBalance godoc
// swagger:route GET /balance balance get_balance
// Get balance
//
// Get the current account balance for the authenticated user
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
//	  200: Account
//	  404: RequestErrorResp
func (actions *Actions) GetBalance(c *gin.Context) {
	userID, _ := getUserID(c)

	account, err := actions.service.GetBalance(userID)
	if err != nil {
		abortWithError(c, NotFound, "Unable to load the account balance")
		return
	}

	c.JSON(OK, account)
}
