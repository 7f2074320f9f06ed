package actions

import (
	"github.com/gin-gonic/gin"
)

// GetSystemStats godoc
// swagger:route GET /stats system get_system_stats
// Get system stats
//
// Get aggregate platform statistics
//
//	Produces:
//	- application/json
//
//	Schemes: http, https
//
//	Responses:
//	  200: SystemStats
//	  500: RequestErrorResp
func (actions *Actions) GetSystemStats(c *gin.Context) {
	stats, err := actions.service.GetSystemStats()
	if err != nil {
		abortWithError(c, ServerError, "Unable to load the system stats")
		return
	}

	c.JSON(OK, stats)
}

// GetSupplyInfo godoc
// swagger:route GET /supply system get_supply_info
// Get supply info
//
// Get the token supply registry with all allocation buckets
//
//	Produces:
//	- application/json
//
//	Schemes: http, https
//
//	Responses:
//	  200: SupplyRegistry
//	  500: RequestErrorResp
func (actions *Actions) GetSupplyInfo(c *gin.Context) {
	supply, err := actions.service.GetSupplyInfo()
	if err != nil {
		abortWithError(c, ServerError, "Unable to load the supply info")
		return
	}

	c.JSON(OK, supply)
}
