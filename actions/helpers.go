package actions

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"gitlab.com/smartstart-platform/buz_ledger_api/httputils"
	"gitlab.com/smartstart-platform/buz_ledger_api/logger"
)

// Ping godoc
// swagger:route GET /ping system ping
// Ping the server
//
// Check that the server is up and running
//
//	Produces:
//	- application/json
//
//	Schemes: http, https
//
//	Responses:
//	  200: StringResp
func (actions *Actions) Ping(c *gin.Context) {
	c.String(OK, "pong")
}

func abortWithError(c *gin.Context, code int, message string) {
	log := getlog(c)
	log.Warn().Int("code", code).Str("error", message).Msg("Request error")
	c.AbortWithStatusJSON(code, httputils.RequestError{Error: message})
}

func getlog(c *gin.Context) zerolog.Logger {
	return logger.GetLogger(c)
}

func getUserID(c *gin.Context) (uint64, bool) {
	userID, exist := c.Get("auth_user_id")
	if !exist {
		return 0, false
	}
	id, ok := userID.(uint64)
	return id, ok
}

func getUserRole(c *gin.Context) (string, bool) {
	role, exist := c.Get("auth_role_alias")
	if !exist {
		return "", false
	}
	alias, ok := role.(string)
	return alias, ok
}

func getPagination(c *gin.Context) (int, int) {
	page := getQueryAsInt(c, "page", 1)
	limit := getQueryAsInt(c, "limit", 10)
	return limit, page
}

func getQueryAsInt(c *gin.Context, name string, def int) int {
	val := c.Query(name)
	if val == "" {
		return def
	}
	param, err := strconv.Atoi(val)
	if err != nil {
		return def
	}
	return param
}

func getIPFromRequest(c *gin.Context) string {
	ip := c.GetHeader("X-Forwarded-For")
	if ip == "" {
		return c.ClientIP()
	}
	return strings.TrimSuffix(strings.SplitAfter(ip, ",")[0], ",")
}
