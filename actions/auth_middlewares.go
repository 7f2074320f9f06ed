package actions

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"io/ioutil"
	"strconv"
	"strings"

	"github.com/dgrijalva/jwt-go"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"gitlab.com/smartstart-platform/buz_ledger_api/model"
)

// Restrict only allows authenticated users to access the route
func (actions *Actions) Restrict(withUser bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer ")
		actions.restrictByToken(c, token, withUser)
	}
}

func (actions *Actions) restrictByToken(c *gin.Context, token string, withUser bool) {
	claims, err := ParseToken(token, actions.jwtTokenSecret)
	if err != nil {
		abortWithError(c, Unauthorized, "Invalid or expired token provided")
		return
	}

	sub, ok := claims["sub"].(string)
	if !ok {
		abortWithError(c, Unauthorized, "Invalid or expired token provided")
		return
	}
	userID, err := strconv.ParseUint(sub, 10, 64)
	if err != nil {
		abortWithError(c, Unauthorized, "Invalid or expired token provided")
		return
	}
	c.Set("auth_user_id", userID)

	role, _ := claims["role"].(string)
	if !model.RoleAlias(role).IsValid() {
		abortWithError(c, Unauthorized, "Invalid role provided")
		return
	}
	c.Set("auth_role_alias", role)

	if withUser {
		user, err := actions.service.GetUserByID(userID)
		if err != nil {
			abortWithError(c, Unauthorized, "Unable to load the user")
			return
		}
		c.Set("auth_user", user)
	}

	c.Next()
}

// RequireAdmin only allows users with the admin role to access the route.
// It has to run after Restrict.
func (actions *Actions) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		role, ok := getUserRole(c)
		if !ok || !model.RoleAlias(role).IsAdmin() {
			abortWithError(c, AccessDenied, "Admin role required")
			return
		}
		c.Next()
	}
}

// TrackAdminActivity records every mutating admin request
func (actions *Actions) TrackAdminActivity() gin.HandlerFunc {
	return func(c *gin.Context) {
		method := c.Request.Method
		if method == "GET" || method == "OPTIONS" {
			c.Next()
			return
		}

		userID, ok := getUserID(c)
		if !ok {
			abortWithError(c, Unauthorized, "Unable to identify the admin user")
			return
		}

		body, err := ioutil.ReadAll(c.Request.Body)
		if err != nil {
			abortWithError(c, ServerError, "Unable to read the request body")
			return
		}
		c.Request.Body = ioutil.NopCloser(bytes.NewBuffer(body))

		encodedBody := base64.URLEncoding.EncodeToString(body)
		ip := getIPFromRequest(c)

		if err := actions.service.AddAdminActivity(c.Request.URL.String(), encodedBody, ip, method, userID); err != nil {
			log.Error().Err(err).
				Str("section", "actions").
				Str("action", "TrackAdminActivity").
				Uint64("user_id", userID).
				Msg("Unable to save admin activity")
		}

		c.Next()
	}
}

// ParseToken validates a JWT token and returns its claims
func ParseToken(tokenString string, secret string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("Unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secret), nil
	})
	if token == nil {
		return jwt.MapClaims{}, fmt.Errorf("Invalid token")
	}
	if claims, ok := token.Claims.(jwt.MapClaims); ok && token.Valid {
		return claims, nil
	}
	return jwt.MapClaims{}, err
}
