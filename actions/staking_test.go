package actions

import (
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/assert/v2"

	"gitlab.com/smartstart-platform/buz_ledger_api/config"
)

func newFormContext(target string, form url.Values) (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("POST", target, strings.NewReader(form.Encode()))
	c.Request.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	c.Set("auth_user_id", uint64(1))
	return c, w
}

func TestCreateStakingLimits(t *testing.T) {
	cfg := config.Config{}
	cfg.Staking.Limits = map[string]config.StakingLimit{
		"basic": {Max: 1000, Min: 10},
	}
	actions := &Actions{cfg: cfg}

	tests := []struct {
		name     string
		amount   string
		wantCode int
		wantBody string
	}{
		{
			name:     "Fail case. Amount above the tier maximum",
			amount:   "5000",
			wantCode: BadRequest,
			wantBody: `{"error":"maximum allowed staking amount is 1000.000000"}`,
		},
		{
			name:     "Fail case. Amount below the tier minimum",
			amount:   "5",
			wantCode: BadRequest,
			wantBody: `{"error":"minimum allowed staking amount is 10.000000"}`,
		},
		{
			name:     "Fail case. Unparsable amount",
			amount:   "abc",
			wantCode: ValidationFailed,
			wantBody: `{"error":"Invalid amount provided"}`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := url.Values{}
			form.Set("amount", tt.amount)
			form.Set("tier", "basic")

			c, w := newFormContext("/staking/create", form)
			actions.CreateStaking(c)

			assert.Equal(t, tt.wantCode, w.Code)
			assert.Equal(t, tt.wantBody, w.Body.String())
		})
	}
}
