package actions

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/assert/v2"
)

func newTestContext(target string) *gin.Context {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", target, nil)
	return c
}

func TestGetQueryAsInt(t *testing.T) {
	tests := []struct {
		name string
		url  string
		want int
	}{
		{
			name: "Success case. Valid number",
			url:  "/transactions?page=3",
			want: 3,
		},
		{
			name: "Fail case. Missing parameter falls back to the default",
			url:  "/transactions",
			want: 1,
		},
		{
			name: "Fail case. Letters fall back to the default",
			url:  "/transactions?page=abc",
			want: 1,
		},
		{
			name: "Fail case. Decimal number falls back to the default",
			url:  "/transactions?page=2.5",
			want: 1,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestContext(tt.url)
			got := getQueryAsInt(c, "page", 1)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGetIPFromRequest(t *testing.T) {
	tests := []struct {
		name   string
		header string
		want   string
	}{
		{
			name:   "Success case. Single forwarded address",
			header: "203.0.113.7",
			want:   "203.0.113.7",
		},
		{
			name:   "Success case. First address of a proxy chain",
			header: "203.0.113.7, 10.0.0.1",
			want:   "203.0.113.7",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestContext("/transfer")
			c.Request.Header.Set("X-Forwarded-For", tt.header)
			got := getIPFromRequest(c)
			assert.Equal(t, tt.want, got)
		})
	}
}
