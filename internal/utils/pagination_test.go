package utils

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/yukikurage/skillswap-api/internal/constants"
)

func TestGetPaginationParams(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name       string
		query      string
		wantPage   int
		wantLimit  int
		wantOffset int
	}{
		{"defaults", "", 1, constants.DefaultPageSize, 0},
		{"explicit", "page=3&limit=10", 3, 10, 20},
		{"negative page", "page=-2&limit=10", 1, 10, 0},
		{"limit too large", "page=2&limit=1000", 2, constants.DefaultPageSize, constants.DefaultPageSize},
		{"garbage", "page=abc&limit=xyz", 1, constants.DefaultPageSize, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest("GET", "/?"+tt.query, nil)

			params := GetPaginationParams(c)

			assert.Equal(t, tt.wantPage, params.Page)
			assert.Equal(t, tt.wantLimit, params.Limit)
			assert.Equal(t, tt.wantOffset, params.Offset)
		})
	}
}
