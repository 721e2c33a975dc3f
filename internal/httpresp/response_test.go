package httpresp_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agriconnect/marketplace-api/internal/httpresp"
)

func TestListEnvelope(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name string
		data []string
		want string
	}{
		{"items", []string{"a", "b"}, `{"data":["a","b"],"total":2}`},
		{"empty", []string{}, `{"data":[],"total":0}`},
		{"nil slice", nil, `{"data":[],"total":0}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := gin.New()
			r.GET("/", func(c *gin.Context) { httpresp.List(c, tt.data) })

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			r.ServeHTTP(w, req)

			require.Equal(t, http.StatusOK, w.Code)
			assert.JSONEq(t, tt.want, w.Body.String())
		})
	}
}
