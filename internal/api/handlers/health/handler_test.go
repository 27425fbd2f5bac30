package health

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func up(context.Context) error   { return nil }
func down(context.Context) error { return errors.New("connection refused") }

func TestHandler_Healthz(t *testing.T) {
	tests := []struct {
		name   string
		checks map[string]Check
		want   int
	}{
		{"all up", map[string]Check{"postgres": up, "redis": up}, http.StatusOK},
		{"redis down", map[string]Check{"postgres": up, "redis": down}, http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, "/healthz", nil)

			NewHandler(tt.checks, time.Second).Healthz(c)

			assert.Equal(t, tt.want, w.Code)
			assert.Contains(t, w.Body.String(), `"postgres":"up"`)
		})
	}
}
