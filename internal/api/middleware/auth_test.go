package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aliskhannn/estate-crm/internal/locale"
)

var secret = []byte("test-secret")

func sign(t *testing.T, method jwt.SigningMethod, key []byte, claims jwt.RegisteredClaims) string {
	t.Helper()

	s, err := jwt.NewWithClaims(method, claims).SignedString(key)
	require.NoError(t, err)

	return s
}

func newEngine() *gin.Engine {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.GET("/api/whoami", Auth(secret, locale.English), func(c *gin.Context) {
		c.String(http.StatusOK, UserID(c).String())
	})

	return r
}

func TestAuth(t *testing.T) {
	userID := uuid.New()
	valid := jwt.RegisteredClaims{
		Subject:   userID.String(),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}

	tests := []struct {
		name   string
		header string
		query  string
		want   int
	}{
		{name: "missing token", want: http.StatusUnauthorized},
		{name: "bearer header", header: "Bearer " + sign(t, jwt.SigningMethodHS256, secret, valid), want: http.StatusOK},
		{name: "query token", query: sign(t, jwt.SigningMethodHS256, secret, valid), want: http.StatusOK},
		{name: "wrong secret", header: "Bearer " + sign(t, jwt.SigningMethodHS256, []byte("other"), valid), want: http.StatusUnauthorized},
		{name: "other algorithm", header: "Bearer " + sign(t, jwt.SigningMethodHS512, secret, valid), want: http.StatusUnauthorized},
		{
			name: "expired",
			header: "Bearer " + sign(t, jwt.SigningMethodHS256, secret, jwt.RegisteredClaims{
				Subject:   userID.String(),
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
			}),
			want: http.StatusUnauthorized,
		},
		{
			name:   "subject not a user id",
			header: "Bearer " + sign(t, jwt.SigningMethodHS256, secret, jwt.RegisteredClaims{Subject: "admin"}),
			want:   http.StatusUnauthorized,
		},
	}

	r := newEngine()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			target := "/api/whoami"
			if tt.query != "" {
				target += "?token=" + tt.query
			}

			req := httptest.NewRequest(http.MethodGet, target, nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}

			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.want, w.Code)

			if tt.want == http.StatusOK {
				assert.Equal(t, userID.String(), w.Body.String())
			} else {
				assert.Contains(t, w.Body.String(), `"code":"unauthorized"`)
			}
		})
	}
}

func TestLang(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/clients/export?lang=en", nil)
	c.Request.Header.Set("Accept-Language", "ar")

	assert.Equal(t, locale.English, Lang(c, locale.Arabic))
}
