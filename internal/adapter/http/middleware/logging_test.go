package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestGinZapMiddleware_LogsAuthenticatedUser(t *testing.T) {
	gin.SetMode(gin.TestMode)
	core, logs := observer.New(zap.InfoLevel)

	router := gin.New()
	router.Use(GinZapMiddleware(zap.New(core)))
	router.GET("/api/plants", AuthMiddleware(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/plants", nil)
	req.Header.Set("X-User-ID", "user-1")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, 1, logs.Len())

	entry := logs.All()[0]
	require.Equal(t, "http request", entry.Message)
	fields := entry.ContextMap()
	require.Equal(t, "user-1", fields["user_id"])
	require.Equal(t, int64(http.StatusOK), fields["status"])
}

func TestGinZapMiddleware_OmitsUserWhenUnauthenticated(t *testing.T) {
	gin.SetMode(gin.TestMode)
	core, logs := observer.New(zap.InfoLevel)

	router := gin.New()
	router.Use(GinZapMiddleware(zap.New(core)))
	router.GET("/api/health", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, 1, logs.Len())
	_, present := logs.All()[0].ContextMap()["user_id"]
	require.False(t, present)
}
