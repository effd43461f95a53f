package tests

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Diogo96ferreira/smart-garden-sub000/internal/adapter/http/dto"
	"github.com/Diogo96ferreira/smart-garden-sub000/internal/adapter/http/handlers"
	"github.com/Diogo96ferreira/smart-garden-sub000/internal/adapter/http/middleware"
	"github.com/Diogo96ferreira/smart-garden-sub000/internal/app/service"
	"github.com/Diogo96ferreira/smart-garden-sub000/internal/core/cropcal"
	"github.com/Diogo96ferreira/smart-garden-sub000/pkg/translator"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

// The calendar handler is backed by the embedded zone data rather than a
// mock: resolution is pure and deterministic.
func calendarRouter(t *testing.T) *gin.Engine {
	t.Helper()

	store, err := cropcal.Load()
	require.NoError(t, err)
	handler := handlers.NewCalendarHandler(service.NewCalendarService(store))

	router := gin.New()
	group := router.Group("/api", middleware.LanguageMiddleware(), middleware.AuthMiddleware())
	group.GET("/calendar", handler.ZoneCalendar)
	return router
}

func TestCalendarHandler_ResolvesDistrict(t *testing.T) {
	router := calendarRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/calendar?distrito=Porto", nil)
	req.Header.Set("Accept-Language", translator.LanguagePt)
	req.Header.Set("X-User-ID", "user-1")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var got dto.CalendarResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.NotZero(t, got.Zone)
	require.NotEmpty(t, got.Crops)
}

func TestCalendarHandler_UnknownLocalityFallsBack(t *testing.T) {
	router := calendarRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/calendar?distrito=Atlantis", nil)
	req.Header.Set("X-User-ID", "user-1")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var got dto.CalendarResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, 1, got.Zone)
}
