package tests

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Diogo96ferreira/smart-garden-sub000/internal/adapter/http/dto"
	"github.com/Diogo96ferreira/smart-garden-sub000/internal/adapter/http/handlers"
	"github.com/Diogo96ferreira/smart-garden-sub000/internal/adapter/http/middleware"
	"github.com/Diogo96ferreira/smart-garden-sub000/internal/core/domain"
	"github.com/Diogo96ferreira/smart-garden-sub000/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func reportRouter(report *reportServiceMock) *gin.Engine {
	handler := handlers.NewReportHandler(report)

	router := gin.New()
	group := router.Group("/api", middleware.LanguageMiddleware(), middleware.AuthMiddleware())
	group.GET("/report", handler.GetReport)
	return router
}

func reportRowsFixture() []domain.ReportRow {
	return []domain.ReportRow{
		{
			Date:        time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
			Title:       "Regar: Tomate",
			Description: "Regar a cada 3 dia(s). Última rega: nunca.",
		},
	}
}

func TestReportHandler_JSON(t *testing.T) {
	report := new(reportServiceMock)
	report.On("Rows", mock.Anything, ports.ReportQuery{
		UserID:    "user-1",
		Locale:    domain.LocalePT,
		RangeDays: 7,
		Source:    domain.ReportSourceMixed,
	}).Return(reportRowsFixture(), nil).Once()

	router := reportRouter(report)

	req := httptest.NewRequest(http.MethodGet, "/api/report?rangeDays=7&format=json", nil)
	req.Header.Set("X-User-ID", "user-1")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var got dto.ReportResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, 7, got.RangeDays)
	require.Len(t, got.Rows, 1)
	require.Equal(t, "2026-09-01", got.Rows[0].Date)
	report.AssertExpectations(t)
}

func TestReportHandler_CSVAttachment(t *testing.T) {
	report := new(reportServiceMock)
	report.On("Rows", mock.Anything, mock.Anything).Return(reportRowsFixture(), nil).Once()

	router := reportRouter(report)

	req := httptest.NewRequest(http.MethodGet, "/api/report?format=csv&source=db", nil)
	req.Header.Set("X-User-ID", "user-1")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Header().Get("Content-Type"), "text/csv")
	require.Contains(t, rec.Header().Get("Content-Disposition"), "attachment; filename=plano-pt-")

	records, err := csv.NewReader(bytes.NewReader(rec.Body.Bytes())).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)
	require.Equal(t, "Regar: Tomate", records[1][1])
}

func TestReportHandler_PDFDefaultFormat(t *testing.T) {
	report := new(reportServiceMock)
	report.On("Rows", mock.Anything, mock.Anything).Return(reportRowsFixture(), nil).Once()

	router := reportRouter(report)

	req := httptest.NewRequest(http.MethodGet, "/api/report", nil)
	req.Header.Set("X-User-ID", "user-1")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "application/pdf", rec.Header().Get("Content-Type"))
	require.True(t, bytes.HasPrefix(rec.Body.Bytes(), []byte("%PDF")))
}

func TestReportHandler_UnknownFormatRejected(t *testing.T) {
	router := reportRouter(new(reportServiceMock))

	req := httptest.NewRequest(http.MethodGet, "/api/report?format=docx", nil)
	req.Header.Set("X-User-ID", "user-1")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestReportHandler_RangeClamped(t *testing.T) {
	report := new(reportServiceMock)
	report.On("Rows", mock.Anything, mock.MatchedBy(func(q ports.ReportQuery) bool {
		return q.RangeDays == domain.MaxReportRangeDays
	})).Return(nil, nil).Once()

	router := reportRouter(report)

	req := httptest.NewRequest(http.MethodGet, "/api/report?rangeDays=999&format=json", nil)
	req.Header.Set("X-User-ID", "user-1")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	report.AssertExpectations(t)
}
