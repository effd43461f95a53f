package handlers

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Diogo96ferreira/smart-garden-sub000/internal/adapter/export"
	"github.com/Diogo96ferreira/smart-garden-sub000/internal/adapter/http/dto"
	"github.com/Diogo96ferreira/smart-garden-sub000/internal/adapter/http/mapper"
	"github.com/Diogo96ferreira/smart-garden-sub000/internal/adapter/http/middleware"
	"github.com/Diogo96ferreira/smart-garden-sub000/internal/core/domain"
	"github.com/Diogo96ferreira/smart-garden-sub000/internal/core/ports"
	"github.com/Diogo96ferreira/smart-garden-sub000/pkg/apierrors"
)

type ReportHandler struct {
	reportService ports.ReportService
}

func NewReportHandler(reportService ports.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

func (h *ReportHandler) GetReport(c *gin.Context) {
	lang := middleware.GetLang(c)

	rangeDays := domain.DefaultReportRangeDays
	if raw := c.Query("rangeDays"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(
				http.StatusBadRequest,
				apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidReportQuery, lang),
			)
			return
		}
		rangeDays = parsed
	}
	rangeDays = domain.ClampReportRange(rangeDays)

	locale := middleware.GetLocale(c)
	if raw := c.Query("locale"); raw != "" {
		locale = domain.ParseLocale(raw)
	}

	format := domain.ReportFormatPDF
	switch domain.ReportFormat(c.DefaultQuery("format", "pdf")) {
	case domain.ReportFormatJSON:
		format = domain.ReportFormatJSON
	case domain.ReportFormatCSV:
		format = domain.ReportFormatCSV
	case domain.ReportFormatXLSX:
		format = domain.ReportFormatXLSX
	case domain.ReportFormatPDF:
	default:
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidReportQuery, lang),
		)
		return
	}

	source := domain.ReportSourceMixed
	if c.Query("source") == string(domain.ReportSourceDB) {
		source = domain.ReportSourceDB
	}

	rows, err := h.reportService.Rows(c.Request.Context(), ports.ReportQuery{
		UserID:    middleware.GetUserID(c),
		Locale:    locale,
		RangeDays: rangeDays,
		Source:    source,
	})
	if err != nil {
		zap.L().Error("failed to compile report", zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailReport, lang),
		)
		return
	}

	if format == domain.ReportFormatJSON {
		c.JSON(http.StatusOK, dto.ReportResponse{
			Rows:      mapper.ToReportRows(rows),
			RangeDays: rangeDays,
		})
		return
	}

	now := time.Now()
	filename := export.Filename(locale, rangeDays, format, now)

	var payload []byte
	var contentType string
	switch format {
	case domain.ReportFormatCSV:
		payload, err = export.CSV(rows)
		contentType = "text/csv; charset=utf-8"
	case domain.ReportFormatXLSX:
		payload, err = export.XLSX(rows)
		contentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	default:
		payload, err = export.PDF(rows, locale, now)
		contentType = "application/pdf"
	}
	if err != nil {
		zap.L().Error("failed to render report", zap.String("format", string(format)), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailReport, lang),
		)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	c.Data(http.StatusOK, contentType, payload)
}
