package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Diogo96ferreira/smart-garden-sub000/internal/adapter/http/dto"
	"github.com/Diogo96ferreira/smart-garden-sub000/internal/adapter/http/mapper"
	"github.com/Diogo96ferreira/smart-garden-sub000/internal/adapter/http/middleware"
	"github.com/Diogo96ferreira/smart-garden-sub000/internal/core/domain"
	"github.com/Diogo96ferreira/smart-garden-sub000/internal/core/ports"
	"github.com/Diogo96ferreira/smart-garden-sub000/pkg/apierrors"
)

type WeatherHandler struct {
	weatherService ports.WeatherService
}

func NewWeatherHandler(weatherService ports.WeatherService) *WeatherHandler {
	return &WeatherHandler{weatherService: weatherService}
}

func (h *WeatherHandler) Advice(c *gin.Context) {
	lang := middleware.GetLang(c)

	var req dto.WeatherAdviceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidPlantPayload, lang),
		)
		return
	}

	loc := domain.UserLocation{
		District:     strings.TrimSpace(req.Location.Distrito),
		Municipality: strings.TrimSpace(req.Location.Municipio),
	}

	advice, err := h.weatherService.Advice(c.Request.Context(), middleware.GetLocale(c), loc)
	if err != nil {
		zap.L().Error("failed to build weather advice", zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailWeatherAdvice, lang),
		)
		return
	}

	c.JSON(http.StatusOK, mapper.ToWeatherAdviceResponse(advice))
}
