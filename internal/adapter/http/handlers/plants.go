package handlers

import (
	"errors"
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

type PlantHandler struct {
	plantService ports.PlantService
}

func NewPlantHandler(plantService ports.PlantService) *PlantHandler {
	return &PlantHandler{plantService: plantService}
}

func (h *PlantHandler) CreatePlant(c *gin.Context) {
	lang := middleware.GetLang(c)

	var req dto.CreatePlantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidPlantPayload, lang),
		)
		return
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidPlantPayload, lang),
		)
		return
	}

	input := domain.CreatePlantInput{
		UserID:       middleware.GetUserID(c),
		Name:         name,
		Species:      req.Species,
		WateringFreq: req.WateringFreq,
		ImageURL:     req.ImageURL,
	}
	if req.Area != nil {
		area := domain.PlantArea(*req.Area)
		input.Area = &area
	}

	plant, err := h.plantService.Create(c.Request.Context(), input)
	if err != nil {
		zap.L().Error("failed to create plant", zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailCreatePlant, lang),
		)
		return
	}

	c.JSON(http.StatusCreated, mapper.ToPlantItem(plant))
}

func (h *PlantHandler) ListPlants(c *gin.Context) {
	lang := middleware.GetLang(c)

	plants, err := h.plantService.List(c.Request.Context(), middleware.GetUserID(c))
	if err != nil {
		zap.L().Error("failed to list plants", zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailListPlants, lang),
		)
		return
	}

	c.JSON(http.StatusOK, mapper.ToPlantItems(plants))
}

func (h *PlantHandler) DeletePlant(c *gin.Context) {
	lang := middleware.GetLang(c)

	plantID := strings.TrimSpace(c.Param("id"))
	if plantID == "" {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidPlantID, lang),
		)
		return
	}

	err := h.plantService.Delete(c.Request.Context(), middleware.GetUserID(c), plantID)
	if err != nil {
		if errors.Is(err, domain.ErrPlantNotFound) {
			c.JSON(
				http.StatusNotFound,
				apierrors.CreateError(http.StatusNotFound, apierrors.MsgPlantNotFound, lang),
			)
			return
		}

		zap.L().Error("failed to delete plant", zap.String("plant_id", plantID), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailDeletePlant, lang),
		)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *PlantHandler) EstimateWateringFreq(c *gin.Context) {
	lang := middleware.GetLang(c)

	var req dto.EstimateFreqRequest
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Name) == "" {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidPlantPayload, lang),
		)
		return
	}

	species := ""
	if req.Species != nil {
		species = *req.Species
	}

	freq, err := h.plantService.EstimateWateringFreq(c.Request.Context(), strings.TrimSpace(req.Name), species)
	if err != nil {
		zap.L().Error("failed to estimate watering frequency", zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailEstimateFreq, lang),
		)
		return
	}

	c.JSON(http.StatusOK, dto.EstimateFreqResponse{WateringFreq: freq})
}
