package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Diogo96ferreira/smart-garden-sub000/internal/adapter/http/mapper"
	"github.com/Diogo96ferreira/smart-garden-sub000/internal/adapter/http/middleware"
	"github.com/Diogo96ferreira/smart-garden-sub000/internal/core/ports"
	"github.com/Diogo96ferreira/smart-garden-sub000/pkg/apierrors"
)

type SuggestionHandler struct {
	suggestionService ports.SuggestionService
}

func NewSuggestionHandler(suggestionService ports.SuggestionService) *SuggestionHandler {
	return &SuggestionHandler{suggestionService: suggestionService}
}

func (h *SuggestionHandler) ListSuggestions(c *gin.Context) {
	lang := middleware.GetLang(c)

	suggestions, err := h.suggestionService.Suggestions(c.Request.Context(), middleware.GetUserID(c), middleware.GetLocale(c))
	if err != nil {
		zap.L().Error("failed to build suggestions", zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailSuggestions, lang),
		)
		return
	}

	c.JSON(http.StatusOK, mapper.ToSuggestionItems(suggestions))
}
