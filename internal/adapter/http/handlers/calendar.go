package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Diogo96ferreira/smart-garden-sub000/internal/adapter/http/mapper"
	"github.com/Diogo96ferreira/smart-garden-sub000/internal/adapter/http/middleware"
	"github.com/Diogo96ferreira/smart-garden-sub000/internal/core/ports"
)

type CalendarHandler struct {
	calendarService ports.CalendarService
}

func NewCalendarHandler(calendarService ports.CalendarService) *CalendarHandler {
	return &CalendarHandler{calendarService: calendarService}
}

// ZoneCalendar resolves the caller's locality to a climate zone and returns
// its crop windows. An unknown locality falls back to the default zone, so
// this never errors.
func (h *CalendarHandler) ZoneCalendar(c *gin.Context) {
	district := strings.TrimSpace(c.Query("distrito"))
	municipality := strings.TrimSpace(c.Query("municipio"))

	view := h.calendarService.ZoneCalendar(middleware.GetLocale(c), district, municipality)
	c.JSON(http.StatusOK, mapper.ToCalendarResponse(view))
}
