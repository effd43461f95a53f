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

// planMonthHorizonDays is the fixed horizon of the plan-month shortcut.
const planMonthHorizonDays = 30

type TaskHandler struct {
	scheduler   ports.SchedulerService
	taskService ports.TaskService
}

func NewTaskHandler(scheduler ports.SchedulerService, taskService ports.TaskService) *TaskHandler {
	return &TaskHandler{scheduler: scheduler, taskService: taskService}
}

func (h *TaskHandler) GenerateTasks(c *gin.Context) {
	h.generate(c, nil)
}

// PlanMonth emits the watering series over a fixed 30-day horizon. Whether
// existing tasks are purged first stays under the request's control.
func (h *TaskHandler) PlanMonth(c *gin.Context) {
	horizon := planMonthHorizonDays
	h.generate(c, &horizon)
}

func (h *TaskHandler) generate(c *gin.Context, horizonOverride *int) {
	lang := middleware.GetLang(c)

	var req dto.GenerateTasksRequest
	if err := c.ShouldBindJSON(&req); err != nil && c.Request.ContentLength > 0 {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidTaskPayload, lang),
		)
		return
	}

	locale := middleware.GetLocale(c)
	if req.Locale != nil {
		locale = domain.ParseLocale(*req.Locale)
	}

	input := ports.GenerateTasksInput{
		UserID:   middleware.GetUserID(c),
		Locale:   locale,
		ResetAll: req.ResetAll,
	}
	if req.Location != nil {
		input.Location = &domain.UserLocation{
			District:     strings.TrimSpace(req.Location.Distrito),
			Municipality: strings.TrimSpace(req.Location.Municipio),
		}
	}
	if req.HorizonDays != nil {
		input.HorizonDays = *req.HorizonDays
	}
	if horizonOverride != nil {
		input.HorizonDays = *horizonOverride
	}

	result, err := h.scheduler.GenerateTasks(c.Request.Context(), input)
	if err != nil {
		zap.L().Error("failed to generate tasks", zap.String("user_id", input.UserID), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailGenerateTasks, lang),
		)
		return
	}

	c.JSON(http.StatusOK, dto.GenerateTasksResponse{
		Inserted: result.Inserted,
		Tasks:    mapper.ToTaskItems(result.Tasks),
	})
}

func (h *TaskHandler) ListToday(c *gin.Context) {
	lang := middleware.GetLang(c)

	tasks, err := h.taskService.ListToday(c.Request.Context(), middleware.GetUserID(c))
	if err != nil {
		zap.L().Error("failed to list today's tasks", zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailListTasks, lang),
		)
		return
	}

	c.JSON(http.StatusOK, mapper.ToTaskItems(tasks))
}

func (h *TaskHandler) CompleteTask(c *gin.Context) {
	lang := middleware.GetLang(c)

	taskID := strings.TrimSpace(c.Param("id"))
	if taskID == "" {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidTaskID, lang),
		)
		return
	}

	err := h.taskService.Complete(c.Request.Context(), middleware.GetUserID(c), taskID, middleware.GetLocale(c))
	if err != nil {
		if errors.Is(err, domain.ErrTaskNotFound) {
			c.JSON(
				http.StatusNotFound,
				apierrors.CreateError(http.StatusNotFound, apierrors.MsgTaskNotFound, lang),
			)
			return
		}

		zap.L().Error("failed to complete task", zap.String("task_id", taskID), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailCompleteTask, lang),
		)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *TaskHandler) PostponeTask(c *gin.Context) {
	lang := middleware.GetLang(c)

	taskID := strings.TrimSpace(c.Param("id"))
	if taskID == "" {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidTaskID, lang),
		)
		return
	}

	err := h.taskService.Postpone(c.Request.Context(), middleware.GetUserID(c), taskID)
	if err != nil {
		if errors.Is(err, domain.ErrTaskNotFound) {
			c.JSON(
				http.StatusNotFound,
				apierrors.CreateError(http.StatusNotFound, apierrors.MsgTaskNotFound, lang),
			)
			return
		}

		zap.L().Error("failed to postpone task", zap.String("task_id", taskID), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailPostponeTask, lang),
		)
		return
	}

	c.Status(http.StatusNoContent)
}
