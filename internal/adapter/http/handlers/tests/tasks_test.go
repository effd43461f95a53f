package tests

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/Diogo96ferreira/smart-garden-sub000/internal/adapter/http/dto"
	"github.com/Diogo96ferreira/smart-garden-sub000/internal/adapter/http/handlers"
	"github.com/Diogo96ferreira/smart-garden-sub000/internal/adapter/http/middleware"
	"github.com/Diogo96ferreira/smart-garden-sub000/internal/core/domain"
	"github.com/Diogo96ferreira/smart-garden-sub000/internal/core/ports"
	"github.com/Diogo96ferreira/smart-garden-sub000/pkg/apierrors"
	"github.com/Diogo96ferreira/smart-garden-sub000/pkg/translator"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func taskRouter(scheduler *schedulerServiceMock, tasks *taskServiceMock) *gin.Engine {
	handler := handlers.NewTaskHandler(scheduler, tasks)

	router := gin.New()
	group := router.Group("/api", middleware.LanguageMiddleware(), middleware.AuthMiddleware())
	group.POST("/tasks/generate", handler.GenerateTasks)
	group.POST("/tasks/plan-month", handler.PlanMonth)
	group.GET("/tasks", handler.ListToday)
	group.POST("/tasks/:id/complete", handler.CompleteTask)
	group.POST("/tasks/:id/postpone", handler.PostponeTask)
	return router
}

func TestTaskHandler_GenerateTasks_Success(t *testing.T) {
	createdAt := time.Date(2026, 6, 15, 10, 0, 0, 0, time.UTC)
	dueDate := time.Date(2026, 6, 15, 0, 0, 0, 0, time.UTC)
	plantID := "p1"

	scheduler := new(schedulerServiceMock)
	scheduler.On("GenerateTasks", mock.Anything, ports.GenerateTasksInput{
		UserID: "user-1",
		Locale: domain.LocalePT,
		Location: &domain.UserLocation{
			District:     "Porto",
			Municipality: "Matosinhos",
		},
	}).Return(ports.GenerateTasksResult{
		Inserted: 1,
		Tasks: []domain.Task{
			{
				ID:         "t1",
				UserID:     "user-1",
				Title:      "Regar: Tomate",
				PlantID:    &plantID,
				DueDate:    &dueDate,
				CreatedAt:  createdAt,
				AnchorDate: createdAt,
			},
		},
	}, nil).Once()

	router := taskRouter(scheduler, new(taskServiceMock))

	body := `{"location":{"distrito":"Porto","municipio":"Matosinhos"}}`
	req := httptest.NewRequest(http.MethodPost, "/api/tasks/generate", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept-Language", translator.LanguagePt)
	req.Header.Set("X-User-ID", "user-1")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var got dto.GenerateTasksResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, 1, got.Inserted)
	require.Len(t, got.Tasks, 1)
	require.Equal(t, "Regar: Tomate", got.Tasks[0].Title)
	require.Equal(t, "p1", *got.Tasks[0].PlantID)
	require.Equal(t, "2026-06-15", *got.Tasks[0].DueDate)
	scheduler.AssertExpectations(t)
}

func TestTaskHandler_GenerateTasks_MissingUserHeader(t *testing.T) {
	router := taskRouter(new(schedulerServiceMock), new(taskServiceMock))

	req := httptest.NewRequest(http.MethodPost, "/api/tasks/generate", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept-Language", translator.LanguageEn)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)

	var got apierrors.JsonErr
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, http.StatusUnauthorized, got.ErrDetails.Code)
	require.Equal(t, "Invalid session. Please sign in again.", got.ErrDetails.Message)
}

func TestTaskHandler_PlanMonth_ForcesHorizonKeepsTasks(t *testing.T) {
	scheduler := new(schedulerServiceMock)
	scheduler.On("GenerateTasks", mock.Anything, ports.GenerateTasksInput{
		UserID:      "user-1",
		Locale:      domain.LocalePT,
		HorizonDays: 30,
		ResetAll:    false,
	}).Return(ports.GenerateTasksResult{}, nil).Once()

	router := taskRouter(scheduler, new(taskServiceMock))

	// An explicit horizon in the body loses to the fixed 30-day one, but
	// resetAll stays whatever the caller sent.
	body := `{"locale":"pt","horizonDays":7,"resetAll":false}`
	req := httptest.NewRequest(http.MethodPost, "/api/tasks/plan-month", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-User-ID", "user-1")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	scheduler.AssertExpectations(t)
}

func TestTaskHandler_PlanMonth_ResetOnlyWhenRequested(t *testing.T) {
	scheduler := new(schedulerServiceMock)
	scheduler.On("GenerateTasks", mock.Anything, ports.GenerateTasksInput{
		UserID:      "user-1",
		Locale:      domain.LocaleEN,
		HorizonDays: 30,
		ResetAll:    true,
	}).Return(ports.GenerateTasksResult{}, nil).Once()

	router := taskRouter(scheduler, new(taskServiceMock))

	req := httptest.NewRequest(http.MethodPost, "/api/tasks/plan-month", strings.NewReader(`{"resetAll":true}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept-Language", translator.LanguageEn)
	req.Header.Set("X-User-ID", "user-1")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	scheduler.AssertExpectations(t)
}

func TestTaskHandler_GenerateTasks_ServiceError(t *testing.T) {
	scheduler := new(schedulerServiceMock)
	scheduler.On("GenerateTasks", mock.Anything, mock.Anything).
		Return(nil, errors.New("db is down")).Once()

	router := taskRouter(scheduler, new(taskServiceMock))

	req := httptest.NewRequest(http.MethodPost, "/api/tasks/generate", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept-Language", translator.LanguagePt)
	req.Header.Set("X-User-ID", "user-1")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusInternalServerError, rec.Code)

	var got apierrors.JsonErr
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, "Não foi possível gerar as tarefas.", got.ErrDetails.Message)
}

func TestTaskHandler_ListToday_Success(t *testing.T) {
	tasks := new(taskServiceMock)
	tasks.On("ListToday", mock.Anything, "user-1").Return([]domain.Task{
		{ID: "t1", Title: "Regar: Tomate", CreatedAt: time.Now(), AnchorDate: time.Now()},
	}, nil).Once()

	router := taskRouter(new(schedulerServiceMock), tasks)

	req := httptest.NewRequest(http.MethodGet, "/api/tasks", nil)
	req.Header.Set("X-User-ID", "user-1")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var got []dto.TaskItem
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got, 1)
	require.Equal(t, "t1", got[0].ID)
	tasks.AssertExpectations(t)
}

func TestTaskHandler_CompleteTask_NoContent(t *testing.T) {
	tasks := new(taskServiceMock)
	tasks.On("Complete", mock.Anything, "user-1", "t1", domain.LocaleEN).Return(nil).Once()

	router := taskRouter(new(schedulerServiceMock), tasks)

	req := httptest.NewRequest(http.MethodPost, "/api/tasks/t1/complete", nil)
	req.Header.Set("Accept-Language", "en-US")
	req.Header.Set("X-User-ID", "user-1")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNoContent, rec.Code)
	tasks.AssertExpectations(t)
}

func TestTaskHandler_CompleteTask_NotFound(t *testing.T) {
	tasks := new(taskServiceMock)
	tasks.On("Complete", mock.Anything, "user-1", "missing", domain.LocalePT).
		Return(domain.ErrTaskNotFound).Once()

	router := taskRouter(new(schedulerServiceMock), tasks)

	req := httptest.NewRequest(http.MethodPost, "/api/tasks/missing/complete", nil)
	req.Header.Set("Accept-Language", translator.LanguagePt)
	req.Header.Set("X-User-ID", "user-1")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)

	var got apierrors.JsonErr
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, "Tarefa não encontrada.", got.ErrDetails.Message)
}

func TestTaskHandler_PostponeTask_NoContent(t *testing.T) {
	tasks := new(taskServiceMock)
	tasks.On("Postpone", mock.Anything, "user-1", "t1").Return(nil).Once()

	router := taskRouter(new(schedulerServiceMock), tasks)

	req := httptest.NewRequest(http.MethodPost, "/api/tasks/t1/postpone", nil)
	req.Header.Set("X-User-ID", "user-1")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNoContent, rec.Code)
	tasks.AssertExpectations(t)
}
