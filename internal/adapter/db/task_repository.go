package db

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/Diogo96ferreira/smart-garden-sub000/internal/core/domain"
	"github.com/Diogo96ferreira/smart-garden-sub000/internal/core/ports"
)

const taskColumnsQuery = `
SELECT column_name
FROM information_schema.columns
WHERE table_schema = DATABASE() AND table_name = 'tasks';
`

const getTaskByIDQuery = `
SELECT %s FROM tasks WHERE user_id = ? AND id = ?;
`

const listPendingTasksQuery = `
SELECT %s FROM tasks WHERE user_id = ? AND done = 0 ORDER BY anchor_date, id;
`

const listTasksForDayQuery = `
SELECT %s FROM tasks
WHERE user_id = ? AND COALESCE(due_date, anchor_date) >= ? AND COALESCE(due_date, anchor_date) < ?
ORDER BY title;
`

const listTasksDueInRangeQuery = `
SELECT %s FROM tasks
WHERE user_id = ? AND due_date IS NOT NULL AND due_date >= ? AND due_date < ?
ORDER BY due_date, title;
`

const markTaskDoneQuery = `
UPDATE tasks SET done = 1, done_at = ? WHERE user_id = ? AND id = ?;
`

const postponeTaskQuery = `
UPDATE tasks SET anchor_date = ?, done = 0, done_at = NULL WHERE user_id = ? AND id = ?;
`

const deleteTasksForUserQuery = `
DELETE FROM tasks WHERE user_id = ?;
`

// TaskRepository persists tasks against a schema whose optional columns
// (plant_id, image_url) may be absent on older installations. The column set
// is probed once from information_schema and every statement is shaped to
// what the table actually carries.
type TaskRepository struct {
	db         *sqlx.DB
	hasPlantID bool
	hasImage   bool
	columns    string
}

type taskRow struct {
	ID          string         `db:"id"`
	UserID      string         `db:"user_id"`
	Title       string         `db:"title"`
	Description sql.NullString `db:"description"`
	ImageURL    sql.NullString `db:"image_url"`
	PlantID     sql.NullString `db:"plant_id"`
	DueDate     sql.NullTime   `db:"due_date"`
	Done        bool           `db:"done"`
	DoneAt      sql.NullTime   `db:"done_at"`
	CreatedAt   time.Time      `db:"created_at"`
	AnchorDate  time.Time      `db:"anchor_date"`
}

var _ ports.TaskRepository = (*TaskRepository)(nil)

func NewTaskRepository(ctx context.Context, db *sqlx.DB) (*TaskRepository, error) {
	r := &TaskRepository{db: db}

	var names []string
	if err := db.SelectContext(ctx, &names, taskColumnsQuery); err != nil {
		return nil, fmt.Errorf("probe tasks schema: %w", err)
	}

	present := make(map[string]bool, len(names))
	for _, name := range names {
		present[strings.ToLower(name)] = true
	}
	r.hasPlantID = present["plant_id"]
	r.hasImage = present["image_url"]

	columns := []string{"id", "user_id", "title", "description", "due_date", "done", "done_at", "created_at", "anchor_date"}
	if r.hasImage {
		columns = append(columns, "image_url")
	}
	if r.hasPlantID {
		columns = append(columns, "plant_id")
	}
	r.columns = strings.Join(columns, ", ")

	if !r.hasPlantID || !r.hasImage {
		zap.L().Warn("tasks table is missing optional columns, inserts will degrade",
			zap.Bool("plant_id", r.hasPlantID),
			zap.Bool("image_url", r.hasImage))
	}

	return r, nil
}

func (r *TaskRepository) GetByID(ctx context.Context, userID, taskID string) (domain.Task, error) {
	var row taskRow
	err := r.db.GetContext(ctx, &row, fmt.Sprintf(getTaskByIDQuery, r.columns), userID, taskID)
	if err == sql.ErrNoRows {
		return domain.Task{}, domain.ErrTaskNotFound
	}
	if err != nil {
		return domain.Task{}, err
	}
	return mapTaskRowToDomainTask(row), nil
}

func (r *TaskRepository) ListPending(ctx context.Context, userID string) ([]domain.Task, error) {
	return r.selectTasks(ctx, fmt.Sprintf(listPendingTasksQuery, r.columns), userID)
}

func (r *TaskRepository) ListForDay(ctx context.Context, userID string, day time.Time) ([]domain.Task, error) {
	from := domain.DateOnly(day)
	to := from.AddDate(0, 0, 1)
	return r.selectTasks(ctx, fmt.Sprintf(listTasksForDayQuery, r.columns), userID, from, to)
}

func (r *TaskRepository) ListDueInRange(ctx context.Context, userID string, from, to time.Time) ([]domain.Task, error) {
	return r.selectTasks(ctx, fmt.Sprintf(listTasksDueInRangeQuery, r.columns), userID, from, to)
}

func (r *TaskRepository) selectTasks(ctx context.Context, query string, args ...any) ([]domain.Task, error) {
	var rows []taskRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, err
	}

	tasks := make([]domain.Task, 0, len(rows))
	for _, row := range rows {
		tasks = append(tasks, mapTaskRowToDomainTask(row))
	}
	return tasks, nil
}

// InsertBatch writes candidates in a single transaction using the widest
// insert shape the probed schema supports: plant links first, then images,
// then the minimal column set.
func (r *TaskRepository) InsertBatch(ctx context.Context, userID string, candidates []domain.TaskCandidate) ([]domain.Task, error) {
	if len(candidates) == 0 {
		return nil, nil
	}

	query := r.insertQuery()
	now := time.Now()

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = tx.Rollback()
	}()

	tasks := make([]domain.Task, 0, len(candidates))
	for _, c := range candidates {
		task := domain.Task{
			ID:          uuid.NewString(),
			UserID:      userID,
			Title:       c.Title,
			Description: c.Description,
			DueDate:     c.DueDate,
			CreatedAt:   now,
			AnchorDate:  now,
		}
		if r.hasImage {
			task.ImageURL = c.ImageURL
		}
		if r.hasPlantID {
			task.PlantID = c.PlantID
		}

		if _, err := tx.NamedExecContext(ctx, query, mapTaskToRow(task)); err != nil {
			return nil, err
		}
		tasks = append(tasks, task)
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return tasks, nil
}

func (r *TaskRepository) insertQuery() string {
	columns := []string{"id", "user_id", "title", "description", "due_date", "done", "done_at", "created_at", "anchor_date"}
	if r.hasImage {
		columns = append(columns, "image_url")
	}
	if r.hasPlantID {
		columns = append(columns, "plant_id")
	}

	placeholders := make([]string, len(columns))
	for i, col := range columns {
		placeholders[i] = ":" + col
	}
	return fmt.Sprintf(
		"INSERT INTO tasks (%s) VALUES (%s);",
		strings.Join(columns, ", "),
		strings.Join(placeholders, ", "),
	)
}

func (r *TaskRepository) MarkDone(ctx context.Context, userID, taskID string, at time.Time) error {
	result, err := r.db.ExecContext(ctx, markTaskDoneQuery, at, userID, taskID)
	if err != nil {
		return err
	}
	return requireAffected(result, domain.ErrTaskNotFound)
}

func (r *TaskRepository) Postpone(ctx context.Context, userID, taskID string, newAnchor time.Time) error {
	result, err := r.db.ExecContext(ctx, postponeTaskQuery, newAnchor, userID, taskID)
	if err != nil {
		return err
	}
	return requireAffected(result, domain.ErrTaskNotFound)
}

func (r *TaskRepository) DeleteAllForUser(ctx context.Context, userID string) error {
	_, err := r.db.ExecContext(ctx, deleteTasksForUserQuery, userID)
	return err
}

func mapTaskToRow(task domain.Task) taskRow {
	row := taskRow{
		ID:         task.ID,
		UserID:     task.UserID,
		Title:      task.Title,
		Done:       task.Done,
		CreatedAt:  task.CreatedAt,
		AnchorDate: task.AnchorDate,
	}

	if task.Description != nil {
		row.Description = sql.NullString{String: *task.Description, Valid: true}
	}
	if task.ImageURL != nil {
		row.ImageURL = sql.NullString{String: *task.ImageURL, Valid: true}
	}
	if task.PlantID != nil {
		row.PlantID = sql.NullString{String: *task.PlantID, Valid: true}
	}
	if task.DueDate != nil {
		row.DueDate = sql.NullTime{Time: *task.DueDate, Valid: true}
	}
	if task.DoneAt != nil {
		row.DoneAt = sql.NullTime{Time: *task.DoneAt, Valid: true}
	}

	return row
}

func mapTaskRowToDomainTask(row taskRow) domain.Task {
	task := domain.Task{
		ID:         row.ID,
		UserID:     row.UserID,
		Title:      row.Title,
		Done:       row.Done,
		CreatedAt:  row.CreatedAt,
		AnchorDate: row.AnchorDate,
	}

	if row.Description.Valid {
		value := row.Description.String
		task.Description = &value
	}
	if row.ImageURL.Valid {
		value := row.ImageURL.String
		task.ImageURL = &value
	}
	if row.PlantID.Valid {
		value := row.PlantID.String
		task.PlantID = &value
	}
	if row.DueDate.Valid {
		value := row.DueDate.Time
		task.DueDate = &value
	}
	if row.DoneAt.Valid {
		value := row.DoneAt.Time
		task.DoneAt = &value
	}

	return task
}
