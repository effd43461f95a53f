package ports

import (
	"context"
	"time"

	"github.com/Diogo96ferreira/smart-garden-sub000/internal/core/domain"
)

type PlantRepository interface {
	Create(ctx context.Context, plant domain.Plant) error
	ListByUser(ctx context.Context, userID string) ([]domain.Plant, error)
	UpdateLastWatered(ctx context.Context, userID, plantID string, when time.Time) error
	// UpdateLastWateredByName matches case-insensitively on the plant's
	// display name; used when a watering task carries no plant link.
	UpdateLastWateredByName(ctx context.Context, userID, name string, when time.Time) error
	Delete(ctx context.Context, userID, plantID string) error
}

type TaskRepository interface {
	GetByID(ctx context.Context, userID, taskID string) (domain.Task, error)
	// ListPending returns the user's not-done tasks; the scheduler freezes
	// this snapshot before deduplicating candidates.
	ListPending(ctx context.Context, userID string) ([]domain.Task, error)
	// ListForDay returns tasks whose scheduling anchor falls on the given
	// calendar day.
	ListForDay(ctx context.Context, userID string, day time.Time) ([]domain.Task, error)
	ListDueInRange(ctx context.Context, userID string, from, to time.Time) ([]domain.Task, error)
	// InsertBatch persists candidates with the widest shape the backing
	// schema supports, degrading optional fields per the repository's
	// capability probe.
	InsertBatch(ctx context.Context, userID string, candidates []domain.TaskCandidate) ([]domain.Task, error)
	MarkDone(ctx context.Context, userID, taskID string, at time.Time) error
	Postpone(ctx context.Context, userID, taskID string, newAnchor time.Time) error
	DeleteAllForUser(ctx context.Context, userID string) error
}
