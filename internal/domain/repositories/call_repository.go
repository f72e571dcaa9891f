package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/callcoachhq/call-coach/internal/domain/entities"
)

// CallRepository defines the interface for call data access
type CallRepository interface {
	// Create creates a new call
	Create(ctx context.Context, call *entities.Call) error

	// FindByID retrieves a call owned by the given user
	FindByID(ctx context.Context, id, userID uuid.UUID) (*entities.Call, error)

	// FindByUserID retrieves all calls of a user, newest first
	FindByUserID(ctx context.Context, userID uuid.UUID, filter *CallFilters) ([]*entities.Call, error)

	// UpdateSummary attaches a summarize result to the call, replacing any prior one
	UpdateSummary(ctx context.Context, id, userID uuid.UUID, summary, coaching, category string, tags []string) error

	// UpdateScore attaches a score result to the call, replacing any prior one
	UpdateScore(ctx context.Context, id, userID uuid.UUID, score *entities.Score) error

	// UpdateObjections attaches an objection list to the call, replacing any prior one
	UpdateObjections(ctx context.Context, id, userID uuid.UUID, objections []entities.Objection) error

	// Delete removes a call owned by the given user
	Delete(ctx context.Context, id, userID uuid.UUID) error
}

// CallFilters represents filter options for listing calls
type CallFilters struct {
	RepID    *uuid.UUID
	From     *time.Time
	To       *time.Time
	MinScore *int
	MaxScore *int
}
