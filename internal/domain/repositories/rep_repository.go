package repositories

import (
	"context"

	"github.com/google/uuid"

	"github.com/callcoachhq/call-coach/internal/domain/entities"
)

// RepRepository defines the interface for rep data access
type RepRepository interface {
	// Create creates a new rep
	Create(ctx context.Context, rep *entities.Rep) error

	// FindByID retrieves a rep owned by the given user
	FindByID(ctx context.Context, id, userID uuid.UUID) (*entities.Rep, error)

	// FindByUserID retrieves all reps of a user, newest first
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entities.Rep, error)

	// Update updates an existing rep
	Update(ctx context.Context, rep *entities.Rep) error

	// Delete removes a rep owned by the given user
	Delete(ctx context.Context, id, userID uuid.UUID) error
}
