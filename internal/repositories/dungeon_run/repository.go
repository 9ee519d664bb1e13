// Package dungeonrun provides repository interface and types for dungeon run state
package dungeonrun

import (
	"context"

	"github.com/ironvale/guild-api/internal/entities"
)

//go:generate mockgen -destination=mock/mock_repository.go -package=dungeonrunmock github.com/ironvale/guild-api/internal/repositories/dungeon_run Repository

// CreateInput contains parameters for storing a new run
type CreateInput struct {
	Run *entities.DungeonRunState
}

// CreateOutput contains the result of storing a new run
type CreateOutput struct {
	Run *entities.DungeonRunState
}

// GetInput contains parameters for retrieving a run
type GetInput struct {
	RunID string
}

// GetOutput contains the result of retrieving a run
type GetOutput struct {
	Run *entities.DungeonRunState
}

// UpdateInput contains parameters for replacing a stored run
type UpdateInput struct {
	Run *entities.DungeonRunState
}

// UpdateOutput contains the result of replacing a stored run
type UpdateOutput struct {
	Run *entities.DungeonRunState
}

// DeleteInput contains parameters for deleting a run
type DeleteInput struct {
	RunID string
}

// DeleteOutput contains the result of deleting a run
type DeleteOutput struct{}

// Repository defines the interface for dungeon run storage operations
type Repository interface {
	// Create stores a new run. The run ID must not already exist.
	Create(ctx context.Context, input CreateInput) (*CreateOutput, error)

	// Get retrieves a run by ID
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Update replaces an existing run (used after every floor resolution)
	Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error)

	// Delete removes a run
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)
}
