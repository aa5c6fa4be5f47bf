package repositories

import (
	"context"

	"zrpg/internal/domain/models"
)

// EncounterRepository defines data access operations for encounters.
// Implementations enforce the unique title constraint at the store level
// and surface violations as *domain.DuplicateKeyError.
type EncounterRepository interface {
	// List retrieves all encounters in the store's natural order.
	// Returns an empty slice (never nil) when there are none.
	List(ctx context.Context) ([]models.Encounter, error)

	// GetByID retrieves an encounter by ID.
	// Returns *domain.NotFoundError when no record exists.
	GetByID(ctx context.Context, id string) (*models.Encounter, error)

	// FindByTitle looks up an encounter by its exact title.
	// Returns (nil, nil) when no record matches.
	FindByTitle(ctx context.Context, title string) (*models.Encounter, error)

	// FindByTitleExcluding looks up an encounter by title, ignoring the
	// record with the given ID. Returns (nil, nil) when no record matches.
	FindByTitleExcluding(ctx context.Context, title, excludeID string) (*models.Encounter, error)

	// Create persists a new encounter, assigning its ID and timestamps.
	Create(ctx context.Context, encounter *models.Encounter) error

	// Update overwrites all fields of an existing encounter by ID.
	// Returns *domain.NotFoundError when no record exists.
	Update(ctx context.Context, encounter *models.Encounter) error

	// Upsert writes the encounter at its exact ID, creating the record if
	// missing and fully replacing it otherwise. CreatedAt is preserved on
	// replacement. Reports whether a new record was created.
	Upsert(ctx context.Context, encounter *models.Encounter) (created bool, err error)

	// Delete removes an encounter by ID and returns its last known state.
	// Returns *domain.NotFoundError when no record exists.
	Delete(ctx context.Context, id string) (*models.Encounter, error)
}
