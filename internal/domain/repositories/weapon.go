package repositories

import (
	"context"

	"zrpg/internal/domain/models"
)

// WeaponRepository defines data access operations for weapons. The unique
// name constraint is enforced at the store level and violations surface as
// *domain.DuplicateKeyError.
type WeaponRepository interface {
	// List retrieves all weapons. Returns an empty slice (never nil).
	List(ctx context.Context) ([]models.Weapon, error)

	// GetByID retrieves a weapon by ID.
	// Returns *domain.NotFoundError when no record exists.
	GetByID(ctx context.Context, id string) (*models.Weapon, error)

	// FindByName looks up a weapon by its exact name.
	// Returns (nil, nil) when no record matches.
	FindByName(ctx context.Context, name string) (*models.Weapon, error)

	// FindByNameExcluding looks up a weapon by name, ignoring the record
	// with the given ID. Returns (nil, nil) when no record matches.
	FindByNameExcluding(ctx context.Context, name, excludeID string) (*models.Weapon, error)

	// Create persists a new weapon, assigning its ID and timestamps.
	Create(ctx context.Context, weapon *models.Weapon) error

	// Update overwrites all fields of an existing weapon by ID.
	// Returns *domain.NotFoundError when no record exists.
	Update(ctx context.Context, weapon *models.Weapon) error

	// Upsert writes the weapon at its exact ID, creating the record if
	// missing and fully replacing it otherwise. CreatedAt is preserved on
	// replacement. Reports whether a new record was created.
	Upsert(ctx context.Context, weapon *models.Weapon) (created bool, err error)

	// Delete removes a weapon by ID and returns its last known state.
	// Returns *domain.NotFoundError when no record exists.
	Delete(ctx context.Context, id string) (*models.Weapon, error)
}
