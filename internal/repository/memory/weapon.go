package memory

import (
	"context"
	"sync"

	"zrpg/internal/domain"
	"zrpg/internal/domain/models"
	"zrpg/internal/domain/repositories"
	"zrpg/internal/objectid"
)

// WeaponRepository implements repositories.WeaponRepository using
// in-memory storage.
type WeaponRepository struct {
	mu    sync.RWMutex
	store map[string]*models.Weapon
}

// NewWeaponRepository creates a new in-memory weapon repository
func NewWeaponRepository() repositories.WeaponRepository {
	return &WeaponRepository{
		store: make(map[string]*models.Weapon),
	}
}

func (r *WeaponRepository) List(ctx context.Context) ([]models.Weapon, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	weapons := make([]models.Weapon, 0, len(r.store))
	for _, weapon := range r.store {
		weapons = append(weapons, *weapon)
	}

	return weapons, nil
}

func (r *WeaponRepository) GetByID(ctx context.Context, id string) (*models.Weapon, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	weapon, ok := r.store[id]
	if !ok {
		return nil, &domain.NotFoundError{ID: id}
	}

	c := *weapon
	return &c, nil
}

func (r *WeaponRepository) FindByName(ctx context.Context, name string) (*models.Weapon, error) {
	return r.FindByNameExcluding(ctx, name, "")
}

func (r *WeaponRepository) FindByNameExcluding(ctx context.Context, name, excludeID string) (*models.Weapon, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if found := r.findByNameLocked(name, excludeID); found != nil {
		c := *found
		return &c, nil
	}

	return nil, nil
}

func (r *WeaponRepository) Create(ctx context.Context, weapon *models.Weapon) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if found := r.findByNameLocked(weapon.Name, ""); found != nil {
		return &domain.DuplicateKeyError{Resource: "weapon", Field: "name", Key: weapon.Name}
	}

	weapon.ID = objectid.New()
	c := *weapon
	r.store[weapon.ID] = &c

	return nil
}

func (r *WeaponRepository) Update(ctx context.Context, weapon *models.Weapon) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.store[weapon.ID]; !ok {
		return &domain.NotFoundError{ID: weapon.ID}
	}

	if found := r.findByNameLocked(weapon.Name, weapon.ID); found != nil {
		return &domain.DuplicateKeyError{Resource: "weapon", Field: "name", Key: weapon.Name}
	}

	c := *weapon
	r.store[weapon.ID] = &c

	return nil
}

func (r *WeaponRepository) Upsert(ctx context.Context, weapon *models.Weapon) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if found := r.findByNameLocked(weapon.Name, weapon.ID); found != nil {
		return false, &domain.DuplicateKeyError{Resource: "weapon", Field: "name", Key: weapon.Name}
	}

	existing, ok := r.store[weapon.ID]
	if ok {
		// replacement keeps the original creation timestamp
		weapon.CreatedAt = existing.CreatedAt
	}
	c := *weapon
	r.store[weapon.ID] = &c

	return !ok, nil
}

func (r *WeaponRepository) Delete(ctx context.Context, id string) (*models.Weapon, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	weapon, ok := r.store[id]
	if !ok {
		return nil, &domain.NotFoundError{ID: id}
	}
	delete(r.store, id)

	c := *weapon
	return &c, nil
}

func (r *WeaponRepository) findByNameLocked(name, excludeID string) *models.Weapon {
	for _, weapon := range r.store {
		if weapon.Name == name && weapon.ID != excludeID {
			return weapon
		}
	}
	return nil
}
