// Package memory provides map-backed repository implementations used by
// tests and local development. They mirror the constraints of the postgres
// adapters, including the unique natural-key backstop.
package memory

import (
	"context"
	"sync"

	"zrpg/internal/domain"
	"zrpg/internal/domain/models"
	"zrpg/internal/domain/repositories"
	"zrpg/internal/objectid"
)

// EncounterRepository implements repositories.EncounterRepository using
// in-memory storage.
type EncounterRepository struct {
	mu    sync.RWMutex
	store map[string]*models.Encounter
}

// NewEncounterRepository creates a new in-memory encounter repository
func NewEncounterRepository() repositories.EncounterRepository {
	return &EncounterRepository{
		store: make(map[string]*models.Encounter),
	}
}

func (r *EncounterRepository) List(ctx context.Context) ([]models.Encounter, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	encounters := make([]models.Encounter, 0, len(r.store))
	for _, encounter := range r.store {
		encounters = append(encounters, *copyEncounter(encounter))
	}

	return encounters, nil
}

func (r *EncounterRepository) GetByID(ctx context.Context, id string) (*models.Encounter, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	encounter, ok := r.store[id]
	if !ok {
		return nil, &domain.NotFoundError{ID: id}
	}

	return copyEncounter(encounter), nil
}

func (r *EncounterRepository) FindByTitle(ctx context.Context, title string) (*models.Encounter, error) {
	return r.FindByTitleExcluding(ctx, title, "")
}

func (r *EncounterRepository) FindByTitleExcluding(ctx context.Context, title, excludeID string) (*models.Encounter, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if found := r.findByTitleLocked(title, excludeID); found != nil {
		return copyEncounter(found), nil
	}

	return nil, nil
}

func (r *EncounterRepository) Create(ctx context.Context, encounter *models.Encounter) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if found := r.findByTitleLocked(encounter.Title, ""); found != nil {
		return &domain.DuplicateKeyError{Resource: "encounter", Field: "title", Key: encounter.Title}
	}

	encounter.ID = objectid.New()
	r.store[encounter.ID] = copyEncounter(encounter)

	return nil
}

func (r *EncounterRepository) Update(ctx context.Context, encounter *models.Encounter) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.store[encounter.ID]; !ok {
		return &domain.NotFoundError{ID: encounter.ID}
	}

	if found := r.findByTitleLocked(encounter.Title, encounter.ID); found != nil {
		return &domain.DuplicateKeyError{Resource: "encounter", Field: "title", Key: encounter.Title}
	}

	r.store[encounter.ID] = copyEncounter(encounter)

	return nil
}

func (r *EncounterRepository) Upsert(ctx context.Context, encounter *models.Encounter) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if found := r.findByTitleLocked(encounter.Title, encounter.ID); found != nil {
		return false, &domain.DuplicateKeyError{Resource: "encounter", Field: "title", Key: encounter.Title}
	}

	existing, ok := r.store[encounter.ID]
	if ok {
		// replacement keeps the original creation timestamp
		encounter.CreatedAt = existing.CreatedAt
	}
	r.store[encounter.ID] = copyEncounter(encounter)

	return !ok, nil
}

func (r *EncounterRepository) Delete(ctx context.Context, id string) (*models.Encounter, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	encounter, ok := r.store[id]
	if !ok {
		return nil, &domain.NotFoundError{ID: id}
	}
	delete(r.store, id)

	return copyEncounter(encounter), nil
}

func (r *EncounterRepository) findByTitleLocked(title, excludeID string) *models.Encounter {
	for _, encounter := range r.store {
		if encounter.Title == title && encounter.ID != excludeID {
			return encounter
		}
	}
	return nil
}

// copyEncounter returns a deep copy to prevent external modification of
// stored records.
func copyEncounter(e *models.Encounter) *models.Encounter {
	c := *e
	c.Actions = append([]string{}, e.Actions...)
	return &c
}
