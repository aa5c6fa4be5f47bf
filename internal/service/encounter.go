package service

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"zrpg/internal/domain"
	"zrpg/internal/domain/models"
	"zrpg/internal/domain/repositories"
	"zrpg/internal/domain/services"
	"zrpg/internal/objectid"
)

// encounterService implements the EncounterService interface
type encounterService struct {
	repo   repositories.EncounterRepository
	logger *slog.Logger
}

// NewEncounterService creates a new encounter service
func NewEncounterService(repo repositories.EncounterRepository, logger *slog.Logger) services.EncounterService {
	return &encounterService{
		repo:   repo,
		logger: logger,
	}
}

// ListEncounters retrieves all encounters
func (s *encounterService) ListEncounters(ctx context.Context) ([]models.Encounter, error) {
	return s.repo.List(ctx)
}

// InspectEncounter retrieves an encounter by ID
func (s *encounterService) InspectEncounter(ctx context.Context, id string) (*models.Encounter, error) {
	if !objectid.IsValid(id) {
		return nil, &domain.InvalidIDError{ID: id}
	}

	return s.repo.GetByID(ctx, id)
}

// CreateEncounter validates the payload, enforces title uniqueness and
// persists a new encounter
func (s *encounterService) CreateEncounter(ctx context.Context, req *services.CreateEncounterRequest) (*models.Encounter, error) {
	req.Title = strings.TrimSpace(req.Title)

	if err := req.Validate(); err != nil {
		return nil, err
	}

	if err := s.ensureTitleAvailable(ctx, req.Title, ""); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	encounter := &models.Encounter{
		Title:        req.Title,
		Description:  req.Description,
		Actions:      req.Actions,
		NumberOfRuns: intOrZero(req.NumberOfRuns),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if encounter.Actions == nil {
		encounter.Actions = []string{}
	}

	if err := s.repo.Create(ctx, encounter); err != nil {
		return nil, err
	}

	s.logger.Info("encounter created",
		"id", encounter.ID,
		"title", encounter.Title,
	)

	return encounter, nil
}

// PatchEncounter merges the provided fields onto an existing encounter.
// Fields absent from the payload are left untouched.
func (s *encounterService) PatchEncounter(ctx context.Context, id string, req *services.PatchEncounterRequest) (*models.Encounter, error) {
	if !objectid.IsValid(id) {
		return nil, &domain.InvalidIDError{ID: id}
	}

	encounter, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		trimmed := strings.TrimSpace(*req.Title)
		req.Title = &trimmed
	}

	if err := req.Validate(); err != nil {
		return nil, err
	}

	// A payload touching the title must not steal another encounter's
	// title, but keeping its own is fine.
	if req.Title != nil {
		if err := s.ensureTitleAvailable(ctx, *req.Title, id); err != nil {
			return nil, err
		}
		encounter.Title = *req.Title
	}
	if req.Description != nil {
		encounter.Description = *req.Description
	}
	if req.Actions != nil {
		encounter.Actions = *req.Actions
		if encounter.Actions == nil {
			encounter.Actions = []string{}
		}
	}
	if req.NumberOfRuns != nil {
		encounter.NumberOfRuns = *req.NumberOfRuns
	}

	encounter.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, encounter); err != nil {
		return nil, err
	}

	s.logger.Info("encounter updated",
		"id", encounter.ID,
		"title", encounter.Title,
	)

	return encounter, nil
}

// ReplaceEncounter overwrites every field of the encounter at the given
// ID, creating it when missing. A caller may legitimately reuse or
// pre-generate an ID (idempotent retries), so a missing-but-valid ID is an
// implicit create rather than a NotFound.
func (s *encounterService) ReplaceEncounter(ctx context.Context, id string, req *services.ReplaceEncounterRequest) (*models.Encounter, bool, error) {
	if !objectid.IsValid(id) {
		return nil, false, &domain.InvalidIDError{ID: id}
	}

	req.Title = strings.TrimSpace(req.Title)

	if err := req.Validate(); err != nil {
		return nil, false, err
	}

	if err := s.ensureTitleAvailable(ctx, req.Title, id); err != nil {
		return nil, false, err
	}

	now := time.Now().UTC()
	encounter := &models.Encounter{
		ID:           id,
		Title:        req.Title,
		Description:  req.Description,
		Actions:      req.Actions,
		NumberOfRuns: intOrZero(req.NumberOfRuns),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if encounter.Actions == nil {
		encounter.Actions = []string{}
	}

	created, err := s.repo.Upsert(ctx, encounter)
	if err != nil {
		return nil, false, err
	}

	s.logger.Info("encounter replaced",
		"id", encounter.ID,
		"title", encounter.Title,
		"created", created,
	)

	return encounter, created, nil
}

// DeleteEncounter removes an encounter and returns its last known state
func (s *encounterService) DeleteEncounter(ctx context.Context, id string) (*models.Encounter, error) {
	if !objectid.IsValid(id) {
		return nil, &domain.InvalidIDError{ID: id}
	}

	encounter, err := s.repo.Delete(ctx, id)
	if err != nil {
		return nil, err
	}

	s.logger.Info("encounter deleted",
		"id", encounter.ID,
		"title", encounter.Title,
	)

	return encounter, nil
}

// ensureTitleAvailable checks that no other encounter holds the candidate
// title. An empty candidate (a patch that doesn't touch the title) is a
// no-op. The store's unique index remains the authoritative guard for the
// check-then-act race; this check exists for the user-facing message.
func (s *encounterService) ensureTitleAvailable(ctx context.Context, title, excludeID string) error {
	if title == "" {
		return nil
	}

	var (
		existing *models.Encounter
		err      error
	)
	if excludeID == "" {
		existing, err = s.repo.FindByTitle(ctx, title)
	} else {
		existing, err = s.repo.FindByTitleExcluding(ctx, title, excludeID)
	}
	if err != nil {
		return err
	}

	if existing != nil {
		return &domain.DuplicateKeyError{Resource: "encounter", Field: "title", Key: title}
	}

	return nil
}

func intOrZero(n *int) int {
	if n == nil {
		return 0
	}
	return *n
}
