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

// weaponService implements the WeaponService interface
type weaponService struct {
	repo   repositories.WeaponRepository
	logger *slog.Logger
}

// NewWeaponService creates a new weapon service
func NewWeaponService(repo repositories.WeaponRepository, logger *slog.Logger) services.WeaponService {
	return &weaponService{
		repo:   repo,
		logger: logger,
	}
}

// ListWeapons retrieves all weapons
func (s *weaponService) ListWeapons(ctx context.Context) ([]models.Weapon, error) {
	return s.repo.List(ctx)
}

// InspectWeapon retrieves a weapon by ID
func (s *weaponService) InspectWeapon(ctx context.Context, id string) (*models.Weapon, error) {
	if !objectid.IsValid(id) {
		return nil, &domain.InvalidIDError{ID: id}
	}

	return s.repo.GetByID(ctx, id)
}

// CreateWeapon validates the payload, enforces name uniqueness and
// persists a new weapon
func (s *weaponService) CreateWeapon(ctx context.Context, req *services.CreateWeaponRequest) (*models.Weapon, error) {
	req.Name = strings.TrimSpace(req.Name)

	if err := req.Validate(); err != nil {
		return nil, err
	}

	if err := s.ensureNameAvailable(ctx, req.Name, ""); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	weapon := &models.Weapon{
		Name:           req.Name,
		Description:    req.Description,
		AttackDieCount: req.AttackDieCount,
		AttackDieSides: req.AttackDieSides,
		TimesLooted:    intOrZero(req.TimesLooted),
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := s.repo.Create(ctx, weapon); err != nil {
		return nil, err
	}

	s.logger.Info("weapon created",
		"id", weapon.ID,
		"name", weapon.Name,
	)

	return weapon, nil
}

// PatchWeapon merges the provided fields onto an existing weapon. Fields
// absent from the payload are left untouched.
func (s *weaponService) PatchWeapon(ctx context.Context, id string, req *services.PatchWeaponRequest) (*models.Weapon, error) {
	if !objectid.IsValid(id) {
		return nil, &domain.InvalidIDError{ID: id}
	}

	weapon, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		trimmed := strings.TrimSpace(*req.Name)
		req.Name = &trimmed
	}

	if err := req.Validate(); err != nil {
		return nil, err
	}

	if req.Name != nil {
		if err := s.ensureNameAvailable(ctx, *req.Name, id); err != nil {
			return nil, err
		}
		weapon.Name = *req.Name
	}
	if req.Description != nil {
		weapon.Description = *req.Description
	}
	if req.AttackDieCount != nil {
		weapon.AttackDieCount = *req.AttackDieCount
	}
	if req.AttackDieSides != nil {
		weapon.AttackDieSides = *req.AttackDieSides
	}
	if req.TimesLooted != nil {
		weapon.TimesLooted = *req.TimesLooted
	}

	weapon.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, weapon); err != nil {
		return nil, err
	}

	s.logger.Info("weapon updated",
		"id", weapon.ID,
		"name", weapon.Name,
	)

	return weapon, nil
}

// ReplaceWeapon overwrites every field of the weapon at the given ID,
// creating it when missing. Never fails NotFound: a missing-but-valid ID
// is an implicit create.
func (s *weaponService) ReplaceWeapon(ctx context.Context, id string, req *services.ReplaceWeaponRequest) (*models.Weapon, bool, error) {
	if !objectid.IsValid(id) {
		return nil, false, &domain.InvalidIDError{ID: id}
	}

	req.Name = strings.TrimSpace(req.Name)

	if err := req.Validate(); err != nil {
		return nil, false, err
	}

	if err := s.ensureNameAvailable(ctx, req.Name, id); err != nil {
		return nil, false, err
	}

	now := time.Now().UTC()
	weapon := &models.Weapon{
		ID:             id,
		Name:           req.Name,
		Description:    req.Description,
		AttackDieCount: req.AttackDieCount,
		AttackDieSides: req.AttackDieSides,
		TimesLooted:    intOrZero(req.TimesLooted),
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	created, err := s.repo.Upsert(ctx, weapon)
	if err != nil {
		return nil, false, err
	}

	s.logger.Info("weapon replaced",
		"id", weapon.ID,
		"name", weapon.Name,
		"created", created,
	)

	return weapon, created, nil
}

// DeleteWeapon removes a weapon and returns its last known state
func (s *weaponService) DeleteWeapon(ctx context.Context, id string) (*models.Weapon, error) {
	if !objectid.IsValid(id) {
		return nil, &domain.InvalidIDError{ID: id}
	}

	weapon, err := s.repo.Delete(ctx, id)
	if err != nil {
		return nil, err
	}

	s.logger.Info("weapon deleted",
		"id", weapon.ID,
		"name", weapon.Name,
	)

	return weapon, nil
}

// ensureNameAvailable checks that no other weapon holds the candidate
// name. An empty candidate is a no-op; the store's unique index remains
// the authoritative guard for the check-then-act race.
func (s *weaponService) ensureNameAvailable(ctx context.Context, name, excludeID string) error {
	if name == "" {
		return nil
	}

	var (
		existing *models.Weapon
		err      error
	)
	if excludeID == "" {
		existing, err = s.repo.FindByName(ctx, name)
	} else {
		existing, err = s.repo.FindByNameExcluding(ctx, name, excludeID)
	}
	if err != nil {
		return err
	}

	if existing != nil {
		return &domain.DuplicateKeyError{Resource: "weapon", Field: "name", Key: name}
	}

	return nil
}
