package services

import (
	"context"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"zrpg/internal/domain/models"
)

// CreateWeaponRequest carries the fields accepted when creating a weapon.
// TimesLooted is optional and defaults to zero.
type CreateWeaponRequest struct {
	Name           string `json:"name"`
	Description    string `json:"description"`
	AttackDieCount int    `json:"attackDieCount"`
	AttackDieSides int    `json:"attackDieSides"`
	TimesLooted    *int   `json:"timesLooted"`
}

// Validate checks the payload shape. Fields are checked in a fixed order
// and the first failing field wins.
func (r *CreateWeaponRequest) Validate() error {
	return firstFieldError(validation.ValidateStruct(r,
		validation.Field(&r.Name, validation.Required),
		validation.Field(&r.Description, validation.Required),
		validation.Field(&r.AttackDieCount, validation.Required, validation.Min(1)),
		validation.Field(&r.AttackDieSides, validation.Required, validation.Min(1)),
		validation.Field(&r.TimesLooted, atLeast(0)),
	), "name", "description", "attackDieCount", "attackDieSides", "timesLooted")
}

// PatchWeaponRequest carries a partial update. Nil fields were absent from
// the payload and leave the stored value untouched.
type PatchWeaponRequest struct {
	Name           *string `json:"name"`
	Description    *string `json:"description"`
	AttackDieCount *int    `json:"attackDieCount"`
	AttackDieSides *int    `json:"attackDieSides"`
	TimesLooted    *int    `json:"timesLooted"`
}

// Validate checks only the fields present in the payload.
func (r *PatchWeaponRequest) Validate() error {
	return firstFieldError(validation.ValidateStruct(r,
		validation.Field(&r.Name, validation.NilOrNotEmpty),
		validation.Field(&r.Description, validation.NilOrNotEmpty),
		validation.Field(&r.AttackDieCount, atLeast(1)),
		validation.Field(&r.AttackDieSides, atLeast(1)),
		validation.Field(&r.TimesLooted, atLeast(0)),
	), "name", "description", "attackDieCount", "attackDieSides", "timesLooted")
}

// ReplaceWeaponRequest carries the full payload for a PUT. Every stored
// field is overwritten, so the creation rules apply.
type ReplaceWeaponRequest struct {
	Name           string `json:"name"`
	Description    string `json:"description"`
	AttackDieCount int    `json:"attackDieCount"`
	AttackDieSides int    `json:"attackDieSides"`
	TimesLooted    *int   `json:"timesLooted"`
}

// Validate applies the creation rules to the replacement payload.
func (r *ReplaceWeaponRequest) Validate() error {
	return firstFieldError(validation.ValidateStruct(r,
		validation.Field(&r.Name, validation.Required),
		validation.Field(&r.Description, validation.Required),
		validation.Field(&r.AttackDieCount, validation.Required, validation.Min(1)),
		validation.Field(&r.AttackDieSides, validation.Required, validation.Min(1)),
		validation.Field(&r.TimesLooted, atLeast(0)),
	), "name", "description", "attackDieCount", "attackDieSides", "timesLooted")
}

// WeaponService defines business logic operations for weapons.
type WeaponService interface {
	// ListWeapons retrieves all weapons.
	ListWeapons(ctx context.Context) ([]models.Weapon, error)

	// InspectWeapon retrieves a single weapon by ID.
	InspectWeapon(ctx context.Context, id string) (*models.Weapon, error)

	// CreateWeapon validates the payload, enforces name uniqueness and
	// persists a new weapon with defaults applied.
	CreateWeapon(ctx context.Context, req *CreateWeaponRequest) (*models.Weapon, error)

	// PatchWeapon merges the provided fields onto an existing weapon.
	PatchWeapon(ctx context.Context, id string, req *PatchWeaponRequest) (*models.Weapon, error)

	// ReplaceWeapon overwrites the weapon at the given ID, creating it
	// when missing. Reports whether a new record was created.
	ReplaceWeapon(ctx context.Context, id string, req *ReplaceWeaponRequest) (*models.Weapon, bool, error)

	// DeleteWeapon removes a weapon and returns its last state.
	DeleteWeapon(ctx context.Context, id string) (*models.Weapon, error)
}
