package services

import (
	"context"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"zrpg/internal/domain/models"
)

// CreateEncounterRequest carries the fields accepted when creating an
// encounter. Actions and NumberOfRuns are optional and default to an empty
// list and zero.
type CreateEncounterRequest struct {
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Actions      []string `json:"actions"`
	NumberOfRuns *int     `json:"numberOfRuns"`
}

// Validate checks the payload shape. Fields are checked in a fixed order
// and the first failing field wins.
func (r *CreateEncounterRequest) Validate() error {
	return firstFieldError(validation.ValidateStruct(r,
		validation.Field(&r.Title, validation.Required),
		validation.Field(&r.Description, validation.Required),
		validation.Field(&r.NumberOfRuns, atLeast(0)),
	), "title", "description", "numberOfRuns")
}

// PatchEncounterRequest carries a partial update. Nil fields were absent
// from the payload and leave the stored value untouched. Actions is a
// pointer to distinguish "not provided" from "clear the list".
type PatchEncounterRequest struct {
	Title        *string   `json:"title"`
	Description  *string   `json:"description"`
	Actions      *[]string `json:"actions"`
	NumberOfRuns *int      `json:"numberOfRuns"`
}

// Validate checks only the fields present in the payload.
func (r *PatchEncounterRequest) Validate() error {
	return firstFieldError(validation.ValidateStruct(r,
		validation.Field(&r.Title, validation.NilOrNotEmpty),
		validation.Field(&r.Description, validation.NilOrNotEmpty),
		validation.Field(&r.NumberOfRuns, atLeast(0)),
	), "title", "description", "numberOfRuns")
}

// ReplaceEncounterRequest carries the full payload for a PUT. Every stored
// field is overwritten, so the creation rules apply.
type ReplaceEncounterRequest struct {
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Actions      []string `json:"actions"`
	NumberOfRuns *int     `json:"numberOfRuns"`
}

// Validate applies the creation rules to the replacement payload.
func (r *ReplaceEncounterRequest) Validate() error {
	return firstFieldError(validation.ValidateStruct(r,
		validation.Field(&r.Title, validation.Required),
		validation.Field(&r.Description, validation.Required),
		validation.Field(&r.NumberOfRuns, atLeast(0)),
	), "title", "description", "numberOfRuns")
}

// EncounterService defines business logic operations for encounters.
type EncounterService interface {
	// ListEncounters retrieves all encounters.
	ListEncounters(ctx context.Context) ([]models.Encounter, error)

	// InspectEncounter retrieves a single encounter by ID.
	InspectEncounter(ctx context.Context, id string) (*models.Encounter, error)

	// CreateEncounter validates the payload, enforces title uniqueness and
	// persists a new encounter with defaults applied.
	CreateEncounter(ctx context.Context, req *CreateEncounterRequest) (*models.Encounter, error)

	// PatchEncounter merges the provided fields onto an existing encounter.
	PatchEncounter(ctx context.Context, id string, req *PatchEncounterRequest) (*models.Encounter, error)

	// ReplaceEncounter overwrites the encounter at the given ID, creating
	// it when missing. Reports whether a new record was created.
	ReplaceEncounter(ctx context.Context, id string, req *ReplaceEncounterRequest) (*models.Encounter, bool, error)

	// DeleteEncounter removes an encounter and returns its last state.
	DeleteEncounter(ctx context.Context, id string) (*models.Encounter, error)
}
