package handler

import (
	"log/slog"
	"net/http"

	"zrpg/internal/domain/services"
	"zrpg/internal/httputil"
)

// EncounterHandler handles encounter HTTP requests
type EncounterHandler struct {
	service services.EncounterService
	logger  *slog.Logger
}

// NewEncounterHandler creates a new encounter handler
func NewEncounterHandler(service services.EncounterService, logger *slog.Logger) *EncounterHandler {
	return &EncounterHandler{
		service: service,
		logger:  logger,
	}
}

// ListEncounters retrieves all encounters
// GET /v1/encounters
func (h *EncounterHandler) ListEncounters(w http.ResponseWriter, r *http.Request) {
	encounters, err := h.service.ListEncounters(r.Context())
	if err != nil {
		respondServiceError(w, r, h.logger, err)
		return
	}

	httputil.RespondResult(w, http.StatusOK, encounters)
}

// GetEncounter retrieves an encounter by ID
// GET /v1/encounters/{id}
func (h *EncounterHandler) GetEncounter(w http.ResponseWriter, r *http.Request) {
	encounter, err := h.service.InspectEncounter(r.Context(), r.PathValue("id"))
	if err != nil {
		respondServiceError(w, r, h.logger, err)
		return
	}

	httputil.RespondResult(w, http.StatusOK, encounter)
}

// CreateEncounter creates a new encounter
// POST /v1/encounters
func (h *EncounterHandler) CreateEncounter(w http.ResponseWriter, r *http.Request) {
	var req services.CreateEncounterRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		respondParseError(w, err)
		return
	}

	encounter, err := h.service.CreateEncounter(r.Context(), &req)
	if err != nil {
		respondServiceError(w, r, h.logger, err)
		return
	}

	httputil.RespondResult(w, http.StatusCreated, encounter)
}

// PatchEncounter partially updates an encounter
// PATCH /v1/encounters/{id}
func (h *EncounterHandler) PatchEncounter(w http.ResponseWriter, r *http.Request) {
	var req services.PatchEncounterRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		respondParseError(w, err)
		return
	}

	encounter, err := h.service.PatchEncounter(r.Context(), r.PathValue("id"), &req)
	if err != nil {
		respondServiceError(w, r, h.logger, err)
		return
	}

	httputil.RespondResult(w, http.StatusOK, encounter)
}

// ReplaceEncounter fully replaces an encounter, creating it when the ID
// has no record yet
// PUT /v1/encounters/{id}
func (h *EncounterHandler) ReplaceEncounter(w http.ResponseWriter, r *http.Request) {
	var req services.ReplaceEncounterRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		respondParseError(w, err)
		return
	}

	encounter, created, err := h.service.ReplaceEncounter(r.Context(), r.PathValue("id"), &req)
	if err != nil {
		respondServiceError(w, r, h.logger, err)
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	httputil.RespondResult(w, status, encounter)
}

// DeleteEncounter removes an encounter and returns its last known state
// DELETE /v1/encounters/{id}
func (h *EncounterHandler) DeleteEncounter(w http.ResponseWriter, r *http.Request) {
	encounter, err := h.service.DeleteEncounter(r.Context(), r.PathValue("id"))
	if err != nil {
		respondServiceError(w, r, h.logger, err)
		return
	}

	httputil.RespondResult(w, http.StatusOK, encounter)
}
