package handler

import (
	"log/slog"
	"net/http"

	"zrpg/internal/domain/services"
	"zrpg/internal/httputil"
)

// WeaponHandler handles weapon HTTP requests
type WeaponHandler struct {
	service services.WeaponService
	logger  *slog.Logger
}

// NewWeaponHandler creates a new weapon handler
func NewWeaponHandler(service services.WeaponService, logger *slog.Logger) *WeaponHandler {
	return &WeaponHandler{
		service: service,
		logger:  logger,
	}
}

// ListWeapons retrieves all weapons
// GET /v1/weapons
func (h *WeaponHandler) ListWeapons(w http.ResponseWriter, r *http.Request) {
	weapons, err := h.service.ListWeapons(r.Context())
	if err != nil {
		respondServiceError(w, r, h.logger, err)
		return
	}

	httputil.RespondResult(w, http.StatusOK, weapons)
}

// GetWeapon retrieves a weapon by ID
// GET /v1/weapons/{id}
func (h *WeaponHandler) GetWeapon(w http.ResponseWriter, r *http.Request) {
	weapon, err := h.service.InspectWeapon(r.Context(), r.PathValue("id"))
	if err != nil {
		respondServiceError(w, r, h.logger, err)
		return
	}

	httputil.RespondResult(w, http.StatusOK, weapon)
}

// CreateWeapon creates a new weapon
// POST /v1/weapons
func (h *WeaponHandler) CreateWeapon(w http.ResponseWriter, r *http.Request) {
	var req services.CreateWeaponRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		respondParseError(w, err)
		return
	}

	weapon, err := h.service.CreateWeapon(r.Context(), &req)
	if err != nil {
		respondServiceError(w, r, h.logger, err)
		return
	}

	httputil.RespondResult(w, http.StatusCreated, weapon)
}

// PatchWeapon partially updates a weapon
// PATCH /v1/weapons/{id}
func (h *WeaponHandler) PatchWeapon(w http.ResponseWriter, r *http.Request) {
	var req services.PatchWeaponRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		respondParseError(w, err)
		return
	}

	weapon, err := h.service.PatchWeapon(r.Context(), r.PathValue("id"), &req)
	if err != nil {
		respondServiceError(w, r, h.logger, err)
		return
	}

	httputil.RespondResult(w, http.StatusOK, weapon)
}

// ReplaceWeapon fully replaces a weapon, creating it when the ID has no
// record yet
// PUT /v1/weapons/{id}
func (h *WeaponHandler) ReplaceWeapon(w http.ResponseWriter, r *http.Request) {
	var req services.ReplaceWeaponRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		respondParseError(w, err)
		return
	}

	weapon, created, err := h.service.ReplaceWeapon(r.Context(), r.PathValue("id"), &req)
	if err != nil {
		respondServiceError(w, r, h.logger, err)
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	httputil.RespondResult(w, status, weapon)
}

// DeleteWeapon removes a weapon and returns its last known state
// DELETE /v1/weapons/{id}
func (h *WeaponHandler) DeleteWeapon(w http.ResponseWriter, r *http.Request) {
	weapon, err := h.service.DeleteWeapon(r.Context(), r.PathValue("id"))
	if err != nil {
		respondServiceError(w, r, h.logger, err)
		return
	}

	httputil.RespondResult(w, http.StatusOK, weapon)
}
