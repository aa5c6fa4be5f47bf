package handler

import (
	"net/http"
)

// RegisterRoutes wires all resource endpoints onto the mux using Go 1.22+
// method patterns. Shared between the server entrypoint and tests.
func RegisterRoutes(mux *http.ServeMux, encounters *EncounterHandler, weapons *WeaponHandler) {
	mux.HandleFunc("GET /health", HealthCheck)

	// Encounter routes
	mux.HandleFunc("GET /v1/encounters", encounters.ListEncounters)
	mux.HandleFunc("POST /v1/encounters", encounters.CreateEncounter)
	mux.HandleFunc("GET /v1/encounters/{id}", encounters.GetEncounter)
	mux.HandleFunc("PATCH /v1/encounters/{id}", encounters.PatchEncounter)
	mux.HandleFunc("PUT /v1/encounters/{id}", encounters.ReplaceEncounter)
	mux.HandleFunc("DELETE /v1/encounters/{id}", encounters.DeleteEncounter)

	// Weapon routes
	mux.HandleFunc("GET /v1/weapons", weapons.ListWeapons)
	mux.HandleFunc("POST /v1/weapons", weapons.CreateWeapon)
	mux.HandleFunc("GET /v1/weapons/{id}", weapons.GetWeapon)
	mux.HandleFunc("PATCH /v1/weapons/{id}", weapons.PatchWeapon)
	mux.HandleFunc("PUT /v1/weapons/{id}", weapons.ReplaceWeapon)
	mux.HandleFunc("DELETE /v1/weapons/{id}", weapons.DeleteWeapon)
}
