package models

import (
	"time"
)

// Encounter is an event that can happen to a player. Titles are unique
// across all encounters.
type Encounter struct {
	ID           string    `json:"id" db:"id"`
	Title        string    `json:"title" db:"title"`
	Description  string    `json:"description" db:"description"`
	Actions      []string  `json:"actions" db:"actions"` // player choices, empty when none defined
	NumberOfRuns int       `json:"numberOfRuns" db:"number_of_runs"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt    time.Time `json:"updatedAt" db:"updated_at"`
}
