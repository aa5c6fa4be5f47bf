package models

import (
	"time"
)

// Weapon is an item a player can use to fend off the zombies. Attack power
// is a dice roll: AttackDieCount dice with AttackDieSides sides each.
// Names are unique across all weapons.
type Weapon struct {
	ID             string    `json:"id" db:"id"`
	Name           string    `json:"name" db:"name"`
	Description    string    `json:"description" db:"description"`
	AttackDieCount int       `json:"attackDieCount" db:"attack_die_count"`
	AttackDieSides int       `json:"attackDieSides" db:"attack_die_sides"`
	TimesLooted    int       `json:"timesLooted" db:"times_looted"`
	CreatedAt      time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt      time.Time `json:"updatedAt" db:"updated_at"`
}
