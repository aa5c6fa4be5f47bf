// Package seed loads game fixtures from a YAML file and inserts them
// through the service layer, so seeded data passes the same validation
// and uniqueness rules as API traffic.
package seed

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"
	"zrpg/internal/domain"
	"zrpg/internal/domain/services"
)

// EncounterFixture is one encounter entry in a seed file
type EncounterFixture struct {
	Title        string   `yaml:"title"`
	Description  string   `yaml:"description"`
	Actions      []string `yaml:"actions"`
	NumberOfRuns *int     `yaml:"numberOfRuns"`
}

// WeaponFixture is one weapon entry in a seed file
type WeaponFixture struct {
	Name           string `yaml:"name"`
	Description    string `yaml:"description"`
	AttackDieCount int    `yaml:"attackDieCount"`
	AttackDieSides int    `yaml:"attackDieSides"`
	TimesLooted    *int   `yaml:"timesLooted"`
}

// File is the top-level shape of a seed file
type File struct {
	Encounters []EncounterFixture `yaml:"encounters"`
	Weapons    []WeaponFixture    `yaml:"weapons"`
}

// Load reads and parses a YAML seed file
func Load(path string) (*File, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}

	return Parse(raw)
}

// Parse decodes seed fixtures from raw YAML
func Parse(raw []byte) (*File, error) {
	var file File
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("parse seed file: %w", err)
	}

	return &file, nil
}

// Run inserts all fixtures. Fixtures whose natural key already exists are
// logged and skipped so reseeding an existing database is safe; any other
// failure aborts.
func Run(ctx context.Context, file *File, encounters services.EncounterService, weapons services.WeaponService, logger *slog.Logger) error {
	for _, fixture := range file.Encounters {
		req := &services.CreateEncounterRequest{
			Title:        fixture.Title,
			Description:  fixture.Description,
			Actions:      fixture.Actions,
			NumberOfRuns: fixture.NumberOfRuns,
		}

		encounter, err := encounters.CreateEncounter(ctx, req)
		if err != nil {
			if errors.Is(err, domain.ErrConflict) {
				logger.Warn("encounter already seeded, skipping", "title", fixture.Title)
				continue
			}
			return fmt.Errorf("seed encounter %q: %w", fixture.Title, err)
		}

		logger.Info("encounter seeded", "id", encounter.ID, "title", encounter.Title)
	}

	for _, fixture := range file.Weapons {
		req := &services.CreateWeaponRequest{
			Name:           fixture.Name,
			Description:    fixture.Description,
			AttackDieCount: fixture.AttackDieCount,
			AttackDieSides: fixture.AttackDieSides,
			TimesLooted:    fixture.TimesLooted,
		}

		weapon, err := weapons.CreateWeapon(ctx, req)
		if err != nil {
			if errors.Is(err, domain.ErrConflict) {
				logger.Warn("weapon already seeded, skipping", "name", fixture.Name)
				continue
			}
			return fmt.Errorf("seed weapon %q: %w", fixture.Name, err)
		}

		logger.Info("weapon seeded", "id", weapon.ID, "name", weapon.Name)
	}

	return nil
}
