package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"zrpg/internal/domain"
	"zrpg/internal/domain/models"
	"zrpg/internal/domain/repositories"
	"zrpg/internal/objectid"
)

// PostgresWeaponRepository implements the WeaponRepository interface
type PostgresWeaponRepository struct {
	pool   *pgxpool.Pool
	tables *TableNames
}

// NewWeaponRepository creates a new weapon repository
func NewWeaponRepository(config *RepositoryConfig) repositories.WeaponRepository {
	return &PostgresWeaponRepository{
		pool:   config.Pool,
		tables: config.Tables,
	}
}

// List retrieves all weapons
func (r *PostgresWeaponRepository) List(ctx context.Context) ([]models.Weapon, error) {
	query := fmt.Sprintf(`
		SELECT id, name, description, attack_die_count, attack_die_sides, times_looted, created_at, updated_at
		FROM %s
	`, r.tables.Weapons)

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list weapons: %w", err)
	}
	defer rows.Close()

	var weapons []models.Weapon
	for rows.Next() {
		var weapon models.Weapon
		err := rows.Scan(
			&weapon.ID,
			&weapon.Name,
			&weapon.Description,
			&weapon.AttackDieCount,
			&weapon.AttackDieSides,
			&weapon.TimesLooted,
			&weapon.CreatedAt,
			&weapon.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan weapon: %w", err)
		}
		weapons = append(weapons, weapon)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate weapons: %w", err)
	}

	// Return empty slice instead of nil if no weapons
	if weapons == nil {
		weapons = []models.Weapon{}
	}

	return weapons, nil
}

// GetByID retrieves a weapon by ID
func (r *PostgresWeaponRepository) GetByID(ctx context.Context, id string) (*models.Weapon, error) {
	query := fmt.Sprintf(`
		SELECT id, name, description, attack_die_count, attack_die_sides, times_looted, created_at, updated_at
		FROM %s
		WHERE id = $1
	`, r.tables.Weapons)

	var weapon models.Weapon
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&weapon.ID,
		&weapon.Name,
		&weapon.Description,
		&weapon.AttackDieCount,
		&weapon.AttackDieSides,
		&weapon.TimesLooted,
		&weapon.CreatedAt,
		&weapon.UpdatedAt,
	)

	if err != nil {
		if IsPgNoRowsError(err) {
			return nil, &domain.NotFoundError{ID: id}
		}
		return nil, fmt.Errorf("get weapon: %w", err)
	}

	return &weapon, nil
}

// FindByName looks up a weapon by exact name
func (r *PostgresWeaponRepository) FindByName(ctx context.Context, name string) (*models.Weapon, error) {
	return r.findByName(ctx, name, nil)
}

// FindByNameExcluding looks up a weapon by name, ignoring one ID
func (r *PostgresWeaponRepository) FindByNameExcluding(ctx context.Context, name, excludeID string) (*models.Weapon, error) {
	return r.findByName(ctx, name, &excludeID)
}

func (r *PostgresWeaponRepository) findByName(ctx context.Context, name string, excludeID *string) (*models.Weapon, error) {
	query := fmt.Sprintf(`
		SELECT id, name, description, attack_die_count, attack_die_sides, times_looted, created_at, updated_at
		FROM %s
		WHERE name = $1
	`, r.tables.Weapons)
	args := []any{name}

	if excludeID != nil {
		query += ` AND id <> $2`
		args = append(args, *excludeID)
	}

	var weapon models.Weapon
	err := r.pool.QueryRow(ctx, query, args...).Scan(
		&weapon.ID,
		&weapon.Name,
		&weapon.Description,
		&weapon.AttackDieCount,
		&weapon.AttackDieSides,
		&weapon.TimesLooted,
		&weapon.CreatedAt,
		&weapon.UpdatedAt,
	)

	if err != nil {
		if IsPgNoRowsError(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("find weapon by name: %w", err)
	}

	return &weapon, nil
}

// Create persists a new weapon with a freshly generated ID
func (r *PostgresWeaponRepository) Create(ctx context.Context, weapon *models.Weapon) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (id, name, description, attack_die_count, attack_die_sides, times_looted, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING created_at, updated_at
	`, r.tables.Weapons)

	weapon.ID = objectid.New()
	err := r.pool.QueryRow(ctx, query,
		weapon.ID,
		weapon.Name,
		weapon.Description,
		weapon.AttackDieCount,
		weapon.AttackDieSides,
		weapon.TimesLooted,
		weapon.CreatedAt,
		weapon.UpdatedAt,
	).Scan(&weapon.CreatedAt, &weapon.UpdatedAt)

	if err != nil {
		if IsPgDuplicateError(err) {
			return &domain.DuplicateKeyError{Resource: "weapon", Field: "name", Key: weapon.Name}
		}
		return fmt.Errorf("create weapon: %w", err)
	}

	return nil
}

// Update overwrites all fields of an existing weapon
func (r *PostgresWeaponRepository) Update(ctx context.Context, weapon *models.Weapon) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET name = $1, description = $2, attack_die_count = $3, attack_die_sides = $4, times_looted = $5, updated_at = $6
		WHERE id = $7
	`, r.tables.Weapons)

	result, err := r.pool.Exec(ctx, query,
		weapon.Name,
		weapon.Description,
		weapon.AttackDieCount,
		weapon.AttackDieSides,
		weapon.TimesLooted,
		weapon.UpdatedAt,
		weapon.ID,
	)

	if err != nil {
		if IsPgDuplicateError(err) {
			return &domain.DuplicateKeyError{Resource: "weapon", Field: "name", Key: weapon.Name}
		}
		return fmt.Errorf("update weapon: %w", err)
	}

	if result.RowsAffected() == 0 {
		return &domain.NotFoundError{ID: weapon.ID}
	}

	return nil
}

// Upsert writes the weapon at its exact ID, creating or fully replacing.
// The original created_at survives replacement; xmax = 0 marks a freshly
// inserted row.
func (r *PostgresWeaponRepository) Upsert(ctx context.Context, weapon *models.Weapon) (bool, error) {
	query := fmt.Sprintf(`
		INSERT INTO %s (id, name, description, attack_die_count, attack_die_sides, times_looted, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (id) DO UPDATE
		SET name = EXCLUDED.name,
		    description = EXCLUDED.description,
		    attack_die_count = EXCLUDED.attack_die_count,
		    attack_die_sides = EXCLUDED.attack_die_sides,
		    times_looted = EXCLUDED.times_looted,
		    updated_at = EXCLUDED.updated_at
		RETURNING created_at, updated_at, (xmax = 0) AS inserted
	`, r.tables.Weapons)

	var created bool
	err := r.pool.QueryRow(ctx, query,
		weapon.ID,
		weapon.Name,
		weapon.Description,
		weapon.AttackDieCount,
		weapon.AttackDieSides,
		weapon.TimesLooted,
		weapon.CreatedAt,
		weapon.UpdatedAt,
	).Scan(&weapon.CreatedAt, &weapon.UpdatedAt, &created)

	if err != nil {
		if IsPgDuplicateError(err) {
			return false, &domain.DuplicateKeyError{Resource: "weapon", Field: "name", Key: weapon.Name}
		}
		return false, fmt.Errorf("upsert weapon: %w", err)
	}

	return created, nil
}

// Delete removes a weapon and returns its last known state
func (r *PostgresWeaponRepository) Delete(ctx context.Context, id string) (*models.Weapon, error) {
	query := fmt.Sprintf(`
		DELETE FROM %s
		WHERE id = $1
		RETURNING id, name, description, attack_die_count, attack_die_sides, times_looted, created_at, updated_at
	`, r.tables.Weapons)

	var weapon models.Weapon
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&weapon.ID,
		&weapon.Name,
		&weapon.Description,
		&weapon.AttackDieCount,
		&weapon.AttackDieSides,
		&weapon.TimesLooted,
		&weapon.CreatedAt,
		&weapon.UpdatedAt,
	)

	if err != nil {
		if IsPgNoRowsError(err) {
			return nil, &domain.NotFoundError{ID: id}
		}
		return nil, fmt.Errorf("delete weapon: %w", err)
	}

	return &weapon, nil
}
