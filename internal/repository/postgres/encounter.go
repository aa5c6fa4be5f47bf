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

// PostgresEncounterRepository implements the EncounterRepository interface
type PostgresEncounterRepository struct {
	pool   *pgxpool.Pool
	tables *TableNames
}

// NewEncounterRepository creates a new encounter repository
func NewEncounterRepository(config *RepositoryConfig) repositories.EncounterRepository {
	return &PostgresEncounterRepository{
		pool:   config.Pool,
		tables: config.Tables,
	}
}

// List retrieves all encounters
func (r *PostgresEncounterRepository) List(ctx context.Context) ([]models.Encounter, error) {
	query := fmt.Sprintf(`
		SELECT id, title, description, actions, number_of_runs, created_at, updated_at
		FROM %s
	`, r.tables.Encounters)

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list encounters: %w", err)
	}
	defer rows.Close()

	var encounters []models.Encounter
	for rows.Next() {
		var encounter models.Encounter
		err := rows.Scan(
			&encounter.ID,
			&encounter.Title,
			&encounter.Description,
			&encounter.Actions,
			&encounter.NumberOfRuns,
			&encounter.CreatedAt,
			&encounter.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan encounter: %w", err)
		}
		encounters = append(encounters, encounter)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate encounters: %w", err)
	}

	// Return empty slice instead of nil if no encounters
	if encounters == nil {
		encounters = []models.Encounter{}
	}

	return encounters, nil
}

// GetByID retrieves an encounter by ID
func (r *PostgresEncounterRepository) GetByID(ctx context.Context, id string) (*models.Encounter, error) {
	query := fmt.Sprintf(`
		SELECT id, title, description, actions, number_of_runs, created_at, updated_at
		FROM %s
		WHERE id = $1
	`, r.tables.Encounters)

	var encounter models.Encounter
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&encounter.ID,
		&encounter.Title,
		&encounter.Description,
		&encounter.Actions,
		&encounter.NumberOfRuns,
		&encounter.CreatedAt,
		&encounter.UpdatedAt,
	)

	if err != nil {
		if IsPgNoRowsError(err) {
			return nil, &domain.NotFoundError{ID: id}
		}
		return nil, fmt.Errorf("get encounter: %w", err)
	}

	return &encounter, nil
}

// FindByTitle looks up an encounter by exact title
func (r *PostgresEncounterRepository) FindByTitle(ctx context.Context, title string) (*models.Encounter, error) {
	return r.findByTitle(ctx, title, nil)
}

// FindByTitleExcluding looks up an encounter by title, ignoring one ID
func (r *PostgresEncounterRepository) FindByTitleExcluding(ctx context.Context, title, excludeID string) (*models.Encounter, error) {
	return r.findByTitle(ctx, title, &excludeID)
}

func (r *PostgresEncounterRepository) findByTitle(ctx context.Context, title string, excludeID *string) (*models.Encounter, error) {
	query := fmt.Sprintf(`
		SELECT id, title, description, actions, number_of_runs, created_at, updated_at
		FROM %s
		WHERE title = $1
	`, r.tables.Encounters)
	args := []any{title}

	if excludeID != nil {
		query += ` AND id <> $2`
		args = append(args, *excludeID)
	}

	var encounter models.Encounter
	err := r.pool.QueryRow(ctx, query, args...).Scan(
		&encounter.ID,
		&encounter.Title,
		&encounter.Description,
		&encounter.Actions,
		&encounter.NumberOfRuns,
		&encounter.CreatedAt,
		&encounter.UpdatedAt,
	)

	if err != nil {
		if IsPgNoRowsError(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("find encounter by title: %w", err)
	}

	return &encounter, nil
}

// Create persists a new encounter with a freshly generated ID
func (r *PostgresEncounterRepository) Create(ctx context.Context, encounter *models.Encounter) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (id, title, description, actions, number_of_runs, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at, updated_at
	`, r.tables.Encounters)

	encounter.ID = objectid.New()
	err := r.pool.QueryRow(ctx, query,
		encounter.ID,
		encounter.Title,
		encounter.Description,
		encounter.Actions,
		encounter.NumberOfRuns,
		encounter.CreatedAt,
		encounter.UpdatedAt,
	).Scan(&encounter.CreatedAt, &encounter.UpdatedAt)

	if err != nil {
		if IsPgDuplicateError(err) {
			return &domain.DuplicateKeyError{Resource: "encounter", Field: "title", Key: encounter.Title}
		}
		return fmt.Errorf("create encounter: %w", err)
	}

	return nil
}

// Update overwrites all fields of an existing encounter
func (r *PostgresEncounterRepository) Update(ctx context.Context, encounter *models.Encounter) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET title = $1, description = $2, actions = $3, number_of_runs = $4, updated_at = $5
		WHERE id = $6
	`, r.tables.Encounters)

	result, err := r.pool.Exec(ctx, query,
		encounter.Title,
		encounter.Description,
		encounter.Actions,
		encounter.NumberOfRuns,
		encounter.UpdatedAt,
		encounter.ID,
	)

	if err != nil {
		if IsPgDuplicateError(err) {
			return &domain.DuplicateKeyError{Resource: "encounter", Field: "title", Key: encounter.Title}
		}
		return fmt.Errorf("update encounter: %w", err)
	}

	if result.RowsAffected() == 0 {
		return &domain.NotFoundError{ID: encounter.ID}
	}

	return nil
}

// Upsert writes the encounter at its exact ID, creating or fully
// replacing. The original created_at survives replacement; xmax = 0 marks
// a freshly inserted row.
func (r *PostgresEncounterRepository) Upsert(ctx context.Context, encounter *models.Encounter) (bool, error) {
	query := fmt.Sprintf(`
		INSERT INTO %s (id, title, description, actions, number_of_runs, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (id) DO UPDATE
		SET title = EXCLUDED.title,
		    description = EXCLUDED.description,
		    actions = EXCLUDED.actions,
		    number_of_runs = EXCLUDED.number_of_runs,
		    updated_at = EXCLUDED.updated_at
		RETURNING created_at, updated_at, (xmax = 0) AS inserted
	`, r.tables.Encounters)

	var created bool
	err := r.pool.QueryRow(ctx, query,
		encounter.ID,
		encounter.Title,
		encounter.Description,
		encounter.Actions,
		encounter.NumberOfRuns,
		encounter.CreatedAt,
		encounter.UpdatedAt,
	).Scan(&encounter.CreatedAt, &encounter.UpdatedAt, &created)

	if err != nil {
		if IsPgDuplicateError(err) {
			return false, &domain.DuplicateKeyError{Resource: "encounter", Field: "title", Key: encounter.Title}
		}
		return false, fmt.Errorf("upsert encounter: %w", err)
	}

	return created, nil
}

// Delete removes an encounter and returns its last known state
func (r *PostgresEncounterRepository) Delete(ctx context.Context, id string) (*models.Encounter, error) {
	query := fmt.Sprintf(`
		DELETE FROM %s
		WHERE id = $1
		RETURNING id, title, description, actions, number_of_runs, created_at, updated_at
	`, r.tables.Encounters)

	var encounter models.Encounter
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&encounter.ID,
		&encounter.Title,
		&encounter.Description,
		&encounter.Actions,
		&encounter.NumberOfRuns,
		&encounter.CreatedAt,
		&encounter.UpdatedAt,
	)

	if err != nil {
		if IsPgNoRowsError(err) {
			return nil, &domain.NotFoundError{ID: id}
		}
		return nil, fmt.Errorf("delete encounter: %w", err)
	}

	return &encounter, nil
}
