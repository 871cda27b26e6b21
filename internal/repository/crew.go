package repository

import (
	"context"
	"database/sql"

	"skyport/internal/database"
	"skyport/internal/models"
)

type CrewRepository struct {
	db *database.DB
}

func NewCrewRepository(db *database.DB) *CrewRepository {
	return &CrewRepository{db: db}
}

func (r *CrewRepository) Create(ctx context.Context, member *models.Crew) error {
	query := `
		INSERT INTO crew (first_name, last_name)
		VALUES ($1, $2)
		RETURNING id`

	return r.db.QueryRowContext(ctx, query,
		member.FirstName,
		member.LastName,
	).Scan(&member.ID)
}

func (r *CrewRepository) GetByID(ctx context.Context, id int64) (*models.Crew, error) {
	member := &models.Crew{}
	query := `SELECT id, first_name, last_name FROM crew WHERE id = $1`

	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&member.ID,
		&member.FirstName,
		&member.LastName,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}

	return member, err
}

func (r *CrewRepository) List(ctx context.Context, filter models.CrewFilter) ([]models.Crew, error) {
	var members []models.Crew
	query := `
		SELECT id, first_name, last_name
		FROM crew
		WHERE ($1 = '' OR first_name ILIKE '%' || $1 || '%')
		  AND ($2 = '' OR last_name ILIKE '%' || $2 || '%')
		ORDER BY id`

	rows, err := r.db.QueryContext(ctx, query, filter.FirstName, filter.LastName)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var member models.Crew
		if err := rows.Scan(&member.ID, &member.FirstName, &member.LastName); err != nil {
			return nil, err
		}
		members = append(members, member)
	}

	return members, rows.Err()
}

func (r *CrewRepository) Update(ctx context.Context, member *models.Crew) (bool, error) {
	query := `UPDATE crew SET first_name = $1, last_name = $2 WHERE id = $3`

	result, err := r.db.ExecContext(ctx, query, member.FirstName, member.LastName, member.ID)
	if err != nil {
		return false, err
	}

	affected, err := result.RowsAffected()
	return affected > 0, err
}

func (r *CrewRepository) Delete(ctx context.Context, id int64) (bool, error) {
	result, err := r.db.ExecContext(ctx, `DELETE FROM crew WHERE id = $1`, id)
	if err != nil {
		return false, err
	}

	affected, err := result.RowsAffected()
	return affected > 0, err
}

// ExistAll reports whether every ID in ids refers to a crew member.
func (r *CrewRepository) ExistAll(ctx context.Context, ids []int64) (bool, error) {
	if len(ids) == 0 {
		return true, nil
	}

	var count int
	query := `SELECT COUNT(DISTINCT id) FROM crew WHERE id = ANY($1)`
	if err := r.db.QueryRowContext(ctx, query, int64Array(ids)).Scan(&count); err != nil {
		return false, err
	}

	distinct := make(map[int64]struct{}, len(ids))
	for _, id := range ids {
		distinct[id] = struct{}{}
	}

	return count == len(distinct), nil
}
