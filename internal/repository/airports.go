package repository

import (
	"context"
	"database/sql"

	"skyport/internal/database"
	"skyport/internal/models"
)

type AirportRepository struct {
	db *database.DB
}

func NewAirportRepository(db *database.DB) *AirportRepository {
	return &AirportRepository{db: db}
}

func (r *AirportRepository) Create(ctx context.Context, airport *models.Airport) error {
	query := `
		INSERT INTO airports (name, closest_big_city)
		VALUES ($1, $2)
		RETURNING id`

	return r.db.QueryRowContext(ctx, query,
		airport.Name,
		airport.ClosestBigCity,
	).Scan(&airport.ID)
}

func (r *AirportRepository) GetByID(ctx context.Context, id int64) (*models.Airport, error) {
	airport := &models.Airport{}
	query := `SELECT id, name, closest_big_city FROM airports WHERE id = $1`

	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&airport.ID,
		&airport.Name,
		&airport.ClosestBigCity,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}

	return airport, err
}

func (r *AirportRepository) List(ctx context.Context, filter models.AirportFilter) ([]models.Airport, error) {
	var airports []models.Airport
	query := `
		SELECT id, name, closest_big_city
		FROM airports
		WHERE ($1 = '' OR name ILIKE '%' || $1 || '%')
		ORDER BY id`

	rows, err := r.db.QueryContext(ctx, query, filter.Name)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var airport models.Airport
		if err := rows.Scan(&airport.ID, &airport.Name, &airport.ClosestBigCity); err != nil {
			return nil, err
		}
		airports = append(airports, airport)
	}

	return airports, rows.Err()
}

func (r *AirportRepository) Update(ctx context.Context, airport *models.Airport) (bool, error) {
	query := `UPDATE airports SET name = $1, closest_big_city = $2 WHERE id = $3`

	result, err := r.db.ExecContext(ctx, query, airport.Name, airport.ClosestBigCity, airport.ID)
	if err != nil {
		return false, err
	}

	affected, err := result.RowsAffected()
	return affected > 0, err
}

func (r *AirportRepository) Delete(ctx context.Context, id int64) (bool, error) {
	result, err := r.db.ExecContext(ctx, `DELETE FROM airports WHERE id = $1`, id)
	if err != nil {
		return false, err
	}

	affected, err := result.RowsAffected()
	return affected > 0, err
}
