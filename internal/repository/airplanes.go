package repository

import (
	"context"
	"database/sql"

	"skyport/internal/database"
	"skyport/internal/models"
)

type AirplaneTypeRepository struct {
	db *database.DB
}

func NewAirplaneTypeRepository(db *database.DB) *AirplaneTypeRepository {
	return &AirplaneTypeRepository{db: db}
}

func (r *AirplaneTypeRepository) Create(ctx context.Context, airplaneType *models.AirplaneType) error {
	query := `INSERT INTO airplane_types (name) VALUES ($1) RETURNING id`
	return r.db.QueryRowContext(ctx, query, airplaneType.Name).Scan(&airplaneType.ID)
}

func (r *AirplaneTypeRepository) GetByID(ctx context.Context, id int64) (*models.AirplaneType, error) {
	airplaneType := &models.AirplaneType{}
	query := `SELECT id, name FROM airplane_types WHERE id = $1`

	err := r.db.QueryRowContext(ctx, query, id).Scan(&airplaneType.ID, &airplaneType.Name)
	if err == sql.ErrNoRows {
		return nil, nil
	}

	return airplaneType, err
}

func (r *AirplaneTypeRepository) List(ctx context.Context) ([]models.AirplaneType, error) {
	var types []models.AirplaneType
	query := `SELECT id, name FROM airplane_types ORDER BY id`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var airplaneType models.AirplaneType
		if err := rows.Scan(&airplaneType.ID, &airplaneType.Name); err != nil {
			return nil, err
		}
		types = append(types, airplaneType)
	}

	return types, rows.Err()
}

func (r *AirplaneTypeRepository) Delete(ctx context.Context, id int64) (bool, error) {
	result, err := r.db.ExecContext(ctx, `DELETE FROM airplane_types WHERE id = $1`, id)
	if err != nil {
		return false, err
	}

	affected, err := result.RowsAffected()
	return affected > 0, err
}

type AirplaneRepository struct {
	db *database.DB
}

func NewAirplaneRepository(db *database.DB) *AirplaneRepository {
	return &AirplaneRepository{db: db}
}

func (r *AirplaneRepository) Create(ctx context.Context, airplane *models.Airplane) error {
	query := `
		INSERT INTO airplanes (name, rows, seats_in_row, airplane_type_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id`

	return r.db.QueryRowContext(ctx, query,
		airplane.Name,
		airplane.Rows,
		airplane.SeatsInRow,
		airplane.AirplaneTypeID,
	).Scan(&airplane.ID)
}

func (r *AirplaneRepository) GetByID(ctx context.Context, id int64) (*models.Airplane, error) {
	airplane := &models.Airplane{}
	query := `
		SELECT a.id, a.name, a.rows, a.seats_in_row, a.airplane_type_id, a.image_path, t.name
		FROM airplanes a
		JOIN airplane_types t ON t.id = a.airplane_type_id
		WHERE a.id = $1`

	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&airplane.ID,
		&airplane.Name,
		&airplane.Rows,
		&airplane.SeatsInRow,
		&airplane.AirplaneTypeID,
		&airplane.ImagePath,
		&airplane.AirplaneTypeName,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}

	return airplane, err
}

func (r *AirplaneRepository) List(ctx context.Context, filter models.AirplaneFilter) ([]models.Airplane, error) {
	var airplanes []models.Airplane
	query := `
		SELECT a.id, a.name, a.rows, a.seats_in_row, a.airplane_type_id, a.image_path, t.name
		FROM airplanes a
		JOIN airplane_types t ON t.id = a.airplane_type_id
		WHERE ($1 = '' OR a.name ILIKE '%' || $1 || '%')
		ORDER BY a.id`

	rows, err := r.db.QueryContext(ctx, query, filter.Name)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var airplane models.Airplane
		err := rows.Scan(
			&airplane.ID,
			&airplane.Name,
			&airplane.Rows,
			&airplane.SeatsInRow,
			&airplane.AirplaneTypeID,
			&airplane.ImagePath,
			&airplane.AirplaneTypeName,
		)
		if err != nil {
			return nil, err
		}
		airplanes = append(airplanes, airplane)
	}

	return airplanes, rows.Err()
}

func (r *AirplaneRepository) Update(ctx context.Context, airplane *models.Airplane) (bool, error) {
	query := `
		UPDATE airplanes
		SET name = $1, rows = $2, seats_in_row = $3, airplane_type_id = $4
		WHERE id = $5`

	result, err := r.db.ExecContext(ctx, query,
		airplane.Name,
		airplane.Rows,
		airplane.SeatsInRow,
		airplane.AirplaneTypeID,
		airplane.ID,
	)
	if err != nil {
		return false, err
	}

	affected, err := result.RowsAffected()
	return affected > 0, err
}

func (r *AirplaneRepository) UpdateImagePath(ctx context.Context, id int64, path string) (bool, error) {
	result, err := r.db.ExecContext(ctx,
		`UPDATE airplanes SET image_path = $1 WHERE id = $2`, path, id)
	if err != nil {
		return false, err
	}

	affected, err := result.RowsAffected()
	return affected > 0, err
}

func (r *AirplaneRepository) Delete(ctx context.Context, id int64) (bool, error) {
	result, err := r.db.ExecContext(ctx, `DELETE FROM airplanes WHERE id = $1`, id)
	if err != nil {
		return false, err
	}

	affected, err := result.RowsAffected()
	return affected > 0, err
}
