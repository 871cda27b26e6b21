package repository

import (
	"context"
	"database/sql"

	"skyport/internal/apperrors"
	"skyport/internal/database"
	"skyport/internal/models"
)

type RouteRepository struct {
	db *database.DB
}

func NewRouteRepository(db *database.DB) *RouteRepository {
	return &RouteRepository{db: db}
}

func (r *RouteRepository) Create(ctx context.Context, route *models.Route) error {
	query := `
		INSERT INTO routes (source_id, destination_id, distance)
		VALUES ($1, $2, $3)
		RETURNING id`

	err := r.db.QueryRowContext(ctx, query,
		route.SourceID,
		route.DestinationID,
		route.Distance,
	).Scan(&route.ID)

	if isUniqueViolation(err) {
		return apperrors.NewConflict("route from airport %d to airport %d already exists",
			route.SourceID, route.DestinationID)
	}
	return err
}

func (r *RouteRepository) GetByID(ctx context.Context, id int64) (*models.Route, error) {
	route := &models.Route{}
	query := `
		SELECT r.id, r.source_id, r.destination_id, r.distance, src.name, dst.name
		FROM routes r
		JOIN airports src ON src.id = r.source_id
		JOIN airports dst ON dst.id = r.destination_id
		WHERE r.id = $1`

	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&route.ID,
		&route.SourceID,
		&route.DestinationID,
		&route.Distance,
		&route.SourceName,
		&route.DestinationName,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}

	return route, err
}

func (r *RouteRepository) List(ctx context.Context, filter models.RouteFilter) ([]models.Route, error) {
	var routes []models.Route
	query := `
		SELECT r.id, r.source_id, r.destination_id, r.distance, src.name, dst.name
		FROM routes r
		JOIN airports src ON src.id = r.source_id
		JOIN airports dst ON dst.id = r.destination_id
		WHERE ($1 = '' OR src.name ILIKE '%' || $1 || '%')
		  AND ($2 = '' OR dst.name ILIKE '%' || $2 || '%')
		ORDER BY r.id`

	rows, err := r.db.QueryContext(ctx, query, filter.Source, filter.Destination)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var route models.Route
		err := rows.Scan(
			&route.ID,
			&route.SourceID,
			&route.DestinationID,
			&route.Distance,
			&route.SourceName,
			&route.DestinationName,
		)
		if err != nil {
			return nil, err
		}
		routes = append(routes, route)
	}

	return routes, rows.Err()
}

func (r *RouteRepository) Update(ctx context.Context, route *models.Route) (bool, error) {
	query := `
		UPDATE routes
		SET source_id = $1, destination_id = $2, distance = $3
		WHERE id = $4`

	result, err := r.db.ExecContext(ctx, query,
		route.SourceID,
		route.DestinationID,
		route.Distance,
		route.ID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return false, apperrors.NewConflict("route from airport %d to airport %d already exists",
				route.SourceID, route.DestinationID)
		}
		return false, err
	}

	affected, err := result.RowsAffected()
	return affected > 0, err
}

func (r *RouteRepository) Delete(ctx context.Context, id int64) (bool, error) {
	result, err := r.db.ExecContext(ctx, `DELETE FROM routes WHERE id = $1`, id)
	if err != nil {
		return false, err
	}

	affected, err := result.RowsAffected()
	return affected > 0, err
}
