package repository

import (
	"context"
	"database/sql"
	"fmt"

	"skyport/internal/database"
	"skyport/internal/models"
	"skyport/internal/search"
)

type FlightRepository struct {
	db *database.DB
}

func NewFlightRepository(db *database.DB) *FlightRepository {
	return &FlightRepository{db: db}
}

// flightColumns selects a flight with its resolved route, airplane and the
// derived seat availability. tickets_available is computed per query and
// never stored, so it is always consistent with committed tickets.
const flightColumns = `
	f.id, f.route_id, f.airplane_id, f.departure_time, f.arrival_time,
	src.name, dst.name, a.name, a.rows * a.seats_in_row,
	a.rows * a.seats_in_row - (SELECT COUNT(*) FROM tickets t WHERE t.flight_id = f.id)
	FROM flights f
	JOIN routes r ON r.id = f.route_id
	JOIN airports src ON src.id = r.source_id
	JOIN airports dst ON dst.id = r.destination_id
	JOIN airplanes a ON a.id = f.airplane_id`

func (r *FlightRepository) Create(ctx context.Context, flight *models.Flight, crewIDs []int64) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	query := `
		INSERT INTO flights (route_id, airplane_id, departure_time, arrival_time)
		VALUES ($1, $2, $3, $4)
		RETURNING id`

	err = tx.QueryRowContext(ctx, query,
		flight.RouteID,
		flight.AirplaneID,
		flight.DepartureTime,
		flight.ArrivalTime,
	).Scan(&flight.ID)
	if err != nil {
		return err
	}

	if err := insertFlightCrew(ctx, tx, flight.ID, crewIDs); err != nil {
		return err
	}

	return tx.Commit()
}

func (r *FlightRepository) GetByID(ctx context.Context, id int64) (*models.Flight, error) {
	flight := &models.Flight{}
	query := `SELECT` + flightColumns + ` WHERE f.id = $1`

	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&flight.ID,
		&flight.RouteID,
		&flight.AirplaneID,
		&flight.DepartureTime,
		&flight.ArrivalTime,
		&flight.SourceName,
		&flight.DestinationName,
		&flight.AirplaneName,
		&flight.AirplaneCapacity,
		&flight.TicketsAvailable,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	flight.Crew, err = r.getCrew(ctx, id)
	return flight, err
}

func (r *FlightRepository) List(ctx context.Context, filter models.FlightFilter) ([]models.Flight, error) {
	var flights []models.Flight
	query := `SELECT` + flightColumns + `
	WHERE ($1 = '' OR src.name ILIKE '%' || $1 || '%')
	  AND ($2 = '' OR dst.name ILIKE '%' || $2 || '%')
	  AND ($3::date IS NULL OR DATE(f.departure_time) = $3::date)
	ORDER BY f.departure_time, f.id`

	var departureDate sql.NullTime
	if filter.DepartureDate != nil {
		departureDate = sql.NullTime{Time: *filter.DepartureDate, Valid: true}
	}

	rows, err := r.db.QueryContext(ctx, query, filter.Source, filter.Destination, departureDate)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var flight models.Flight
		err := rows.Scan(
			&flight.ID,
			&flight.RouteID,
			&flight.AirplaneID,
			&flight.DepartureTime,
			&flight.ArrivalTime,
			&flight.SourceName,
			&flight.DestinationName,
			&flight.AirplaneName,
			&flight.AirplaneCapacity,
			&flight.TicketsAvailable,
		)
		if err != nil {
			return nil, err
		}
		flights = append(flights, flight)
	}

	return flights, rows.Err()
}

func (r *FlightRepository) Update(ctx context.Context, flight *models.Flight, crewIDs []int64) (bool, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	query := `
		UPDATE flights
		SET route_id = $1, airplane_id = $2, departure_time = $3, arrival_time = $4
		WHERE id = $5`

	result, err := tx.ExecContext(ctx, query,
		flight.RouteID,
		flight.AirplaneID,
		flight.DepartureTime,
		flight.ArrivalTime,
		flight.ID,
	)
	if err != nil {
		return false, err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	if affected == 0 {
		return false, nil
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM flight_crew WHERE flight_id = $1`, flight.ID); err != nil {
		return false, err
	}
	if err := insertFlightCrew(ctx, tx, flight.ID, crewIDs); err != nil {
		return false, err
	}

	return true, tx.Commit()
}

func (r *FlightRepository) Delete(ctx context.Context, id int64) (bool, error) {
	result, err := r.db.ExecContext(ctx, `DELETE FROM flights WHERE id = $1`, id)
	if err != nil {
		return false, err
	}

	affected, err := result.RowsAffected()
	return affected > 0, err
}

// GetSeatGrid returns the seating grid of the airplane serving a flight.
// found is false when the flight does not exist.
func (r *FlightRepository) GetSeatGrid(ctx context.Context, flightID int64) (rows, seatsInRow int, found bool, err error) {
	query := `
		SELECT a.rows, a.seats_in_row
		FROM flights f
		JOIN airplanes a ON a.id = f.airplane_id
		WHERE f.id = $1`

	err = r.db.QueryRowContext(ctx, query, flightID).Scan(&rows, &seatsInRow)
	if err == sql.ErrNoRows {
		return 0, 0, false, nil
	}
	if err != nil {
		return 0, 0, false, err
	}

	return rows, seatsInRow, true, nil
}

// indexColumns selects the denormalized projection kept in the search index.
const indexColumns = `
	f.id, src.name, dst.name, src.closest_big_city, dst.closest_big_city,
	a.name, f.departure_time, f.arrival_time
	FROM flights f
	JOIN routes r ON r.id = f.route_id
	JOIN airports src ON src.id = r.source_id
	JOIN airports dst ON dst.id = r.destination_id
	JOIN airplanes a ON a.id = f.airplane_id`

// GetForIndex loads one flight as a search document. Returns nil when the
// flight no longer exists.
func (r *FlightRepository) GetForIndex(ctx context.Context, id int64) (*search.FlightDocument, error) {
	doc := &search.FlightDocument{}
	query := `SELECT` + indexColumns + ` WHERE f.id = $1`

	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&doc.ID,
		&doc.Source,
		&doc.Destination,
		&doc.SourceCity,
		&doc.DestinationCity,
		&doc.Airplane,
		&doc.DepartureTime,
		&doc.ArrivalTime,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}

	return doc, err
}

// ListForIndex loads every flight as a search document for a full rebuild.
func (r *FlightRepository) ListForIndex(ctx context.Context) ([]search.FlightDocument, error) {
	var docs []search.FlightDocument
	query := `SELECT` + indexColumns + ` ORDER BY f.id`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var doc search.FlightDocument
		err := rows.Scan(
			&doc.ID,
			&doc.Source,
			&doc.Destination,
			&doc.SourceCity,
			&doc.DestinationCity,
			&doc.Airplane,
			&doc.DepartureTime,
			&doc.ArrivalTime,
		)
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}

	return docs, rows.Err()
}

func (r *FlightRepository) getCrew(ctx context.Context, flightID int64) ([]models.Crew, error) {
	var members []models.Crew
	query := `
		SELECT c.id, c.first_name, c.last_name
		FROM crew c
		JOIN flight_crew fc ON fc.crew_id = c.id
		WHERE fc.flight_id = $1
		ORDER BY c.id`

	rows, err := r.db.QueryContext(ctx, query, flightID)
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

func insertFlightCrew(ctx context.Context, tx *sql.Tx, flightID int64, crewIDs []int64) error {
	for _, crewID := range crewIDs {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO flight_crew (flight_id, crew_id) VALUES ($1, $2) ON CONFLICT DO NOTHING`,
			flightID, crewID)
		if err != nil {
			return err
		}
	}
	return nil
}
