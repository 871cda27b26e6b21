package database

import (
	"fmt"
	"log/slog"
)

func (db *DB) RunMigrations() error {
	slog.Info("Running database migrations...")

	migrations := []string{
		createUsersTable,
		createAirportsTable,
		createAirplaneTypesTable,
		createAirplanesTable,
		createCrewTable,
		createRoutesTable,
		createFlightsTable,
		createFlightCrewTable,
		createOrdersTable,
		createTicketsTable,
		createFlightDepartureIndex,
		createOrdersCreatedIndex,
	}

	for i, migration := range migrations {
		slog.Info("Running migration", "step", i+1)
		if _, err := db.Exec(migration); err != nil {
			return fmt.Errorf("migration %d failed: %w", i+1, err)
		}
	}

	slog.Info("All migrations completed successfully")
	return nil
}

const createUsersTable = `
CREATE TABLE IF NOT EXISTS users (
    id SERIAL PRIMARY KEY,
    email VARCHAR(255) UNIQUE NOT NULL,
    password_hash VARCHAR(255) NOT NULL,
    first_name VARCHAR(100) NOT NULL DEFAULT '',
    last_name VARCHAR(100) NOT NULL DEFAULT '',
    is_staff BOOLEAN NOT NULL DEFAULT FALSE,
    is_active BOOLEAN NOT NULL DEFAULT TRUE,
    registered_at TIMESTAMP NOT NULL DEFAULT NOW()
);`

const createAirportsTable = `
CREATE TABLE IF NOT EXISTS airports (
    id SERIAL PRIMARY KEY,
    name VARCHAR(100) NOT NULL,
    closest_big_city VARCHAR(255) NOT NULL
);`

const createAirplaneTypesTable = `
CREATE TABLE IF NOT EXISTS airplane_types (
    id SERIAL PRIMARY KEY,
    name VARCHAR(255) NOT NULL
);`

const createAirplanesTable = `
CREATE TABLE IF NOT EXISTS airplanes (
    id SERIAL PRIMARY KEY,
    name VARCHAR(255) NOT NULL,
    rows INTEGER NOT NULL,
    seats_in_row INTEGER NOT NULL,
    airplane_type_id INTEGER NOT NULL REFERENCES airplane_types(id) ON DELETE CASCADE,
    image_path VARCHAR(512),

    CHECK (rows >= 1),
    CHECK (seats_in_row >= 1)
);`

const createCrewTable = `
CREATE TABLE IF NOT EXISTS crew (
    id SERIAL PRIMARY KEY,
    first_name VARCHAR(255) NOT NULL,
    last_name VARCHAR(255) NOT NULL
);`

const createRoutesTable = `
CREATE TABLE IF NOT EXISTS routes (
    id SERIAL PRIMARY KEY,
    source_id INTEGER NOT NULL REFERENCES airports(id) ON DELETE CASCADE,
    destination_id INTEGER NOT NULL REFERENCES airports(id) ON DELETE CASCADE,
    distance INTEGER NOT NULL,

    UNIQUE(source_id, destination_id)
);`

const createFlightsTable = `
CREATE TABLE IF NOT EXISTS flights (
    id SERIAL PRIMARY KEY,
    route_id INTEGER NOT NULL REFERENCES routes(id) ON DELETE CASCADE,
    airplane_id INTEGER NOT NULL REFERENCES airplanes(id) ON DELETE CASCADE,
    departure_time TIMESTAMP NOT NULL,
    arrival_time TIMESTAMP NOT NULL,

    CHECK (arrival_time > departure_time)
);`

const createFlightCrewTable = `
CREATE TABLE IF NOT EXISTS flight_crew (
    flight_id INTEGER NOT NULL REFERENCES flights(id) ON DELETE CASCADE,
    crew_id INTEGER NOT NULL REFERENCES crew(id) ON DELETE CASCADE,

    PRIMARY KEY (flight_id, crew_id)
);`

const createOrdersTable = `
CREATE TABLE IF NOT EXISTS orders (
    id SERIAL PRIMARY KEY,
    user_id INTEGER NOT NULL REFERENCES users(id) ON DELETE CASCADE,
    created_at TIMESTAMP NOT NULL DEFAULT NOW()
);`

const createTicketsTable = `
CREATE TABLE IF NOT EXISTS tickets (
    id SERIAL PRIMARY KEY,
    row_number INTEGER NOT NULL,
    seat_number INTEGER NOT NULL,
    flight_id INTEGER NOT NULL REFERENCES flights(id) ON DELETE CASCADE,
    order_id INTEGER NOT NULL REFERENCES orders(id) ON DELETE CASCADE,

    UNIQUE(flight_id, row_number, seat_number)
);`

const createFlightDepartureIndex = `
CREATE INDEX IF NOT EXISTS flights_departure_date_idx
ON flights (DATE(departure_time));`

const createOrdersCreatedIndex = `
CREATE INDEX IF NOT EXISTS orders_created_date_idx
ON orders (user_id, DATE(created_at));`
