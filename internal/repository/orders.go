package repository

import (
	"context"
	"database/sql"
	"fmt"

	"skyport/internal/apperrors"
	"skyport/internal/database"
	"skyport/internal/models"
)

type OrderRepository struct {
	db *database.DB
}

func NewOrderRepository(db *database.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

// CreateWithTickets inserts an order and all of its tickets in one
// transaction. Either the whole order commits or nothing does. A concurrent
// request for the same seat loses on the tickets unique constraint and the
// transaction rolls back with a conflict error.
func (r *OrderRepository) CreateWithTickets(ctx context.Context, order *models.Order) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	err = tx.QueryRowContext(ctx,
		`INSERT INTO orders (user_id) VALUES ($1) RETURNING id, created_at`,
		order.UserID,
	).Scan(&order.ID, &order.CreatedAt)
	if err != nil {
		return err
	}

	ticketQuery := `
		INSERT INTO tickets (row_number, seat_number, flight_id, order_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id`

	for i := range order.Tickets {
		ticket := &order.Tickets[i]
		ticket.OrderID = order.ID

		err := tx.QueryRowContext(ctx, ticketQuery,
			ticket.Row,
			ticket.Seat,
			ticket.FlightID,
			ticket.OrderID,
		).Scan(&ticket.ID)
		if err != nil {
			if isUniqueViolation(err) {
				return apperrors.NewConflict(
					"seat (row %d, seat %d) on flight %d is already taken",
					ticket.Row, ticket.Seat, ticket.FlightID)
			}
			return err
		}
	}

	return tx.Commit()
}

// ListByUser returns one page of a user's orders, newest first, with their
// tickets attached.
func (r *OrderRepository) ListByUser(ctx context.Context, filter models.OrderFilter) (*models.OrderPage, error) {
	var createdDate sql.NullTime
	if filter.CreatedDate != nil {
		createdDate = sql.NullTime{Time: *filter.CreatedDate, Valid: true}
	}

	var count int
	countQuery := `
		SELECT COUNT(*)
		FROM orders
		WHERE user_id = $1
		  AND ($2::date IS NULL OR DATE(created_at) = $2::date)`

	if err := r.db.QueryRowContext(ctx, countQuery, filter.UserID, createdDate).Scan(&count); err != nil {
		return nil, err
	}

	page := &models.OrderPage{
		Count:    count,
		Page:     filter.Page,
		PageSize: filter.PageSize,
		Results:  []models.Order{},
	}

	query := `
		SELECT id, user_id, created_at
		FROM orders
		WHERE user_id = $1
		  AND ($2::date IS NULL OR DATE(created_at) = $2::date)
		ORDER BY created_at DESC, id DESC
		LIMIT $3 OFFSET $4`

	offset := (filter.Page - 1) * filter.PageSize
	rows, err := r.db.QueryContext(ctx, query, filter.UserID, createdDate, filter.PageSize, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orderIDs []int64
	for rows.Next() {
		var order models.Order
		if err := rows.Scan(&order.ID, &order.UserID, &order.CreatedAt); err != nil {
			return nil, err
		}
		page.Results = append(page.Results, order)
		orderIDs = append(orderIDs, order.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if err := r.attachTickets(ctx, page.Results, orderIDs); err != nil {
		return nil, err
	}

	return page, nil
}

// GetByID returns an order only when it belongs to userID. A foreign order
// is indistinguishable from a missing one.
func (r *OrderRepository) GetByID(ctx context.Context, id, userID int64) (*models.Order, error) {
	order := &models.Order{}
	query := `SELECT id, user_id, created_at FROM orders WHERE id = $1 AND user_id = $2`

	err := r.db.QueryRowContext(ctx, query, id, userID).Scan(
		&order.ID,
		&order.UserID,
		&order.CreatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	orders := []models.Order{*order}
	if err := r.attachTickets(ctx, orders, []int64{order.ID}); err != nil {
		return nil, err
	}

	return &orders[0], nil
}

func (r *OrderRepository) attachTickets(ctx context.Context, orders []models.Order, orderIDs []int64) error {
	if len(orderIDs) == 0 {
		return nil
	}

	query := `
		SELECT t.id, t.row_number, t.seat_number, t.flight_id, t.order_id,
		       src.name, dst.name, f.departure_time
		FROM tickets t
		JOIN flights f ON f.id = t.flight_id
		JOIN routes r ON r.id = f.route_id
		JOIN airports src ON src.id = r.source_id
		JOIN airports dst ON dst.id = r.destination_id
		WHERE t.order_id = ANY($1)
		ORDER BY t.order_id, t.id`

	rows, err := r.db.QueryContext(ctx, query, int64Array(orderIDs))
	if err != nil {
		return err
	}
	defer rows.Close()

	byOrder := make(map[int64][]models.Ticket, len(orderIDs))
	for rows.Next() {
		var ticket models.Ticket
		var departure sql.NullTime
		err := rows.Scan(
			&ticket.ID,
			&ticket.Row,
			&ticket.Seat,
			&ticket.FlightID,
			&ticket.OrderID,
			&ticket.SourceName,
			&ticket.DestinationName,
			&departure,
		)
		if err != nil {
			return err
		}
		if departure.Valid {
			t := departure.Time
			ticket.DepartureTime = &t
		}
		byOrder[ticket.OrderID] = append(byOrder[ticket.OrderID], ticket)
	}
	if err := rows.Err(); err != nil {
		return err
	}

	for i := range orders {
		orders[i].Tickets = byOrder[orders[i].ID]
	}

	return nil
}
