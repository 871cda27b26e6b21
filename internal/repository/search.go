package repository

import (
	"context"

	"skyport/internal/search"
)

// FlightSearchRepository keeps the flight search index in step with the
// relational store and serves full-text queries against it.
type FlightSearchRepository struct {
	es *search.ElasticsearchClient
}

func NewFlightSearchRepository(es *search.ElasticsearchClient) *FlightSearchRepository {
	return &FlightSearchRepository{es: es}
}

func (r *FlightSearchRepository) Search(ctx context.Context, query string, size int) ([]search.FlightDocument, error) {
	return r.es.Search(ctx, query, size)
}

// Index writes a flight projection into the index.
func (r *FlightSearchRepository) Index(ctx context.Context, doc *search.FlightDocument) error {
	return r.es.IndexFlight(ctx, doc)
}

func (r *FlightSearchRepository) Delete(ctx context.Context, flightID int64) error {
	return r.es.DeleteFlight(ctx, flightID)
}

func (r *FlightSearchRepository) HealthCheck(ctx context.Context) error {
	return r.es.HealthCheck(ctx)
}
