package consumers

import (
	"context"
	"log/slog"

	"skyport/internal/config"
	"skyport/internal/database"
	"skyport/internal/messaging"
	"skyport/internal/models"
	"skyport/internal/repository"
	"skyport/internal/search"
)

const queueGroup = "consumers"

// ConsumerService keeps the flight search index in step with the relational
// store by consuming flight events, and records order activity.
type ConsumerService struct {
	db       *database.DB
	nats     *messaging.NATSClient
	repos    *repository.Repositories
	handlers *Handlers
}

func NewConsumerService(cfg *config.Config) (*ConsumerService, error) {
	db, err := database.Connect(cfg.Database)
	if err != nil {
		return nil, err
	}

	natsClient, err := messaging.NewNATSClient(cfg.NATS)
	if err != nil {
		return nil, err
	}

	esClient, err := search.NewElasticsearchClient(config.LoadElasticsearchConfig())
	if err != nil {
		return nil, err
	}

	repos := repository.NewRepositoriesWithSearch(db, esClient)
	handlers := NewHandlers(repos)

	return &ConsumerService{
		db:       db,
		nats:     natsClient,
		repos:    repos,
		handlers: handlers,
	}, nil
}

func (cs *ConsumerService) Start() error {
	slog.Info("Starting NATS consumers...")

	subjects := map[string]func(subject string) error{
		models.SubjectFlightCreated: func(subject string) error {
			_, err := cs.nats.SubscribeQueue(subject, queueGroup, cs.handlers.HandleFlightChanged)
			return err
		},
		models.SubjectFlightUpdated: func(subject string) error {
			_, err := cs.nats.SubscribeQueue(subject, queueGroup, cs.handlers.HandleFlightChanged)
			return err
		},
		models.SubjectFlightDeleted: func(subject string) error {
			_, err := cs.nats.SubscribeQueue(subject, queueGroup, cs.handlers.HandleFlightDeleted)
			return err
		},
		models.SubjectOrderCreated: func(subject string) error {
			_, err := cs.nats.SubscribeQueue(subject, queueGroup, cs.handlers.HandleOrderCreated)
			return err
		},
		models.SubjectTicketBooked: func(subject string) error {
			_, err := cs.nats.SubscribeQueue(subject, queueGroup, cs.handlers.HandleTicketBooked)
			return err
		},
	}

	for subject, subscribe := range subjects {
		if err := subscribe(subject); err != nil {
			return err
		}
	}

	slog.Info("All consumers started")
	return nil
}

func (cs *ConsumerService) Shutdown(ctx context.Context) error {
	slog.Info("Shutting down consumers...")

	if err := cs.nats.Close(); err != nil {
		slog.Error("Error closing NATS connection", "error", err)
	}

	return cs.db.Close()
}
