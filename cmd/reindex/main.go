package main

import (
	"context"
	"time"

	"skyport/internal/config"
	"skyport/internal/database"
	"skyport/internal/logger"
	"skyport/internal/repository"
	"skyport/internal/search"
)

// Rebuilds the flight search index from the relational store. Run after
// restoring a database or when the index has drifted.
func main() {
	cfg := config.Load()
	logger.Init(cfg.LogLevel, cfg.LogFormat)
	log := logger.Get()

	db, err := database.Connect(cfg.Database)
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}
	defer db.Close()

	esClient, err := search.NewElasticsearchClient(config.LoadElasticsearchConfig())
	if err != nil {
		logger.Fatal("Failed to connect to Elasticsearch", "error", err)
	}

	repos := repository.NewRepositoriesWithSearch(db, esClient)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	docs, err := repos.Flights.ListForIndex(ctx)
	if err != nil {
		logger.Fatal("Failed to load flights", "error", err)
	}

	log.Info("Reindexing flights", "count", len(docs))

	indexed := 0
	for i := range docs {
		if err := repos.FlightSearch.Index(ctx, &docs[i]); err != nil {
			log.Error("Failed to index flight", "error", err, "flight_id", docs[i].ID)
			continue
		}
		indexed++
	}

	log.Info("Reindex complete", "indexed", indexed, "total", len(docs))
}
