package main

import (
	"context"
	"log"

	"github.com/johnquangdev/cinejournal/internal/infrastructure/database"
	"github.com/johnquangdev/cinejournal/pkg/config"
)

// Creates the MongoDB indexes without starting the API
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx := context.Background()
	client, db, err := database.NewMongoDB(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.CloseDB(client)

	log.Printf("🔄 Ensuring indexes on %s...", cfg.Mongo.Database)
	if err := database.EnsureIndexes(ctx, db); err != nil {
		log.Fatalf("Failed to create indexes: %v", err)
	}

	log.Println("✅ Indexes are up to date")
}
