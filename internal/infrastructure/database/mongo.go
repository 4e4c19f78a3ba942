package database

import (
	"context"
	"fmt"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	appErrors "github.com/johnquangdev/cinejournal/errors"
	"github.com/johnquangdev/cinejournal/pkg/config"
)

// Collection names
const (
	JournalEntriesCollection = "journal_entries"
	AIInsightsCollection     = "ai_insights"
)

// NewMongoDB connects to MongoDB and returns the configured database
func NewMongoDB(ctx context.Context, cfg *config.Config) (*mongo.Client, *mongo.Database, error) {
	ctx, cancel := context.WithTimeout(ctx, cfg.Mongo.ConnectTimeout+cfg.Mongo.ServerSelectionTimeout)
	defer cancel()

	clientOpts := options.Client().ApplyURI(cfg.Mongo.URI).
		SetServerSelectionTimeout(cfg.Mongo.ServerSelectionTimeout).
		SetConnectTimeout(cfg.Mongo.ConnectTimeout).
		SetMaxPoolSize(cfg.Mongo.MaxPoolSize).
		SetMinPoolSize(cfg.Mongo.MinPoolSize)

	client, err := mongo.Connect(ctx, clientOpts)
	if err != nil {
		return nil, nil, appErrors.ErrDBConnectionFailed(err)
	}

	// Test connection
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, nil, appErrors.ErrDBConnectionFailed(fmt.Errorf("ping: %w", err))
	}

	log.Println("✅ MongoDB connected successfully")

	return client, client.Database(cfg.Mongo.Database), nil
}

// EnsureIndexes creates the indexes the list, window and latest-insight queries rely on
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	_, err := db.Collection(JournalEntriesCollection).Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "createdAt", Value: -1}},
			Options: options.Index().SetName("by_created"),
		},
		{
			Keys:    bson.D{{Key: "mood", Value: 1}, {Key: "createdAt", Value: -1}},
			Options: options.Index().SetName("by_mood_created"),
		},
	})
	if err != nil {
		return fmt.Errorf("failed to create journal entry indexes: %w", err)
	}

	_, err = db.Collection(AIInsightsCollection).Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "insightType", Value: 1}, {Key: "generatedAt", Value: -1}},
			Options: options.Index().SetName("by_type_generated"),
		},
	})
	if err != nil {
		return fmt.Errorf("failed to create ai insight indexes: %w", err)
	}

	return nil
}

// CloseDB disconnects the client
func CloseDB(client *mongo.Client) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Disconnect(ctx); err != nil {
		log.Printf("Warning: failed to disconnect mongodb: %v", err)
	}
}
