package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/johnquangdev/cinejournal/internal/domain/entities"
	"github.com/johnquangdev/cinejournal/internal/domain/repositories"
	"github.com/johnquangdev/cinejournal/internal/infrastructure/database"
)

type aiInsightRepository struct {
	col *mongo.Collection
}

// NewAIInsightRepository creates a new insight repository
func NewAIInsightRepository(db *mongo.Database) repositories.AIInsightRepository {
	return &aiInsightRepository{col: db.Collection(database.AIInsightsCollection)}
}

func (r *aiInsightRepository) Create(ctx context.Context, insight *entities.AIInsight) error {
	now := time.Now().UTC()
	if insight.ID.IsZero() {
		insight.ID = primitive.NewObjectID()
	}
	if insight.GeneratedAt.IsZero() {
		insight.GeneratedAt = now
	}
	if insight.SourceEntryIDs == nil {
		insight.SourceEntryIDs = []primitive.ObjectID{}
	}
	insight.CreatedAt = now
	insight.UpdatedAt = now

	_, err := r.col.InsertOne(ctx, insight)
	return err
}

func (r *aiInsightRepository) FindLatest(ctx context.Context, insightType entities.InsightType) (*entities.AIInsight, error) {
	opts := options.FindOne().SetSort(bson.D{{Key: "generatedAt", Value: -1}})

	var insight entities.AIInsight
	err := r.col.FindOne(ctx, bson.M{"insightType": insightType}, opts).Decode(&insight)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, entities.ErrInsightNotFound
	}
	if err != nil {
		return nil, err
	}
	return &insight, nil
}
