package repositories

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/johnquangdev/cinejournal/internal/domain/entities"
)

// JournalEntryRepository defines the interface for journal entry data access
type JournalEntryRepository interface {
	// Create inserts a new entry and fills in its ID and timestamps
	Create(ctx context.Context, entry *entities.JournalEntry) error

	// FindByID retrieves an entry by its ID
	FindByID(ctx context.Context, id primitive.ObjectID) (*entities.JournalEntry, error)

	// List retrieves entries newest first
	List(ctx context.Context, filters EntryFilters) ([]*entities.JournalEntry, error)

	// Update applies the patch and returns the updated entry
	Update(ctx context.Context, id primitive.ObjectID, patch entities.EntryPatch) (*entities.JournalEntry, error)

	// Delete hard deletes an entry
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// EntryFilters represents filter options for listing entries
type EntryFilters struct {
	Mood       *entities.Mood
	BookTitle  string
	BookAuthor string
	From       *time.Time
	To         *time.Time
	Limit      int64
}

// AIInsightRepository defines the interface for generated insight data access
type AIInsightRepository interface {
	// Create inserts a new insight
	Create(ctx context.Context, insight *entities.AIInsight) error

	// FindLatest returns the most recently generated insight of the given type
	FindLatest(ctx context.Context, insightType entities.InsightType) (*entities.AIInsight, error)
}
