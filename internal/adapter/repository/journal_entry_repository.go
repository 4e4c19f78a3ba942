package repository

import (
	"context"
	"errors"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/johnquangdev/cinejournal/internal/domain/entities"
	"github.com/johnquangdev/cinejournal/internal/domain/repositories"
	"github.com/johnquangdev/cinejournal/internal/infrastructure/database"
)

// journalEntryRepository implements the JournalEntryRepository interface
type journalEntryRepository struct {
	col *mongo.Collection
}

// NewJournalEntryRepository creates a new journal entry repository
func NewJournalEntryRepository(db *mongo.Database) repositories.JournalEntryRepository {
	return &journalEntryRepository{col: db.Collection(database.JournalEntriesCollection)}
}

// Create inserts a new entry
func (r *journalEntryRepository) Create(ctx context.Context, entry *entities.JournalEntry) error {
	now := time.Now().UTC()
	if entry.ID.IsZero() {
		entry.ID = primitive.NewObjectID()
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = now
	}
	entry.UpdatedAt = now

	_, err := r.col.InsertOne(ctx, entry)
	return err
}

// FindByID retrieves an entry by its ID
func (r *journalEntryRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*entities.JournalEntry, error) {
	var entry entities.JournalEntry
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&entry)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, entities.ErrEntryNotFound
	}
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

// List retrieves entries matching filters, newest first
func (r *journalEntryRepository) List(ctx context.Context, filters repositories.EntryFilters) ([]*entities.JournalEntry, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	if filters.Limit > 0 {
		opts.SetLimit(filters.Limit)
	}

	cur, err := r.col.Find(ctx, buildEntryFilter(filters), opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	entries := make([]*entities.JournalEntry, 0)
	if err := cur.All(ctx, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// Update applies the allow-listed patch and returns the stored document
func (r *journalEntryRepository) Update(ctx context.Context, id primitive.ObjectID, patch entities.EntryPatch) (*entities.JournalEntry, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var entry entities.JournalEntry
	err := r.col.FindOneAndUpdate(ctx, bson.M{"_id": id}, buildEntryUpdate(patch, time.Now().UTC()), opts).Decode(&entry)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, entities.ErrEntryNotFound
	}
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

// Delete hard deletes an entry
func (r *journalEntryRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return entities.ErrEntryNotFound
	}
	return nil
}

// buildEntryFilter converts EntryFilters to a query document.
// Title and author match case-insensitively as literal substrings.
func buildEntryFilter(filters repositories.EntryFilters) bson.M {
	q := bson.M{}

	if filters.Mood != nil {
		q["mood"] = *filters.Mood
	}
	if filters.BookTitle != "" {
		q["bookTitle"] = primitive.Regex{Pattern: regexp.QuoteMeta(filters.BookTitle), Options: "i"}
	}
	if filters.BookAuthor != "" {
		q["bookAuthor"] = primitive.Regex{Pattern: regexp.QuoteMeta(filters.BookAuthor), Options: "i"}
	}

	if filters.From != nil || filters.To != nil {
		created := bson.M{}
		if filters.From != nil {
			created["$gte"] = filters.From.UTC()
		}
		if filters.To != nil {
			created["$lte"] = filters.To.UTC()
		}
		q["createdAt"] = created
	}

	return q
}

// buildEntryUpdate only ever sets fields from the allow-list
func buildEntryUpdate(patch entities.EntryPatch, now time.Time) bson.M {
	set := bson.M{"updatedAt": now}

	if patch.BookTitle != nil {
		set["bookTitle"] = *patch.BookTitle
	}
	if patch.BookAuthor != nil {
		set["bookAuthor"] = *patch.BookAuthor
	}
	if patch.Mood != nil {
		set["mood"] = *patch.Mood
	}
	if patch.CinematicEntry != nil {
		set["cinematicEntry"] = *patch.CinematicEntry
	}

	return bson.M{"$set": set}
}
