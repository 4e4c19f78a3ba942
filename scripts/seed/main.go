package main

import (
	"context"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/johnquangdev/cinejournal/internal/adapter/repository"
	"github.com/johnquangdev/cinejournal/internal/domain/entities"
	"github.com/johnquangdev/cinejournal/internal/infrastructure/database"
	"github.com/johnquangdev/cinejournal/pkg/config"
)

// seedAudioURL marks seeded entries so a rerun can replace them
const seedAudioURL = "seed://sample"

// Inserts a week of sample entries so the insight job has something to read
func main() {
	log.Println("🚀 Seeding sample journal entries...")

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

	res, err := db.Collection(database.JournalEntriesCollection).DeleteMany(ctx, bson.M{"originalAudioUrl": seedAudioURL})
	if err != nil {
		log.Fatalf("Failed to remove previous seed: %v", err)
	}
	log.Printf("🗑️  Removed %d previously seeded entries", res.DeletedCount)

	samples := []struct {
		daysAgo int
		mood    entities.Mood
		title   string
		author  string
		raw     string
		text    string
	}{
		{6, entities.MoodContemplative, "Dune", "Frank Herbert", "I keep thinking about fear being the mind killer.",
			"Fear. I keep turning the word over like a stone. Maybe it was never the enemy, only the door."},
		{4, entities.MoodAnxious, "", "", "Work was a lot today, I could not focus.",
			"The day pressed in from every side. I held on to the small quiet between two breaths."},
		{2, entities.MoodGrateful, "Piranesi", "Susanna Clarke", "I loved how he thanks the house for everything.",
			"He thanks the house for the tides and the birds. Tonight I want to thank mine for the light."},
		{0, entities.MoodCalm, "", "", "Slow morning, coffee, nothing planned.",
			"Nothing asked anything of me this morning. The coffee cooled and I let it."},
	}

	repo := repository.NewJournalEntryRepository(db)
	now := time.Now().UTC()
	for _, s := range samples {
		entry := entities.NewJournalEntry(s.raw, s.text, s.title, s.author, s.mood)
		entry.OriginalAudioURL = seedAudioURL
		entry.CreatedAt = now.AddDate(0, 0, -s.daysAgo)

		if err := repo.Create(ctx, entry); err != nil {
			log.Printf("❌ Failed to create entry from %d days ago: %v", s.daysAgo, err)
			continue
		}
		log.Printf("🟢 %s  %-13s %s", entry.CreatedAt.Format("2006-01-02"), entry.Mood, entry.BookTitle)
	}

	log.Println("✅ Seed complete")
}
