package entities

import (
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	// DefaultBookTitle is stored when the client omits a title
	DefaultBookTitle = "Untitled Book"
	// DefaultBookAuthor is stored when the client omits an author
	DefaultBookAuthor = "Unknown Author"
	// DirectUploadAudioURL marks entries whose audio was never persisted
	DirectUploadAudioURL = "processed://direct-upload"
	// EmptyTranscriptEntry replaces the cinematic text when nothing was said
	EmptyTranscriptEntry = "No thoughts were recorded or transcribed for this entry."
)

// JournalEntry represents one spoken reflection after transcription and rewrite
type JournalEntry struct {
	ID               primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	OriginalAudioURL string             `bson:"originalAudioUrl" json:"originalAudioUrl"`
	RawTranscription string             `bson:"rawTranscription" json:"rawTranscription"`
	CinematicEntry   string             `bson:"cinematicEntry" json:"cinematicEntry"`
	BookTitle        string             `bson:"bookTitle" json:"bookTitle"`
	BookAuthor       string             `bson:"bookAuthor" json:"bookAuthor"`
	Mood             Mood               `bson:"mood" json:"mood"`
	CreatedAt        time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt        time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// NewJournalEntry builds an entry with trimmed metadata and defaults applied
func NewJournalEntry(rawTranscription, cinematicEntry, bookTitle, bookAuthor string, mood Mood) *JournalEntry {
	return &JournalEntry{
		OriginalAudioURL: DirectUploadAudioURL,
		RawTranscription: rawTranscription,
		CinematicEntry:   cinematicEntry,
		BookTitle:        orDefault(bookTitle, DefaultBookTitle),
		BookAuthor:       orDefault(bookAuthor, DefaultBookAuthor),
		Mood:             mood,
	}
}

// EntryPatch is the allow-listed set of fields an update may touch.
// Nil fields are left unchanged.
type EntryPatch struct {
	BookTitle      *string
	BookAuthor     *string
	Mood           *Mood
	CinematicEntry *string
}

// IsEmpty reports whether the patch changes nothing
func (p EntryPatch) IsEmpty() bool {
	return p.BookTitle == nil && p.BookAuthor == nil && p.Mood == nil && p.CinematicEntry == nil
}

func orDefault(value, fallback string) string {
	if trimmed := strings.TrimSpace(value); trimmed != "" {
		return trimmed
	}
	return fallback
}
