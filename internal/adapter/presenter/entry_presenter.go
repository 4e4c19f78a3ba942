package presenter

import (
	journalDTO "github.com/johnquangdev/cinejournal/internal/adapter/dto/journal"
	"github.com/johnquangdev/cinejournal/internal/domain/entities"
	"github.com/johnquangdev/cinejournal/internal/usecase/journal"
)

// ToEntryResponse converts a JournalEntry entity to EntryResponse DTO
func ToEntryResponse(e *entities.JournalEntry) *journalDTO.EntryResponse {
	if e == nil {
		return nil
	}

	return &journalDTO.EntryResponse{
		ID:               e.ID.Hex(),
		OriginalAudioURL: e.OriginalAudioURL,
		RawTranscription: e.RawTranscription,
		CinematicEntry:   e.CinematicEntry,
		BookTitle:        e.BookTitle,
		BookAuthor:       e.BookAuthor,
		Mood:             string(e.Mood),
		CreatedAt:        e.CreatedAt,
		UpdatedAt:        e.UpdatedAt,
	}
}

// ToEntryListResponse converts entries preserving order. Never returns nil.
func ToEntryListResponse(entries []*entities.JournalEntry) []*journalDTO.EntryResponse {
	out := make([]*journalDTO.EntryResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, ToEntryResponse(e))
	}
	return out
}

// ToInsightsResponse converts the aggregate to its DTO
func ToInsightsResponse(a *journal.AggregateInsights) *journalDTO.InsightsResponse {
	if a == nil {
		return nil
	}

	themes := make([]journalDTO.ThemeResponse, 0, len(a.CommonThemes))
	for _, t := range a.CommonThemes {
		themes = append(themes, journalDTO.ThemeResponse{Name: t.Name, Count: t.Count})
	}

	return &journalDTO.InsightsResponse{
		MoodDistribution: a.MoodDistribution,
		CommonThemes:     themes,
		ActivityPatterns: a.ActivityPatterns,
		WritingTrends:    a.WritingTrends,
		EntryCount:       a.EntryCount,
	}
}
