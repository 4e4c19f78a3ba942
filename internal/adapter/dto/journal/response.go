package journal

import "time"

// EntryResponse represents a journal entry in responses
type EntryResponse struct {
	ID               string    `json:"_id"`
	OriginalAudioURL string    `json:"originalAudioUrl"`
	RawTranscription string    `json:"rawTranscription"`
	CinematicEntry   string    `json:"cinematicEntry"`
	BookTitle        string    `json:"bookTitle"`
	BookAuthor       string    `json:"bookAuthor"`
	Mood             string    `json:"mood"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

// ThemeResponse is one recurring theme
type ThemeResponse struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// InsightsResponse is the aggregate over all entries
type InsightsResponse struct {
	MoodDistribution map[string]int  `json:"moodDistribution"`
	CommonThemes     []ThemeResponse `json:"commonThemes"`
	ActivityPatterns map[string]int  `json:"activityPatterns"`
	WritingTrends    map[string]int  `json:"writingTrends"`
	EntryCount       int             `json:"entryCount"`
}
