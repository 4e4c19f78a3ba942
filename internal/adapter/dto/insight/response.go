package insight

import "time"

// MoodAnalysis is the generated content of a weekly insight
type MoodAnalysis struct {
	MoodArcDescription string `json:"moodArcDescription"`
	DominantEmotion    string `json:"dominantEmotion"`
}

// LatestInsightResponse is returned by the latest insight endpoint.
// On 404 and 500 only Message is set and MoodAnalysis encodes as null.
type LatestInsightResponse struct {
	Message         string        `json:"message"`
	MoodAnalysis    *MoodAnalysis `json:"moodAnalysis"`
	GeneratedAt     *time.Time    `json:"generatedAt,omitempty"`
	PeriodStartDate *time.Time    `json:"periodStartDate,omitempty"`
	PeriodEndDate   *time.Time    `json:"periodEndDate,omitempty"`
}

// InsightResponse represents a stored insight
type InsightResponse struct {
	ID              string       `json:"_id"`
	InsightType     string       `json:"insightType"`
	GeneratedAt     time.Time    `json:"generatedAt"`
	PeriodStartDate time.Time    `json:"periodStartDate"`
	PeriodEndDate   time.Time    `json:"periodEndDate"`
	Content         MoodAnalysis `json:"content"`
	SourceEntryIDs  []string     `json:"sourceEntryIds"`
}
