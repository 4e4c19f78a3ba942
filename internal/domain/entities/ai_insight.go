package entities

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// InsightType identifies the kind of generated insight
type InsightType string

const (
	InsightTypeWeeklyMoodArc InsightType = "weeklyMoodArc"
)

// InsightContent is the structured summary returned by the generation vendor
type InsightContent struct {
	MoodArcDescription string `bson:"moodArcDescription" json:"moodArcDescription"`
	DominantEmotion    string `bson:"dominantEmotion" json:"dominantEmotion"`
}

// FallbackInsightContent is stored when the vendor response cannot be decoded
var FallbackInsightContent = InsightContent{
	MoodArcDescription: "Your week held a mix of moments. Keep journaling to bring the pattern into focus.",
	DominantEmotion:    "mixed",
}

// AIInsight is an immutable generated summary over a window of entries
type AIInsight struct {
	ID              primitive.ObjectID   `bson:"_id,omitempty" json:"_id"`
	InsightType     InsightType          `bson:"insightType" json:"insightType"`
	GeneratedAt     time.Time            `bson:"generatedAt" json:"generatedAt"`
	PeriodStartDate time.Time            `bson:"periodStartDate" json:"periodStartDate"`
	PeriodEndDate   time.Time            `bson:"periodEndDate" json:"periodEndDate"`
	Content         InsightContent       `bson:"content" json:"content"`
	SourceEntryIDs  []primitive.ObjectID `bson:"sourceEntryIds" json:"sourceEntryIds"`
	CreatedAt       time.Time            `bson:"createdAt" json:"createdAt"`
	UpdatedAt       time.Time            `bson:"updatedAt" json:"updatedAt"`
}

// NewWeeklyMoodArc builds a weekly insight referencing the given entries
func NewWeeklyMoodArc(start, end time.Time, content InsightContent, entries []*JournalEntry) *AIInsight {
	ids := make([]primitive.ObjectID, 0, len(entries))
	for _, e := range entries {
		ids = append(ids, e.ID)
	}
	return &AIInsight{
		InsightType:     InsightTypeWeeklyMoodArc,
		GeneratedAt:     time.Now().UTC(),
		PeriodStartDate: start,
		PeriodEndDate:   end,
		Content:         content,
		SourceEntryIDs:  ids,
	}
}
