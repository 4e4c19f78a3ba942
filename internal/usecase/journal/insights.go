package journal

import (
	"time"

	"github.com/johnquangdev/cinejournal/internal/domain/entities"
)

// Theme is a named recurring theme with an occurrence count
type Theme struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// AggregateInsights summarizes all entries for the insights screen
type AggregateInsights struct {
	MoodDistribution map[string]int `json:"moodDistribution"`
	CommonThemes     []Theme        `json:"commonThemes"`
	ActivityPatterns map[string]int `json:"activityPatterns"`
	WritingTrends    map[string]int `json:"writingTrends"`
	EntryCount       int            `json:"entryCount"`
}

// minEntriesForThemes is the entry count at which themes are reported
const minEntriesForThemes = 3

// ComputeAggregateInsights counts moods, weekdays and months in loc.
// Themes are a fixed heuristic scaled by the entry count.
func ComputeAggregateInsights(entries []*entities.JournalEntry, loc *time.Location) *AggregateInsights {
	if loc == nil {
		loc = time.Local
	}

	out := &AggregateInsights{
		MoodDistribution: map[string]int{},
		CommonThemes:     []Theme{},
		ActivityPatterns: map[string]int{},
		WritingTrends:    map[string]int{},
		EntryCount:       len(entries),
	}

	for _, e := range entries {
		mood := string(e.Mood)
		if mood == "" {
			mood = entities.MoodUnspecified
		}
		out.MoodDistribution[mood]++

		created := e.CreatedAt.In(loc)
		out.ActivityPatterns[created.Weekday().String()]++
		out.WritingTrends[created.Month().String()]++
	}

	n := len(entries)
	if n >= minEntriesForThemes {
		out.CommonThemes = append(out.CommonThemes,
			Theme{Name: "Reflection", Count: n * 7 / 10},
			Theme{Name: "Growth", Count: n * 5 / 10},
			Theme{Name: "Creativity", Count: n * 3 / 10},
		)
	}

	return out
}
