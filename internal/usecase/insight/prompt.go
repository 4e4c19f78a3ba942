package insight

import (
	"fmt"
	"strings"

	"github.com/johnquangdev/cinejournal/internal/domain/entities"
)

const moodArcInstruction = `You are reading a week of someone's private journal entries, newest first.
Describe the emotional arc of the week in two or three gentle, second-person sentences, then name the single dominant emotion in one lowercase word.

Respond with JSON only, exactly in this shape:
{"moodArcDescription": "...", "dominantEmotion": "..."}`

// maxLineChars bounds how much of each entry is sent to the model
const maxLineChars = 600

// BuildMoodArcPrompt formats each entry as one dated line under the instruction
func BuildMoodArcPrompt(entries []*entities.JournalEntry) string {
	var b strings.Builder
	b.WriteString(moodArcInstruction)
	b.WriteString("\n\nEntries:\n")

	for _, e := range entries {
		mood := string(e.Mood)
		if mood == "" {
			mood = entities.MoodUnspecified
		}
		fmt.Fprintf(&b, "- %s (mood: %s): %s\n", e.CreatedAt.Format("2006-01-02"), mood, oneLine(e.CinematicEntry))
	}

	return b.String()
}

func oneLine(s string) string {
	s = strings.Join(strings.Fields(s), " ")
	if r := []rune(s); len(r) > maxLineChars {
		s = string(r[:maxLineChars]) + "..."
	}
	return s
}
