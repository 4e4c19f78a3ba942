package journal

import (
	"fmt"
	"strings"

	"github.com/johnquangdev/cinejournal/internal/domain/entities"
)

const cinematicInstruction = `You are a screenwriter with a novelist's ear for feeling and an animator's instinct for emotional beats.
You will receive the unedited transcript of someone speaking their private thoughts aloud. Rewrite it as a cinematic inner monologue.

Guidelines:
- Find what the speaker actually feels: the wanting, the doubt, the sudden clarity. Do not summarize.
- Write it grounded and human, as a voiceover in the scene where a character quietly changes.
- Prefer plain, honest words. Use imagery only when the emotion calls for it.
- Aim for the listener to feel recognized rather than impressed.
- Leave out names, dates and any diary formatting.
- Return only the monologue itself with no preface, notes or explanation.`

// BuildCinematicPrompt assembles the rewrite prompt. Book and mood context are
// appended only when present.
func BuildCinematicPrompt(transcript, bookTitle, bookAuthor string, mood entities.Mood) string {
	var b strings.Builder
	b.WriteString(cinematicInstruction)

	if title := strings.TrimSpace(bookTitle); title != "" {
		fmt.Fprintf(&b, "\n\nThe reflection is probably about the book %q", title)
		if author := strings.TrimSpace(bookAuthor); author != "" {
			fmt.Fprintf(&b, " by %s", author)
		}
		b.WriteString(". Let its atmosphere or themes color the monologue where the transcript supports it; do not force a connection.")
	}

	if ctx := mood.PromptContext(); ctx != "" {
		fmt.Fprintf(&b, "\n\nThe speaker's current state: %s", ctx)
	}

	fmt.Fprintf(&b, "\n\nTranscript:\n---\n%s\n---\n\nCinematic monologue:", transcript)
	return b.String()
}
