package journal

import (
	"strings"
	"testing"

	"github.com/johnquangdev/cinejournal/internal/domain/entities"
)

func TestBuildCinematicPrompt(t *testing.T) {
	t.Run("with book and mood", func(t *testing.T) {
		p := BuildCinematicPrompt("I felt small.", "Dune", "Frank Herbert", entities.MoodSeeking)

		if !strings.Contains(p, `"Dune" by Frank Herbert`) {
			t.Fatalf("missing book context:\n%s", p)
		}
		if !strings.Contains(p, entities.MoodSeeking.PromptContext()) {
			t.Fatalf("missing mood context")
		}
		if !strings.HasSuffix(p, "I felt small.\n---\n\nCinematic monologue:") {
			t.Fatalf("transcript should close the prompt:\n%s", p)
		}
	})

	t.Run("bare transcript", func(t *testing.T) {
		p := BuildCinematicPrompt("I felt small.", "  ", "Frank Herbert", "")

		if strings.Contains(p, "Frank Herbert") || strings.Contains(p, "current state") {
			t.Fatalf("no book or mood context expected:\n%s", p)
		}
	})
}
