package ai

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNotConfigured is returned by a gateway constructed without credentials
	ErrNotConfigured = errors.New("ai client not configured")
	// ErrTranscriptionTimeout is returned when polling exhausts its attempts
	ErrTranscriptionTimeout = errors.New("transcription timed out")
)

// TranscriptionError is a terminal failure reported by the transcription vendor
type TranscriptionError struct {
	TranscriptID string
	Reason       string
}

func (e *TranscriptionError) Error() string {
	if e.TranscriptID != "" {
		return fmt.Sprintf("transcription %s failed: %s", e.TranscriptID, e.Reason)
	}
	return fmt.Sprintf("transcription failed: %s", e.Reason)
}

// GenerationError is returned when the model stops for anything other than a normal finish
type GenerationError struct {
	FinishReason  string
	BlockReason   string
	SafetyRatings []string
}

func (e *GenerationError) Error() string {
	var b strings.Builder
	b.WriteString("AI generation failed.")
	if e.FinishReason != "" {
		fmt.Fprintf(&b, " Reason: %s.", e.FinishReason)
	}
	if e.BlockReason != "" {
		fmt.Fprintf(&b, " Blocked: %s.", e.BlockReason)
	}
	if len(e.SafetyRatings) > 0 {
		fmt.Fprintf(&b, " Safety concerns: %s", strings.Join(e.SafetyRatings, ", "))
	}
	return b.String()
}
