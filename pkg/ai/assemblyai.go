package ai

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	aai "github.com/AssemblyAI/assemblyai-go-sdk"
	"go.uber.org/zap"

	"github.com/johnquangdev/cinejournal/pkg/config"
)

// AssemblyAI reports this status for jobs that were rejected outright
const transcriptStatusFailed aai.TranscriptStatus = "failed"

// AssemblyAIClient uploads audio and polls AssemblyAI until the transcript is ready
type AssemblyAIClient struct {
	client       *aai.Client
	configured   bool
	pollInterval time.Duration
	maxAttempts  int
	logger       *zap.Logger
}

// NewAssemblyAIClient creates an AssemblyAI client using the provided config.
// Without an API key the client reports Configured() == false.
func NewAssemblyAIClient(cfg *config.AssemblyAIConfig, poll config.TranscriptionConfig, logger *zap.Logger) *AssemblyAIClient {
	if logger == nil {
		logger = zap.NewNop()
	}

	opts := []aai.ClientOption{
		aai.WithAPIKey(cfg.APIKey),
		aai.WithHTTPClient(&http.Client{Timeout: 2 * time.Minute}),
	}
	if cfg.BaseURL != "" {
		opts = append(opts, aai.WithBaseURL(cfg.BaseURL))
	}

	return &AssemblyAIClient{
		client:       aai.NewClientWithOptions(opts...),
		configured:   cfg.APIKey != "",
		pollInterval: poll.PollInterval,
		maxAttempts:  poll.MaxPollAttempts,
		logger:       logger,
	}
}

// Name identifies the vendor in errors and logs
func (c *AssemblyAIClient) Name() string { return "AssemblyAI" }

// Configured reports whether an API key was supplied
func (c *AssemblyAIClient) Configured() bool { return c != nil && c.configured }

// Transcribe uploads the audio, submits a transcription job and waits for it.
// A completed job with no speech yields an empty string, not an error.
func (c *AssemblyAIClient) Transcribe(ctx context.Context, audio io.Reader) (string, error) {
	if !c.Configured() {
		return "", ErrNotConfigured
	}

	uploadURL, err := c.client.Upload(ctx, audio)
	if err != nil {
		return "", fmt.Errorf("failed to upload audio to AssemblyAI: %w", err)
	}
	c.logger.Debug("audio uploaded to AssemblyAI", zap.String("upload_url", uploadURL))

	params := &aai.TranscriptOptionalParams{
		Punctuate:  aai.Bool(true),
		FormatText: aai.Bool(true),
	}
	transcript, err := c.client.Transcripts.SubmitFromURL(ctx, uploadURL, params)
	if err != nil {
		return "", fmt.Errorf("failed to submit transcription: %w", err)
	}

	transcriptID := deref(transcript.ID)
	if transcriptID == "" {
		return "", &TranscriptionError{Reason: "vendor returned no transcript id"}
	}
	c.logger.Info("transcription submitted",
		zap.String("transcript_id", transcriptID),
		zap.String("status", string(transcript.Status)),
	)

	return c.poll(ctx, transcriptID)
}

func (c *AssemblyAIClient) poll(ctx context.Context, transcriptID string) (string, error) {
	for attempt := 1; attempt <= c.maxAttempts; attempt++ {
		transcript, err := c.client.Transcripts.Get(ctx, transcriptID)
		if err != nil {
			return "", fmt.Errorf("failed to fetch transcript status: %w", err)
		}

		switch transcript.Status {
		case aai.TranscriptStatusCompleted:
			return deref(transcript.Text), nil
		case aai.TranscriptStatusError, transcriptStatusFailed:
			reason := deref(transcript.Error)
			if reason == "" {
				reason = "unknown vendor error"
			}
			return "", &TranscriptionError{TranscriptID: transcriptID, Reason: reason}
		}

		c.logger.Debug("transcript still processing",
			zap.String("transcript_id", transcriptID),
			zap.String("status", string(transcript.Status)),
			zap.Int("attempt", attempt),
		)

		if attempt == c.maxAttempts {
			break
		}
		if err := sleep(ctx, c.pollInterval); err != nil {
			return "", err
		}
	}

	return "", fmt.Errorf("%w after %d attempts (transcript %s)", ErrTranscriptionTimeout, c.maxAttempts, transcriptID)
}

// sleep waits for d or until ctx is done
func sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
