package ai

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	speech "cloud.google.com/go/speech/apiv1"
	speechpb "cloud.google.com/go/speech/apiv1/speechpb"
	"go.uber.org/zap"
	"google.golang.org/api/option"

	"github.com/johnquangdev/cinejournal/pkg/config"
)

// GoogleSpeechClient transcribes audio with Cloud Speech long running recognition,
// polling the operation under the same attempt budget as AssemblyAI.
type GoogleSpeechClient struct {
	c            *speech.Client
	language     string
	pollInterval time.Duration
	maxAttempts  int
	logger       *zap.Logger
}

func NewGoogleSpeechClient(ctx context.Context, cfg *config.SpeechConfig, poll config.TranscriptionConfig, logger *zap.Logger) (*GoogleSpeechClient, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	var opts []option.ClientOption
	if cfg.CredentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsFile))
	}
	c, err := speech.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create speech client: %w", err)
	}

	language := cfg.LanguageCode
	if language == "" {
		language = "en-US"
	}

	return &GoogleSpeechClient{
		c:            c,
		language:     language,
		pollInterval: poll.PollInterval,
		maxAttempts:  poll.MaxPollAttempts,
		logger:       logger,
	}, nil
}

func (g *GoogleSpeechClient) Name() string { return "Google Speech" }

func (g *GoogleSpeechClient) Configured() bool { return g != nil && g.c != nil }

func (g *GoogleSpeechClient) Close() error {
	if g == nil || g.c == nil {
		return nil
	}
	return g.c.Close()
}

// Transcribe sends the audio inline and waits for the recognition operation
func (g *GoogleSpeechClient) Transcribe(ctx context.Context, audio io.Reader) (string, error) {
	if !g.Configured() {
		return "", ErrNotConfigured
	}

	content, err := io.ReadAll(audio)
	if err != nil {
		return "", fmt.Errorf("failed to read audio: %w", err)
	}

	encoding, rate, ok := audioEncoding(content)
	if !ok {
		return "", &TranscriptionError{Reason: unsupportedAudioReason}
	}

	op, err := g.c.LongRunningRecognize(ctx, &speechpb.LongRunningRecognizeRequest{
		Config: &speechpb.RecognitionConfig{
			Encoding:                   encoding,
			SampleRateHertz:            rate,
			LanguageCode:               g.language,
			EnableAutomaticPunctuation: true,
		},
		Audio: &speechpb.RecognitionAudio{
			AudioSource: &speechpb.RecognitionAudio_Content{Content: content},
		},
	})
	if err != nil {
		return "", fmt.Errorf("failed to submit recognition: %w", err)
	}
	g.logger.Info("recognition submitted", zap.String("operation", op.Name()))

	for attempt := 1; attempt <= g.maxAttempts; attempt++ {
		resp, err := op.Poll(ctx)
		if err != nil {
			return "", &TranscriptionError{TranscriptID: op.Name(), Reason: err.Error()}
		}
		if op.Done() {
			return joinResults(resp), nil
		}
		if attempt == g.maxAttempts {
			break
		}
		if err := sleep(ctx, g.pollInterval); err != nil {
			return "", err
		}
	}

	return "", fmt.Errorf("%w after %d attempts (operation %s)", ErrTranscriptionTimeout, g.maxAttempts, op.Name())
}

const unsupportedAudioReason = "audio format not supported by Google Speech; send FLAC, WAV, Ogg/WebM Opus or AMR, or use the assemblyai provider"

// audioEncoding sniffs the container header. FLAC and WAV describe
// themselves; m4a, aac and mp3 have no v1 encoding and report !ok.
func audioEncoding(content []byte) (speechpb.RecognitionConfig_AudioEncoding, int32, bool) {
	switch {
	case bytes.HasPrefix(content, []byte("fLaC")):
		return speechpb.RecognitionConfig_ENCODING_UNSPECIFIED, 0, true
	case len(content) >= 12 && bytes.HasPrefix(content, []byte("RIFF")) && bytes.Equal(content[8:12], []byte("WAVE")):
		return speechpb.RecognitionConfig_ENCODING_UNSPECIFIED, 0, true
	case bytes.HasPrefix(content, []byte("OggS")):
		return speechpb.RecognitionConfig_OGG_OPUS, 48000, true
	case bytes.HasPrefix(content, []byte{0x1A, 0x45, 0xDF, 0xA3}):
		return speechpb.RecognitionConfig_WEBM_OPUS, 48000, true
	case bytes.HasPrefix(content, []byte("#!AMR-WB\n")):
		return speechpb.RecognitionConfig_AMR_WB, 16000, true
	case bytes.HasPrefix(content, []byte("#!AMR\n")):
		return speechpb.RecognitionConfig_AMR, 8000, true
	default:
		return speechpb.RecognitionConfig_ENCODING_UNSPECIFIED, 0, false
	}
}

// joinResults concatenates the top alternative of every result
func joinResults(resp *speechpb.LongRunningRecognizeResponse) string {
	if resp == nil {
		return ""
	}
	parts := make([]string, 0, len(resp.Results))
	for _, r := range resp.Results {
		if len(r.Alternatives) == 0 {
			continue
		}
		if t := strings.TrimSpace(r.Alternatives[0].Transcript); t != "" {
			parts = append(parts, t)
		}
	}
	return strings.Join(parts, " ")
}
