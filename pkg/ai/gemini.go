package ai

import (
	"context"
	"fmt"
	"strings"
	"time"

	"cloud.google.com/go/vertexai/genai"
	"go.uber.org/zap"
	"google.golang.org/api/option"

	"github.com/johnquangdev/cinejournal/pkg/config"
	"github.com/johnquangdev/cinejournal/pkg/retry"
)

// contentGenerator is satisfied by *genai.GenerativeModel
type contentGenerator interface {
	GenerateContent(ctx context.Context, parts ...genai.Part) (*genai.GenerateContentResponse, error)
}

// GeminiClient sends prompts to Gemini on Vertex AI, retrying transport failures
type GeminiClient struct {
	client *genai.Client
	model  contentGenerator
	policy retry.Policy
	logger *zap.Logger
}

// NewGeminiClient builds the Vertex AI client. Without a project id the
// returned client is valid but reports Configured() == false.
func NewGeminiClient(ctx context.Context, cfg *config.GeminiConfig, gen config.GenerationConfig, logger *zap.Logger) (*GeminiClient, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	g := &GeminiClient{
		policy: retry.NewPolicy(gen.MaxAttempts, gen.RetryBaseDelay),
		logger: logger,
	}
	g.policy.Notify = func(err error, attempt int, wait time.Duration) {
		logger.Warn("gemini request failed, retrying",
			zap.Int("attempt", attempt),
			zap.Duration("wait", wait),
			zap.Error(err),
		)
	}

	if cfg.ProjectID == "" {
		return g, nil
	}

	var opts []option.ClientOption
	if cfg.CredentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsFile))
	}
	c, err := genai.NewClient(ctx, cfg.ProjectID, cfg.Location, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create vertex ai client: %w", err)
	}

	modelName := cfg.Model
	if modelName == "" {
		modelName = "gemini-2.0-flash-lite"
	}
	m := c.GenerativeModel(modelName)
	m.SafetySettings = []*genai.SafetySetting{
		{Category: genai.HarmCategoryHarassment, Threshold: genai.HarmBlockMediumAndAbove},
		{Category: genai.HarmCategoryHateSpeech, Threshold: genai.HarmBlockMediumAndAbove},
		{Category: genai.HarmCategorySexuallyExplicit, Threshold: genai.HarmBlockMediumAndAbove},
		{Category: genai.HarmCategoryDangerousContent, Threshold: genai.HarmBlockMediumAndAbove},
	}

	g.client = c
	g.model = m
	return g, nil
}

// Name identifies the vendor in errors and logs
func (g *GeminiClient) Name() string { return "Gemini" }

// Configured reports whether a model is available
func (g *GeminiClient) Configured() bool { return g != nil && g.model != nil }

// Generate sends prompt and returns the trimmed text of the first candidate
func (g *GeminiClient) Generate(ctx context.Context, prompt string) (string, error) {
	if !g.Configured() {
		return "", ErrNotConfigured
	}

	resp, err := retry.DoValue(ctx, g.policy, func(ctx context.Context) (*genai.GenerateContentResponse, error) {
		return g.model.GenerateContent(ctx, genai.Text(prompt))
	})
	if err != nil {
		return "", fmt.Errorf("gemini request failed: %w", err)
	}

	return textFromResponse(resp)
}

// Close releases the underlying client
func (g *GeminiClient) Close() error {
	if g == nil || g.client == nil {
		return nil
	}
	return g.client.Close()
}

// textFromResponse accepts only candidates that finished normally
func textFromResponse(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 {
		gerr := &GenerationError{FinishReason: "NO_CANDIDATES"}
		if resp != nil && resp.PromptFeedback != nil {
			gerr.BlockReason = resp.PromptFeedback.BlockReason.String()
			gerr.SafetyRatings = describeRatings(resp.PromptFeedback.SafetyRatings)
		}
		return "", gerr
	}

	cand := resp.Candidates[0]
	if cand.FinishReason != genai.FinishReasonStop {
		gerr := &GenerationError{
			FinishReason:  cand.FinishReason.String(),
			SafetyRatings: describeRatings(cand.SafetyRatings),
		}
		if resp.PromptFeedback != nil {
			gerr.BlockReason = resp.PromptFeedback.BlockReason.String()
			if len(gerr.SafetyRatings) == 0 {
				gerr.SafetyRatings = describeRatings(resp.PromptFeedback.SafetyRatings)
			}
		}
		return "", gerr
	}

	var b strings.Builder
	if cand.Content != nil {
		for _, part := range cand.Content.Parts {
			if t, ok := part.(genai.Text); ok {
				b.WriteString(string(t))
			}
		}
	}
	text := strings.TrimSpace(b.String())
	if text == "" {
		return "", &GenerationError{FinishReason: cand.FinishReason.String(), BlockReason: "empty response"}
	}
	return text, nil
}

// describeRatings keeps only ratings the vendor flagged or rated above negligible
func describeRatings(ratings []*genai.SafetyRating) []string {
	var out []string
	for _, r := range ratings {
		if r == nil {
			continue
		}
		if !r.Blocked && r.Probability <= genai.HarmProbabilityNegligible {
			continue
		}
		out = append(out, fmt.Sprintf("%s=%s", r.Category.String(), r.Probability.String()))
	}
	return out
}
