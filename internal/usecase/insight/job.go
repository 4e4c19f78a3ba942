package insight

import (
	"context"
	stdErrors "errors"
	"time"

	"go.uber.org/zap"

	"github.com/johnquangdev/cinejournal/errors"
	"github.com/johnquangdev/cinejournal/internal/domain/entities"
	"github.com/johnquangdev/cinejournal/internal/domain/repositories"
	"github.com/johnquangdev/cinejournal/pkg/jobcontext"
)

// JobType names the weekly mood arc run in logs and job metadata
const JobType = "weekly_mood_arc"

// Generator completes a prompt
type Generator interface {
	Name() string
	Configured() bool
	Generate(ctx context.Context, prompt string) (string, error)
}

// Service defines AI insight use cases
type Service interface {
	// Run generates one insight over the trailing window. It returns a nil
	// insight without error when the run is skipped.
	Run(ctx context.Context) (*entities.AIInsight, error)

	// Latest returns the most recent weekly insight
	Latest(ctx context.Context) (*entities.AIInsight, error)
}

// Options tunes the job
type Options struct {
	Window     time.Duration
	MinEntries int
	Timeout    time.Duration
}

type service struct {
	entries   repositories.JournalEntryRepository
	insights  repositories.AIInsightRepository
	generator Generator
	opts      Options
	now       func() time.Time
	logger    *zap.Logger
}

// NewService constructs the insight service
func NewService(
	entries repositories.JournalEntryRepository,
	insights repositories.AIInsightRepository,
	generator Generator,
	opts Options,
	logger *zap.Logger,
) Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	if opts.Window <= 0 {
		opts.Window = 7 * 24 * time.Hour
	}
	if opts.MinEntries < 1 {
		opts.MinEntries = 2
	}
	if opts.Timeout <= 0 {
		opts.Timeout = 2 * time.Minute
	}
	return &service{
		entries:   entries,
		insights:  insights,
		generator: generator,
		opts:      opts,
		now:       time.Now,
		logger:    logger,
	}
}

func (s *service) Run(ctx context.Context) (*entities.AIInsight, error) {
	ctx, cancel := jobcontext.JobBegin(ctx, JobType, s.opts.Timeout)
	defer cancel()

	meta := jobcontext.GetJobMetadata(ctx)
	log := s.logger.With(zap.String("job", meta.JobType), zap.String("run_id", meta.RunID.String()))

	if !s.generator.Configured() {
		log.Warn("insight generation skipped, generator not configured", zap.String("provider", s.generator.Name()))
		return nil, errors.ErrAIServiceUnavailable(s.generator.Name())
	}

	end := s.now().UTC()
	start := end.Add(-s.opts.Window)

	entries, err := s.entries.List(ctx, repositories.EntryFilters{From: &start, To: &end})
	if err != nil {
		log.Error("failed to load entries for insight", zap.Error(err))
		return nil, errors.ErrDBQueryFailed("journal_entries.find", err)
	}

	if len(entries) < s.opts.MinEntries {
		log.Info("not enough entries for insight",
			zap.Int("entries", len(entries)),
			zap.Int("min_entries", s.opts.MinEntries),
		)
		return nil, nil
	}

	raw, err := s.generator.Generate(ctx, BuildMoodArcPrompt(entries))
	if err != nil {
		log.Error("insight generation failed", zap.String("provider", s.generator.Name()), zap.Error(err))
		return nil, errors.ErrAIGenerationFailed(err)
	}

	content, err := ParseInsightContent(raw)
	if err != nil {
		log.Warn("using fallback insight content", zap.Error(err))
	}

	insight := entities.NewWeeklyMoodArc(start, end, content, entries)
	if err := s.insights.Create(ctx, insight); err != nil {
		log.Error("failed to store insight", zap.Error(err))
		return nil, errors.ErrDBQueryFailed("ai_insights.insert", err)
	}

	log.Info("insight generated",
		zap.String("insight_id", insight.ID.Hex()),
		zap.Int("entries", len(entries)),
		zap.String("dominant_emotion", insight.Content.DominantEmotion),
		zap.Duration("elapsed", jobcontext.Elapsed(ctx)),
	)
	return insight, nil
}

func (s *service) Latest(ctx context.Context) (*entities.AIInsight, error) {
	insight, err := s.insights.FindLatest(ctx, entities.InsightTypeWeeklyMoodArc)
	if stdErrors.Is(err, entities.ErrInsightNotFound) {
		return nil, errors.ErrNotFound("No AI insights available yet. Journal more to unlock them, or check back soon!")
	}
	if err != nil {
		return nil, errors.ErrDBQueryFailed("ai_insights.findOne", err)
	}
	return insight, nil
}
