package journal

import (
	"bytes"
	"context"
	stdErrors "errors"
	"fmt"
	"io"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/johnquangdev/cinejournal/errors"
	"github.com/johnquangdev/cinejournal/internal/domain/entities"
	"github.com/johnquangdev/cinejournal/internal/domain/repositories"
	"github.com/johnquangdev/cinejournal/internal/infrastructure/cache"
	pkgai "github.com/johnquangdev/cinejournal/pkg/ai"
)

// Transcriber turns audio into text
type Transcriber interface {
	Name() string
	Configured() bool
	Transcribe(ctx context.Context, audio io.Reader) (string, error)
}

// Generator completes a prompt
type Generator interface {
	Name() string
	Configured() bool
	Generate(ctx context.Context, prompt string) (string, error)
}

// Service defines journal entry use cases
type Service interface {
	List(ctx context.Context, filters repositories.EntryFilters) ([]*entities.JournalEntry, error)
	Get(ctx context.Context, id string) (*entities.JournalEntry, error)
	Create(ctx context.Context, in CreateEntryInput) (*entities.JournalEntry, error)
	Update(ctx context.Context, id string, patch entities.EntryPatch) (*entities.JournalEntry, error)
	Delete(ctx context.Context, id string) error
	AggregateInsights(ctx context.Context) (*AggregateInsights, error)
}

// CreateEntryInput carries one uploaded recording and its metadata
type CreateEntryInput struct {
	Audio      []byte
	BookTitle  string
	BookAuthor string
	Mood       entities.Mood
}

// Options tunes the service
type Options struct {
	PipelineTimeout time.Duration
	InsightsTTL     time.Duration
	Location        *time.Location
}

const (
	aggregateInsightsKey   = "journal:insights:aggregate"
	aggregateGenerationKey = "journal:insights:generation"
)

type service struct {
	repo        repositories.JournalEntryRepository
	transcriber Transcriber
	generator   Generator
	cache       cache.Cache
	opts        Options
	logger      *zap.Logger
}

// NewService constructs the journal service
func NewService(
	repo repositories.JournalEntryRepository,
	transcriber Transcriber,
	generator Generator,
	c cache.Cache,
	opts Options,
	logger *zap.Logger,
) Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	if opts.Location == nil {
		opts.Location = time.Local
	}
	if opts.PipelineTimeout <= 0 {
		opts.PipelineTimeout = 5 * time.Minute
	}
	return &service{
		repo:        repo,
		transcriber: transcriber,
		generator:   generator,
		cache:       c,
		opts:        opts,
		logger:      logger,
	}
}

func (s *service) List(ctx context.Context, filters repositories.EntryFilters) ([]*entities.JournalEntry, error) {
	if filters.Mood != nil && !filters.Mood.IsValid() {
		return nil, InvalidMood(*filters.Mood)
	}
	if filters.From != nil && filters.To != nil && filters.From.After(*filters.To) {
		return nil, errors.ErrInvalidArgument("from must be before to")
	}

	entries, err := s.repo.List(ctx, filters)
	if err != nil {
		return nil, errors.ErrDBQueryFailed("journal_entries.find", err)
	}
	return entries, nil
}

func (s *service) Get(ctx context.Context, id string) (*entities.JournalEntry, error) {
	oid, err := parseEntryID(id)
	if err != nil {
		return nil, err
	}

	entry, err := s.repo.FindByID(ctx, oid)
	if err != nil {
		return nil, mapRepoError("journal_entries.findOne", err)
	}
	return entry, nil
}

// Create runs transcription, rewrite and persistence. The pipeline is detached
// from the request context so a client disconnect does not abort it.
func (s *service) Create(ctx context.Context, in CreateEntryInput) (*entities.JournalEntry, error) {
	if len(in.Audio) == 0 {
		return nil, errors.ErrInvalidArgument("No audio file buffer received.")
	}
	if !in.Mood.IsValid() {
		return nil, InvalidMood(in.Mood)
	}
	if !s.transcriber.Configured() {
		return nil, errors.ErrAIServiceUnavailable(s.transcriber.Name())
	}

	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.opts.PipelineTimeout)
	defer cancel()

	start := time.Now()
	raw, err := s.transcriber.Transcribe(ctx, bytes.NewReader(in.Audio))
	if err != nil {
		s.logger.Error("transcription failed",
			zap.String("provider", s.transcriber.Name()),
			zap.Int("audio_bytes", len(in.Audio)),
			zap.Error(err),
		)
		if stdErrors.Is(err, pkgai.ErrTranscriptionTimeout) || stdErrors.Is(err, context.DeadlineExceeded) {
			return nil, errors.ErrAITranscriptionTimeout(err)
		}
		return nil, errors.ErrAITranscriptionFailed(err)
	}
	s.logger.Info("transcription completed",
		zap.String("provider", s.transcriber.Name()),
		zap.Int("transcript_chars", len(raw)),
		zap.Duration("elapsed", time.Since(start)),
	)

	cinematic := entities.EmptyTranscriptEntry
	if strings.TrimSpace(raw) == "" {
		s.logger.Warn("empty transcription, storing fallback entry")
	} else {
		if !s.generator.Configured() {
			return nil, errors.ErrAIServiceUnavailable(s.generator.Name())
		}
		prompt := BuildCinematicPrompt(raw, in.BookTitle, in.BookAuthor, in.Mood)
		cinematic, err = s.generator.Generate(ctx, prompt)
		if err != nil {
			s.logger.Error("cinematic rewrite failed", zap.String("provider", s.generator.Name()), zap.Error(err))
			return nil, errors.ErrAIGenerationFailed(err)
		}
	}

	entry := entities.NewJournalEntry(raw, cinematic, in.BookTitle, in.BookAuthor, in.Mood)
	if err := s.repo.Create(ctx, entry); err != nil {
		return nil, errors.ErrDBQueryFailed("journal_entries.insert", err)
	}

	s.invalidateInsights(ctx)
	s.logger.Info("journal entry created",
		zap.String("entry_id", entry.ID.Hex()),
		zap.Duration("elapsed", time.Since(start)),
	)
	return entry, nil
}

// Update applies the allow-listed patch; text fields are trimmed and a
// blank cinematic entry is rejected. An empty patch reads the entry back
// without writing.
func (s *service) Update(ctx context.Context, id string, patch entities.EntryPatch) (*entities.JournalEntry, error) {
	oid, err := parseEntryID(id)
	if err != nil {
		return nil, err
	}

	if patch.Mood != nil && !patch.Mood.IsValid() {
		return nil, InvalidMood(*patch.Mood)
	}
	if patch.CinematicEntry != nil {
		trimmed := strings.TrimSpace(*patch.CinematicEntry)
		if trimmed == "" {
			return nil, errors.ErrInvalidArgument("cinematicEntry cannot be empty")
		}
		patch.CinematicEntry = &trimmed
	}
	if patch.BookTitle != nil {
		trimmed := strings.TrimSpace(*patch.BookTitle)
		patch.BookTitle = &trimmed
	}
	if patch.BookAuthor != nil {
		trimmed := strings.TrimSpace(*patch.BookAuthor)
		patch.BookAuthor = &trimmed
	}

	if patch.IsEmpty() {
		entry, err := s.repo.FindByID(ctx, oid)
		if err != nil {
			return nil, mapRepoError("journal_entries.findOne", err)
		}
		return entry, nil
	}

	entry, err := s.repo.Update(ctx, oid, patch)
	if err != nil {
		return nil, mapRepoError("journal_entries.update", err)
	}

	s.invalidateInsights(ctx)
	return entry, nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	oid, err := parseEntryID(id)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, oid); err != nil {
		return mapRepoError("journal_entries.delete", err)
	}

	s.invalidateInsights(ctx)
	return nil
}

// AggregateInsights serves the cached aggregate when present. Cache keys
// carry the write generation read before querying, so a fill that races a
// write lands under a key no later reader uses.
func (s *service) AggregateInsights(ctx context.Context) (*AggregateInsights, error) {
	key, cacheable := s.aggregateKey(ctx)
	if cacheable {
		var cached AggregateInsights
		hit, err := s.cache.GetJSON(ctx, key, &cached)
		if err != nil {
			s.logger.Warn("insight cache read failed", zap.Error(err))
		}
		if hit {
			return &cached, nil
		}
	}

	entries, err := s.repo.List(ctx, repositories.EntryFilters{})
	if err != nil {
		return nil, errors.ErrDBQueryFailed("journal_entries.find", err)
	}

	result := ComputeAggregateInsights(entries, s.opts.Location)

	if cacheable {
		if err := s.cache.SetJSON(ctx, key, result, s.opts.InsightsTTL); err != nil {
			s.logger.Warn("insight cache write failed", zap.Error(err))
		}
	}
	return result, nil
}

func (s *service) aggregateKey(ctx context.Context) (string, bool) {
	if s.cache == nil {
		return "", false
	}
	gen, err := s.cache.Generation(ctx, aggregateGenerationKey)
	if err != nil {
		s.logger.Warn("insight cache generation read failed", zap.Error(err))
		return "", false
	}
	return fmt.Sprintf("%s:%d", aggregateInsightsKey, gen), true
}

func (s *service) invalidateInsights(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if _, err := s.cache.Bump(ctx, aggregateGenerationKey); err != nil {
		s.logger.Warn("insight cache invalidation failed", zap.Error(err))
	}
}

// InvalidMood reports m together with every accepted mood
func InvalidMood(m entities.Mood) error {
	moods := entities.AllMoods()
	allowed := make([]string, 0, len(moods))
	for _, v := range moods {
		allowed = append(allowed, string(v))
	}
	return errors.ErrInvalidArgument(fmt.Sprintf("Invalid mood: %s. Allowed: %s", m, strings.Join(allowed, ", ")))
}

func parseEntryID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, errors.ErrInvalidArgument("Invalid entry ID format")
	}
	return oid, nil
}

func mapRepoError(query string, err error) error {
	if stdErrors.Is(err, entities.ErrEntryNotFound) {
		return errors.ErrNotFound("Journal entry not found")
	}
	return errors.ErrDBQueryFailed(query, err)
}
