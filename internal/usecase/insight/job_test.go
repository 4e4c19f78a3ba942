package insight

import (
	"context"
	stdErrors "errors"
	"net/http"
	"strings"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/johnquangdev/cinejournal/errors"
	"github.com/johnquangdev/cinejournal/internal/domain/entities"
	"github.com/johnquangdev/cinejournal/internal/domain/repositories"
)

type fakeEntries struct {
	repositories.JournalEntryRepository
	entries []*entities.JournalEntry
	filters repositories.EntryFilters
	err     error
}

func (f *fakeEntries) List(ctx context.Context, filters repositories.EntryFilters) ([]*entities.JournalEntry, error) {
	f.filters = filters
	return f.entries, f.err
}

type fakeInsights struct {
	created []*entities.AIInsight
	latest  *entities.AIInsight
	err     error
}

func (f *fakeInsights) Create(ctx context.Context, insight *entities.AIInsight) error {
	if f.err != nil {
		return f.err
	}
	insight.ID = primitive.NewObjectID()
	f.created = append(f.created, insight)
	return nil
}

func (f *fakeInsights) FindLatest(ctx context.Context, insightType entities.InsightType) (*entities.AIInsight, error) {
	if f.err != nil {
		return nil, f.err
	}
	if f.latest == nil {
		return nil, entities.ErrInsightNotFound
	}
	return f.latest, nil
}

type fakeGenerator struct {
	configured bool
	text       string
	err        error
	calls      int
	prompt     string
}

func (f *fakeGenerator) Name() string     { return "fake-llm" }
func (f *fakeGenerator) Configured() bool { return f.configured }
func (f *fakeGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	f.calls++
	f.prompt = prompt
	return f.text, f.err
}

var fixedNow = time.Date(2024, 3, 10, 1, 0, 0, 0, time.UTC)

func newEntry(text string, mood entities.Mood, at time.Time) *entities.JournalEntry {
	return &entities.JournalEntry{ID: primitive.NewObjectID(), CinematicEntry: text, Mood: mood, CreatedAt: at}
}

func newTestJob(entries []*entities.JournalEntry, gen *fakeGenerator) (*service, *fakeEntries, *fakeInsights) {
	er := &fakeEntries{entries: entries}
	ir := &fakeInsights{}
	svc := NewService(er, ir, gen, Options{Window: 7 * 24 * time.Hour, MinEntries: 2, Timeout: time.Second}, nil).(*service)
	svc.now = func() time.Time { return fixedNow }
	return svc, er, ir
}

func TestRun_WritesOneInsightWithWindowEntries(t *testing.T) {
	entries := []*entities.JournalEntry{
		newEntry("The river was loud today.", entities.MoodCalm, fixedNow.Add(-time.Hour)),
		newEntry("I kept doubting the ending.", entities.MoodConfused, fixedNow.Add(-48*time.Hour)),
	}
	gen := &fakeGenerator{configured: true, text: "```json\n{\"moodArcDescription\": \"A quiet week.\", \"dominantEmotion\": \"calm\"}\n```"}
	svc, er, ir := newTestJob(entries, gen)

	insight, err := svc.Run(context.Background())
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	if len(ir.created) != 1 || insight != ir.created[0] {
		t.Fatalf("expected exactly one stored insight, got %d", len(ir.created))
	}
	if insight.Content.DominantEmotion != "calm" || insight.Content.MoodArcDescription != "A quiet week." {
		t.Fatalf("unexpected content %+v", insight.Content)
	}
	if len(insight.SourceEntryIDs) != 2 || insight.SourceEntryIDs[0] != entries[0].ID || insight.SourceEntryIDs[1] != entries[1].ID {
		t.Fatalf("source ids do not match the window entries")
	}
	if !insight.PeriodEndDate.Equal(fixedNow) || !insight.PeriodStartDate.Equal(fixedNow.Add(-7*24*time.Hour)) {
		t.Fatalf("unexpected period %v - %v", insight.PeriodStartDate, insight.PeriodEndDate)
	}
	if er.filters.From == nil || !er.filters.From.Equal(insight.PeriodStartDate) || er.filters.To == nil {
		t.Fatalf("entries must be queried over the window")
	}
	if !strings.Contains(gen.prompt, "2024-03-10 (mood: calm): The river was loud today.") {
		t.Fatalf("prompt missing dated line:\n%s", gen.prompt)
	}
}

func TestRun_SkipsBelowMinimum(t *testing.T) {
	gen := &fakeGenerator{configured: true}
	svc, _, ir := newTestJob([]*entities.JournalEntry{newEntry("only one", "", fixedNow)}, gen)

	insight, err := svc.Run(context.Background())
	if err != nil || insight != nil {
		t.Fatalf("expected a silent skip, got %v, %v", insight, err)
	}
	if gen.calls != 0 || len(ir.created) != 0 {
		t.Fatalf("nothing should be generated or stored")
	}
}

func TestRun_VendorFailureWritesNothing(t *testing.T) {
	entries := []*entities.JournalEntry{newEntry("a", "", fixedNow), newEntry("b", "", fixedNow)}
	gen := &fakeGenerator{configured: true, err: stdErrors.New("quota exceeded")}
	svc, _, ir := newTestJob(entries, gen)

	_, err := svc.Run(context.Background())

	var appErr errors.AppError
	if !stdErrors.As(err, &appErr) || appErr.HTTPCode != http.StatusBadGateway {
		t.Fatalf("expected generation failure, got %v", err)
	}
	if len(ir.created) != 0 || gen.calls != 1 {
		t.Fatalf("expected one attempt and nothing stored")
	}
}

func TestRun_UndecodableResponseUsesFallback(t *testing.T) {
	entries := []*entities.JournalEntry{newEntry("a", "", fixedNow), newEntry("b", "", fixedNow)}
	gen := &fakeGenerator{configured: true, text: "The week felt long."}
	svc, _, ir := newTestJob(entries, gen)

	insight, err := svc.Run(context.Background())
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if insight.Content != entities.FallbackInsightContent || len(ir.created) != 1 {
		t.Fatalf("expected fallback content, got %+v", insight.Content)
	}
}

func TestRun_GeneratorNotConfigured(t *testing.T) {
	gen := &fakeGenerator{}
	svc, _, ir := newTestJob([]*entities.JournalEntry{newEntry("a", "", fixedNow), newEntry("b", "", fixedNow)}, gen)

	_, err := svc.Run(context.Background())

	var appErr errors.AppError
	if !stdErrors.As(err, &appErr) || appErr.HTTPCode != http.StatusServiceUnavailable {
		t.Fatalf("expected unavailable, got %v", err)
	}
	if len(ir.created) != 0 {
		t.Fatalf("nothing should be stored")
	}
}

func TestLatest(t *testing.T) {
	svc, _, ir := newTestJob(nil, &fakeGenerator{})

	_, err := svc.Latest(context.Background())
	var appErr errors.AppError
	if !stdErrors.As(err, &appErr) || appErr.HTTPCode != http.StatusNotFound {
		t.Fatalf("expected not found, got %v", err)
	}

	ir.latest = &entities.AIInsight{Content: entities.InsightContent{DominantEmotion: "hopeful"}}
	got, err := svc.Latest(context.Background())
	if err != nil || got.Content.DominantEmotion != "hopeful" {
		t.Fatalf("unexpected latest %v, %v", got, err)
	}

	ir.err = stdErrors.New("server selection timeout")
	_, err = svc.Latest(context.Background())
	if !stdErrors.As(err, &appErr) || appErr.HTTPCode != http.StatusInternalServerError {
		t.Fatalf("expected internal error, got %v", err)
	}
}
