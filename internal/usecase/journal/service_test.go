package journal

import (
	"context"
	stdErrors "errors"
	"io"
	"net/http"
	"strings"
	"sync"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/johnquangdev/cinejournal/errors"
	"github.com/johnquangdev/cinejournal/internal/domain/entities"
	"github.com/johnquangdev/cinejournal/internal/domain/repositories"
	"github.com/johnquangdev/cinejournal/internal/infrastructure/cache"
	pkgai "github.com/johnquangdev/cinejournal/pkg/ai"
)

type fakeRepo struct {
	mu        sync.Mutex
	entries   map[primitive.ObjectID]*entities.JournalEntry
	calls     int
	createErr error
	listCalls int
	// afterList runs once the list snapshot is taken, outside the lock
	afterList func()
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{entries: map[primitive.ObjectID]*entities.JournalEntry{}}
}

func (r *fakeRepo) Create(ctx context.Context, e *entities.JournalEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls++
	if r.createErr != nil {
		return r.createErr
	}
	e.ID = primitive.NewObjectID()
	e.CreatedAt = time.Now().UTC()
	e.UpdatedAt = e.CreatedAt
	r.entries[e.ID] = e
	return nil
}

func (r *fakeRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*entities.JournalEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls++
	e, ok := r.entries[id]
	if !ok {
		return nil, entities.ErrEntryNotFound
	}
	return e, nil
}

func (r *fakeRepo) List(ctx context.Context, f repositories.EntryFilters) ([]*entities.JournalEntry, error) {
	r.mu.Lock()
	r.calls++
	r.listCalls++
	out := make([]*entities.JournalEntry, 0, len(r.entries))
	for _, e := range r.entries {
		out = append(out, e)
	}
	hook := r.afterList
	r.afterList = nil
	r.mu.Unlock()

	if hook != nil {
		hook()
	}
	return out, nil
}

func (r *fakeRepo) Update(ctx context.Context, id primitive.ObjectID, p entities.EntryPatch) (*entities.JournalEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls++
	e, ok := r.entries[id]
	if !ok {
		return nil, entities.ErrEntryNotFound
	}
	if p.BookTitle != nil {
		e.BookTitle = *p.BookTitle
	}
	if p.BookAuthor != nil {
		e.BookAuthor = *p.BookAuthor
	}
	if p.Mood != nil {
		e.Mood = *p.Mood
	}
	if p.CinematicEntry != nil {
		e.CinematicEntry = *p.CinematicEntry
	}
	return e, nil
}

func (r *fakeRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls++
	if _, ok := r.entries[id]; !ok {
		return entities.ErrEntryNotFound
	}
	delete(r.entries, id)
	return nil
}

type fakeTranscriber struct {
	configured bool
	text       string
	err        error
	gotAudio   string
	ctxErr     error
}

func (f *fakeTranscriber) Name() string     { return "fake-stt" }
func (f *fakeTranscriber) Configured() bool { return f.configured }
func (f *fakeTranscriber) Transcribe(ctx context.Context, audio io.Reader) (string, error) {
	b, _ := io.ReadAll(audio)
	f.gotAudio = string(b)
	f.ctxErr = ctx.Err()
	return f.text, f.err
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

type testDeps struct {
	repo *fakeRepo
	stt  *fakeTranscriber
	llm  *fakeGenerator
	mem  *cache.MemoryStore
	svc  Service
}

func newTestService(t *testing.T) *testDeps {
	t.Helper()
	d := &testDeps{
		repo: newFakeRepo(),
		stt:  &fakeTranscriber{configured: true, text: "I could not stop reading."},
		llm:  &fakeGenerator{configured: true, text: "And the pages kept turning."},
		mem:  cache.NewMemoryStore(time.Minute),
	}
	t.Cleanup(d.mem.Close)
	d.svc = NewService(d.repo, d.stt, d.llm, d.mem, Options{InsightsTTL: time.Minute, Location: time.UTC}, nil)
	return d
}

func requireAppError(t *testing.T, err error, status int) errors.AppError {
	t.Helper()
	var appErr errors.AppError
	if !stdErrors.As(err, &appErr) {
		t.Fatalf("expected AppError, got %v", err)
	}
	if appErr.HTTPCode != status {
		t.Fatalf("expected status %d, got %d (%s)", status, appErr.HTTPCode, appErr.Message)
	}
	return appErr
}

func TestCreate_FullPipeline(t *testing.T) {
	d := newTestService(t)

	entry, err := d.svc.Create(context.Background(), CreateEntryInput{
		Audio:      []byte("audio"),
		BookTitle:  " Dune ",
		BookAuthor: "Frank Herbert",
		Mood:       entities.MoodInspired,
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if entry.CinematicEntry != "And the pages kept turning." || entry.RawTranscription != "I could not stop reading." {
		t.Fatalf("unexpected entry %+v", entry)
	}
	if entry.BookTitle != "Dune" || entry.Mood != entities.MoodInspired {
		t.Fatalf("metadata not stored: %+v", entry)
	}
	if len(d.repo.entries) != 1 {
		t.Fatalf("expected exactly one entry, got %d", len(d.repo.entries))
	}
	if d.stt.gotAudio != "audio" {
		t.Fatalf("audio not forwarded")
	}
	for _, want := range []string{"I could not stop reading.", `"Dune"`, "Frank Herbert", entities.MoodInspired.PromptContext()} {
		if !strings.Contains(d.llm.prompt, want) {
			t.Fatalf("prompt missing %q", want)
		}
	}
}

func TestCreate_SilentClipUsesFallback(t *testing.T) {
	d := newTestService(t)
	d.stt.text = "   \n"
	d.llm.configured = false

	entry, err := d.svc.Create(context.Background(), CreateEntryInput{
		Audio:     []byte("silence"),
		BookTitle: "Dune",
		Mood:      entities.MoodInspired,
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if entry.CinematicEntry != entities.EmptyTranscriptEntry {
		t.Fatalf("expected fallback text, got %q", entry.CinematicEntry)
	}
	if entry.Mood != entities.MoodInspired || entry.BookTitle != "Dune" || entry.BookAuthor != entities.DefaultBookAuthor {
		t.Fatalf("unexpected metadata %+v", entry)
	}
	if d.llm.calls != 0 {
		t.Fatalf("generator must not be called, got %d calls", d.llm.calls)
	}
}

func TestCreate_ValidationHappensBeforeVendors(t *testing.T) {
	d := newTestService(t)

	_, err := d.svc.Create(context.Background(), CreateEntryInput{})
	requireAppError(t, err, http.StatusBadRequest)

	_, err = d.svc.Create(context.Background(), CreateEntryInput{Audio: []byte("a"), Mood: "furious"})
	requireAppError(t, err, http.StatusBadRequest)

	if d.stt.gotAudio != "" || d.repo.calls != 0 {
		t.Fatalf("nothing should run for invalid input")
	}
}

func TestCreate_TranscriberNotConfigured(t *testing.T) {
	d := newTestService(t)
	d.stt.configured = false

	_, err := d.svc.Create(context.Background(), CreateEntryInput{Audio: []byte("a")})
	requireAppError(t, err, http.StatusServiceUnavailable)
}

func TestCreate_GeneratorNotConfiguredWithSpeech(t *testing.T) {
	d := newTestService(t)
	d.llm.configured = false

	_, err := d.svc.Create(context.Background(), CreateEntryInput{Audio: []byte("a")})
	requireAppError(t, err, http.StatusServiceUnavailable)
	if len(d.repo.entries) != 0 {
		t.Fatalf("nothing should be persisted")
	}
}

func TestCreate_TranscriptionFailures(t *testing.T) {
	d := newTestService(t)

	d.stt.err = &pkgai.TranscriptionError{TranscriptID: "t1", Reason: "corrupt audio"}
	_, err := d.svc.Create(context.Background(), CreateEntryInput{Audio: []byte("a")})
	appErr := requireAppError(t, err, http.StatusInternalServerError)
	if !strings.Contains(appErr.Message, "corrupt audio") {
		t.Fatalf("message should carry the vendor reason: %s", appErr.Message)
	}

	d.stt.err = pkgai.ErrTranscriptionTimeout
	_, err = d.svc.Create(context.Background(), CreateEntryInput{Audio: []byte("a")})
	requireAppError(t, err, http.StatusGatewayTimeout)

	if len(d.repo.entries) != 0 || d.llm.calls != 0 {
		t.Fatalf("nothing should run after a transcription failure")
	}
}

func TestCreate_GenerationFailureLeavesNothingBehind(t *testing.T) {
	d := newTestService(t)
	d.llm.err = &pkgai.GenerationError{FinishReason: "SAFETY"}

	_, err := d.svc.Create(context.Background(), CreateEntryInput{Audio: []byte("a")})
	appErr := requireAppError(t, err, http.StatusBadGateway)
	if !strings.Contains(appErr.Message, "SAFETY") {
		t.Fatalf("message should name the finish reason: %s", appErr.Message)
	}
	if len(d.repo.entries) != 0 {
		t.Fatalf("nothing should be persisted")
	}
}

func TestCreate_SurvivesClientDisconnect(t *testing.T) {
	d := newTestService(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := d.svc.Create(ctx, CreateEntryInput{Audio: []byte("a")}); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if d.stt.ctxErr != nil {
		t.Fatalf("pipeline context should not inherit cancellation: %v", d.stt.ctxErr)
	}
}

func TestCreate_DatabaseFailureIsGeneric(t *testing.T) {
	d := newTestService(t)
	d.repo.createErr = stdErrors.New("connection pool exhausted")

	_, err := d.svc.Create(context.Background(), CreateEntryInput{Audio: []byte("a")})
	appErr := requireAppError(t, err, http.StatusInternalServerError)
	if strings.Contains(appErr.Message, "pool") {
		t.Fatalf("database cause must not leak into the message: %s", appErr.Message)
	}
}

func TestDelete(t *testing.T) {
	d := newTestService(t)
	entry, _ := d.svc.Create(context.Background(), CreateEntryInput{Audio: []byte("a")})

	if err := d.svc.Delete(context.Background(), entry.ID.Hex()); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	requireAppError(t, d.svc.Delete(context.Background(), entry.ID.Hex()), http.StatusNotFound)
}

func TestMalformedIDNeverTouchesRepository(t *testing.T) {
	d := newTestService(t)

	requireAppError(t, d.svc.Delete(context.Background(), "not-an-id"), http.StatusBadRequest)
	_, err := d.svc.Update(context.Background(), "1234", entities.EntryPatch{})
	requireAppError(t, err, http.StatusBadRequest)
	_, err = d.svc.Get(context.Background(), "zzz")
	requireAppError(t, err, http.StatusBadRequest)

	if d.repo.calls != 0 {
		t.Fatalf("repository was called %d times", d.repo.calls)
	}
}

func TestUpdate_Validation(t *testing.T) {
	d := newTestService(t)
	entry, _ := d.svc.Create(context.Background(), CreateEntryInput{Audio: []byte("a")})

	blank := "   "
	_, err := d.svc.Update(context.Background(), entry.ID.Hex(), entities.EntryPatch{CinematicEntry: &blank})
	requireAppError(t, err, http.StatusBadRequest)

	bad := entities.Mood("furious")
	_, err = d.svc.Update(context.Background(), entry.ID.Hex(), entities.EntryPatch{Mood: &bad})
	requireAppError(t, err, http.StatusBadRequest)

	title := "  Piranesi "
	mood := entities.MoodCalm
	updated, err := d.svc.Update(context.Background(), entry.ID.Hex(), entities.EntryPatch{BookTitle: &title, Mood: &mood})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.BookTitle != "Piranesi" || updated.Mood != entities.MoodCalm {
		t.Fatalf("unexpected entry %+v", updated)
	}
	if updated.RawTranscription != "I could not stop reading." {
		t.Fatalf("raw transcription must be untouched")
	}

	_, err = d.svc.Update(context.Background(), primitive.NewObjectID().Hex(), entities.EntryPatch{BookTitle: &title})
	requireAppError(t, err, http.StatusNotFound)
}

func TestUpdate_EmptyPatchReadsBack(t *testing.T) {
	d := newTestService(t)
	entry, _ := d.svc.Create(context.Background(), CreateEntryInput{Audio: []byte("a"), BookTitle: "Dune"})
	before := d.repo.calls

	got, err := d.svc.Update(context.Background(), entry.ID.Hex(), entities.EntryPatch{})
	if err != nil || got.BookTitle != "Dune" {
		t.Fatalf("unexpected result %v, %v", got, err)
	}
	if d.repo.calls != before+1 {
		t.Fatalf("expected a single read, got %d repository calls", d.repo.calls-before)
	}

	_, err = d.svc.Update(context.Background(), primitive.NewObjectID().Hex(), entities.EntryPatch{})
	requireAppError(t, err, http.StatusNotFound)
}

func TestInvalidMoodListsAllowedValues(t *testing.T) {
	d := newTestService(t)

	_, err := d.svc.Create(context.Background(), CreateEntryInput{Audio: []byte("a"), Mood: "furious"})
	appErr := requireAppError(t, err, http.StatusBadRequest)
	if !strings.Contains(appErr.Message, "furious") || !strings.Contains(appErr.Message, "calm") {
		t.Fatalf("unexpected message %q", appErr.Message)
	}
}

func TestAggregateInsights_CachedAndInvalidated(t *testing.T) {
	d := newTestService(t)
	_, _ = d.svc.Create(context.Background(), CreateEntryInput{Audio: []byte("a"), Mood: entities.MoodCalm})

	first, err := d.svc.AggregateInsights(context.Background())
	if err != nil {
		t.Fatalf("insights failed: %v", err)
	}
	if first.EntryCount != 1 || first.MoodDistribution["calm"] != 1 {
		t.Fatalf("unexpected insights %+v", first)
	}

	_, _ = d.svc.AggregateInsights(context.Background())
	if d.repo.listCalls != 1 {
		t.Fatalf("second read should be served from cache, list called %d times", d.repo.listCalls)
	}

	_, _ = d.svc.Create(context.Background(), CreateEntryInput{Audio: []byte("b")})
	again, _ := d.svc.AggregateInsights(context.Background())
	if again.EntryCount != 2 || again.MoodDistribution[entities.MoodUnspecified] != 1 {
		t.Fatalf("cache should have been invalidated, got %+v", again)
	}
}

func TestAggregateInsights_WriteDuringFillIsNotCached(t *testing.T) {
	d := newTestService(t)

	snapshotTaken := make(chan struct{})
	release := make(chan struct{})
	d.repo.afterList = func() {
		close(snapshotTaken)
		<-release
	}

	done := make(chan *AggregateInsights)
	go func() {
		res, err := d.svc.AggregateInsights(context.Background())
		if err != nil {
			t.Errorf("insights failed: %v", err)
		}
		done <- res
	}()

	<-snapshotTaken
	if _, err := d.svc.Create(context.Background(), CreateEntryInput{Audio: []byte("a"), Mood: entities.MoodCalm}); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	close(release)

	if stale := <-done; stale == nil || stale.EntryCount != 0 {
		t.Fatalf("in-flight read should see its own snapshot, got %+v", stale)
	}

	fresh, err := d.svc.AggregateInsights(context.Background())
	if err != nil {
		t.Fatalf("insights failed: %v", err)
	}
	if fresh.EntryCount != 1 {
		t.Fatalf("aggregate cached before the write was served: entryCount=%d, want 1", fresh.EntryCount)
	}
}

func TestList_RejectsBadFilters(t *testing.T) {
	d := newTestService(t)
	bad := entities.Mood("furious")

	_, err := d.svc.List(context.Background(), repositories.EntryFilters{Mood: &bad})
	requireAppError(t, err, http.StatusBadRequest)

	from := time.Now()
	to := from.Add(-time.Hour)
	_, err = d.svc.List(context.Background(), repositories.EntryFilters{From: &from, To: &to})
	requireAppError(t, err, http.StatusBadRequest)
}
