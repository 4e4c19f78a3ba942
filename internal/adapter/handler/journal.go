package handler

import (
	stdErrors "errors"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/johnquangdev/cinejournal/errors"
	journalDTO "github.com/johnquangdev/cinejournal/internal/adapter/dto/journal"
	"github.com/johnquangdev/cinejournal/internal/adapter/presenter"
	"github.com/johnquangdev/cinejournal/internal/domain/entities"
	"github.com/johnquangdev/cinejournal/internal/domain/repositories"
	journalUsecase "github.com/johnquangdev/cinejournal/internal/usecase/journal"
)

// audioFormField is the multipart part carrying the recording
const audioFormField = "audio"

// Journal handles journal entry HTTP requests
type Journal struct {
	journalService journalUsecase.Service
	maxUpload      int64
	logger         *zap.Logger
}

// NewJournalHandler creates a new journal handler
func NewJournalHandler(journalService journalUsecase.Service, maxUpload int64, logger *zap.Logger) *Journal {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Journal{
		journalService: journalService,
		maxUpload:      maxUpload,
		logger:         logger,
	}
}

// ListEntries handles GET /journal-entries
// @Summary      List journal entries
// @Description  Lists entries newest first, optionally filtered
// @Tags         Journal
// @Produce      json
// @Param        mood        query     string  false  "Mood"
// @Param        bookTitle   query     string  false  "Case-insensitive title match"
// @Param        bookAuthor  query     string  false  "Case-insensitive author match"
// @Param        from        query     string  false  "RFC3339 lower bound on createdAt"
// @Param        to          query     string  false  "RFC3339 upper bound on createdAt"
// @Param        limit       query     int     false  "Maximum number of entries"
// @Success      200  {array}   journal.EntryResponse
// @Failure      400  {object}  common.ErrorResponse
// @Failure      500  {object}  common.ErrorResponse
// @Router       /journal-entries [get]
func (h *Journal) ListEntries(c echo.Context) error {
	var req journalDTO.ListEntriesRequest
	if err := c.Bind(&req); err != nil {
		return errors.ErrInvalidArgument("Invalid query parameters")
	}
	if err := c.Validate(&req); err != nil {
		return validationError(err)
	}

	filters, err := buildEntryFilters(&req)
	if err != nil {
		return err
	}

	entries, err := h.journalService.List(c.Request().Context(), filters)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, presenter.ToEntryListResponse(entries))
}

// GetEntry handles GET /journal-entries/:id
// @Summary      Get a journal entry
// @Tags         Journal
// @Produce      json
// @Param        id   path      string  true  "Entry ID (ObjectID hex)"
// @Success      200  {object}  common.SuccessResponse{data=journal.EntryResponse}
// @Failure      400  {object}  common.ErrorResponse
// @Failure      404  {object}  common.ErrorResponse
// @Router       /journal-entries/{id} [get]
func (h *Journal) GetEntry(c echo.Context) error {
	entry, err := h.journalService.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return HandleSuccess(h.logger, c, http.StatusOK, presenter.ToEntryResponse(entry))
}

// CreateEntry handles POST /journal-entries
// @Summary      Create a journal entry from a recording
// @Description  Transcribes the audio, rewrites it as a cinematic monologue and stores the entry
// @Tags         Journal
// @Accept       multipart/form-data
// @Produce      json
// @Param        audio       formData  file    true   "Audio recording"
// @Param        bookTitle   formData  string  false  "Book title"
// @Param        bookAuthor  formData  string  false  "Book author"
// @Param        mood        formData  string  false  "Mood"
// @Success      201  {object}  journal.EntryResponse
// @Failure      400  {object}  common.ErrorResponse
// @Failure      413  {object}  common.ErrorResponse
// @Failure      502  {object}  common.ErrorResponse
// @Failure      503  {object}  common.ErrorResponse
// @Failure      504  {object}  common.ErrorResponse
// @Router       /journal-entries [post]
func (h *Journal) CreateEntry(c echo.Context) error {
	fh, err := c.FormFile(audioFormField)
	if err != nil {
		if isTooLarge(err) {
			return errors.ErrPayloadTooLarge(h.maxUpload)
		}
		return errors.ErrInvalidArgument("No audio file buffer received.")
	}
	if !isAudio(fh) {
		return errors.ErrInvalidArgument("Invalid file type. Only audio files are allowed.")
	}
	if h.maxUpload > 0 && fh.Size > h.maxUpload {
		return errors.ErrPayloadTooLarge(h.maxUpload)
	}

	var req journalDTO.CreateEntryRequest
	if err := c.Bind(&req); err != nil {
		return errors.ErrInvalidPayload()
	}
	if err := c.Validate(&req); err != nil {
		return validationError(err)
	}

	audio, err := readFormFile(fh)
	if err != nil {
		return errors.ErrInvalidArgument("No audio file buffer received.")
	}

	h.logger.Info("journal upload received",
		zap.String("request_id", getRequestID(c)),
		zap.String("filename", fh.Filename),
		zap.String("content_type", fh.Header.Get(echo.HeaderContentType)),
		zap.Int("audio_bytes", len(audio)),
	)

	entry, err := h.journalService.Create(c.Request().Context(), journalUsecase.CreateEntryInput{
		Audio:      audio,
		BookTitle:  req.BookTitle,
		BookAuthor: req.BookAuthor,
		Mood:       entities.Mood(strings.TrimSpace(req.Mood)),
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, presenter.ToEntryResponse(entry))
}

// UpdateEntry handles PUT /journal-entries/:id
// @Summary      Update a journal entry
// @Description  Only bookTitle, bookAuthor, mood and cinematicEntry can change
// @Tags         Journal
// @Accept       json
// @Produce      json
// @Param        id       path      string                      true  "Entry ID (ObjectID hex)"
// @Param        request  body      journal.UpdateEntryRequest  true  "Fields to change"
// @Success      200  {object}  common.SuccessResponse{data=journal.EntryResponse}
// @Failure      400  {object}  common.ErrorResponse
// @Failure      404  {object}  common.ErrorResponse
// @Router       /journal-entries/{id} [put]
func (h *Journal) UpdateEntry(c echo.Context) error {
	var req journalDTO.UpdateEntryRequest
	if err := (&echo.DefaultBinder{}).BindBody(c, &req); err != nil {
		return errors.ErrInvalidPayload()
	}
	if err := c.Validate(&req); err != nil {
		return validationError(err)
	}

	patch := entities.EntryPatch{
		BookTitle:      req.BookTitle,
		BookAuthor:     req.BookAuthor,
		CinematicEntry: req.CinematicEntry,
	}
	if req.Mood != nil {
		mood := entities.Mood(strings.TrimSpace(*req.Mood))
		patch.Mood = &mood
	}

	entry, err := h.journalService.Update(c.Request().Context(), c.Param("id"), patch)
	if err != nil {
		return err
	}
	return HandleSuccess(h.logger, c, http.StatusOK, presenter.ToEntryResponse(entry))
}

// DeleteEntry handles DELETE /journal-entries/:id
// @Summary      Delete a journal entry
// @Tags         Journal
// @Produce      json
// @Param        id   path      string  true  "Entry ID (ObjectID hex)"
// @Success      200  {object}  common.SuccessResponse
// @Failure      400  {object}  common.ErrorResponse
// @Failure      404  {object}  common.ErrorResponse
// @Router       /journal-entries/{id} [delete]
func (h *Journal) DeleteEntry(c echo.Context) error {
	if err := h.journalService.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return HandleSuccess(h.logger, c, http.StatusOK, nil)
}

// GetInsights handles GET /journal-entries/insights
// @Summary      Aggregate insights
// @Description  Mood distribution, weekday and month activity over all entries
// @Tags         Journal
// @Produce      json
// @Success      200  {object}  journal.InsightsResponse
// @Failure      500  {object}  common.ErrorResponse
// @Router       /journal-entries/insights [get]
func (h *Journal) GetInsights(c echo.Context) error {
	insights, err := h.journalService.AggregateInsights(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, presenter.ToInsightsResponse(insights))
}

// buildEntryFilters converts ListEntriesRequest to repository filters
func buildEntryFilters(req *journalDTO.ListEntriesRequest) (repositories.EntryFilters, error) {
	filters := repositories.EntryFilters{
		BookTitle:  strings.TrimSpace(req.BookTitle),
		BookAuthor: strings.TrimSpace(req.BookAuthor),
		Limit:      req.Limit,
	}

	if mood := strings.TrimSpace(req.Mood); mood != "" {
		m := entities.Mood(mood)
		filters.Mood = &m
	}

	for _, bound := range []struct {
		raw string
		dst **time.Time
	}{{req.From, &filters.From}, {req.To, &filters.To}} {
		if bound.raw == "" {
			continue
		}
		t, err := time.Parse(time.RFC3339, bound.raw)
		if err != nil {
			return filters, errors.ErrInvalidArgument("from and to must be RFC3339 timestamps")
		}
		*bound.dst = &t
	}

	return filters, nil
}

func isAudio(fh *multipart.FileHeader) bool {
	return strings.HasPrefix(strings.ToLower(fh.Header.Get(echo.HeaderContentType)), "audio/")
}

func isTooLarge(err error) bool {
	var maxErr *http.MaxBytesError
	if stdErrors.As(err, &maxErr) {
		return true
	}
	var he *echo.HTTPError
	return stdErrors.As(err, &he) && he.Code == http.StatusRequestEntityTooLarge
}

func readFormFile(fh *multipart.FileHeader) ([]byte, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(f)
}
