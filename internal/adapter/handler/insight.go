package handler

import (
	stdErrors "errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/johnquangdev/cinejournal/errors"
	"github.com/johnquangdev/cinejournal/internal/adapter/dto/common"
	insightDTO "github.com/johnquangdev/cinejournal/internal/adapter/dto/insight"
	"github.com/johnquangdev/cinejournal/internal/adapter/presenter"
	insightUsecase "github.com/johnquangdev/cinejournal/internal/usecase/insight"
)

const (
	noInsightMessage     = "No AI insights available yet. Journal more to unlock them, or check back soon!"
	insightFailedMessage = "Oops! Failed to retrieve AI insights from the database."
)

// Insight handles generated insight HTTP requests
type Insight struct {
	insightService insightUsecase.Service
	logger         *zap.Logger
}

// NewInsightHandler creates a new insight handler
func NewInsightHandler(insightService insightUsecase.Service, logger *zap.Logger) *Insight {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Insight{
		insightService: insightService,
		logger:         logger,
	}
}

// GetLatest handles GET /journal-entries/ai-insights
// @Summary      Latest AI insight
// @Description  Returns the most recent weekly mood arc
// @Tags         Insights
// @Produce      json
// @Success      200  {object}  insight.LatestInsightResponse
// @Failure      404  {object}  insight.LatestInsightResponse
// @Failure      500  {object}  insight.LatestInsightResponse
// @Router       /journal-entries/ai-insights [get]
func (h *Insight) GetLatest(c echo.Context) error {
	latest, err := h.insightService.Latest(c.Request().Context())
	if err != nil {
		status, message := http.StatusInternalServerError, insightFailedMessage
		var appErr errors.AppError
		if stdErrors.As(err, &appErr) && appErr.HTTPCode == http.StatusNotFound {
			status, message = http.StatusNotFound, noInsightMessage
		} else {
			h.logger.Error("failed to load latest insight",
				zap.String("request_id", getRequestID(c)),
				zap.Error(err),
			)
		}
		return c.JSON(status, insightDTO.LatestInsightResponse{Message: message})
	}

	return c.JSON(http.StatusOK, presenter.ToLatestInsightResponse(latest))
}

// Generate handles POST /journal-entries/ai-insights/generate
// @Summary      Generate an AI insight now
// @Description  Runs the weekly mood arc job immediately. data is null when there are too few entries.
// @Tags         Insights
// @Produce      json
// @Success      200  {object}  common.SuccessResponse{data=insight.InsightResponse}
// @Failure      502  {object}  common.ErrorResponse
// @Failure      503  {object}  common.ErrorResponse
// @Router       /journal-entries/ai-insights/generate [post]
func (h *Insight) Generate(c echo.Context) error {
	generated, err := h.insightService.Run(c.Request().Context())
	if err != nil {
		return err
	}

	var data interface{}
	if generated != nil {
		data = presenter.ToInsightResponse(generated)
	}
	return c.JSON(http.StatusOK, common.SuccessResponse{Success: true, Data: data})
}
