package handler

import (
	stdErrors "errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/johnquangdev/cinejournal/errors"
	"github.com/johnquangdev/cinejournal/internal/adapter/dto/common"
	"github.com/johnquangdev/cinejournal/internal/domain/entities"
	httpmw "github.com/johnquangdev/cinejournal/internal/infrastructure/http/middleware"
	journalUsecase "github.com/johnquangdev/cinejournal/internal/usecase/journal"
)

// getRequestID reads the id set by the request logger, falling back to the header
func getRequestID(c echo.Context) string {
	if c == nil || c.Request() == nil {
		return ""
	}
	if id := httpmw.GetRequestID(c); id != "" {
		return id
	}
	return c.Request().Header.Get(echo.HeaderXRequestID)
}

// validationError turns the first validator failure into a client-facing message
func validationError(err error) error {
	var verrs validator.ValidationErrors
	if !stdErrors.As(err, &verrs) || len(verrs) == 0 {
		return errors.ErrInvalidArgument("Invalid request")
	}

	fe := verrs[0]
	switch fe.Tag() {
	case "mood":
		return journalUsecase.InvalidMood(entities.Mood(strings.TrimSpace(fieldString(fe.Value()))))
	case "max":
		return errors.ErrInvalidArgument(fmt.Sprintf("Invalid %s: must be at most %s", fe.Field(), fe.Param()))
	case "min":
		return errors.ErrInvalidArgument(fmt.Sprintf("Invalid %s: must be at least %s", fe.Field(), fe.Param()))
	case "datetime":
		return errors.ErrInvalidArgument(fmt.Sprintf("Invalid %s: expected an RFC3339 timestamp", fe.Field()))
	default:
		return errors.ErrInvalidArgument(fmt.Sprintf("Invalid %s", fe.Field()))
	}
}

func fieldString(v interface{}) string {
	switch s := v.(type) {
	case string:
		return s
	case *string:
		if s != nil {
			return *s
		}
		return ""
	default:
		return fmt.Sprint(v)
	}
}

// HandleSuccess writes the {success:true,data} envelope
func HandleSuccess(logger *zap.Logger, c echo.Context, status int, data interface{}) error {
	if logger != nil {
		logger.Debug("http.response.success",
			zap.String("request_id", getRequestID(c)),
			zap.String("path", c.Path()),
			zap.Int("status", status),
		)
	}

	if data == nil {
		data = struct{}{}
	}
	return c.JSON(status, common.SuccessResponse{Success: true, Data: data})
}

// HandleError renders err as the {success:false,status,message} envelope
func HandleError(logger *zap.Logger, c echo.Context, err error, uploadLimit int64) error {
	appErr := toAppError(err, uploadLimit)

	if logger != nil {
		fields := []zap.Field{
			zap.String("request_id", getRequestID(c)),
			zap.String("method", c.Request().Method),
			zap.String("path", c.Request().URL.Path),
			zap.Int("status", appErr.HTTPCode),
			zap.String("app_code", appErr.Code.String()),
			zap.Error(err),
		}
		for k, v := range appErr.Details {
			fields = append(fields, zap.String(k, v))
		}
		if appErr.HTTPCode >= http.StatusInternalServerError {
			logger.Error("http.response.error", fields...)
		} else {
			logger.Warn("http.response.error", fields...)
		}
	}

	return c.JSON(appErr.HTTPCode, common.ErrorResponse{
		Success: false,
		Status:  appErr.HTTPCode,
		Message: appErr.Message,
	})
}

// NewHTTPErrorHandler routes every error returned by a handler or raised by
// echo itself through HandleError
func NewHTTPErrorHandler(logger *zap.Logger, uploadLimit int64) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}
		if werr := HandleError(logger, c, err, uploadLimit); werr != nil && logger != nil {
			logger.Error("failed to write error response", zap.Error(werr))
		}
	}
}

func toAppError(err error, uploadLimit int64) errors.AppError {
	var appErr errors.AppError
	if stdErrors.As(err, &appErr) {
		return appErr
	}

	var he *echo.HTTPError
	if stdErrors.As(err, &he) {
		switch he.Code {
		case http.StatusNotFound:
			return errors.ErrNotFound("Route not found")
		case http.StatusMethodNotAllowed:
			return errors.ErrMethodNotAllowed()
		case http.StatusRequestEntityTooLarge:
			return errors.ErrPayloadTooLarge(uploadLimit)
		}
		if he.Code < http.StatusInternalServerError {
			return errors.AppError{
				Raw:      he.Internal,
				HTTPCode: he.Code,
				Code:     errors.ErrorCode_INVALID_ARGUMENT,
				Message:  fmt.Sprint(he.Message),
			}
		}
	}

	return errors.ErrInternal(err)
}
