package api

import (
	"errors"
	"log/slog"
	"net/http"

	echo "github.com/labstack/echo/v5"

	"github.com/agentkube/investigator/pkg/approval"
	"github.com/agentkube/investigator/pkg/services"
)

// mapServiceError maps service-layer errors to HTTP error responses.
func mapServiceError(err error) *echo.HTTPError {
	var validErr *services.ValidationError
	if errors.As(err, &validErr) {
		return echo.NewHTTPError(http.StatusBadRequest, validErr.Error())
	}
	if errors.Is(err, services.ErrNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, "resource not found")
	}
	if errors.Is(err, services.ErrTerminalStatus) {
		return echo.NewHTTPError(http.StatusConflict, "task already reached a terminal status")
	}
	if errors.Is(err, services.ErrAlreadyExists) {
		return echo.NewHTTPError(http.StatusConflict, "resource already exists")
	}
	if errors.Is(err, services.ErrInvalidInput) {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	// Unexpected error
	slog.Error("Unexpected service error", "error", err)
	return echo.NewHTTPError(http.StatusInternalServerError, "internal server error")
}

// mapApprovalError maps approval broker errors: an unknown call_id means
// the decision arrived too late or was answered already.
func mapApprovalError(err error) *echo.HTTPError {
	if errors.Is(err, approval.ErrUnknownCall) {
		return echo.NewHTTPError(http.StatusNotFound, "no pending approval for call")
	}
	if errors.Is(err, approval.ErrAlreadyResolved) {
		return echo.NewHTTPError(http.StatusConflict, "approval already resolved")
	}
	slog.Error("Unexpected approval error", "error", err)
	return echo.NewHTTPError(http.StatusInternalServerError, "internal server error")
}
