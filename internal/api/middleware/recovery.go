package middleware

import (
	"log/slog"
	"net/http"

	"github.com/mcoot/kartgate/internal/api/apierr"
	"github.com/mcoot/kartgate/internal/middleware"
)

// Recovery creates panic recovery middleware for the API
// Returns JSON error responses on panic
func Recovery(logger *slog.Logger) func(http.Handler) http.Handler {
	return middleware.Recovery(logger, func(w http.ResponseWriter, _ *http.Request) {
		apierr.WriteError(w, apierr.NewInternalError())
	})
}

// Logging creates request logging middleware for the API
func Logging(logger *slog.Logger) func(http.Handler) http.Handler {
	return middleware.Logging(logger)
}
