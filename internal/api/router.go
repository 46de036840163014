package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mcoot/kartgate/internal/api/handler"
	"github.com/mcoot/kartgate/internal/api/middleware"
	"github.com/mcoot/kartgate/internal/services/auth"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger         *slog.Logger
	AuthController *auth.Controller
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	authHandler := handler.NewAuthHandler(cfg.AuthController)

	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(middleware.Recovery(cfg.Logger))
	api.Use(middleware.Logging(cfg.Logger))

	api.HandleFunc("/submit", authHandler.Submit).Methods(http.MethodPost)
	api.HandleFunc("/health", handler.Health).Methods(http.MethodGet)

	return r
}
