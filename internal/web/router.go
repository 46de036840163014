package web

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mcoot/kartgate/internal/services/auth"
	"github.com/mcoot/kartgate/internal/web/handler"
	"github.com/mcoot/kartgate/internal/web/middleware"
)

// RouterConfig holds configuration for the web router
type RouterConfig struct {
	Logger         *slog.Logger
	AuthController *auth.Controller
}

// NewRouter creates a new web router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	// Apply global middleware to all routes
	r.Use(middleware.Recovery(cfg.Logger))
	r.Use(middleware.Logging(cfg.Logger))

	authHandler := handler.NewAuthHandler(cfg.AuthController, cfg.Logger)

	r.HandleFunc("/", authHandler.LoginPage).Methods(http.MethodGet)
	r.HandleFunc("/auth", authHandler.Submit).Methods(http.MethodPost)

	return r
}
