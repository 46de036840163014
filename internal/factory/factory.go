package factory

import (
	"io"
	"log/slog"
	"os"

	"github.com/mcoot/kartgate/internal/services/auth"
	"github.com/mcoot/kartgate/internal/services/game"
	"github.com/mcoot/kartgate/internal/storage/memory"
)

// App contains all wired application components
type App struct {
	// Storage
	Storage *memory.Storage

	// Services
	AuthController *auth.Controller
	GameLauncher   game.Launcher

	Logger *slog.Logger
}

// Config holds configuration for the application factory
type Config struct {
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// GameOutput is where the game banner is written on launch (optional)
	// If nil, os.Stdout is used
	GameOutput io.Writer
	// Launcher overrides the game launcher (optional)
	Launcher game.Launcher
}

// New creates a new application with all dependencies wired
func New(cfg Config) *App {
	// Use no-op logger if not provided
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	launcher := cfg.Launcher
	if launcher == nil {
		out := cfg.GameOutput
		if out == nil {
			out = os.Stdout
		}
		launcher = game.NewBannerLauncher(out, logger)
	}

	store := memory.New()

	return &App{
		Storage:        store,
		AuthController: auth.NewController(store, logger),
		GameLauncher:   launcher,
		Logger:         logger,
	}
}

// NewGate creates a fresh login gate for one presentation surface
func (a *App) NewGate() *auth.Gate {
	return auth.NewGate(a.AuthController)
}
