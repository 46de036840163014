package game

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"
)

// Launcher starts the game for an authenticated player. The game owns the
// presentation surface from then on.
type Launcher interface {
	Launch(ctx context.Context, playerName string) error
}

// WindowTitle returns the title of the game window for a player
func WindowTitle(playerName string) string {
	return "GbaKart - Player: " + playerName
}

// BannerLauncher "launches" the game by writing its window title to a writer.
// It stands in for the real game process, which is not part of this repo.
type BannerLauncher struct {
	out    io.Writer
	logger *slog.Logger

	mu sync.Mutex
}

// NewBannerLauncher creates a launcher that writes to out
func NewBannerLauncher(out io.Writer, logger *slog.Logger) *BannerLauncher {
	return &BannerLauncher{
		out:    out,
		logger: logger,
	}
}

// Launch writes the game banner for playerName
func (l *BannerLauncher) Launch(ctx context.Context, playerName string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if _, err := fmt.Fprintln(l.out, WindowTitle(playerName)); err != nil {
		return fmt.Errorf("launch game: %w", err)
	}

	l.logger.Info("game launched", slog.String("player", playerName))
	return nil
}
