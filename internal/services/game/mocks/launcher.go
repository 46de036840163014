package mocks

import (
	"context"
	"sync"

	"github.com/mcoot/kartgate/internal/services/game"
)

// MockLauncher is a mock implementation of game.Launcher for testing
type MockLauncher struct {
	// Err is returned from every Launch call when set
	Err error

	mu       sync.Mutex
	launched []string
}

// Ensure MockLauncher implements Launcher
var _ game.Launcher = (*MockLauncher)(nil)

// NewMockLauncher creates a new MockLauncher
func NewMockLauncher() *MockLauncher {
	return &MockLauncher{}
}

// Launch records the player name
func (l *MockLauncher) Launch(_ context.Context, playerName string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.Err != nil {
		return l.Err
	}
	l.launched = append(l.launched, playerName)
	return nil
}

// Launched returns the player names launched so far, in order
func (l *MockLauncher) Launched() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]string(nil), l.launched...)
}
