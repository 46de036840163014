package auth

import (
	"sync"

	"github.com/mcoot/kartgate/internal/model"
)

// State is the authentication state of a single login surface
type State int

const (
	StateUnauthenticated State = iota
	StateAuthenticated
)

// String returns the lowercase state name
func (s State) String() string {
	if s == StateAuthenticated {
		return "authenticated"
	}
	return "unauthenticated"
}

// Gate tracks the state machine for one login surface (a terminal prompt,
// a form post). Once a login succeeds the gate is closed for good.
type Gate struct {
	controller *Controller

	mu         sync.Mutex
	state      State
	playerName string
}

// NewGate creates a Gate in the unauthenticated state
func NewGate(controller *Controller) *Gate {
	return &Gate{controller: controller}
}

// Submit forwards the action to the controller while unauthenticated.
// After authentication it returns ErrAlreadyAuthenticated without touching the store.
func (g *Gate) Submit(action Action, username, password string) (Result, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.state == StateAuthenticated {
		return Result{Outcome: OutcomeNone}, model.ErrAlreadyAuthenticated
	}

	result := g.controller.Submit(action, username, password)
	if result.Authenticated() {
		g.state = StateAuthenticated
		g.playerName = result.PlayerName
	}
	return result, nil
}

// State returns the current state
func (g *Gate) State() State {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.state
}

// PlayerName returns the authenticated player, or "" before login
func (g *Gate) PlayerName() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.playerName
}
