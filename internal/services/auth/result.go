package auth

import (
	"strings"

	"github.com/mcoot/kartgate/internal/model"
)

// Action is what the player asked the login surface to do
type Action int

const (
	ActionRegister Action = iota
	ActionLogin
)

// String returns the lowercase action name
func (a Action) String() string {
	switch a {
	case ActionRegister:
		return "register"
	case ActionLogin:
		return "login"
	default:
		return "unknown"
	}
}

// ParseAction converts a surface-provided action name into an Action
func ParseAction(s string) (Action, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "register":
		return ActionRegister, nil
	case "login":
		return ActionLogin, nil
	default:
		return 0, model.ErrUnknownAction
	}
}

// Outcome tags the result of a submission
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeRegistered
	OutcomeAuthenticated
)

// String returns the lowercase outcome name
func (o Outcome) String() string {
	switch o {
	case OutcomeRegistered:
		return "registered"
	case OutcomeAuthenticated:
		return "authenticated"
	default:
		return "none"
	}
}

// Result is the outcome of a single submission.
// PlayerName is set only when Outcome is OutcomeAuthenticated.
type Result struct {
	Message    string
	Outcome    Outcome
	PlayerName string
}

// Authenticated reports whether the submission established a session
func (r Result) Authenticated() bool {
	return r.Outcome == OutcomeAuthenticated
}
