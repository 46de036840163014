package auth

import (
	"log/slog"

	"github.com/mcoot/kartgate/internal/model"
	"github.com/mcoot/kartgate/internal/storage"
)

// Messages shown to the player. These are part of the observable contract.
const (
	MsgEmptyFields        = "Cannot register empty fields."
	MsgRegistered         = "Registered! Now Login."
	MsgInvalidCredentials = "Invalid Username or Password."
)

// Controller decides the outcome of register and login submissions
type Controller struct {
	storage storage.CredentialStore
	logger  *slog.Logger
}

// NewController creates a new Controller backed by the given store
func NewController(storage storage.CredentialStore, logger *slog.Logger) *Controller {
	return &Controller{
		storage: storage,
		logger:  logger,
	}
}

// Submit applies an action to the credential store and reports the result.
// It never fails: every problem is a message in the returned Result.
func (c *Controller) Submit(action Action, username, password string) Result {
	switch action {
	case ActionRegister:
		return c.register(model.Credential{Username: username, Password: password})
	case ActionLogin:
		return c.login(model.Credential{Username: username, Password: password})
	default:
		c.logger.Warn("unknown action submitted", slog.Int("action", int(action)))
		return Result{Outcome: OutcomeNone}
	}
}

func (c *Controller) register(cred model.Credential) Result {
	if !cred.IsComplete() {
		c.logger.Debug("registration rejected: empty fields")
		return Result{Message: MsgEmptyFields, Outcome: OutcomeNone}
	}

	c.storage.Register(cred.Username, cred.Password)
	c.logger.Info("player registered", slog.String("username", cred.Username))

	return Result{Message: MsgRegistered, Outcome: OutcomeRegistered}
}

// login has no empty-field check; empty input fails verification like any other mismatch
func (c *Controller) login(cred model.Credential) Result {
	if !c.storage.Verify(cred.Username, cred.Password) {
		c.logger.Info("login failed", slog.String("username", cred.Username))
		return Result{Message: MsgInvalidCredentials, Outcome: OutcomeNone}
	}

	c.logger.Info("player authenticated", slog.String("username", cred.Username))
	return Result{Outcome: OutcomeAuthenticated, PlayerName: cred.Username}
}
