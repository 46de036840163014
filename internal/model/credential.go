package model

// Credential is a username/password pair as submitted by a player.
// It only exists as an entry in a credential store; it has no ID of its own.
type Credential struct {
	Username string
	Password string // stored as given, never hashed
}

// IsComplete reports whether both fields are non-empty
func (c Credential) IsComplete() bool {
	return c.Username != "" && c.Password != ""
}
