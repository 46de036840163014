package storage

// CredentialStore maps usernames to passwords.
//
// Register always succeeds and overwrites any previous password for the
// username. Verify is a pure lookup: it never mutates the store.
type CredentialStore interface {
	Register(username, password string)
	Verify(username, password string) bool
}
