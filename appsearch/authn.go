package appsearch

import (
	"context"
	"errors"
)

// CallerName is an attribute key for Caller providing an alternate name.
const CallerName = "name"

// Caller represents an authenticated client of the search key server.
type Caller struct {
	// ID is the primary identifier for the Caller (usually a username).
	//
	// Authorizers look up search key policies by ID.
	ID string

	// Attributes are arbitrary key-value pairs attached to the Caller by an authenticator.
	Attributes map[string]string
}

// GetName helps determining a human-readable name for the Caller.
// It returns the attribute stored under the key "name" (CallerName), if any.
// Otherwise it returns Caller.ID.
func (c Caller) GetName() string {
	name, ok := c.Attributes[CallerName]
	if !ok || name == "" {
		return c.ID
	}

	return name
}

// ErrAuthenticationFailed is returned when authentication fails.
//
// This error should only be returned if credential verification fails.
// Any other error (eg. connection problems) should be returned directly.
var ErrAuthenticationFailed = errors.New("authentication failed")

// PasswordAuthenticator authenticates a caller using basic auth.
//
// It returns an ErrAuthenticationFailed error in case credentials are invalid.
type PasswordAuthenticator interface {
	Authenticate(ctx context.Context, username string, password string) (Caller, error)
}
