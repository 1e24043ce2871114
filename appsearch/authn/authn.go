package authn

import (
	"context"

	"golang.org/x/crypto/bcrypt"
	"golang.org/x/exp/maps"

	"github.com/swiftype/app-search-go/appsearch"
)

// User is an entry of a UserAuthenticator.
type User struct {
	Enabled      bool
	Username     string
	PasswordHash string
	Attrs        map[string]string
}

// UserAuthenticator authenticates a caller from a static list of users with bcrypt password hashes.
type UserAuthenticator struct {
	users map[string]User
}

// NewUserAuthenticator returns a new UserAuthenticator.
func NewUserAuthenticator(entries []User) UserAuthenticator {
	users := make(map[string]User, len(entries))

	for _, entry := range entries {
		entry.Attrs = maps.Clone(entry.Attrs)
		users[entry.Username] = entry
	}

	return UserAuthenticator{
		users: users,
	}
}

// Authenticate implements the appsearch.PasswordAuthenticator interface.
func (a UserAuthenticator) Authenticate(_ context.Context, username string, password string) (appsearch.Caller, error) {
	user, ok := a.users[username]
	if !ok || !user.Enabled {
		// timing attack paranoia
		bcrypt.CompareHashAndPassword([]byte{}, []byte(password))

		return appsearch.Caller{}, appsearch.ErrAuthenticationFailed
	}

	err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password))
	if err != nil {
		return appsearch.Caller{}, appsearch.ErrAuthenticationFailed
	}

	return appsearch.Caller{
		ID:         username,
		Attributes: maps.Clone(user.Attrs),
	}, nil
}
