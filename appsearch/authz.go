package appsearch

import (
	"context"
	"errors"
)

// ErrUnauthorized is returned when a caller is not allowed to obtain a search key.
var ErrUnauthorized = errors.New("unauthorized")

// Grant is the outcome of an authorization decision: the token name and constraints a search key is issued with.
type Grant struct {
	TokenName   string
	Constraints Constraints
}

// Authorizer decides which constraints a caller gets from the requested ones.
//
// A nil caller is an anonymous request.
type Authorizer interface {
	Authorize(ctx context.Context, caller *Caller, requested Constraints) (Grant, error)
}
