package appsearch

import (
	"errors"
)

// APIKeyNameClaim is the payload field of a signed search key that carries the token name.
//
// It is reserved: constraints passed to a SearchKeyIssuer must not contain it.
const APIKeyNameClaim = "api_key_name"

var (
	// ErrInvalidArgument is returned when a required argument is missing or unusable.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrMalformedToken is returned when a search key is not made of three decodable segments.
	ErrMalformedToken = errors.New("malformed token")

	// ErrInvalidSignature is returned when the signature of a search key does not match its content.
	ErrInvalidSignature = errors.New("invalid signature")
)

// Constraints are search options embedded in a signed search key and enforced by the search service.
//
// Keys and values are opaque to the issuer (eg. "query", "filters", "search_fields").
type Constraints map[string]interface{}

// SearchKeyIssuer signs constraints for a named token with the API key it was created with.
type SearchKeyIssuer interface {
	IssueSearchKey(tokenName string, constraints Constraints) (string, error)
}

// SearchKeyVerifier verifies a signed search key and returns its payload.
//
// The returned payload contains the token name under APIKeyNameClaim and every constraint.
type SearchKeyVerifier interface {
	VerifySearchKey(searchKey string) (map[string]interface{}, error)
}
