// Package jwt signs and verifies search keys as HS256 JSON Web Tokens keyed with an API key.
package jwt

import (
	"crypto/hmac"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/exp/maps"

	"github.com/swiftype/app-search-go/appsearch"
)

var signingMethod = jwt.SigningMethodHS256

// Issue returns a search key signed with credential.
//
// The payload of the key is constraints plus tokenName stored under appsearch.APIKeyNameClaim.
// The result only depends on the arguments: issuing the same key twice yields the same string.
func Issue(credential string, tokenName string, constraints appsearch.Constraints) (string, error) {
	if credential == "" {
		return "", fmt.Errorf("%w: credential is required", appsearch.ErrInvalidArgument)
	}

	if tokenName == "" {
		return "", fmt.Errorf("%w: token name is required", appsearch.ErrInvalidArgument)
	}

	if _, ok := constraints[appsearch.APIKeyNameClaim]; ok {
		return "", fmt.Errorf("%w: %q is a reserved constraint", appsearch.ErrInvalidArgument, appsearch.APIKeyNameClaim)
	}

	claims := make(jwt.MapClaims, len(constraints)+1)
	maps.Copy(claims, jwt.MapClaims(constraints))
	claims[appsearch.APIKeyNameClaim] = tokenName

	signedToken, err := jwt.NewWithClaims(signingMethod, claims).SignedString([]byte(credential))
	if err != nil {
		return "", fmt.Errorf("%w: signing search key: %v", appsearch.ErrInvalidArgument, err)
	}

	return signedToken, nil
}

// Verify checks the signature of searchKey with credential and returns its payload.
//
// Numbers in the payload are decoded as float64.
func Verify(searchKey string, credential string) (map[string]interface{}, error) {
	if credential == "" {
		return nil, fmt.Errorf("%w: credential is required", appsearch.ErrInvalidArgument)
	}

	parts := strings.Split(searchKey, ".")
	if len(parts) != 3 {
		return nil, fmt.Errorf("%w: expected 3 segments, got %d", appsearch.ErrMalformedToken, len(parts))
	}

	segments := make([][]byte, len(parts))

	for i, part := range parts {
		segment, err := jwt.DecodeSegment(part)
		if err != nil {
			return nil, fmt.Errorf("%w: segment %d: %v", appsearch.ErrMalformedToken, i, err)
		}

		segments[i] = segment
	}

	// Compare the encoded form: unused bits of the last base64 character are covered too.
	expectedSignature, err := signingMethod.Sign(parts[0]+"."+parts[1], []byte(credential))
	if err != nil {
		return nil, err
	}

	if !hmac.Equal([]byte(expectedSignature), []byte(parts[2])) {
		return nil, appsearch.ErrInvalidSignature
	}

	// json.Unmarshal accepts null for a map, leaving it nil.
	var payload map[string]interface{}

	if err := json.Unmarshal(segments[1], &payload); err != nil || payload == nil {
		return nil, fmt.Errorf("%w: payload is not a JSON object", appsearch.ErrMalformedToken)
	}

	token, _, err := new(jwt.Parser).ParseUnverified(searchKey, jwt.MapClaims{})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", appsearch.ErrMalformedToken, err)
	}

	if token.Method.Alg() != signingMethod.Alg() {
		return nil, fmt.Errorf("%w: unexpected signing method %q", appsearch.ErrInvalidSignature, token.Method.Alg())
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, appsearch.ErrMalformedToken
	}

	return map[string]interface{}(claims), nil
}

// SearchKeyIssuer issues and verifies search keys with a fixed API key.
type SearchKeyIssuer struct {
	credential string
}

// NewSearchKeyIssuer returns a new SearchKeyIssuer.
func NewSearchKeyIssuer(credential string) SearchKeyIssuer {
	return SearchKeyIssuer{
		credential: credential,
	}
}

// IssueSearchKey implements appsearch.SearchKeyIssuer.
func (i SearchKeyIssuer) IssueSearchKey(tokenName string, constraints appsearch.Constraints) (string, error) {
	return Issue(i.credential, tokenName, constraints)
}

// VerifySearchKey implements appsearch.SearchKeyVerifier.
func (i SearchKeyIssuer) VerifySearchKey(searchKey string) (map[string]interface{}, error) {
	return Verify(searchKey, i.credential)
}
