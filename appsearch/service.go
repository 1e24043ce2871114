package appsearch

import (
	"context"
	"fmt"
	"time"

	"github.com/gofrs/uuid"
	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// SearchKeyService issues signed search keys to authorized callers.
type SearchKeyService interface {
	IssueSearchKey(ctx context.Context, r SearchKeyRequest) (SearchKeyResponse, error)
}

// SearchKeyRequest asks for a search key restricted to a set of constraints.
//
// Query, SearchFields and ResultFields are shortcuts for the respective constraints.
type SearchKeyRequest struct {
	Query        string      `schema:"query" json:"query,omitempty"`
	SearchFields []string    `schema:"search_fields" json:"search_fields,omitempty"`
	ResultFields []string    `schema:"result_fields" json:"result_fields,omitempty"`
	Constraints  Constraints `schema:"-" json:"constraints,omitempty"`

	Anonymous bool   `schema:"-" json:"-"`
	Username  string `schema:"-" json:"-"`
	Password  string `schema:"-" json:"-"`
}

// RequestedConstraints returns the constraints of the request with the shortcut fields applied.
func (r SearchKeyRequest) RequestedConstraints() Constraints {
	constraints := make(Constraints, len(r.Constraints)+3)
	maps.Copy(constraints, r.Constraints)

	if r.Query != "" {
		constraints["query"] = r.Query
	}

	if len(r.SearchFields) > 0 {
		searchFields := make(map[string]interface{}, len(r.SearchFields))
		for _, field := range r.SearchFields {
			searchFields[field] = map[string]interface{}{}
		}

		constraints["search_fields"] = searchFields
	}

	if len(r.ResultFields) > 0 {
		resultFields := make(map[string]interface{}, len(r.ResultFields))
		for _, field := range r.ResultFields {
			resultFields[field] = map[string]interface{}{"raw": map[string]interface{}{}}
		}

		constraints["result_fields"] = resultFields
	}

	return constraints
}

// SearchKeyResponse is returned to the caller of the search key server.
type SearchKeyResponse struct {
	SearchKey string `json:"search_key"`
	TokenName string `json:"token_name"`
	IssuedAt  string `json:"issued_at,omitempty"`
	RequestID string `json:"request_id,omitempty"`
}

// SearchKeyServiceImpl authenticates the caller, authorizes the requested constraints and issues a search key.
type SearchKeyServiceImpl struct {
	Authenticator PasswordAuthenticator
	Authorizer    Authorizer
	Issuer        SearchKeyIssuer

	Clock  clockwork.Clock
	Logger *zap.Logger
}

// IssueSearchKey implements SearchKeyService.
func (s SearchKeyServiceImpl) IssueSearchKey(ctx context.Context, r SearchKeyRequest) (SearchKeyResponse, error) {
	var caller *Caller

	if !r.Anonymous {
		authenticated, err := s.Authenticator.Authenticate(ctx, r.Username, r.Password)
		if err != nil {
			return SearchKeyResponse{}, err
		}

		caller = &authenticated
	}

	grant, err := s.Authorizer.Authorize(ctx, caller, r.RequestedConstraints())
	if err != nil {
		return SearchKeyResponse{}, err
	}

	searchKey, err := s.Issuer.IssueSearchKey(grant.TokenName, grant.Constraints)
	if err != nil {
		return SearchKeyResponse{}, err
	}

	requestID, err := uuid.NewV4()
	if err != nil {
		return SearchKeyResponse{}, fmt.Errorf("generating request id: %w", err)
	}

	now := s.clock().Now()

	constraintNames := maps.Keys(grant.Constraints)
	slices.Sort(constraintNames)

	callerName := "anonymous"
	if caller != nil {
		callerName = caller.GetName()
	}

	s.logger().Info(
		"search key issued",
		zap.String("request_id", requestID.String()),
		zap.String("caller", callerName),
		zap.String("token_name", grant.TokenName),
		zap.Strings("constraints", constraintNames),
	)

	return SearchKeyResponse{
		SearchKey: searchKey,
		TokenName: grant.TokenName,
		IssuedAt:  now.UTC().Format(time.RFC3339),
		RequestID: requestID.String(),
	}, nil
}

func (s SearchKeyServiceImpl) clock() clockwork.Clock {
	if s.Clock == nil {
		return clockwork.NewRealClock()
	}

	return s.Clock
}

func (s SearchKeyServiceImpl) logger() *zap.Logger {
	if s.Logger == nil {
		return zap.NewNop()
	}

	return s.Logger
}
