package client

import (
	"context"
	"fmt"
	"net/http"

	"golang.org/x/exp/maps"

	"github.com/swiftype/app-search-go/appsearch"
	"github.com/swiftype/app-search-go/appsearch/searchkey/jwt"
)

// Search runs a query against an engine.
//
// Options are sent along with the query and must not contain a "query" key.
func (c *Client) Search(ctx context.Context, engine string, query string, opts appsearch.SearchOptions) (appsearch.SearchResponse, error) {
	if err := requireEngine(engine); err != nil {
		return appsearch.SearchResponse{}, err
	}

	if _, ok := opts["query"]; ok {
		return appsearch.SearchResponse{}, fmt.Errorf("%w: query must not be passed as an option", appsearch.ErrInvalidArgument)
	}

	body := make(map[string]interface{}, len(opts)+1)
	maps.Copy(body, map[string]interface{}(opts))
	body["query"] = query

	var response appsearch.SearchResponse

	err := c.Do(ctx, http.MethodPost, enginePath(engine)+"/search", body, &response)
	if err != nil {
		return appsearch.SearchResponse{}, err
	}

	return response, nil
}

// CreateSignedSearchKey signs constraints for tokenName with the API key of the client.
//
// The key can be used in place of a private API key by untrusted clients.
func (c *Client) CreateSignedSearchKey(tokenName string, constraints appsearch.Constraints) (string, error) {
	return jwt.Issue(c.apiKey, tokenName, constraints)
}
