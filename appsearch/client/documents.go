package client

import (
	"context"
	"fmt"
	"net/http"

	"github.com/swiftype/app-search-go/appsearch"
)

func documentsPath(engine string) string {
	return enginePath(engine) + "/documents"
}

// IndexDocument creates or updates a single document.
//
// It returns an error if the service rejected the document.
func (c *Client) IndexDocument(ctx context.Context, engine string, document appsearch.Document) (appsearch.DocumentResult, error) {
	results, err := c.IndexDocuments(ctx, engine, []appsearch.Document{document})
	if err != nil {
		return appsearch.DocumentResult{}, err
	}

	if len(results) != 1 {
		return appsearch.DocumentResult{}, fmt.Errorf("indexing document: expected 1 result, got %d", len(results))
	}

	if err := results[0].Err(); err != nil {
		return appsearch.DocumentResult{}, err
	}

	return appsearch.DocumentResult{ID: results[0].ID}, nil
}

// IndexDocuments creates or updates a batch of documents.
//
// Documents rejected by the service are reported in the result (see appsearch.DocumentResults.Err).
func (c *Client) IndexDocuments(ctx context.Context, engine string, documents []appsearch.Document) (appsearch.DocumentResults, error) {
	if err := requireEngine(engine); err != nil {
		return nil, err
	}

	if len(documents) == 0 {
		return nil, fmt.Errorf("%w: no documents to index", appsearch.ErrInvalidArgument)
	}

	var results appsearch.DocumentResults

	err := c.Do(ctx, http.MethodPost, documentsPath(engine), documents, &results)
	if err != nil {
		return nil, err
	}

	return results, nil
}

// GetDocuments returns documents by ID.
//
// The result has an entry for every ID in the same order; unknown documents are nil.
func (c *Client) GetDocuments(ctx context.Context, engine string, ids []string) ([]appsearch.Document, error) {
	if err := requireEngine(engine); err != nil {
		return nil, err
	}

	if len(ids) == 0 {
		return nil, fmt.Errorf("%w: no document ids", appsearch.ErrInvalidArgument)
	}

	var documents []appsearch.Document

	err := c.Do(ctx, http.MethodGet, documentsPath(engine), ids, &documents)
	if err != nil {
		return nil, err
	}

	return documents, nil
}

// DestroyDocuments deletes documents by ID.
func (c *Client) DestroyDocuments(ctx context.Context, engine string, ids []string) ([]appsearch.DestroyResult, error) {
	if err := requireEngine(engine); err != nil {
		return nil, err
	}

	if len(ids) == 0 {
		return nil, fmt.Errorf("%w: no document ids", appsearch.ErrInvalidArgument)
	}

	var results []appsearch.DestroyResult

	err := c.Do(ctx, http.MethodDelete, documentsPath(engine), ids, &results)
	if err != nil {
		return nil, err
	}

	return results, nil
}

func requireEngine(engine string) error {
	if engine == "" {
		return fmt.Errorf("%w: engine name is required", appsearch.ErrInvalidArgument)
	}

	return nil
}
