package appsearch

import (
	"fmt"
	"strings"

	"github.com/hashicorp/go-multierror"
)

// Document is a schemaless document stored in an engine.
//
// Every document has a string "id" field.
type Document map[string]interface{}

// ID returns the "id" field of the document.
func (d Document) ID() string {
	id, _ := d["id"].(string)

	return id
}

// DocumentResult is the outcome of indexing a single document.
type DocumentResult struct {
	ID     string   `json:"id"`
	Errors []string `json:"errors"`
}

// Err returns the indexing errors of the document as a single error (or nil).
func (r DocumentResult) Err() error {
	if len(r.Errors) == 0 {
		return nil
	}

	return fmt.Errorf("document %q: %s", r.ID, strings.Join(r.Errors, "; "))
}

// DocumentResults is the outcome of indexing a batch of documents.
type DocumentResults []DocumentResult

// Err combines the errors of every failed document.
func (r DocumentResults) Err() error {
	var result *multierror.Error

	for _, documentResult := range r {
		if err := documentResult.Err(); err != nil {
			result = multierror.Append(result, err)
		}
	}

	return result.ErrorOrNil()
}

// DestroyResult is the outcome of deleting a single document.
type DestroyResult struct {
	ID     string `json:"id"`
	Result bool   `json:"result"`
}
