package client

import (
	"context"
	"net/http"
	"net/url"

	"github.com/swiftype/app-search-go/appsearch"
)

type pageRequest struct {
	Current int `json:"current,omitempty"`
	Size    int `json:"size,omitempty"`
}

type listRequest struct {
	Page pageRequest `json:"page"`
}

func enginePath(name string) string {
	return "engines/" + url.PathEscape(name)
}

// ListEngines returns a page of engines.
func (c *Client) ListEngines(ctx context.Context, opts appsearch.ListOptions) (appsearch.EngineList, error) {
	var body interface{}

	if !opts.IsZero() {
		body = listRequest{
			Page: pageRequest{
				Current: opts.Current,
				Size:    opts.Size,
			},
		}
	}

	var engines appsearch.EngineList

	err := c.Do(ctx, http.MethodGet, "engines", body, &engines)
	if err != nil {
		return appsearch.EngineList{}, err
	}

	return engines, nil
}

// GetEngine returns an engine by name.
func (c *Client) GetEngine(ctx context.Context, name string) (appsearch.Engine, error) {
	if err := requireEngine(name); err != nil {
		return appsearch.Engine{}, err
	}

	var engine appsearch.Engine

	err := c.Do(ctx, http.MethodGet, enginePath(name), nil, &engine)
	if err != nil {
		return appsearch.Engine{}, err
	}

	return engine, nil
}

// CreateEngine creates a new engine.
func (c *Client) CreateEngine(ctx context.Context, name string) (appsearch.Engine, error) {
	if err := requireEngine(name); err != nil {
		return appsearch.Engine{}, err
	}

	var engine appsearch.Engine

	err := c.Do(ctx, http.MethodPost, "engines", appsearch.Engine{Name: name}, &engine)
	if err != nil {
		return appsearch.Engine{}, err
	}

	return engine, nil
}

// DestroyEngine deletes an engine with all of its documents.
func (c *Client) DestroyEngine(ctx context.Context, name string) (appsearch.DestroyEngineResult, error) {
	if err := requireEngine(name); err != nil {
		return appsearch.DestroyEngineResult{}, err
	}

	var result appsearch.DestroyEngineResult

	err := c.Do(ctx, http.MethodDelete, enginePath(name), nil, &result)
	if err != nil {
		return appsearch.DestroyEngineResult{}, err
	}

	return result, nil
}
