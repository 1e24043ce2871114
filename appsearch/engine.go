package appsearch

import "errors"

// ErrNotFound is returned when the requested engine or document does not exist.
var ErrNotFound = errors.New("not found")

// Engine is a searchable collection of documents.
type Engine struct {
	Name string `json:"name"`
}

// Page describes a page of a paginated listing.
type Page struct {
	Current      int `json:"current"`
	TotalPages   int `json:"total_pages,omitempty"`
	TotalResults int `json:"total_results,omitempty"`
	Size         int `json:"size"`
}

// Meta is the metadata of a paginated response.
type Meta struct {
	Page Page `json:"page"`
}

// EngineList is a page of engines.
type EngineList struct {
	Meta    Meta     `json:"meta"`
	Results []Engine `json:"results"`
}

// ListOptions select a page of a listing.
//
// Zero values are left to the server defaults.
type ListOptions struct {
	Current int
	Size    int
}

// IsZero reports whether no paging option is set.
func (o ListOptions) IsZero() bool {
	return o.Current == 0 && o.Size == 0
}

// DestroyEngineResult is the outcome of deleting an engine.
type DestroyEngineResult struct {
	Deleted bool `json:"deleted"`
}
