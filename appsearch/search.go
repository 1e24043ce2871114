package appsearch

// SearchOptions are additional search parameters sent along with the query
// (eg. "filters", "facets", "page", "search_fields", "result_fields").
type SearchOptions map[string]interface{}

// SearchMeta is the metadata of a search response.
type SearchMeta struct {
	Page     Page     `json:"page"`
	Warnings []string `json:"warnings,omitempty"`
	// RequestID identifies the search request on the service side.
	RequestID string `json:"request_id,omitempty"`
}

// SearchResponse is a page of search results.
//
// Each result maps a field name to an object holding its "raw" (and optionally "snippet") value.
type SearchResponse struct {
	Meta    SearchMeta               `json:"meta"`
	Results []map[string]interface{} `json:"results"`
	Facets  map[string]interface{}   `json:"facets,omitempty"`
}

// RawValue returns the raw value of a field in a search result.
func RawValue(result map[string]interface{}, field string) (interface{}, bool) {
	value, ok := result[field].(map[string]interface{})
	if !ok {
		return nil, false
	}

	raw, ok := value["raw"]

	return raw, ok
}
