package appsearch

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/gorilla/schema"
)

// Set a Decoder instance as a package global, because it caches
// meta-data about structs, and an instance can be shared safely.
var decoder = newDecoder()

func newDecoder() *schema.Decoder {
	d := schema.NewDecoder()
	d.IgnoreUnknownKeys(true)

	return d
}

// SearchKeyServer exposes a SearchKeyService over HTTP.
//
// Callers authenticate with basic auth; requests without credentials are anonymous.
type SearchKeyServer struct {
	Service SearchKeyService
}

func handleError(err error, w http.ResponseWriter) {
	switch {
	case errors.Is(err, ErrAuthenticationFailed):
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
	case errors.Is(err, ErrUnauthorized):
		http.Error(w, http.StatusText(http.StatusForbidden), http.StatusForbidden)
	case errors.Is(err, ErrInvalidArgument):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}

// QueryHandler issues a search key restricted by query parameters (query, search_fields, result_fields).
func (s SearchKeyServer) QueryHandler(w http.ResponseWriter, r *http.Request) {
	var request SearchKeyRequest

	err := decoder.Decode(&request, r.URL.Query())
	if err != nil {
		handleError(fmt.Errorf("%w: %v", ErrInvalidArgument, err), w)
		return
	}

	s.serve(w, r, request)
}

// JSONHandler issues a search key restricted by a JSON request body.
func (s SearchKeyServer) JSONHandler(w http.ResponseWriter, r *http.Request) {
	var request SearchKeyRequest

	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		handleError(fmt.Errorf("%w: %v", ErrInvalidArgument, err), w)
		return
	}

	s.serve(w, r, request)
}

func (s SearchKeyServer) serve(w http.ResponseWriter, r *http.Request, request SearchKeyRequest) {
	username, password, ok := r.BasicAuth()
	request.Anonymous = !ok
	request.Username = username
	request.Password = password

	response, err := s.Service.IssueSearchKey(r.Context(), request)
	if err != nil {
		handleError(err, w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}
