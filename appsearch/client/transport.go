package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/swiftype/app-search-go/appsearch"
)

const maxErrorBodySize = 1 << 20

// APIError is returned when the service responds with a non-2xx status code.
type APIError struct {
	StatusCode int
	Messages   []string
}

func (e *APIError) Error() string {
	if len(e.Messages) == 0 {
		return fmt.Sprintf("app search: %d %s", e.StatusCode, http.StatusText(e.StatusCode))
	}

	return fmt.Sprintf("app search: %d %s: %s", e.StatusCode, http.StatusText(e.StatusCode), strings.Join(e.Messages, "; "))
}

// Is makes APIError match appsearch.ErrNotFound and appsearch.ErrUnauthorized.
func (e *APIError) Is(target error) bool {
	switch target {
	case appsearch.ErrNotFound:
		return e.StatusCode == http.StatusNotFound
	case appsearch.ErrUnauthorized:
		return e.StatusCode == http.StatusUnauthorized || e.StatusCode == http.StatusForbidden
	}

	return false
}

func newAPIError(resp *http.Response) *APIError {
	apiErr := &APIError{
		StatusCode: resp.StatusCode,
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodySize))
	if err != nil || len(body) == 0 {
		return apiErr
	}

	var errorResponse struct {
		Errors []string `json:"errors"`
		Error  string   `json:"error"`
	}

	if err := json.Unmarshal(body, &errorResponse); err != nil {
		apiErr.Messages = []string{strings.TrimSpace(string(body))}

		return apiErr
	}

	apiErr.Messages = errorResponse.Errors
	if errorResponse.Error != "" {
		apiErr.Messages = append(apiErr.Messages, errorResponse.Error)
	}

	return apiErr
}

// Do sends a request to path (relative to the base URL).
//
// A non-nil body is sent JSON encoded. A non-nil out receives the JSON decoded response.
func (c *Client) Do(ctx context.Context, method string, path string, body interface{}, out interface{}) error {
	ref, err := url.Parse(path)
	if err != nil {
		return fmt.Errorf("%w: path %q: %v", appsearch.ErrInvalidArgument, path, err)
	}

	var reqBody io.Reader

	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("%w: encoding request body: %v", appsearch.ErrInvalidArgument, err)
		}

		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL.ResolveReference(ref).String(), reqBody)
	if err != nil {
		return err
	}

	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Swiftype-Client", clientName)
	req.Header.Set("X-Swiftype-Client-Version", Version)

	start := time.Now()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	c.logger.Debug(
		"app search request",
		zap.String("method", method),
		zap.String("path", path),
		zap.Int("status", resp.StatusCode),
		zap.Duration("duration", time.Since(start)),
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return newAPIError(resp)
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)

		return nil
	}

	err = json.NewDecoder(resp.Body).Decode(out)
	if errors.Is(err, io.EOF) {
		return fmt.Errorf("%s %s: decoding response: empty body", method, path)
	}
	if err != nil {
		return fmt.Errorf("%s %s: decoding response: %w", method, path, err)
	}

	return nil
}
