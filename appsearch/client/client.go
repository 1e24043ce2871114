// Package client implements a client for the App Search REST API.
package client

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"go.uber.org/zap"

	"github.com/swiftype/app-search-go/appsearch"
)

// Version is reported to the service along with every request.
const Version = "0.1.0"

const (
	clientName      = "swiftype-app-search-go"
	baseURLTemplate = "https://%s.api.swiftype.com/api/as/v1/"
)

// Config holds the connection details of a Client.
type Config struct {
	// HostIdentifier selects the account host (eg. "host-c5s2mj").
	HostIdentifier string

	// APIKey authenticates requests and signs search keys.
	APIKey string

	// BaseURL overrides the URL derived from HostIdentifier.
	BaseURL string

	// Timeout limits the duration of a single request. Zero means no timeout.
	Timeout time.Duration
}

// Validate validates the configuration.
func (c Config) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.APIKey, validation.Required),
		validation.Field(&c.HostIdentifier, validation.When(c.BaseURL == "", validation.Required)),
		validation.Field(&c.BaseURL, validation.By(validateURL)),
		validation.Field(&c.Timeout, validation.Min(time.Duration(0))),
	)
}

func validateURL(value interface{}) error {
	s, _ := value.(string)
	if s == "" {
		return nil
	}

	u, err := url.Parse(s)
	if err != nil {
		return err
	}

	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("unsupported scheme %q", u.Scheme)
	}

	return nil
}

// Client calls the App Search API of a single account.
//
// A Client is safe for concurrent use.
type Client struct {
	baseURL    *url.URL
	apiKey     string
	httpClient *http.Client
	logger     *zap.Logger
}

// Option configures a Client.
type Option interface {
	applyClient(c *Client)
}

type optionFunc func(c *Client)

func (fn optionFunc) applyClient(c *Client) {
	fn(c)
}

// WithHTTPClient sets the HTTP client used to send requests.
//
// The Timeout of the configuration is not applied to a custom HTTP client.
func WithHTTPClient(httpClient *http.Client) Option {
	return optionFunc(func(c *Client) {
		c.httpClient = httpClient
	})
}

// WithLogger sets the logger of the client.
func WithLogger(logger *zap.Logger) Option {
	return optionFunc(func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	})
}

// New returns a new Client.
func New(config Config, opts ...Option) (*Client, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", appsearch.ErrInvalidArgument, err)
	}

	rawBaseURL := config.BaseURL
	if rawBaseURL == "" {
		rawBaseURL = fmt.Sprintf(baseURLTemplate, config.HostIdentifier)
	}

	if !strings.HasSuffix(rawBaseURL, "/") {
		rawBaseURL += "/"
	}

	baseURL, err := url.Parse(rawBaseURL)
	if err != nil {
		return nil, fmt.Errorf("%w: base url: %v", appsearch.ErrInvalidArgument, err)
	}

	c := &Client{
		baseURL:    baseURL,
		apiKey:     config.APIKey,
		httpClient: &http.Client{Timeout: config.Timeout},
		logger:     zap.NewNop(),
	}

	for _, opt := range opts {
		opt.applyClient(c)
	}

	return c, nil
}

// BaseURL returns the URL requests are sent to.
func (c *Client) BaseURL() string {
	return c.baseURL.String()
}
