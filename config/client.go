package config

import (
	"time"

	"go.uber.org/zap"

	"github.com/swiftype/app-search-go/appsearch/client"
)

// Client is the configuration for a client.Client.
type Client struct {
	HostIdentifier string        `yaml:"hostIdentifier"`
	APIKey         string        `yaml:"apiKey"`
	BaseURL        string        `yaml:"baseURL"`
	Timeout        time.Duration `yaml:"timeout"`
}

// ClientConfig returns the client.Config described by the configuration.
func (c Client) ClientConfig() client.Config {
	return client.Config{
		HostIdentifier: c.HostIdentifier,
		APIKey:         c.APIKey,
		BaseURL:        c.BaseURL,
		Timeout:        c.Timeout,
	}
}

// CreateClient creates a new client.Client.
func (c Client) CreateClient(logger *zap.Logger) (*client.Client, error) {
	return client.New(c.ClientConfig(), client.WithLogger(logger))
}

// Validate validates the configuration.
func (c Client) Validate() error {
	return c.ClientConfig().Validate()
}
