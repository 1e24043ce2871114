package config

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/swiftype/app-search-go/appsearch"
	"github.com/swiftype/app-search-go/appsearch/searchkey/jwt"
)

// SearchKeyIssuer is the configuration for an appsearch.SearchKeyIssuer.
type SearchKeyIssuer struct {
	Type   string
	Config SearchKeyIssuerFactory
}

func (c *SearchKeyIssuer) UnmarshalYAML(value *yaml.Node) error {
	var rawConfig rawConfig

	err := value.Decode(&rawConfig)
	if err != nil {
		return err
	}

	var config SearchKeyIssuerFactory

	switch rawConfig.Type {
	case "jwt":
		var factory jwtSearchKeyIssuer

		err := decode(rawConfig.Config, &factory)
		if err != nil {
			return err
		}

		config = factory

	default:
		return fmt.Errorf("unknown search key issuer type: %s", rawConfig.Type)
	}

	c.Type = rawConfig.Type
	c.Config = config

	return nil
}

// SearchKeyIssuerFactory creates a new appsearch.SearchKeyIssuer.
type SearchKeyIssuerFactory interface {
	// CreateSearchKeyIssuer creates an issuer. The client API key is used when the issuer has none of its own.
	CreateSearchKeyIssuer(clientAPIKey string) (appsearch.SearchKeyIssuer, error)
	Validate() error
}

type jwtSearchKeyIssuer struct {
	APIKey string `mapstructure:"apiKey"`
}

func (c jwtSearchKeyIssuer) CreateSearchKeyIssuer(clientAPIKey string) (appsearch.SearchKeyIssuer, error) {
	apiKey := c.APIKey
	if apiKey == "" {
		apiKey = clientAPIKey
	}

	if apiKey == "" {
		return nil, fmt.Errorf("search key issuer: jwt: %w: api key is required", appsearch.ErrInvalidArgument)
	}

	return jwt.NewSearchKeyIssuer(apiKey), nil
}

func (c jwtSearchKeyIssuer) Validate() error {
	return nil
}
