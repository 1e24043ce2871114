package config

import (
	"fmt"
	"os"

	"github.com/hashicorp/go-multierror"
	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// Config collects all configuration options.
type Config struct {
	Client          Client                `yaml:"client"`
	SearchKeyIssuer SearchKeyIssuer       `yaml:"searchKeyIssuer"`
	Authenticator   PasswordAuthenticator `yaml:"authenticator"`
	Authorizer      Authorizer            `yaml:"authorizer"`
	Server          Server                `yaml:"server"`
}

// Load reads and validates a YAML configuration file.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}

	return Parse(data)
}

// Parse parses and validates a YAML configuration.
func Parse(data []byte) (Config, error) {
	var config Config

	err := yaml.Unmarshal(data, &config)
	if err != nil {
		return Config{}, fmt.Errorf("parsing config: %w", err)
	}

	err = config.Validate()
	if err != nil {
		return Config{}, err
	}

	return config, nil
}

// Validate validates the configuration.
//
// Only the client section is required; the other sections are validated when present.
func (c Config) Validate() error {
	var result *multierror.Error

	if err := c.Client.Validate(); err != nil {
		result = multierror.Append(result, fmt.Errorf("client: %w", err))
	}

	if c.SearchKeyIssuer.Config != nil {
		if err := c.SearchKeyIssuer.Config.Validate(); err != nil {
			result = multierror.Append(result, err)
		}
	}

	if c.Authenticator.Config != nil {
		if err := c.Authenticator.Config.Validate(); err != nil {
			result = multierror.Append(result, err)
		}
	}

	if c.Authorizer.Config != nil {
		if err := c.Authorizer.Config.Validate(); err != nil {
			result = multierror.Append(result, err)
		}
	}

	return result.ErrorOrNil()
}

// rawConfig is a general struct to be used by other config structs to unmarshal yaml config first.
type rawConfig struct {
	Type   string                 `yaml:"type"`
	Config map[string]interface{} `yaml:"config"`
}

func decode(input interface{}, output interface{}) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook:  mapstructure.StringToTimeDurationHookFunc(),
		ErrorUnused: true,
		Result:      output,
	})
	if err != nil {
		return err
	}

	return decoder.Decode(input)
}
