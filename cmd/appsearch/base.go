package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/mitchellh/cli"
	"go.uber.org/zap"

	"github.com/swiftype/app-search-go/appsearch/client"
	"github.com/swiftype/app-search-go/config"
)

const configHelp = `
  Connection details are read from the file given with -config, or from the
  APP_SEARCH_HOST, APP_SEARCH_API_KEY and APP_SEARCH_BASE_URL environment variables.`

type baseCommand struct {
	ui     cli.Ui
	logger *zap.Logger

	flagConfig string
}

func (c *baseCommand) flagSet(name string) *flag.FlagSet {
	f := flag.NewFlagSet(name, flag.ContinueOnError)
	f.Usage = func() {}
	f.StringVar(&c.flagConfig, "config", "", "Path to a configuration file")

	return f
}

// clientConfig loads the client section of the configuration file or falls back to the environment.
func (c *baseCommand) clientConfig() (config.Client, error) {
	if c.flagConfig != "" {
		cfg, err := config.Load(c.flagConfig)
		if err != nil {
			return config.Client{}, err
		}

		return cfg.Client, nil
	}

	clientConfig := config.Client{
		HostIdentifier: os.Getenv("APP_SEARCH_HOST"),
		APIKey:         os.Getenv("APP_SEARCH_API_KEY"),
		BaseURL:        os.Getenv("APP_SEARCH_BASE_URL"),
	}

	return clientConfig, clientConfig.Validate()
}

// apiKey returns flagValue if set, otherwise the API key from the configuration file or the environment.
//
// Signing needs no host, so the environment fallback skips client validation.
func (c *baseCommand) apiKey(flagValue string) (string, error) {
	if flagValue != "" {
		return flagValue, nil
	}

	if c.flagConfig != "" {
		clientConfig, err := c.clientConfig()
		if err != nil {
			return "", err
		}

		return clientConfig.APIKey, nil
	}

	apiKey := os.Getenv("APP_SEARCH_API_KEY")
	if apiKey == "" {
		return "", errors.New("no API key: use -api-key, -config or APP_SEARCH_API_KEY")
	}

	return apiKey, nil
}

func (c *baseCommand) client() (*client.Client, error) {
	clientConfig, err := c.clientConfig()
	if err != nil {
		return nil, err
	}

	return clientConfig.CreateClient(c.logger)
}

func (c *baseCommand) output(v interface{}) int {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		c.ui.Error(fmt.Sprintf("error encoding output: %v", err))
		return 1
	}

	c.ui.Output(string(data))

	return 0
}

func (c *baseCommand) fail(format string, args ...interface{}) int {
	c.ui.Error(fmt.Sprintf(format, args...))

	return 1
}

// parseJSONObject parses an optional JSON object flag value.
func parseJSONObject(value string) (map[string]interface{}, error) {
	if value == "" {
		return nil, nil
	}

	var object map[string]interface{}

	err := json.Unmarshal([]byte(value), &object)
	if err != nil {
		return nil, fmt.Errorf("expected a JSON object: %w", err)
	}

	return object, nil
}

func (c *baseCommand) usage() int {
	c.ui.Error("invalid arguments, see -help")

	return cli.RunResultHelp
}
