package config

import (
	"fmt"
	"sync"

	"golang.org/x/exp/maps"
	"gopkg.in/yaml.v3"

	"github.com/swiftype/app-search-go/appsearch"
	"github.com/swiftype/app-search-go/appsearch/authn"
)

var (
	passwordAuthenticatorFactoriesMu sync.RWMutex
	passwordAuthenticatorFactories   = make(map[string]PasswordAuthenticatorFactory)
)

// RegisterPasswordAuthenticatorFactory makes a PasswordAuthenticatorFactory available by the provided name in configuration.
//
// If RegisterPasswordAuthenticatorFactory is called twice with the same name or if factory is nil,
// it panics.
func RegisterPasswordAuthenticatorFactory(name string, factory PasswordAuthenticatorFactory) {
	passwordAuthenticatorFactoriesMu.Lock()
	defer passwordAuthenticatorFactoriesMu.Unlock()

	if factory == nil {
		panic("registering password authenticator factory: factory is nil")
	}

	if _, dup := passwordAuthenticatorFactories[name]; dup {
		panic("registering password authenticator factory: registration called twice for factory " + name)
	}

	passwordAuthenticatorFactories[name] = factory
}

func init() {
	RegisterPasswordAuthenticatorFactory("user", &userAuthenticator{})
}

// PasswordAuthenticator is the configuration for an appsearch.PasswordAuthenticator.
type PasswordAuthenticator struct {
	Type   string
	Config PasswordAuthenticatorFactory
}

func (c *PasswordAuthenticator) UnmarshalYAML(value *yaml.Node) error {
	var rawConfig rawConfig

	err := value.Decode(&rawConfig)
	if err != nil {
		return err
	}

	passwordAuthenticatorFactoriesMu.RLock()
	registered, ok := passwordAuthenticatorFactories[rawConfig.Type]
	passwordAuthenticatorFactoriesMu.RUnlock()

	if !ok {
		return fmt.Errorf("unknown password authenticator type: %s", rawConfig.Type)
	}

	factory := registered.New()

	err = decode(rawConfig.Config, factory)
	if err != nil {
		return err
	}

	c.Type = rawConfig.Type
	c.Config = factory

	return nil
}

// PasswordAuthenticatorFactory creates a new appsearch.PasswordAuthenticator.
type PasswordAuthenticatorFactory interface {
	// New returns an empty factory (a pointer) that configuration gets decoded into.
	New() PasswordAuthenticatorFactory
	CreatePasswordAuthenticator() (appsearch.PasswordAuthenticator, error)
	Validate() error
}

type userAuthenticator struct {
	Entries []user `mapstructure:"entries"`
}

type user struct {
	Enabled      bool              `mapstructure:"enabled"`
	Username     string            `mapstructure:"username"`
	PasswordHash string            `mapstructure:"passwordHash"`
	Attrs        map[string]string `mapstructure:"attributes"`
}

func (c *userAuthenticator) New() PasswordAuthenticatorFactory {
	return &userAuthenticator{}
}

func (c *userAuthenticator) CreatePasswordAuthenticator() (appsearch.PasswordAuthenticator, error) {
	entries := make([]authn.User, 0, len(c.Entries))

	for _, v := range c.Entries {
		entries = append(entries, authn.User{
			Enabled:      v.Enabled,
			Username:     v.Username,
			PasswordHash: v.PasswordHash,
			Attrs:        maps.Clone(v.Attrs),
		})
	}

	return authn.NewUserAuthenticator(entries), nil
}

func (c *userAuthenticator) Validate() error {
	for i, entry := range c.Entries {
		if entry.Username == "" {
			return fmt.Errorf("password authenticator: user authenticator: entry[%d]: username is required", i)
		}

		if entry.PasswordHash == "" {
			return fmt.Errorf("password authenticator: user authenticator: entry[%d]: password hash is required", i)
		}
	}

	return nil
}
