package config

import (
	"fmt"

	"golang.org/x/exp/maps"
	"gopkg.in/yaml.v3"

	"github.com/swiftype/app-search-go/appsearch"
	"github.com/swiftype/app-search-go/appsearch/authz"
)

// Authorizer is the configuration for an appsearch.Authorizer.
type Authorizer struct {
	Type   string
	Config AuthorizerFactory
}

func (c *Authorizer) UnmarshalYAML(value *yaml.Node) error {
	var rawConfig rawConfig

	err := value.Decode(&rawConfig)
	if err != nil {
		return err
	}

	var config AuthorizerFactory

	switch rawConfig.Type {
	case "policy":
		var factory policyAuthorizer

		err := decode(rawConfig.Config, &factory)
		if err != nil {
			return err
		}

		config = factory

	default:
		return fmt.Errorf("unknown authorizer type: %s", rawConfig.Type)
	}

	c.Type = rawConfig.Type
	c.Config = config

	return nil
}

// AuthorizerFactory creates a new appsearch.Authorizer.
type AuthorizerFactory interface {
	CreateAuthorizer() (appsearch.Authorizer, error)
	Validate() error
}

type policyAuthorizer struct {
	AllowAnonymous bool              `mapstructure:"allowAnonymous"`
	Policies       map[string]policy `mapstructure:"policies"`
}

type policy struct {
	TokenName          string                 `mapstructure:"tokenName"`
	Constraints        map[string]interface{} `mapstructure:"constraints"`
	AllowedConstraints []string               `mapstructure:"allowedConstraints"`
}

func (c policyAuthorizer) CreateAuthorizer() (appsearch.Authorizer, error) {
	policies := make(map[string]authz.Policy, len(c.Policies))

	for name, p := range c.Policies {
		policies[name] = authz.Policy{
			TokenName:          p.TokenName,
			Constraints:        appsearch.Constraints(maps.Clone(p.Constraints)),
			AllowedConstraints: p.AllowedConstraints,
		}
	}

	return authz.NewPolicyAuthorizer(policies, c.AllowAnonymous), nil
}

func (c policyAuthorizer) Validate() error {
	for name, p := range c.Policies {
		if p.TokenName == "" {
			return fmt.Errorf("authorizer: policy: %s: tokenName is required", name)
		}

		if _, ok := p.Constraints[appsearch.APIKeyNameClaim]; ok {
			return fmt.Errorf("authorizer: policy: %s: %q is a reserved constraint", name, appsearch.APIKeyNameClaim)
		}
	}

	if c.AllowAnonymous {
		if _, ok := c.Policies[authz.AnonymousPolicy]; !ok {
			return fmt.Errorf("authorizer: policy: anonymous access requires a policy named %q", authz.AnonymousPolicy)
		}
	}

	return nil
}
