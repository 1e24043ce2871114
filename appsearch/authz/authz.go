package authz

import (
	"context"
	"fmt"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/swiftype/app-search-go/appsearch"
)

// AnonymousPolicy is the policy name applied to callers without credentials.
const AnonymousPolicy = "anonymous"

// Policy describes the search keys a caller may obtain.
type Policy struct {
	// TokenName is the name search keys are issued with.
	TokenName string

	// Constraints are always embedded in issued search keys and override requested ones.
	Constraints appsearch.Constraints

	// AllowedConstraints lists the constraints a caller may choose for itself.
	AllowedConstraints []string
}

// PolicyAuthorizer grants constraints based on per-caller policies.
type PolicyAuthorizer struct {
	policies       map[string]Policy
	allowAnonymous bool
}

// NewPolicyAuthorizer returns a new PolicyAuthorizer.
//
// Policies are keyed by caller ID. The policy stored under AnonymousPolicy applies to anonymous callers if allowAnonymous is true.
func NewPolicyAuthorizer(policies map[string]Policy, allowAnonymous bool) PolicyAuthorizer {
	return PolicyAuthorizer{
		policies:       maps.Clone(policies),
		allowAnonymous: allowAnonymous,
	}
}

// Authorize implements the appsearch.Authorizer interface.
func (a PolicyAuthorizer) Authorize(_ context.Context, caller *appsearch.Caller, requested appsearch.Constraints) (appsearch.Grant, error) {
	policyName := AnonymousPolicy

	if caller == nil {
		if !a.allowAnonymous {
			return appsearch.Grant{}, appsearch.ErrUnauthorized
		}
	} else {
		policyName = caller.ID
	}

	policy, ok := a.policies[policyName]
	if !ok {
		return appsearch.Grant{}, fmt.Errorf("%w: no search key policy for %q", appsearch.ErrUnauthorized, policyName)
	}

	// Let's be optimistic about the amount of granted constraints
	granted := make(appsearch.Constraints, len(requested)+len(policy.Constraints))

	for name, value := range requested {
		// Don't let the caller choose anything else
		if !slices.Contains(policy.AllowedConstraints, name) {
			continue
		}

		granted[name] = value
	}

	maps.Copy(granted, policy.Constraints)

	return appsearch.Grant{
		TokenName:   policy.TokenName,
		Constraints: granted,
	}, nil
}
