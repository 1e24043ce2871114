package authz

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/swiftype/app-search-go/appsearch"
)

func TestPolicyAuthorizer(t *testing.T) {
	authorizer := NewPolicyAuthorizer(
		map[string]Policy{
			"user": {
				TokenName: "user-frontend",
				Constraints: appsearch.Constraints{
					"filters": map[string]interface{}{"visibility": "public"},
				},
				AllowedConstraints: []string{"query", "result_fields"},
			},
			AnonymousPolicy: {
				TokenName: "anonymous-frontend",
				Constraints: appsearch.Constraints{
					"filters": map[string]interface{}{"visibility": "public"},
					"page":    map[string]interface{}{"size": 10},
				},
			},
		},
		true,
	)

	testCases := []struct {
		caller        *appsearch.Caller
		requested     appsearch.Constraints
		expectedGrant appsearch.Grant
	}{
		{
			caller: &appsearch.Caller{ID: "user"},
			requested: appsearch.Constraints{
				"query":         "cat",
				"search_fields": map[string]interface{}{"body": map[string]interface{}{}},
			},
			expectedGrant: appsearch.Grant{
				TokenName: "user-frontend",
				Constraints: appsearch.Constraints{
					"query":   "cat",
					"filters": map[string]interface{}{"visibility": "public"},
				},
			},
		},
		{
			caller: &appsearch.Caller{ID: "user"},
			requested: appsearch.Constraints{
				"filters": map[string]interface{}{"visibility": "private"},
			},
			expectedGrant: appsearch.Grant{
				TokenName: "user-frontend",
				Constraints: appsearch.Constraints{
					"filters": map[string]interface{}{"visibility": "public"},
				},
			},
		},
		{
			caller: nil,
			requested: appsearch.Constraints{
				"query": "cat",
			},
			expectedGrant: appsearch.Grant{
				TokenName: "anonymous-frontend",
				Constraints: appsearch.Constraints{
					"filters": map[string]interface{}{"visibility": "public"},
					"page":    map[string]interface{}{"size": 10},
				},
			},
		},
	}

	for _, testCase := range testCases {
		testCase := testCase

		t.Run("", func(t *testing.T) {
			grant, err := authorizer.Authorize(context.Background(), testCase.caller, testCase.requested)
			require.NoError(t, err)

			assert.Equal(t, testCase.expectedGrant, grant)
		})
	}
}

func TestPolicyAuthorizer_Unauthorized(t *testing.T) {
	testCases := []struct {
		authorizer PolicyAuthorizer
		caller     *appsearch.Caller
	}{
		{
			authorizer: NewPolicyAuthorizer(map[string]Policy{AnonymousPolicy: {TokenName: "anonymous"}}, false),
			caller:     nil,
		},
		{
			authorizer: NewPolicyAuthorizer(map[string]Policy{}, true),
			caller:     nil,
		},
		{
			authorizer: NewPolicyAuthorizer(map[string]Policy{"user": {TokenName: "user"}}, false),
			caller:     &appsearch.Caller{ID: "someone-else"},
		},
	}

	for _, testCase := range testCases {
		testCase := testCase

		t.Run("", func(t *testing.T) {
			_, err := testCase.authorizer.Authorize(context.Background(), testCase.caller, appsearch.Constraints{})
			require.Error(t, err)

			assert.ErrorIs(t, err, appsearch.ErrUnauthorized)
		})
	}
}
