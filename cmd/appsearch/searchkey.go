package main

import (
	"strings"

	"github.com/swiftype/app-search-go/appsearch"
	"github.com/swiftype/app-search-go/appsearch/searchkey/jwt"
)

type signCommand struct {
	*baseCommand

	flagAPIKey      string
	flagName        string
	flagConstraints string
}

func (c *signCommand) Synopsis() string {
	return "Create a signed search key"
}

func (c *signCommand) Help() string {
	return strings.TrimSpace(`
Usage: appsearch sign -name NAME [-constraints JSON] [-api-key KEY]

  Signs search constraints with an API key. The resulting search key can be
  handed to untrusted clients: the service enforces the constraints.

  Example:

    appsearch sign -name my-token-name -constraints '{"query": "cat"}'
` + configHelp)
}

func (c *signCommand) Run(args []string) int {
	f := c.flagSet("sign")
	f.StringVar(&c.flagAPIKey, "api-key", "", "API key to sign with (defaults to the configured one)")
	f.StringVar(&c.flagName, "name", "", "Token name embedded in the key")
	f.StringVar(&c.flagConstraints, "constraints", "", "Search constraints as a JSON object")

	if err := f.Parse(args); err != nil {
		return c.usage()
	}

	apiKey, err := c.apiKey(c.flagAPIKey)
	if err != nil {
		return c.fail("error loading configuration: %v", err)
	}

	constraints, err := parseJSONObject(c.flagConstraints)
	if err != nil {
		return c.fail("invalid -constraints: %v", err)
	}

	var issuer appsearch.SearchKeyIssuer = jwt.NewSearchKeyIssuer(apiKey)

	searchKey, err := issuer.IssueSearchKey(c.flagName, appsearch.Constraints(constraints))
	if err != nil {
		return c.fail("error signing search key: %v", err)
	}

	c.ui.Output(searchKey)

	return 0
}

type verifyCommand struct {
	*baseCommand

	flagAPIKey string
}

func (c *verifyCommand) Synopsis() string {
	return "Verify a signed search key and print its payload"
}

func (c *verifyCommand) Help() string {
	return strings.TrimSpace(`
Usage: appsearch verify [-api-key KEY] SEARCH_KEY

  Checks the signature of a search key and prints the embedded token name and
  constraints as JSON.
` + configHelp)
}

func (c *verifyCommand) Run(args []string) int {
	f := c.flagSet("verify")
	f.StringVar(&c.flagAPIKey, "api-key", "", "API key the search key was signed with (defaults to the configured one)")

	if err := f.Parse(args); err != nil {
		return c.usage()
	}

	if f.NArg() != 1 {
		return c.usage()
	}

	apiKey, err := c.apiKey(c.flagAPIKey)
	if err != nil {
		return c.fail("error loading configuration: %v", err)
	}

	var verifier appsearch.SearchKeyVerifier = jwt.NewSearchKeyIssuer(apiKey)

	payload, err := verifier.VerifySearchKey(f.Arg(0))
	if err != nil {
		return c.fail("error verifying search key: %v", err)
	}

	return c.output(payload)
}
