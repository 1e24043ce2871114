package main

import (
	"context"
	"strings"

	"github.com/swiftype/app-search-go/appsearch"
)

type searchCommand struct {
	*baseCommand

	flagEngine  string
	flagQuery   string
	flagOptions string
}

func (c *searchCommand) Synopsis() string {
	return "Search an engine"
}

func (c *searchCommand) Help() string {
	return strings.TrimSpace(`
Usage: appsearch search -engine NAME -query QUERY [-options JSON]

  Runs a search query and prints the response as JSON.

  Example:

    appsearch search -engine national-parks -query cat -options '{"page": {"size": 5}}'
` + configHelp)
}

func (c *searchCommand) Run(args []string) int {
	f := c.flagSet("search")
	f.StringVar(&c.flagEngine, "engine", "", "Engine name")
	f.StringVar(&c.flagQuery, "query", "", "Search query")
	f.StringVar(&c.flagOptions, "options", "", "Search options as a JSON object")

	if err := f.Parse(args); err != nil {
		return c.usage()
	}

	options, err := parseJSONObject(c.flagOptions)
	if err != nil {
		return c.fail("invalid -options: %v", err)
	}

	client, err := c.client()
	if err != nil {
		return c.fail("error creating client: %v", err)
	}

	response, err := client.Search(context.Background(), c.flagEngine, c.flagQuery, appsearch.SearchOptions(options))
	if err != nil {
		return c.fail("error searching: %v", err)
	}

	return c.output(response)
}
