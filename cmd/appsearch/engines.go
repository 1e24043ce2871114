package main

import (
	"context"
	"strings"

	"github.com/swiftype/app-search-go/appsearch"
)

type enginesCommand struct {
	*baseCommand

	flagPage int
	flagSize int
}

func (c *enginesCommand) Synopsis() string {
	return "List engines"
}

func (c *enginesCommand) Help() string {
	return strings.TrimSpace(`
Usage: appsearch engines [-page N] [-size N]

  Lists the engines of the account.
` + configHelp)
}

func (c *enginesCommand) Run(args []string) int {
	f := c.flagSet("engines")
	f.IntVar(&c.flagPage, "page", 0, "Page number")
	f.IntVar(&c.flagSize, "size", 0, "Page size")

	if err := f.Parse(args); err != nil {
		return c.usage()
	}

	client, err := c.client()
	if err != nil {
		return c.fail("error creating client: %v", err)
	}

	engines, err := client.ListEngines(context.Background(), appsearch.ListOptions{
		Current: c.flagPage,
		Size:    c.flagSize,
	})
	if err != nil {
		return c.fail("error listing engines: %v", err)
	}

	return c.output(engines)
}
