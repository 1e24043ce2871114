package main

import (
	"bufio"
	"os"

	"github.com/mitchellh/cli"
	"go.uber.org/zap"

	"github.com/swiftype/app-search-go/appsearch/client"
)

func main() {
	os.Exit(run(os.Args, &cli.BasicUi{
		Reader:      bufio.NewReader(os.Stdin),
		Writer:      os.Stdout,
		ErrorWriter: os.Stderr,
	}))
}

func run(args []string, ui cli.Ui) int {
	logger := zap.NewNop()

	if os.Getenv("APP_SEARCH_DEBUG") != "" {
		var err error

		logger, err = zap.NewDevelopment()
		if err != nil {
			ui.Error(err.Error())
			return 1
		}
		defer logger.Sync()
	}

	c := &cli.CLI{
		Name:     "appsearch",
		Args:     args[1:],
		Version:  client.Version,
		Commands: commands(ui, logger),
	}

	exitCode, err := c.Run()
	if err != nil {
		ui.Error(err.Error())
		return 1
	}

	return exitCode
}

func commands(ui cli.Ui, logger *zap.Logger) map[string]cli.CommandFactory {
	base := func() *baseCommand {
		return &baseCommand{
			ui:     ui,
			logger: logger,
		}
	}

	return map[string]cli.CommandFactory{
		"sign": func() (cli.Command, error) {
			return &signCommand{baseCommand: base()}, nil
		},
		"verify": func() (cli.Command, error) {
			return &verifyCommand{baseCommand: base()}, nil
		},
		"engines": func() (cli.Command, error) {
			return &enginesCommand{baseCommand: base()}, nil
		},
		"search": func() (cli.Command, error) {
			return &searchCommand{baseCommand: base()}, nil
		},
	}
}
