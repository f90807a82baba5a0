package main

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"
)

// Version is set during build using ldflags
var Version = "dev"

func main() {
	app := &cli.Command{
		Name:    "finsight",
		Version: Version,
		Usage:   "Country financial facts over MCP: currency rates, stock indices, exchange locations",
		Commands: []*cli.Command{
			serveCmd,
			queryCmd,
			toolsCmd,
			validateCmd,
			versionCmd,
		},
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
