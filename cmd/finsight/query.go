package main

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/finsight-io/finsight/internal/aggregate"
	"github.com/finsight-io/finsight/internal/config"
	"github.com/finsight-io/finsight/internal/fancy"
	"github.com/finsight-io/finsight/internal/logging"
	"github.com/urfave/cli/v3"
)

var queryCmd = &cli.Command{
	Name:      "query",
	Usage:     "Run a one-shot financial query without starting a server",
	ArgsUsage: `"financial details for Japan"`,
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:    "config",
			Usage:   "Path to TOML configuration file",
			Aliases: []string{"c"},
		},
		&cli.BoolFlag{
			Name:    "verbose",
			Usage:   "Replay the run's collected logs after the report",
			Aliases: []string{"v"},
		},
	},
	Action: func(ctx context.Context, cmd *cli.Command) error {
		query := strings.TrimSpace(strings.Join(cmd.Args().Slice(), " "))
		if query == "" {
			return cli.Exit("query text required", 1)
		}

		cfg, err := config.NewConfig(cmd.String("config"))
		if err != nil {
			return cli.Exit(fmt.Errorf("failed to load config: %w", err), 1)
		}

		deps := buildServices(cfg, slog.New(slog.DiscardHandler))
		agg := aggregate.New(deps.Currency, deps.Markets, deps.Maps, slog.DiscardHandler)

		result := agg.Run(ctx, query)
		fmt.Println(renderResult(result))

		if cmd.Bool("verbose") {
			if err := result.PlayLogs(logging.SetupHandler("debug", "text")); err != nil {
				return cli.Exit(fmt.Errorf("failed to replay logs: %w", err), 1)
			}
		}

		return nil
	},
}

// renderResult styles the report and appends the step trace as a tree.
func renderResult(result *aggregate.Result) string {
	var b strings.Builder

	b.WriteString(fancy.TitleStyle.Render(fmt.Sprintf("finsight run %s", result.ID)))
	b.WriteString("\n\n")
	b.WriteString(result.Report)

	if len(result.Steps) == 0 {
		return b.String()
	}

	t := fancy.Tree().Root(fancy.HeaderStyle.Render("Trace"))
	for _, step := range result.Steps {
		detail := step.Input
		failed := step.Err != ""
		if failed {
			detail = step.Err
		}
		t.Child(fancy.StepNode(step.Tool, detail, failed))
	}

	b.WriteString("\n")
	b.WriteString(t.String())
	b.WriteString("\n")
	return b.String()
}
