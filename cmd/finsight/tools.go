package main

import (
	"context"
	"fmt"

	"github.com/finsight-io/finsight/internal/aggregate"
	"github.com/finsight-io/finsight/internal/fancy"
	"github.com/urfave/cli/v3"
)

var toolsCmd = &cli.Command{
	Name:  "tools",
	Usage: "List the MCP tools this server exposes",
	Action: func(ctx context.Context, cmd *cli.Command) error {
		t := fancy.Tree().Root(fancy.TitleStyle.Render("finsight tools"))
		t.Child(fancy.BranchNode(aggregate.ToolCurrencyInfo,
			"currency name, code, and live exchange rates for a country (country_name)"))
		t.Child(fancy.BranchNode(aggregate.ToolStockMarketInfo,
			"exchanges, major indices, and current index values for a country (country_name)"))
		t.Child(fancy.BranchNode(aggregate.ToolExchangeLocation,
			"headquarters address and maps embed URL for an exchange (exchange_name)"))
		fmt.Println(t)
		return nil
	},
}
