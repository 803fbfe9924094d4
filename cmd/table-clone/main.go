package main

import (
	"context"

	"github.com/gbif/regiontools/pkg/admin"
	"github.com/gbif/regiontools/pkg/cli"
	"github.com/gbif/regiontools/pkg/config"
	"github.com/gbif/regiontools/pkg/provisioner"
	"github.com/gbif/regiontools/regiondb"
	"github.com/spf13/cobra"
)

func newCommand() *cobra.Command {
	return cli.NewCommand(
		"table-clone <existingTable> <newTable>",
		"create a table with the schema and region boundaries of an existing one",
		cli.ExactArgs(2),
		run,
	)
}

func run(ctx context.Context, cfg *config.Tool, args []string) error {
	existing, newTable := args[0], args[1]

	return admin.WithRegionDB(ctx, cfg, func(ctx context.Context, db regiondb.RegionDB) error {
		return provisioner.ClonePreSplitTable(ctx, db, existing, newTable)
	})
}

func main() {
	cli.Execute(newCommand())
}
