package main

import (
	"context"

	"github.com/gbif/regiontools/pkg/admin"
	"github.com/gbif/regiontools/pkg/cli"
	"github.com/gbif/regiontools/pkg/config"
	"github.com/gbif/regiontools/pkg/extractor"
	"github.com/gbif/regiontools/pkg/splitfile"
	"github.com/gbif/regiontools/regiondb"
	"github.com/spf13/cobra"
)

func newCommand() *cobra.Command {
	return cli.NewCommand(
		"split-extract <tableName> <outputFile>",
		"write the split points of a table to a file, one integer per line",
		cli.ExactArgs(2),
		run,
	)
}

func run(ctx context.Context, cfg *config.Tool, args []string) error {
	table, outPath := args[0], args[1]

	// the output file is recreated before the region store is opened
	return splitfile.WithWriter(outPath, func(w *splitfile.Writer) error {
		return admin.WithRegionDB(ctx, cfg, func(ctx context.Context, db regiondb.RegionDB) error {
			_, err := extractor.WriteEndKeys(ctx, db, table, w)
			return err
		})
	})
}

func main() {
	cli.Execute(newCommand())
}
