package main

import (
	"context"
	"path/filepath"

	"github.com/gbif/regiontools/pkg/admin"
	"github.com/gbif/regiontools/pkg/cli"
	"github.com/gbif/regiontools/pkg/config"
	"github.com/gbif/regiontools/pkg/extractor"
	"github.com/gbif/regiontools/pkg/splitfile"
	"github.com/gbif/regiontools/regiondb"
	"github.com/spf13/cobra"
)

var outputDir string

func newCommand() *cobra.Command {
	cmd := cli.NewCommand(
		"table-splits <existingTable>",
		"write the region start keys of a table to <existingTable>_splits.txt",
		cli.ExactArgs(1),
		run,
	)
	cmd.Flags().StringVarP(&outputDir, "output-dir", "o", "", "directory of the splits file, the working directory by default")
	return cmd
}

func run(ctx context.Context, cfg *config.Tool, args []string) error {
	table := args[0]
	outPath := extractor.DefaultSplitsFile(table)
	if outputDir != "" {
		outPath = filepath.Join(outputDir, outPath)
	}

	return splitfile.WithWriter(outPath, func(w *splitfile.Writer) error {
		return admin.WithRegionDB(ctx, cfg, func(ctx context.Context, db regiondb.RegionDB) error {
			_, err := extractor.WriteStartKeys(ctx, db, table, w)
			return err
		})
	})
}

func main() {
	cli.Execute(newCommand())
}
