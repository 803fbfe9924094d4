package main

import (
	"context"
	"strconv"

	"github.com/gbif/regiontools/pkg/admin"
	"github.com/gbif/regiontools/pkg/cli"
	"github.com/gbif/regiontools/pkg/config"
	"github.com/gbif/regiontools/pkg/models/rerror"
	"github.com/gbif/regiontools/pkg/provisioner"
	"github.com/gbif/regiontools/regiondb"
	"github.com/spf13/cobra"
)

func newCommand() *cobra.Command {
	return cli.NewCommand(
		"table-create <tableName> <columnFamily> [splitsFile] [regionSizeMB]",
		"create a table pre-split at the keys of a splits file",
		cli.RangeArgs(2, 4),
		run,
	)
}

func parseRequest(args []string) (*provisioner.CreateRequest, error) {
	req := &provisioner.CreateRequest{
		Table:        args[0],
		ColumnFamily: args[1],
	}
	if len(args) > 2 {
		req.SplitsFile = args[2]
	}
	if len(args) > 3 {
		mb, err := strconv.ParseInt(args[3], 10, 32)
		if err != nil {
			return nil, rerror.Newf(rerror.RG_CONFIG_ERROR, "region size %q is not a 32 bit integer", args[3])
		}
		req.RegionSizeMB = int(mb)
	}
	return req, nil
}

func run(ctx context.Context, cfg *config.Tool, args []string) error {
	req, err := parseRequest(args)
	if err != nil {
		return err
	}

	return admin.WithRegionDB(ctx, cfg, func(ctx context.Context, db regiondb.RegionDB) error {
		return provisioner.CreatePreSplitTable(ctx, db, req)
	})
}

func main() {
	cli.Execute(newCommand())
}
