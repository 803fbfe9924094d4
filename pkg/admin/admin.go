package admin

import (
	"context"

	"github.com/gbif/regiontools/pkg/config"
	"github.com/gbif/regiontools/pkg/rlog"
	"github.com/gbif/regiontools/regiondb"
	"github.com/pkg/errors"
)

// WithRegionDB opens the region catalog described by cfg, runs fn against it
// and closes the catalog whatever fn returns. fn runs under a context bounded
// by cfg.OperationTimeout.
func WithRegionDB(ctx context.Context, cfg *config.Tool, fn func(ctx context.Context, db regiondb.RegionDB) error) (err error) {
	db, err := regiondb.NewRegionDB(cfg)
	if err != nil {
		return errors.Wrapf(err, "failed to open %s region store", cfg.Store)
	}
	rlog.Zero.Debug().Str("store", cfg.Store).Msg("admin: region store opened")

	defer func() {
		if cerr := db.Close(); cerr != nil {
			rlog.Zero.Error().Err(cerr).Msg("admin: failed to close region store")
			if err == nil {
				err = errors.Wrap(cerr, "failed to close region store")
			}
		}
	}()

	if cfg.OperationTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.OperationTimeout)
		defer cancel()
	}

	return fn(ctx, db)
}
