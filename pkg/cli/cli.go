package cli

import (
	"context"
	"os"

	"github.com/gbif/regiontools/pkg/config"
	"github.com/gbif/regiontools/pkg/models/rerror"
	"github.com/gbif/regiontools/pkg/rlog"
	"github.com/spf13/cobra"
)

// RunFunc is the body of a tool. cfg is the loaded configuration with
// command line overrides applied.
type RunFunc func(ctx context.Context, cfg *config.Tool, args []string) error

type flags struct {
	cfgPath       string
	logLevel      string
	store         string
	memBackupPath string
	etcdEndpoints []string
}

type overrideRule struct {
	name     string
	validate func() error
	apply    func()
}

func buildOverrideRules(f *flags, cfg *config.Tool) []overrideRule {
	return []overrideRule{
		{
			name:  "log-level",
			apply: func() { cfg.LogLevel = f.logLevel },
		},
		{
			name: "store",
			validate: func() error {
				if f.store != config.StoreMem && f.store != config.StoreEtcd {
					return rerror.Newf(rerror.RG_CONFIG_ERROR, "unknown region store %q", f.store)
				}
				return nil
			},
			apply: func() { cfg.Store = f.store },
		},
		{
			name:  "mem-backup",
			apply: func() { cfg.MemBackupPath = f.memBackupPath },
		},
		{
			name:  "etcd-endpoints",
			apply: func() { cfg.EtcdEndpoints = f.etcdEndpoints },
		},
	}
}

func (f *flags) load(cmd *cobra.Command) (*config.Tool, error) {
	cfg := config.DefaultTool()
	if f.cfgPath != "" {
		var err error
		if cfg, err = config.LoadToolCfg(f.cfgPath); err != nil {
			return nil, rerror.Newf(rerror.RG_CONFIG_ERROR, "failed to load config %q: %w", f.cfgPath, err)
		}
	}

	for _, rule := range buildOverrideRules(f, cfg) {
		if !cmd.Flags().Changed(rule.name) {
			continue
		}
		if rule.validate != nil {
			if err := rule.validate(); err != nil {
				return nil, err
			}
		}
		rule.apply()
	}
	return cfg, nil
}

// NewCommand builds a tool command with the flags shared by all region tools.
func NewCommand(use, short string, args cobra.PositionalArgs, run RunFunc) *cobra.Command {
	f := &flags{}

	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  args,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := f.load(cmd)
			if err != nil {
				return err
			}

			rlog.ReloadLogger(cfg.LogFile)
			if err := rlog.UpdateZeroLogLevel(cfg.LogLevel); err != nil {
				return err
			}
			rlog.Zero.Debug().Str("config", cfg.JSON()).Msg("running with config")

			return run(cmd.Context(), cfg, args)
		},
	}

	cmd.PersistentFlags().StringVarP(&f.cfgPath, "config", "c", "", "path to config file (toml, yaml or json)")
	cmd.PersistentFlags().StringVarP(&f.logLevel, "log-level", "l", "info", "log level: debug, info, warning, error or fatal")
	cmd.PersistentFlags().StringVar(&f.store, "store", config.StoreMem, "region store implementation: mem or etcd")
	cmd.PersistentFlags().StringVar(&f.memBackupPath, "mem-backup", "", "backup file of the mem region store")
	cmd.PersistentFlags().StringSliceVar(&f.etcdEndpoints, "etcd-endpoints", nil, "etcd endpoints of the etcd region store")

	return cmd
}

// Execute runs cmd and exits the process with status 1 on failure.
func Execute(cmd *cobra.Command) {
	if err := cmd.Execute(); err != nil {
		rlog.Zero.Error().Err(err).Str("usage", cmd.UseLine()).Msg("command failed")
		os.Exit(1)
	}
}

// ExactArgs is cobra.ExactArgs reporting a config error with the usage line.
func ExactArgs(n int) cobra.PositionalArgs {
	return RangeArgs(n, n)
}

func RangeArgs(lo, hi int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := cobra.RangeArgs(lo, hi)(cmd, args); err != nil {
			return rerror.Newf(rerror.RG_CONFIG_ERROR, "%v; usage: %s", err, cmd.UseLine())
		}
		return nil
	}
}
