package commands

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/tagsync/cmd/tagsync/opts"
	"github.com/walteh/tagsync/pkg/config"
	"github.com/walteh/tagsync/pkg/operation"
	"gitlab.com/tozd/go/errors"
)

// NewSyncCmd creates a new sync command
func NewSyncCmd(opts *opts.RootOpts) *cobra.Command {
	var async bool

	cmd := &cobra.Command{
		Use:   "sync",
		Short: "Run every insert and sync declared in the config file",
		Long: `Sync loads the tagsync config and runs all declared operations:
tag-region inserts first, then file synchronizations. Destination files are
only written when their byte content actually differs from the source.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			ctx = zerolog.Ctx(ctx).With().Str("command", "sync").Logger().WithContext(ctx)

			cfg, err := config.Load(ctx, opts.ConfigFile)
			if err != nil {
				return errors.Errorf("loading config: %w", err)
			}

			ops, err := operation.BuildAll(operation.Options{
				Config:  cfg,
				FS:      opts.FS,
				Tracker: opts.Tracker,
			})
			if err != nil {
				return errors.Errorf("building operations: %w", err)
			}

			runner := operation.NewRunner(async || cfg.Async)
			if err := runner.Run(ctx, ops); err != nil {
				return errors.Errorf("running operations: %w", err)
			}

			for _, info := range opts.Tracker.ListFiles() {
				opts.UserLogger.LogFileChange(info)
			}

			zerolog.Ctx(ctx).Info().Interface("counts", opts.Tracker.Counts()).Msg("✅ sync complete")
			return nil
		},
	}

	cmd.Flags().BoolVar(&async, "async", false, "run operations concurrently")

	return cmd
}
