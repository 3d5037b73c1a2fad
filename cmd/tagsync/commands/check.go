package commands

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/tagsync/cmd/tagsync/opts"
	"github.com/walteh/tagsync/pkg/tag"
	"gitlab.com/tozd/go/errors"
)

// NewCheckCmd creates a new check command
func NewCheckCmd(opts *opts.RootOpts) *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "check [tags...]",
		Short: "Verify that every given tag exists and holds at most one line",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			ctx = zerolog.Ctx(ctx).With().Str("command", "check").Logger().WithContext(ctx)

			text, err := opts.FS.ReadText(file)
			if err != nil {
				return errors.Errorf("reading %s: %w", file, err)
			}

			if !tag.IsClean(tag.SplitLines(text), args) {
				return errors.Errorf("%s has missing or non-empty tag regions", file)
			}

			zerolog.Ctx(ctx).Debug().Str("file", file).Strs("tags", args).Msg("all tag regions clean")
			opts.UserLogger.LogValidation(true, "All tag regions in "+file+" are clean", nil)
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "file holding the tag markers")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}
