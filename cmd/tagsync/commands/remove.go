package commands

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/tagsync/cmd/tagsync/opts"
	"github.com/walteh/tagsync/pkg/tagfile"
	"gitlab.com/tozd/go/errors"
)

// NewRemoveCmd creates a new remove command
func NewRemoveCmd(opts *opts.RootOpts) *cobra.Command {
	var (
		file    string
		tagName string
	)

	cmd := &cobra.Command{
		Use:   "remove",
		Short: "Discard the content between a tag's markers",
		Long: `Remove deletes everything between "// <tag>:" and "// <tag>:end",
leaving the two marker lines back-to-back. Removing an already-empty region
is a no-op.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			ctx = zerolog.Ctx(ctx).With().Str("command", "remove").Logger().WithContext(ctx)

			if err := tagfile.New(opts.FS, file).RemoveBetween(ctx, tagName); err != nil {
				return errors.Errorf("removing from %s: %w", file, err)
			}

			opts.UserLogger.LogValidation(true, "Removed "+tagName+" content from "+file, nil)
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "file holding the tag markers")
	cmd.Flags().StringVarP(&tagName, "tag", "t", "", "tag naming the marker pair")
	_ = cmd.MarkFlagRequired("file")
	_ = cmd.MarkFlagRequired("tag")

	return cmd
}
