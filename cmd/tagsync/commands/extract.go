package commands

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/tagsync/cmd/tagsync/opts"
	"github.com/walteh/tagsync/pkg/tagfile"
	"gitlab.com/tozd/go/errors"
)

// NewExtractCmd creates a new extract command
func NewExtractCmd(opts *opts.RootOpts) *cobra.Command {
	var (
		file    string
		tagName string
	)

	cmd := &cobra.Command{
		Use:   "extract",
		Short: "Print the content between a tag's markers",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			ctx = zerolog.Ctx(ctx).With().Str("command", "extract").Logger().WithContext(ctx)

			content, err := tagfile.New(opts.FS, file).ExtractBetween(ctx, tagName)
			if err != nil {
				return errors.Errorf("extracting from %s: %w", file, err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), content)
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "file holding the tag markers")
	cmd.Flags().StringVarP(&tagName, "tag", "t", "", "tag naming the marker pair")
	_ = cmd.MarkFlagRequired("file")
	_ = cmd.MarkFlagRequired("tag")

	return cmd
}
