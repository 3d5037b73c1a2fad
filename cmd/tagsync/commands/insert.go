package commands

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/tagsync/cmd/tagsync/opts"
	"github.com/walteh/tagsync/pkg/tagfile"
	"gitlab.com/tozd/go/errors"
)

// NewInsertCmd creates a new insert command
func NewInsertCmd(opts *opts.RootOpts) *cobra.Command {
	var (
		file        string
		tagName     string
		content     string
		contentFile string
		createTags  bool
		tagPrefix   string
	)

	cmd := &cobra.Command{
		Use:   "insert",
		Short: "Replace the content between a tag's markers",
		Long: `Insert replaces whatever currently sits between "// <tag>:" and
"// <tag>:end" in the given file with new content, preserving the marker
lines and their indentation. With --create-tags a missing marker pair is
appended to the file first.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			ctx = zerolog.Ctx(ctx).With().Str("command", "insert").Logger().WithContext(ctx)

			substitute := content
			if contentFile != "" {
				text, err := opts.FS.ReadText(contentFile)
				if err != nil {
					return errors.Errorf("reading content file: %w", err)
				}
				substitute = text
			}

			ops := tagfile.New(opts.FS, file)
			var err error
			if createTags {
				err = ops.InsertOrCreateTags(ctx, substitute, tagName, tagPrefix)
			} else {
				err = ops.InsertBetween(ctx, substitute, tagName)
			}
			if err != nil {
				return errors.Errorf("inserting into %s: %w", file, err)
			}

			opts.UserLogger.LogValidation(true, "Inserted "+tagName+" into "+file, nil)
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "file holding the tag markers")
	cmd.Flags().StringVarP(&tagName, "tag", "t", "", "tag naming the marker pair")
	cmd.Flags().StringVar(&content, "content", "", "substitute text")
	cmd.Flags().StringVar(&contentFile, "content-file", "", "file to read the substitute text from")
	cmd.Flags().BoolVar(&createTags, "create-tags", false, "append fresh markers when the tag is absent")
	cmd.Flags().StringVar(&tagPrefix, "tag-prefix", "", "prefix for freshly created marker lines")
	_ = cmd.MarkFlagRequired("file")
	_ = cmd.MarkFlagRequired("tag")

	return cmd
}
