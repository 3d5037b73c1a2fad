package main

import (
	"context"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/walteh/tagsync/cmd/tagsync/commands"
	rootopts "github.com/walteh/tagsync/cmd/tagsync/opts"
)

func main() {
	// Setup logging
	setupLogging()
	ctx := log.Logger.WithContext(context.Background())

	// Create root options
	opts := newRootOpts(ctx)

	// Create root command
	rootCmd := newRootCmd(opts)

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		opts.UserLogger.LogValidation(false, "Command failed", err)
		os.Exit(1)
	}
}

// newRootCmd wires the root command, shared flags, and subcommands around opts
func newRootCmd(opts *rootopts.RootOpts) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "tagsync",
		Short: "Edit tag-delimited regions in text files and sync files by content",
		Long: `tagsync locates pairs of sentinel comment markers ("// <tag>:" and
"// <tag>:end") inside text files and replaces, extracts, or deletes the text
between them. It also synchronizes files into destination folders, writing
only when the byte content actually differs.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// re-apply flag-driven settings once cobra has parsed them
			setupLogging()
			opts.ConfigFile = configFile
		},
	}

	// Add shared flags
	addRootFlags(rootCmd)

	// Add commands
	rootCmd.AddCommand(
		commands.NewInsertCmd(opts),
		commands.NewRemoveCmd(opts),
		commands.NewExtractCmd(opts),
		commands.NewCheckCmd(opts),
		commands.NewSyncCmd(opts),
	)

	return rootCmd
}
