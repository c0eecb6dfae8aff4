package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/lifei6671/i18ntree/config"
)

var rootConfiguration struct {
	verbose bool
}

func newRootCommand(cfg *config.Config) *cobra.Command {
	root := &cobra.Command{
		Use:   "i18ntree",
		Short: "Build nested locale documents from translation tables",
		Long: `i18ntree turns a translation table (xlsx or csv) into one nested document per
locale column, and aligns existing locale documents with a reference document.

Settings are read from I18NTREE_* environment variables (and a .env file);
flags override them.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(*cobra.Command, []string) {
			level := slog.LevelInfo
			if rootConfiguration.verbose {
				level = slog.LevelDebug
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
		},
	}
	root.PersistentFlags().BoolVarP(&rootConfiguration.verbose, "verbose", "v", false, "Enable debug logging")

	root.AddCommand(
		newBuildCommand(cfg),
		newReorderCommand(cfg),
	)
	return root
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fatal(err)
	}
	if err := newRootCommand(&cfg).Execute(); err != nil {
		fatal(err)
	}
}
