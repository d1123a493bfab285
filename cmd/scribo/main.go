package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/joestump/scribo/internal/config"
	"github.com/joestump/scribo/internal/logging"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "scribo",
		Short:         "AI toolkit for content creators",
		Long:          "Scribo AI builds prompts from content templates and generates scripts, titles, captions, hashtags and ideas.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(newServeCmd())
	rootCmd.AddCommand(newMigrateCmd())
	rootCmd.AddCommand(newGenerateCmd())
	rootCmd.AddCommand(newTemplatesCmd())
	rootCmd.AddCommand(newKeyCmd())
	rootCmd.AddCommand(newMCPCmd())
	rootCmd.AddCommand(newVersionCmd())
	return rootCmd
}

// loadConfig reads the configuration and configures the global logger.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if err := logging.Setup(cfg.Log.Level, cfg.Log.Format); err != nil {
		return nil, err
	}
	return cfg, nil
}
