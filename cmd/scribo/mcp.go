package main

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/joestump/scribo/internal/catalog"
	"github.com/joestump/scribo/internal/client"
	"github.com/joestump/scribo/internal/keystore"
	"github.com/joestump/scribo/internal/mcpserver"
)

func newMCPCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "mcp",
		Short: "Serve the template and generation tools over MCP stdio",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			s := mcpserver.New(
				catalog.Default,
				client.New(cfg.Endpoint.Base, client.WithTimeout(cfg.Endpoint.Timeout)),
				keystore.NewFileStore(cfg.KeyFile),
			)
			log.Info().Str("endpoint", cfg.Endpoint.Base).Msg("serving MCP on stdio")
			return s.ServeStdio()
		},
	}
}
