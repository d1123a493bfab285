package main

import (
	"bufio"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/joestump/scribo/internal/keystore"
)

func newKeyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "key",
		Short: "Manage the stored Gemini API key",
	}
	cmd.AddCommand(newKeySetCmd(), newKeyRemoveCmd(), newKeyShowCmd())
	return cmd
}

func fileKeyStore() (*keystore.FileStore, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	return keystore.NewFileStore(cfg.KeyFile), nil
}

func newKeySetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set [key]",
		Short: "Store an API key (read from stdin when not given)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ks, err := fileKeyStore()
			if err != nil {
				return err
			}
			var key string
			if len(args) == 1 {
				key = args[0]
			} else {
				fmt.Fprint(cmd.ErrOrStderr(), "Gemini API key: ")
				line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
				if err != nil && line == "" {
					return fmt.Errorf("read key: %w", err)
				}
				key = line
			}
			if strings.TrimSpace(key) == "" {
				return errors.New("key is empty; nothing stored")
			}
			if err := ks.Save(cmd.Context(), key); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "API key saved to", ks.Path())
			return nil
		},
	}
}

func newKeyRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove",
		Short: "Delete the stored API key",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ks, err := fileKeyStore()
			if err != nil {
				return err
			}
			if err := ks.Remove(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "API key removed")
			return nil
		},
	}
}

func newKeyShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show whether a key is stored, masked",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ks, err := fileKeyStore()
			if err != nil {
				return err
			}
			key, err := ks.Load(cmd.Context())
			if err != nil {
				return err
			}
			if key == "" {
				fmt.Fprintln(cmd.OutOrStdout(), "no API key stored; run `scribo key set`")
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), maskKey(key))
			return nil
		},
	}
}

// maskKey keeps the last four characters.
func maskKey(key string) string {
	if len(key) <= 4 {
		return strings.Repeat("*", len(key))
	}
	return strings.Repeat("*", len(key)-4) + key[len(key)-4:]
}
