// Copyright (c) 2026 The fdoconf Authors
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"encoding/json"
	"fmt"

	"fdoconf/cli/internal/config"
	"fdoconf/cli/internal/manifest"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

// configCmd prints the user configuration kept by the server.
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show your configuration on the server",
	Long: `The config command prints the configuration the conformance server keeps for
your account, as JSON. It requires a valid session.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		svc, m, err := newService()
		if err != nil {
			return err
		}
		if err := requireLogin(ctx, svc); err != nil {
			return report("checking the session", m.Host(), err)
		}

		cfg, err := svc.Config(ctx)
		if err != nil {
			return report("loading the configuration", m.Host(), err)
		}

		b, err := json.MarshalIndent(cfg, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(b))
		return nil
	},
}

// configSetURLCmd stores the server address in the config file.
var configSetURLCmd = &cobra.Command{
	Use:   "set-url <url>",
	Short: "Save the conformance server address",
	Long: `The set-url command writes the server base URL to the config file, so later
commands use it without --url. FDOCONF_URL and --url still take precedence.`,
	Args: cobra.ExactArgs(1),

	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := manifest.New(args[0], manifest.HTTPEndpoints{})
		if err != nil {
			return err
		}

		cfg, err := config.Load()
		if err != nil {
			return err
		}
		cfg.BaseURL = m.BaseURL
		if err := config.Save(cfg); err != nil {
			return fmt.Errorf("save config: %w", err)
		}

		pterm.Success.Printf("Server set to %s\n", m.BaseURL)
		fmt.Fprintln(cmd.OutOrStdout(), m.BaseURL)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configSetURLCmd)
}
