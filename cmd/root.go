// Copyright (c) 2026 The fdoconf Authors
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package cmd provides the command-line interface for fdoconf.
// It exposes the conformance server's user API (login, logout, registration,
// session checks, config, OAuth2 redirect and test purging) as Cobra subcommands.
package cmd

import (
	"errors"
	"fmt"
	"net/http"
	"os"

	"fdoconf/cli/internal/auth"
	"fdoconf/cli/internal/backend"
	"fdoconf/cli/internal/config"
	"fdoconf/cli/internal/logging"
	"fdoconf/cli/internal/manifest"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var (
	showVersion bool
	serverURL   string
	verbose     bool

	// activeConfig is resolved once per invocation in PersistentPreRunE.
	activeConfig config.Config
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "fdoconf",
	Short: "Command-line client for the FDO conformance server user API",
	Long: `fdoconf talks to a FIDO Device Onboard conformance server on your behalf.
It signs you in, keeps the session in your OS keychain, and lets you register
an account, inspect your configuration and purge old test runs.

The server address comes from --url, FDOCONF_URL, or base_url in the config file.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Resolve()
		if err != nil {
			return err
		}
		if serverURL != "" {
			cfg.BaseURL = serverURL
		}
		if verbose {
			cfg.Verbose = true
		}
		logging.Init(cfg.LogLevel, cfg.Verbose)
		log.Debug().Str("base_url", cfg.BaseURL).Str("log_level", cfg.LogLevel).Msg("configuration loaded")
		activeConfig = cfg
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		if showVersion {
			fmt.Fprintf(cmd.OutOrStdout(), "fdoconf %s\n", Version)
			return nil
		}
		return cmd.Help()
	},
}

// Execute runs the CLI application.
// Errors already shown to the user only set the exit code.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		var shown *reportedError
		if !errors.As(err, &shown) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().BoolVar(&showVersion, "version", false, "Show CLI version information")
	rootCmd.PersistentFlags().StringVar(&serverURL, "url", "", "Conformance server base URL (default "+config.DefaultBaseURL+")")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging, including masked HTTP dumps")
}

// loadManifest resolves the server manifest for the active configuration.
func loadManifest() (*manifest.Manifest, error) {
	return manifest.GetEndpoints(activeConfig.BaseURL, activeConfig.Endpoints)
}

// newService builds the auth service for the active configuration.
func newService() (*auth.Service, *manifest.Manifest, error) {
	m, err := loadManifest()
	if err != nil {
		return nil, nil, err
	}

	opts := []backend.Option{backend.WithUserAgent(userAgent()), backend.WithLogger(log.Logger)}
	if activeConfig.Verbose {
		opts = append(opts, backend.WithHTTPClient(&http.Client{Transport: logging.NewDebugTransport(nil)}))
	}

	svc, err := auth.NewService(m, opts...)
	if err != nil {
		return nil, nil, err
	}
	return svc, m, nil
}
