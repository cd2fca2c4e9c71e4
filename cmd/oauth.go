// Copyright (c) 2026 The fdoconf Authors
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"fmt"

	"fdoconf/cli/internal/backend"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var oauthNoBrowser bool

// oauthCmd groups the third-party sign-in providers.
var oauthCmd = &cobra.Command{
	Use:   "oauth",
	Short: "Sign in through a third-party provider",
}

// oauthGithubCmd asks the server for the GitHub authorization URL and opens it.
var oauthGithubCmd = &cobra.Command{
	Use:   backend.ProviderGithub,
	Short: "Open the GitHub sign-in page",
	Long: `The github command asks the conformance server for a GitHub authorization URL,
prints it, and opens it in your default browser. Sign-in completes in the browser.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		svc, m, err := newService()
		if err != nil {
			return err
		}

		redirect, err := svc.GithubRedirectURL(cmd.Context())
		if err != nil {
			return report("starting GitHub sign-in", m.Host(), err)
		}

		fmt.Fprintln(cmd.OutOrStdout(), "Open this link to sign in with GitHub:")
		fmt.Fprintln(cmd.OutOrStdout(), redirect)

		if !oauthNoBrowser {
			if err := openBrowser(redirect); err != nil {
				pterm.Warning.Println("Could not open a browser; copy the link above instead.")
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(oauthCmd)
	oauthCmd.AddCommand(oauthGithubCmd)
	oauthGithubCmd.Flags().BoolVar(&oauthNoBrowser, "no-browser", false, "Only print the link")
}
