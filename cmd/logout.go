// Copyright (c) 2026 The fdoconf Authors
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// logoutCmd ends the server session and removes the stored session cookie
// and login state, even when the server cannot be reached.
var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "End the session and remove stored credentials",
	Long: `The logout command asks the conformance server to end the current session and
then removes the session cookie and login state from the OS keychain.

Local cleanup always happens, so logout also works offline.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		svc, _, err := newService()
		if err != nil {
			return err
		}

		ok, err := svc.Logout(cmd.Context())
		if err != nil {
			log.Debug().Err(err).Msg("remote logout failed")
		}
		if !ok {
			pterm.Warning.Println("The server did not confirm the logout; the local session was removed anyway.")
		}

		fmt.Fprintln(cmd.OutOrStdout(), "Logged out")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(logoutCmd)
}
