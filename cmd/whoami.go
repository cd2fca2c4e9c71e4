// Copyright (c) 2026 The fdoconf Authors
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// statusCmd reports whether the stored session is accepted by the server.
var statusCmd = &cobra.Command{
	Use:     "status",
	Aliases: []string{"whoami"},
	Short:   "Show whether you are logged in",
	Long: `The status command asks the conformance server whether the stored session is
still valid and shows the account it belongs to.

When the server cannot be reached, the last known local state is shown instead.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		svc, m, err := newService()
		if err != nil {
			return err
		}

		account, ok, err := svc.WhoAmI(cmd.Context())
		switch {
		case err != nil && ok:
			fmt.Fprintf(out, "Logged in as %s (server unreachable, last known state)\n", account)
			return nil
		case err != nil:
			return report("checking the session", m.Host(), err)
		case !ok:
			fmt.Fprintln(out, "Not logged in. Run 'fdoconf login' to get started.")
			return nil
		}

		fmt.Fprintf(out, "Logged in as %s\n", account)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
}
