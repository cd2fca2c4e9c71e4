// Copyright (c) 2026 The fdoconf Authors
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"errors"
	"fmt"
	"strings"

	"fdoconf/cli/internal/terminal"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var purgeYes bool

// purgeCmd deletes the user's test runs on the server.
var purgeCmd = &cobra.Command{
	Use:   "purge-tests",
	Short: "Delete all of your test runs",
	Long: `The purge-tests command deletes every test run the conformance server keeps for
your account. It asks for confirmation unless --yes is given.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		svc, m, err := newService()
		if err != nil {
			return err
		}
		if err := requireLogin(ctx, svc); err != nil {
			return report("checking the session", m.Host(), err)
		}

		if !purgeYes {
			const question = "Delete all your test runs? [y/N] "
			answer, err := newPrompter(cmd).Line(question)
			if err != nil {
				return err
			}
			terminal.ClearPreviousLines(len(question) + len(answer))
			if a := strings.ToLower(answer); a != "y" && a != "yes" {
				fmt.Fprintln(cmd.OutOrStdout(), "Aborted")
				return nil
			}
		}

		stop := startSpinner("Purging test runs")
		ok, err := svc.PurgeTests(ctx)
		stop()
		if err != nil {
			return report("purging test runs", m.Host(), err)
		}
		if !ok {
			pterm.Error.Println("The server refused to purge the test runs.")
			return &reportedError{err: errors.New("purge failed")}
		}

		fmt.Fprintln(cmd.OutOrStdout(), "Test runs purged")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(purgeCmd)
	purgeCmd.Flags().BoolVarP(&purgeYes, "yes", "y", false, "Do not ask for confirmation")
}
