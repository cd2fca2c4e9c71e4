// Copyright (c) 2026 The fdoconf Authors
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"fmt"

	"fdoconf/cli/internal/terminal"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var (
	loginEmail         string
	loginPasswordStdin bool
	loginOnprem        bool
	loginForce         bool
)

// loginCmd signs in to the conformance server and stores the session cookie
// in the OS keychain for later commands.
var loginCmd = &cobra.Command{
	Use:     "login",
	Aliases: []string{"auth"},
	Short:   "Sign in with email and password",
	Long: `The login command signs in to the conformance server. The email is taken from
--email or asked for; the password is read without echo, or from stdin with
--password-stdin. On-premise builds accept --onprem, which needs no credentials.

If the stored session is still valid, nothing is done unless --force is given.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		out := cmd.OutOrStdout()

		svc, m, err := newService()
		if err != nil {
			return err
		}

		if !loginForce {
			if account, ok, err := svc.WhoAmI(ctx); err == nil && ok {
				fmt.Fprintf(out, "Already logged in as %s\n", account)
				return nil
			}
		}

		if loginOnprem {
			stop := startSpinner("Starting on-premise session")
			err := svc.LoginOnprem(ctx)
			stop()
			if err != nil {
				return report("logging in", m.Host(), err)
			}
			pterm.Success.Println("On-premise session started")
			return nil
		}

		prompter := newPrompter(cmd)
		email := loginEmail
		if email == "" {
			if email, err = prompter.Line("Email: "); err != nil {
				return err
			}
		}

		var password string
		if loginPasswordStdin {
			password, err = prompter.ReadAll()
		} else {
			password, err = prompter.Secret("Password: ")
			terminal.ClearPreviousLines(len("Password: "))
		}
		if err != nil {
			return report("reading the password", m.Host(), err)
		}

		stop := startSpinner("Signing in")
		err = svc.Login(ctx, email, password)
		stop()
		if err != nil {
			return report("logging in", m.Host(), err)
		}

		fmt.Fprintf(out, "Logged in as %s\n", email)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(loginCmd)
	loginCmd.Flags().StringVarP(&loginEmail, "email", "e", "", "Account email")
	loginCmd.Flags().BoolVar(&loginPasswordStdin, "password-stdin", false, "Read the password from stdin")
	loginCmd.Flags().BoolVar(&loginOnprem, "onprem", false, "Start an on-premise session without credentials")
	loginCmd.Flags().BoolVar(&loginForce, "force", false, "Sign in again even if the current session is valid")
}
