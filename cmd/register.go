// Copyright (c) 2026 The fdoconf Authors
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"fmt"
	"strings"

	"fdoconf/cli/internal/backend"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var (
	registerEmail         string
	registerName          string
	registerCompany       string
	registerPhone         string
	registerPasswordStdin bool
)

// registerCmd creates a new account on the conformance server.
var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Create a new account",
	Long: `The register command creates an account on the conformance server. Every field
is required. Values not given as flags are asked for, and the password is asked
twice without echo.

With --password-stdin the first line of stdin is the password and the second,
if present, its repetition.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		svc, m, err := newService()
		if err != nil {
			return err
		}

		prompter := newPrompter(cmd)
		req := backend.RegistrationRequest{
			Email:   registerEmail,
			Name:    registerName,
			Company: registerCompany,
			Phone:   registerPhone,
		}
		for _, f := range []struct {
			label string
			value *string
		}{
			{"Email: ", &req.Email},
			{"Name: ", &req.Name},
			{"Company: ", &req.Company},
			{"Phone: ", &req.Phone},
		} {
			if *f.value != "" {
				continue
			}
			if *f.value, err = prompter.Line(f.label); err != nil {
				return err
			}
		}

		if registerPasswordStdin {
			all, err := prompter.ReadAll()
			if err != nil {
				return err
			}
			lines := strings.Split(all, "\n")
			req.Password = strings.TrimRight(lines[0], "\r")
			req.PasswordRepeat = req.Password
			if len(lines) > 1 {
				req.PasswordRepeat = strings.TrimRight(lines[1], "\r")
			}
		} else {
			if req.Password, err = prompter.Secret("Password: "); err != nil {
				return report("reading the password", m.Host(), err)
			}
			if req.PasswordRepeat, err = prompter.Secret("Repeat password: "); err != nil {
				return report("reading the password", m.Host(), err)
			}
		}

		stop := startSpinner("Creating account")
		err = svc.Register(cmd.Context(), req)
		stop()
		if err != nil {
			return report("registering", m.Host(), err)
		}

		pterm.Success.Printf("Account %s created\n", req.Email)
		fmt.Fprintln(cmd.OutOrStdout(), "Registered. Run 'fdoconf login' to sign in.")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(registerCmd)
	registerCmd.Flags().StringVar(&registerEmail, "email", "", "Account email")
	registerCmd.Flags().StringVar(&registerName, "name", "", "Your name")
	registerCmd.Flags().StringVar(&registerCompany, "company", "", "Company name")
	registerCmd.Flags().StringVar(&registerPhone, "phone", "", "Phone number")
	registerCmd.Flags().BoolVar(&registerPasswordStdin, "password-stdin", false, "Read the password (and its repetition) from stdin")
}
