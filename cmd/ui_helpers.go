// Copyright (c) 2026 The fdoconf Authors
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"errors"
	"os"
	"os/exec"
	"runtime"

	"fdoconf/cli/internal/httperrors"
	"fdoconf/cli/internal/logging"
	"fdoconf/cli/internal/terminal"

	"atomicgo.dev/cursor"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// errNotLoggedIn is returned by commands that require a valid session.
var errNotLoggedIn = errors.New("not logged in")

// reportedError marks an error that was already shown to the user.
type reportedError struct{ err error }

func (e *reportedError) Error() string { return e.err.Error() }
func (e *reportedError) Unwrap() error { return e.err }

// report shows err to the user according to its kind and returns it marked
// as reported. action completes the sentence "... while <action>".
func report(action, host string, err error) error {
	if err == nil {
		return nil
	}
	switch {
	case errors.Is(err, errNotLoggedIn):
		pterm.Warning.Println("You're not logged in yet!")
		pterm.Println("   Run 'fdoconf login' to get started.")
	case errors.Is(err, terminal.ErrNotInteractive):
		pterm.Error.Println(err.Error())
	case logging.ShowAPIError(action, err):
	default:
		err = httperrors.FormatNetworkError(err, action, host)
	}
	return &reportedError{err: err}
}

// startSpinner shows an inline spinner with text while a request runs.
// It returns a function that stops the spinner; nothing is drawn when stdout
// is not a terminal.
func startSpinner(text string) func() {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return func() {}
	}
	cursor.Hide()
	spinner, err := pterm.DefaultSpinner.WithRemoveWhenDone(true).Start(text)
	if err != nil {
		cursor.Show()
		return func() {}
	}
	return func() {
		_ = spinner.Stop()
		cursor.Show()
	}
}

// newPrompter reads from the command's input, using the real terminal when
// the command is wired to os.Stdin.
func newPrompter(cmd *cobra.Command) *terminal.Prompter {
	if cmd.InOrStdin() == os.Stdin {
		return terminal.NewPrompter()
	}
	return terminal.NewPrompterFrom(cmd.InOrStdin(), cmd.OutOrStdout())
}

// openBrowser attempts to open the provided URL in the user's default browser.
// It uses platform-specific commands to launch the default browser:
//   - Windows: rundll32 url.dll,FileProtocolHandler
//   - macOS: open command
//   - Linux: xdg-open command
//
// The function starts the browser process but does not wait for it to complete.
func openBrowser(url string) error {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", url)
	case "darwin":
		cmd = exec.Command("open", url)
	default:
		cmd = exec.Command("xdg-open", url)
	}
	return cmd.Start()
}
