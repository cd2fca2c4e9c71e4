// Copyright (c) 2026 The fdoconf Authors
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package terminal provides prompt helpers for interactive commands.
package terminal

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strings"

	"golang.org/x/term"
)

// ErrNotInteractive is returned when a secret must be read but stdin is not a terminal.
var ErrNotInteractive = errors.New("stdin is not a terminal; use --password-stdin")

// Prompter reads answers from in and writes prompts to out.
type Prompter struct {
	in     *bufio.Reader
	out    io.Writer
	fd     int
	isTerm bool
}

// NewPrompter returns a Prompter on the process's stdin and stdout.
func NewPrompter() *Prompter {
	fd := int(os.Stdin.Fd())
	return &Prompter{in: bufio.NewReader(os.Stdin), out: os.Stdout, fd: fd, isTerm: term.IsTerminal(fd)}
}

// NewPrompterFrom returns a non-terminal Prompter, e.g. for piped input or tests.
func NewPrompterFrom(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewReader(in), out: out, fd: -1}
}

// Line prints label and returns the trimmed line typed by the user.
func (p *Prompter) Line(label string) (string, error) {
	fmt.Fprint(p.out, label)
	line, err := p.in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// Secret reads a value without echo. Off a terminal it fails with ErrNotInteractive.
func (p *Prompter) Secret(label string) (string, error) {
	if !p.isTerm {
		return "", ErrNotInteractive
	}
	fmt.Fprint(p.out, label)
	b, err := term.ReadPassword(p.fd)
	fmt.Fprintln(p.out)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// ReadAll reads the whole of the input, trimming one trailing newline.
func (p *Prompter) ReadAll() (string, error) {
	b, err := io.ReadAll(p.in)
	if err != nil {
		return "", err
	}
	return strings.TrimRight(string(b), "\r\n"), nil
}

// ClearPreviousLines clears text from the terminal that was previously printed.
// It calculates how many lines were used by the provided text based on the current
// terminal width, then moves up and clears each line. It does nothing when
// stdout is not a terminal.
func ClearPreviousLines(textLength int) {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return
	}

	termWidth := 80 // default fallback
	if width, _, err := term.GetSize(fd); err == nil && width > 0 {
		termWidth = width
	}

	totalLines := int(math.Ceil(float64(textLength) / float64(termWidth)))
	if totalLines < 1 {
		totalLines = 1
	}

	// After Enter, cursor is on a NEW line below the input.
	linesToClear := totalLines + 1

	for i := 0; i < linesToClear; i++ {
		fmt.Print("\r\x1b[2K") // Move to start and clear entire line
		if i < linesToClear-1 {
			fmt.Print("\x1b[1A") // Move up one line (don't move up on last iteration)
		}
	}
}
