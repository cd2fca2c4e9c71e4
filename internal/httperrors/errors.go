// Copyright (c) 2026 The fdoconf Authors
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package httperrors provides user-friendly error handling for HTTP requests
// to the conformance server.
package httperrors

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strings"
	"syscall"

	"github.com/pterm/pterm"
)

// Category classifies a transport failure.
type Category int

const (
	CategoryGeneric Category = iota
	CategoryTimeout
	CategoryDNS
	CategoryRefused
	CategoryTLS
	CategoryMalformed
)

// FormatNetworkError prints a troubleshooting message for a failed request to
// host and returns err wrapped for the caller.
func FormatNetworkError(err error, action string, host string) error {
	if err == nil {
		return nil
	}

	display(Classify(err), action, host, err.Error())
	return fmt.Errorf("network error: %w", err)
}

// Classify detects the common kinds of transport failure.
func Classify(err error) Category {
	switch {
	case isTimeoutError(err):
		return CategoryTimeout
	case isDNSError(err):
		return CategoryDNS
	case isConnectionRefusedError(err):
		return CategoryRefused
	case isSSLError(err):
		return CategoryTLS
	case isMalformedResponse(err):
		return CategoryMalformed
	default:
		return CategoryGeneric
	}
}

// isTimeoutError checks if the error is a timeout or a cancelled deadline.
func isTimeoutError(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}
	errStr := strings.ToLower(err.Error())
	return strings.Contains(errStr, "timeout") || strings.Contains(errStr, "deadline exceeded")
}

// isDNSError checks if the error is a DNS resolution error.
func isDNSError(err error) bool {
	var dnsErr *net.DNSError
	return errors.As(err, &dnsErr)
}

// isConnectionRefusedError checks if the error is a connection refused error.
func isConnectionRefusedError(err error) bool {
	if errors.Is(err, syscall.ECONNREFUSED) {
		return true
	}
	return strings.Contains(strings.ToLower(err.Error()), "connection refused")
}

// isSSLError checks if the error is an SSL/TLS error.
func isSSLError(err error) bool {
	errStr := strings.ToLower(err.Error())
	return strings.Contains(errStr, "tls") ||
		strings.Contains(errStr, "x509") ||
		strings.Contains(errStr, "certificate") ||
		strings.Contains(errStr, "handshake")
}

// isMalformedResponse checks if the server answered with something that is not JSON.
func isMalformedResponse(err error) bool {
	return strings.Contains(err.Error(), "decode ") && strings.Contains(err.Error(), " response")
}

func display(cat Category, action, host, details string) {
	switch cat {
	case CategoryTimeout:
		pterm.Warning.Printf("Connection to %s timed out while %s\n", host, action)
		pterm.Println("The server took too long to respond. It may be under load or behind a slow link.")
	case CategoryDNS:
		pterm.Error.Printf("Cannot resolve %s while %s\n", host, action)
		pterm.Println("Check the server address passed with --url or FDOCONF_URL.")
	case CategoryRefused:
		pterm.Error.Printf("Connection refused by %s while %s\n", host, action)
		pterm.Println("Is the conformance server running and listening on that port?")
	case CategoryTLS:
		pterm.Error.Printf("Secure connection to %s failed while %s\n", host, action)
		pterm.Println("Check the server certificate, or use http:// for a local server.")
	case CategoryMalformed:
		pterm.Error.Printf("Unreadable answer from %s while %s\n", host, action)
		pterm.Println("The server did not answer with JSON. Is --url pointing at the API root?")
	default:
		pterm.Error.Printf("Cannot reach %s while %s\n", host, action)
	}
	pterm.Println()

	if details != "" {
		if len(details) > 200 {
			details = details[:200] + "..."
		}
		pterm.Debug.Printf("Technical details: %s\n", details)
	}
}
