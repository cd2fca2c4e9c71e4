// Copyright (c) 2026 The fdoconf Authors
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package keychain provides centralized, thread-safe keychain operations for fdoconf.
// It keeps the conformance server session cookie and the local login state in the
// OS credential store, so a login survives between CLI invocations.
//
// Native backends are preferred (macOS Keychain, Windows Credential Manager,
// Secret Service, KWallet, pass). An encrypted file under the XDG state directory
// is the last resort on machines without any of them.
package keychain

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"sync"

	"fdoconf/cli/internal/xdg"

	"github.com/99designs/keyring"
)

// Global keychain manager instance
var (
	globalManager *Manager
	mu            sync.Mutex
)

// Manager provides centralized, thread-safe operations for the OS keychain.
type Manager struct {
	mu   sync.RWMutex
	ring keyring.Keyring
}

// ServiceName identifies our keychain/credential store namespace.
const ServiceName = "fdoconf"

// PasswordEnv supplies the passphrase of the file backend non-interactively.
const PasswordEnv = "FDOCONF_KEYRING_PASSWORD"

// Keys used for storing secrets in the OS keychain.
const (
	KeySession   = "session_cookie"
	KeyAuthState = "auth_state"
)

// NewManager creates a new keychain manager with the OS keyring opened.
func NewManager() (*Manager, error) {
	ring, err := openRing()
	if err != nil {
		return nil, err
	}
	return NewManagerWithRing(ring), nil
}

// NewManagerWithRing wraps an already opened keyring, e.g. keyring.NewArrayKeyring in tests.
func NewManagerWithRing(ring keyring.Keyring) *Manager {
	return &Manager{ring: ring}
}

// GetManager returns the global keychain manager instance.
// If not initialized, it will be created on first call.
// If initialization fails, it will retry on subsequent calls.
func GetManager() (*Manager, error) {
	mu.Lock()
	defer mu.Unlock()

	if globalManager != nil {
		return globalManager, nil
	}

	m, err := NewManager()
	if err != nil {
		return nil, err
	}
	globalManager = m
	return globalManager, nil
}

// SetManager replaces the global manager (primarily for testing). Passing nil
// makes the next GetManager open the OS keyring again.
func SetManager(m *Manager) {
	mu.Lock()
	defer mu.Unlock()
	globalManager = m
}

// openRing opens the OS keyring, preferring native platform backends.
func openRing() (keyring.Keyring, error) {
	var allowedBackends []keyring.BackendType
	switch runtime.GOOS {
	case "darwin":
		allowedBackends = []keyring.BackendType{keyring.KeychainBackend, keyring.PassBackend}
	case "windows":
		allowedBackends = []keyring.BackendType{keyring.WinCredBackend}
	default:
		allowedBackends = []keyring.BackendType{
			keyring.SecretServiceBackend,
			keyring.KWalletBackend,
			keyring.PassBackend,
		}
	}
	allowedBackends = append(allowedBackends, keyring.FileBackend)

	stateDir, err := xdg.StateDir()
	if err != nil {
		return nil, err
	}

	cfg := keyring.Config{
		ServiceName:             ServiceName,
		AllowedBackends:         allowedBackends,
		PassPrefix:              ServiceName,
		WinCredPrefix:           ServiceName,
		LibSecretCollectionName: ServiceName,
		KWalletAppID:            ServiceName,
		KWalletFolder:           ServiceName,
		FileDir:                 filepath.Join(stateDir, "keyring"),
		FilePasswordFunc:        filePassword,
	}

	ring, err := keyring.Open(cfg)
	if err != nil {
		return nil, errors.New("no credential store available; set " + PasswordEnv + " to use the encrypted file store")
	}
	return ring, nil
}

// filePassword returns the file backend passphrase from the environment or the terminal.
func filePassword(prompt string) (string, error) {
	if pw := os.Getenv(PasswordEnv); pw != "" {
		return keyring.FixedStringPrompt(pw)(prompt)
	}
	return keyring.TerminalPrompt(prompt)
}

// set stores data under key. This method is thread-safe.
func (m *Manager) set(key string, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.ring.Set(keyring.Item{Key: key, Label: ServiceName + " " + key, Data: data})
}

// get returns the data under key; a missing key yields nil data and no error.
func (m *Manager) get(key string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	it, err := m.ring.Get(key)
	if err != nil {
		if errors.Is(err, keyring.ErrKeyNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return it.Data, nil
}

// remove deletes key, ignoring keys that do not exist.
func (m *Manager) remove(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.ring.Remove(key); err != nil && !errors.Is(err, keyring.ErrKeyNotFound) && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// SaveSession stores the serialized session cookies.
func (m *Manager) SaveSession(data []byte) error { return m.set(KeySession, data) }

// LoadSession retrieves the serialized session cookies, nil if none are stored.
func (m *Manager) LoadSession() ([]byte, error) { return m.get(KeySession) }

// SaveAuthState stores serialized auth state in the keychain.
func (m *Manager) SaveAuthState(data []byte) error { return m.set(KeyAuthState, data) }

// LoadAuthState retrieves serialized auth state, nil if none is stored.
func (m *Manager) LoadAuthState() ([]byte, error) { return m.get(KeyAuthState) }

// ClearAuthState removes the stored auth state from the keychain.
func (m *Manager) ClearAuthState() error { return m.remove(KeyAuthState) }

// ClearAuth removes the session cookie and auth state.
func (m *Manager) ClearAuth() error {
	if err := m.remove(KeySession); err != nil {
		return err
	}
	return m.remove(KeyAuthState)
}
