// Copyright (c) 2026 The fdoconf Authors
// Licensed under the MIT License. See LICENSE file in the project root for details.

package manifest

import "sync"

var (
	// Resolved manifests keyed by normalized base URL.
	// Lives only in process memory and is cleared when the CLI exits.
	cache     = map[string]*Manifest{}
	cacheLock sync.RWMutex
)

// GetCached returns the cached manifest for baseURL, or nil if not cached.
func GetCached(baseURL string) *Manifest {
	cacheLock.RLock()
	defer cacheLock.RUnlock()
	return cache[baseURL]
}

// SetCached stores the manifest in RAM under its base URL.
func SetCached(m *Manifest) {
	cacheLock.Lock()
	defer cacheLock.Unlock()
	cache[m.BaseURL] = m
}

// ClearCache removes all cached manifests (primarily for testing).
func ClearCache() {
	cacheLock.Lock()
	defer cacheLock.Unlock()
	cache = map[string]*Manifest{}
}
