// Copyright (c) 2026 The fdoconf Authors
// Licensed under the MIT License. See LICENSE file in the project root for details.

package manifest

// GetEndpoints validates baseURL and returns its manifest, reusing the RAM
// cache when the same server was already resolved with the same endpoints.
func GetEndpoints(baseURL string, overrides HTTPEndpoints) (*Manifest, error) {
	m, err := New(baseURL, overrides)
	if err != nil {
		return nil, err
	}

	if cached := GetCached(m.BaseURL); cached != nil && cached.HTTP == m.HTTP {
		return cached, nil
	}

	SetCached(m)
	return m, nil
}
