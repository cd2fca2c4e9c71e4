// Copyright (c) 2026 The fdoconf Authors
// Licensed under the MIT License. See LICENSE file in the project root for details.

package backend

import (
	"fdoconf/cli/internal/manifest"
)

// New creates a backend API implementation for the given server and endpoints.
func New(baseURL string, endpoints manifest.HTTPEndpoints, opts ...Option) API {
	return newHTTP(baseURL, endpoints, opts...)
}
