// Copyright (c) 2026 The fdoconf Authors
// Licensed under the MIT License. See LICENSE file in the project root for details.

package backend

import (
	"context"
	"net/http"
)

// GetConfig calls GET /api/user/config and returns the decoded body as is.
// The status code is not inspected: a failure envelope is returned like any other body.
func (h *HTTP) GetConfig(ctx context.Context) (any, error) {
	res, err := h.call(ctx, http.MethodGet, h.endpoints.Config, nil)
	if err != nil {
		return nil, err
	}
	return res.Body, nil
}

// PurgeTests calls POST /api/user/purgetests, which removes the user's test runs.
func (h *HTTP) PurgeTests(ctx context.Context) (bool, error) {
	res, err := h.call(ctx, http.MethodPost, h.endpoints.PurgeTests, nil)
	if err != nil {
		return false, err
	}
	return res.OK(), nil
}
