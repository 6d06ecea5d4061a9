// Copyright 2025 The MCP Forge Authors
// SPDX-License-Identifier: Apache-2.0

package handlers

import (
	"net/http"
)

// Health reports process liveness.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeSuccessResponse(w, http.StatusOK, map[string]string{"status": "healthy"})
}

// Ready reports readiness to serve requests.
func (h *Handler) Ready(w http.ResponseWriter, r *http.Request) {
	writeSuccessResponse(w, http.StatusOK, map[string]string{"status": "ready"})
}
