// Copyright 2025 The MCP Forge Authors
// SPDX-License-Identifier: Apache-2.0

package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/mlzoo/mcp-forge/internal/parking-api/models"
	"github.com/mlzoo/mcp-forge/internal/parking-api/services/parking"
	"github.com/mlzoo/mcp-forge/internal/server/middleware/logger"
)

// FindNearbyParkingLots handles POST /api/v1/parking-lots/nearby.
func (h *Handler) FindNearbyParkingLots(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := logger.GetLogger(ctx)
	logger.Debug("FindNearbyParkingLots handler called")

	// Parse request body
	var req models.NearbyParkingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Warn("Invalid JSON body", "error", err)
		writeErrorResponse(w, http.StatusBadRequest, "Invalid request body", "INVALID_JSON")
		return
	}
	defer r.Body.Close()

	// Validate request; validation failures never reach the service layer
	req.Sanitize()
	if err := req.Validate(); err != nil {
		logger.Warn("Validation failed", "error", err)
		writeErrorResponse(w, http.StatusBadRequest, err.Error(), "INVALID_REQUEST")
		return
	}

	// Call service to search for nearby parking lots
	result, err := h.services.ParkingService.FindNearbyParkingLots(ctx, &req)
	if err != nil {
		if errors.Is(err, parking.ErrAddressNotFound) {
			logger.Warn("Search address not found", "address", req.Address)
			writeErrorResponse(w, http.StatusNotFound, "Search address not found", parking.CodeAddressNotFound)
			return
		}
		if errors.Is(err, parking.ErrBackendUnavailable) {
			logger.Error("Parking backend unavailable", "error", err)
			writeErrorResponse(w, http.StatusServiceUnavailable, "Parking backend unavailable", parking.CodeBackendUnavailable)
			return
		}
		logger.Error("Failed to search parking lots", "error", err)
		writeErrorResponse(w, http.StatusInternalServerError, "Internal server error", parking.CodeInternalError)
		return
	}

	logger.Debug("Nearby parking search completed", "address", req.Address, "count", result.Total)
	writeSuccessResponse(w, http.StatusOK, result)
}

// GetParkingLot handles GET /api/v1/parking-lots/{parkingLotID}.
func (h *Handler) GetParkingLot(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := logger.GetLogger(ctx)
	logger.Debug("GetParkingLot handler called")

	// Extract parking lot ID from URL path
	parkingLotID := r.PathValue("parkingLotID")
	if parkingLotID == "" {
		logger.Warn("Parking lot ID is required")
		writeErrorResponse(w, http.StatusBadRequest, "Parking lot ID is required", "INVALID_PARKING_LOT_ID")
		return
	}

	// Call service to fetch parking lot details
	details, err := h.services.ParkingService.GetParkingLotDetails(ctx, parkingLotID)
	if err != nil {
		if errors.Is(err, parking.ErrParkingLotNotFound) {
			logger.Warn("Parking lot not found", "parkingLotId", parkingLotID)
			writeErrorResponse(w, http.StatusNotFound, "Parking lot not found", parking.CodeParkingLotNotFound)
			return
		}
		if errors.Is(err, parking.ErrBackendUnavailable) {
			logger.Error("Parking backend unavailable", "error", err)
			writeErrorResponse(w, http.StatusServiceUnavailable, "Parking backend unavailable", parking.CodeBackendUnavailable)
			return
		}
		logger.Error("Failed to get parking lot details", "error", err)
		writeErrorResponse(w, http.StatusInternalServerError, "Internal server error", parking.CodeInternalError)
		return
	}

	logger.Debug("Parking lot details fetched", "parkingLotId", parkingLotID)
	writeSuccessResponse(w, http.StatusOK, details)
}
