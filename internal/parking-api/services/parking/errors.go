// Copyright 2025 The MCP Forge Authors
// SPDX-License-Identifier: Apache-2.0

package parking

import "errors"

// Common service errors
var (
	ErrParkingLotNotFound = errors.New("parking lot not found")
	ErrAddressNotFound    = errors.New("address not found")
	ErrBackendUnavailable = errors.New("parking backend unavailable")
)

// Error codes for API responses
const (
	CodeParkingLotNotFound = "PARKING_LOT_NOT_FOUND"
	CodeAddressNotFound    = "ADDRESS_NOT_FOUND"
	CodeBackendUnavailable = "BACKEND_UNAVAILABLE"
	CodeInternalError      = "INTERNAL_ERROR"
)
