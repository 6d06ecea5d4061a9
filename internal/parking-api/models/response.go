// Copyright 2025 The MCP Forge Authors
// SPDX-License-Identifier: Apache-2.0

package models

// APIResponse represents a standard API response wrapper
type APIResponse[T any] struct {
	Success bool   `json:"success"`
	Data    T      `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
	Code    string `json:"code,omitempty"`
}

// SuccessResponse creates a successful API response with data
func SuccessResponse[T any](data T) APIResponse[T] {
	return APIResponse[T]{
		Success: true,
		Data:    data,
	}
}

// ErrorResponse creates an error API response with a message and machine-readable code
func ErrorResponse(message, code string) APIResponse[struct{}] {
	return APIResponse[struct{}]{
		Success: false,
		Error:   message,
		Code:    code,
	}
}

// Coordinates represents a geographic point.
type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// ParkingLotSummary represents a parking lot in search results.
type ParkingLotSummary struct {
	ID              string      `json:"id"`
	Name            string      `json:"name"`
	Address         string      `json:"address"`
	DistanceKm      float64     `json:"distanceKm"`
	AvailableSpaces int         `json:"availableSpaces"`
	TotalSpaces     int         `json:"totalSpaces"`
	HourlyRate      int         `json:"hourlyRate"`
	Coordinates     Coordinates `json:"coordinates"`
	Mock            bool        `json:"mock"`
}

// NearbySearchResult represents the result of a nearby parking search.
// Total always equals the number of returned items.
type NearbySearchResult struct {
	SearchAddress string              `json:"searchAddress"`
	RadiusKm      float64             `json:"radiusKm"`
	ParkingLots   []ParkingLotSummary `json:"parkingLots"`
	Total         int                 `json:"total"`
}

// ContactInfo represents parking lot contact details.
type ContactInfo struct {
	Phone string `json:"phone"`
	Email string `json:"email"`
}

// RealTimeStatus represents the live operational state of a parking lot.
type RealTimeStatus struct {
	IsOpen               bool   `json:"isOpen"`
	CongestionLevel      string `json:"congestionLevel"`
	EstimatedWaitMinutes int    `json:"estimatedWaitMinutes"`
}

// ParkingLotDetails represents the full detail record for a parking lot.
type ParkingLotDetails struct {
	ID              string         `json:"id"`
	Name            string         `json:"name"`
	Address         string         `json:"address"`
	AvailableSpaces int            `json:"availableSpaces"`
	TotalSpaces     int            `json:"totalSpaces"`
	HourlyRate      int            `json:"hourlyRate"`
	BusinessHours   string         `json:"businessHours"`
	Features        []string       `json:"features"`
	PaymentMethods  []string       `json:"paymentMethods"`
	Contact         ContactInfo    `json:"contact"`
	RealTime        RealTimeStatus `json:"realTime"`
	Coordinates     Coordinates    `json:"coordinates"`
	Mock            bool           `json:"mock"`
}
