// Copyright 2025 The MCP Forge Authors
// SPDX-License-Identifier: Apache-2.0

package models

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Search constraints and defaults. Requests that omit a radius search
// within 1 km.
const (
	DefaultSearchRadiusKm = 1.0
	MaxSearchRadiusKm     = 50.0
	DefaultSearchLimit    = 20
	MaxSearchLimit        = 100
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// NearbyParkingRequest represents the request to search for parking lots near an address.
type NearbyParkingRequest struct {
	// Address is the free-form address to search around.
	Address string `json:"address" validate:"required"`
	// RadiusKm is the search radius in kilometers. Defaults to 1.0.
	RadiusKm float64 `json:"radiusKm" validate:"omitempty,gt=0,lte=50"`
	// Limit is the maximum number of results to return. Defaults to 20.
	Limit int `json:"limit" validate:"omitempty,gte=1,lte=100"`
}

// Sanitize normalizes the request in place, applying defaults for
// omitted optional fields.
func (r *NearbyParkingRequest) Sanitize() {
	r.Address = strings.TrimSpace(r.Address)
	if r.RadiusKm == 0 {
		r.RadiusKm = DefaultSearchRadiusKm
	}
	if r.Limit == 0 {
		r.Limit = DefaultSearchLimit
	}
}

// Validate checks the request against its declared constraints.
func (r *NearbyParkingRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			return fmt.Errorf("invalid request: %s", describeFieldErrors(verrs))
		}
		return err
	}
	return nil
}

// describeFieldErrors renders validator errors without leaking struct internals.
func describeFieldErrors(verrs validator.ValidationErrors) string {
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		switch fe.Tag() {
		case "required":
			msgs = append(msgs, fmt.Sprintf("%s is required", jsonFieldName(fe.Field())))
		case "gt":
			msgs = append(msgs, fmt.Sprintf("%s must be greater than %s", jsonFieldName(fe.Field()), fe.Param()))
		case "gte":
			msgs = append(msgs, fmt.Sprintf("%s must be at least %s", jsonFieldName(fe.Field()), fe.Param()))
		case "lte":
			msgs = append(msgs, fmt.Sprintf("%s must be at most %s", jsonFieldName(fe.Field()), fe.Param()))
		default:
			msgs = append(msgs, fmt.Sprintf("%s is invalid", jsonFieldName(fe.Field())))
		}
	}
	return strings.Join(msgs, "; ")
}

// jsonFieldName lowercases the first rune so messages use the JSON field
// spelling rather than the Go struct field name.
func jsonFieldName(field string) string {
	if field == "" {
		return field
	}
	return strings.ToLower(field[:1]) + field[1:]
}
