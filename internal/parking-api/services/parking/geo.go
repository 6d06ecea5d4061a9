// Copyright 2025 The MCP Forge Authors
// SPDX-License-Identifier: Apache-2.0

package parking

import "math"

const earthRadiusKm = 6371.0

// haversineKm returns the great-circle distance in kilometers between two points.
func haversineKm(lat1, lng1, lat2, lng2 float64) float64 {
	dLat := degToRad(lat2 - lat1)
	dLng := degToRad(lng2 - lng1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(degToRad(lat1))*math.Cos(degToRad(lat2))*
			math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return earthRadiusKm * c
}

func degToRad(deg float64) float64 {
	return deg * math.Pi / 180
}

// roundKm rounds a distance to two decimal places for presentation.
func roundKm(km float64) float64 {
	return math.Round(km*100) / 100
}
