// Copyright 2025 The MCP Forge Authors
// SPDX-License-Identifier: Apache-2.0

package parking

import "github.com/mlzoo/mcp-forge/internal/parking-api/models"

// lotRecord is a catalog entry shared by the mock variant and the sqlite seed.
type lotRecord struct {
	ID             string
	Name           string
	Address        string
	Latitude       float64
	Longitude      float64
	TotalSpaces    int
	HourlyRate     int
	BusinessHours  string
	Features       []string
	PaymentMethods []string
	Phone          string
	Email          string
}

// catalog is the demo parking lot inventory around the Taipei Xinyi district.
var catalog = []lotRecord{
	{
		ID:             "P001",
		Name:           "Fubon Financial Center Garage",
		Address:        "100 Songren Rd, Xinyi District, Taipei, B2-B5",
		Latitude:       25.0330,
		Longitude:      121.5654,
		TotalSpaces:    200,
		HourlyRate:     60,
		BusinessHours:  "00:00-24:00",
		Features:       []string{"indoor", "elevator", "accessible", "ev-charging"},
		PaymentMethods: []string{"cash", "credit-card", "mobile-payment"},
		Phone:          "02-2345-6789",
		Email:          "service@fubon-parking.example.com",
	},
	{
		ID:             "P002",
		Name:           "Xinyi Vieshow Garage",
		Address:        "18 Songshou Rd, Xinyi District, Taipei, B1-B4",
		Latitude:       25.0359,
		Longitude:      121.5672,
		TotalSpaces:    300,
		HourlyRate:     50,
		BusinessHours:  "06:00-24:00",
		Features:       []string{"indoor", "elevator"},
		PaymentMethods: []string{"cash", "credit-card"},
		Phone:          "02-2722-1234",
		Email:          "parking@vieshow.example.com",
	},
	{
		ID:             "P003",
		Name:           "Taipei 101 Mall Garage",
		Address:        "7 Xinyi Rd Sec 5, Xinyi District, Taipei, B1-B4",
		Latitude:       25.0338,
		Longitude:      121.5645,
		TotalSpaces:    400,
		HourlyRate:     70,
		BusinessHours:  "00:00-24:00",
		Features:       []string{"indoor", "elevator", "accessible", "ev-charging", "valet"},
		PaymentMethods: []string{"cash", "credit-card", "mobile-payment"},
		Phone:          "02-8101-8800",
		Email:          "garage@taipei101.example.com",
	},
	{
		ID:             "P004",
		Name:           "Far Eastern Baoqing Garage",
		Address:        "32 Baoqing Rd, Wanhua District, Taipei, B1-B3",
		Latitude:       25.0421,
		Longitude:      121.5067,
		TotalSpaces:    150,
		HourlyRate:     45,
		BusinessHours:  "07:00-23:00",
		Features:       []string{"indoor"},
		PaymentMethods: []string{"cash", "credit-card"},
		Phone:          "02-2381-5252",
		Email:          "baoqing@feds.example.com",
	},
	{
		ID:             "P005",
		Name:           "Breeze Center Garage",
		Address:        "39 Fuxing S Rd Sec 1, Songshan District, Taipei, B1-B3",
		Latitude:       25.0468,
		Longitude:      121.5443,
		TotalSpaces:    250,
		HourlyRate:     55,
		BusinessHours:  "06:00-24:00",
		Features:       []string{"indoor", "elevator", "accessible"},
		PaymentMethods: []string{"cash", "credit-card", "mobile-payment"},
		Phone:          "02-6600-8888",
		Email:          "garage@breeze.example.com",
	},
}

// congestionLevel classifies occupancy into a coarse level for real-time status.
func congestionLevel(available, total int) (level string, waitMinutes int) {
	if total <= 0 {
		return "unknown", 0
	}
	ratio := float64(available) / float64(total)
	switch {
	case ratio >= 0.5:
		return "low", 0
	case ratio >= 0.2:
		return "moderate", 5
	default:
		return "high", 15
	}
}

func (l *lotRecord) coordinates() models.Coordinates {
	return models.Coordinates{Latitude: l.Latitude, Longitude: l.Longitude}
}
