// Copyright 2025 The MCP Forge Authors
// SPDX-License-Identifier: Apache-2.0

package parking

import (
	"context"
	"fmt"
	"hash/fnv"
	"log/slog"
	"math"
	"sort"

	"github.com/mlzoo/mcp-forge/internal/parking-api/models"
)

// mockService serves deterministic synthetic parking data with no I/O.
// All variability is derived from the input by hashing, so two calls with
// identical input always yield identical output.
type mockService struct {
	logger *slog.Logger
}

var _ Service = (*mockService)(nil)

// NewMockService creates the mock parking service variant.
func NewMockService(logger *slog.Logger) Service {
	return &mockService{logger: logger}
}

func (s *mockService) FindNearbyParkingLots(ctx context.Context, req *models.NearbyParkingRequest) (*models.NearbySearchResult, error) {
	s.logger.Debug("Searching nearby parking lots (mock)", "address", req.Address, "radiusKm", req.RadiusKm)

	lots := make([]models.ParkingLotSummary, 0, len(catalog))
	for i := range catalog {
		rec := &catalog[i]
		lots = append(lots, models.ParkingLotSummary{
			ID:              rec.ID,
			Name:            rec.Name,
			Address:         rec.Address,
			DistanceKm:      syntheticDistanceKm(req.Address, rec.ID, req.RadiusKm),
			AvailableSpaces: syntheticAvailability(req.Address, rec.ID, rec.TotalSpaces),
			TotalSpaces:     rec.TotalSpaces,
			HourlyRate:      rec.HourlyRate,
			Coordinates:     rec.coordinates(),
			Mock:            true,
		})
	}

	sort.Slice(lots, func(i, j int) bool {
		if lots[i].DistanceKm != lots[j].DistanceKm {
			return lots[i].DistanceKm < lots[j].DistanceKm
		}
		return lots[i].ID < lots[j].ID
	})

	if req.Limit > 0 && len(lots) > req.Limit {
		lots = lots[:req.Limit]
	}

	return &models.NearbySearchResult{
		SearchAddress: req.Address,
		RadiusKm:      req.RadiusKm,
		ParkingLots:   lots,
		Total:         len(lots),
	}, nil
}

func (s *mockService) GetParkingLotDetails(ctx context.Context, parkingLotID string) (*models.ParkingLotDetails, error) {
	s.logger.Debug("Fetching parking lot details (mock)", "parkingLotId", parkingLotID)

	for i := range catalog {
		rec := &catalog[i]
		if rec.ID == parkingLotID {
			available := syntheticAvailability("", rec.ID, rec.TotalSpaces)
			level, wait := congestionLevel(available, rec.TotalSpaces)
			return &models.ParkingLotDetails{
				ID:              rec.ID,
				Name:            rec.Name,
				Address:         rec.Address,
				AvailableSpaces: available,
				TotalSpaces:     rec.TotalSpaces,
				HourlyRate:      rec.HourlyRate,
				BusinessHours:   rec.BusinessHours,
				Features:        rec.Features,
				PaymentMethods:  rec.PaymentMethods,
				Contact:         models.ContactInfo{Phone: rec.Phone, Email: rec.Email},
				RealTime:        models.RealTimeStatus{IsOpen: true, CongestionLevel: level, EstimatedWaitMinutes: wait},
				Coordinates:     rec.coordinates(),
				Mock:            true,
			}, nil
		}
	}

	// Unknown IDs still get an input-derived synthetic record: the mock
	// variant never fails on a valid input.
	return s.syntheticDetails(parkingLotID), nil
}

func (s *mockService) syntheticDetails(parkingLotID string) *models.ParkingLotDetails {
	h := hash64("details|" + parkingLotID)
	total := 100 + int(h%300)
	available := int(h>>32) % (total + 1)
	level, wait := congestionLevel(available, total)

	return &models.ParkingLotDetails{
		ID:              parkingLotID,
		Name:            fmt.Sprintf("Synthetic Garage %s", parkingLotID),
		Address:         fmt.Sprintf("1 Mock Street, Lot %s", parkingLotID),
		AvailableSpaces: available,
		TotalSpaces:     total,
		HourlyRate:      40 + int(h%60),
		BusinessHours:   "00:00-24:00",
		Features:        []string{"indoor"},
		PaymentMethods:  []string{"cash"},
		Contact:         models.ContactInfo{Phone: "00-0000-0000", Email: "mock@parking.example.com"},
		RealTime:        models.RealTimeStatus{IsOpen: true, CongestionLevel: level, EstimatedWaitMinutes: wait},
		Coordinates:     models.Coordinates{Latitude: 25.0330, Longitude: 121.5654},
		Mock:            true,
	}
}

// syntheticDistanceKm derives a stable pseudo-distance in (0, radius] from
// the search address and lot ID.
func syntheticDistanceKm(address, lotID string, radiusKm float64) float64 {
	h := hash64(address + "|" + lotID)
	frac := float64(h%10000) / 10000.0
	d := 0.1 + frac*(radiusKm-0.1)
	if radiusKm <= 0.1 {
		d = radiusKm * frac
	}
	return math.Round(d*100) / 100
}

// syntheticAvailability derives a stable availability count in [0, total].
func syntheticAvailability(address, lotID string, total int) int {
	h := hash64("avail|" + address + "|" + lotID)
	return int(h % uint64(total+1))
}

func hash64(s string) uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(s))
	return h.Sum64()
}
