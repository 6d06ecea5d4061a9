// Copyright 2025 The MCP Forge Authors
// SPDX-License-Identifier: Apache-2.0

package parking

import (
	"context"
	"errors"
	"io"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mlzoo/mcp-forge/internal/parking-api/models"
)

func newSeededSQLiteService(t *testing.T) Service {
	t.Helper()
	path := filepath.Join(t.TempDir(), "parking.db")
	svc, err := NewSQLiteService(path, true, testLogger())
	require.NoError(t, err)
	t.Cleanup(func() {
		if closer, ok := svc.(io.Closer); ok {
			_ = closer.Close()
		}
	})
	return svc
}

func TestSQLiteService_FindNearbySeededCatalog(t *testing.T) {
	svc := newSeededSQLiteService(t)

	result, err := svc.FindNearbyParkingLots(context.Background(), &models.NearbyParkingRequest{
		Address:  "Taipei City Hall",
		RadiusKm: 10.0,
		Limit:    20,
	})
	require.NoError(t, err)

	// All five seeded lots are within 10 km of the city hall origin.
	assert.Equal(t, 5, result.Total)
	assert.Equal(t, len(result.ParkingLots), result.Total)

	for i := 1; i < len(result.ParkingLots); i++ {
		assert.LessOrEqual(t, result.ParkingLots[i-1].DistanceKm, result.ParkingLots[i].DistanceKm)
	}
	for _, lot := range result.ParkingLots {
		assert.False(t, lot.Mock)
		assert.LessOrEqual(t, lot.DistanceKm, 10.0)
	}
}

func TestSQLiteService_FindNearbyRadiusFilters(t *testing.T) {
	svc := newSeededSQLiteService(t)

	// The Xinyi-district lots are within ~1 km of city hall; the Wanhua
	// and Songshan lots are further out.
	result, err := svc.FindNearbyParkingLots(context.Background(), &models.NearbyParkingRequest{
		Address:  "Taipei City Hall",
		RadiusKm: 1.0,
		Limit:    20,
	})
	require.NoError(t, err)

	require.NotEmpty(t, result.ParkingLots)
	assert.Less(t, result.Total, 5)
	for _, lot := range result.ParkingLots {
		assert.LessOrEqual(t, lot.DistanceKm, 1.0)
	}
}

func TestSQLiteService_FindNearbyRespectsLimit(t *testing.T) {
	svc := newSeededSQLiteService(t)

	result, err := svc.FindNearbyParkingLots(context.Background(), &models.NearbyParkingRequest{
		Address:  "Taipei City Hall",
		RadiusKm: 10.0,
		Limit:    2,
	})
	require.NoError(t, err)

	assert.Len(t, result.ParkingLots, 2)
	assert.Equal(t, 2, result.Total)
}

func TestSQLiteService_FindNearbyUnknownAddress(t *testing.T) {
	svc := newSeededSQLiteService(t)

	_, err := svc.FindNearbyParkingLots(context.Background(), &models.NearbyParkingRequest{
		Address:  "Nowhere Street",
		RadiusKm: 1.0,
		Limit:    20,
	})
	assert.True(t, errors.Is(err, ErrAddressNotFound), "expected ErrAddressNotFound, got %v", err)
}

func TestSQLiteService_GetDetails(t *testing.T) {
	svc := newSeededSQLiteService(t)

	details, err := svc.GetParkingLotDetails(context.Background(), "P003")
	require.NoError(t, err)

	assert.Equal(t, "P003", details.ID)
	assert.Equal(t, "Taipei 101 Mall Garage", details.Name)
	assert.Equal(t, 400, details.TotalSpaces)
	assert.False(t, details.Mock)
	assert.NotEmpty(t, details.RealTime.CongestionLevel)
}

func TestSQLiteService_GetDetailsNotFound(t *testing.T) {
	svc := newSeededSQLiteService(t)

	_, err := svc.GetParkingLotDetails(context.Background(), "P999")
	assert.True(t, errors.Is(err, ErrParkingLotNotFound), "expected ErrParkingLotNotFound, got %v", err)
}

func TestSQLiteService_SeedIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "parking.db")

	svc1, err := NewSQLiteService(path, true, testLogger())
	require.NoError(t, err)
	require.NoError(t, svc1.(io.Closer).Close())

	svc2, err := NewSQLiteService(path, true, testLogger())
	require.NoError(t, err)
	defer svc2.(io.Closer).Close()

	result, err := svc2.FindNearbyParkingLots(context.Background(), &models.NearbyParkingRequest{
		Address:  "Taipei City Hall",
		RadiusKm: 10.0,
		Limit:    20,
	})
	require.NoError(t, err)
	assert.Equal(t, 5, result.Total)
}
