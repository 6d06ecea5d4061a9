// Copyright 2025 The MCP Forge Authors
// SPDX-License-Identifier: Apache-2.0

package parking

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"

	"github.com/mlzoo/mcp-forge/internal/parking-api/models"
)

// ParkingLotRow is the sqlite schema for parking lots.
type ParkingLotRow struct {
	ID              string   `gorm:"primaryKey;column:id"`
	Name            string   `gorm:"type:text;not null"`
	Address         string   `gorm:"type:text;not null"`
	Latitude        float64  `gorm:"not null"`
	Longitude       float64  `gorm:"not null"`
	TotalSpaces     int      `gorm:"not null"`
	AvailableSpaces int      `gorm:"not null"`
	HourlyRate      int      `gorm:"not null"`
	BusinessHours   string   `gorm:"type:text"`
	Features        []string `gorm:"serializer:json"`
	PaymentMethods  []string `gorm:"serializer:json"`
	Phone           string   `gorm:"type:text"`
	Email           string   `gorm:"type:text"`
}

// TableName overrides the gorm table name.
func (ParkingLotRow) TableName() string { return "parking_lots" }

// GeocodeRow maps a normalized address to coordinates. A production
// deployment would call a geocoding API; the scaffold resolves addresses
// against this table so the sqlite variant stays self-contained.
type GeocodeRow struct {
	Address   string  `gorm:"primaryKey;column:address"`
	Latitude  float64 `gorm:"not null"`
	Longitude float64 `gorm:"not null"`
}

// TableName overrides the gorm table name.
func (GeocodeRow) TableName() string { return "geocoded_addresses" }

// sqliteService fulfills the parking contract from a sqlite database.
// The *gorm.DB handle is pooled and safe for concurrent use; it is acquired
// at construction and released by Close on shutdown.
type sqliteService struct {
	db     *gorm.DB
	logger *slog.Logger
}

var _ Service = (*sqliteService)(nil)

// NewSQLiteService opens the sqlite database at path, migrates the schema,
// and optionally seeds the demo catalog. Open or migration failures are
// construction-time errors so a misconfigured backend fails at startup.
func NewSQLiteService(path string, seed bool, logger *slog.Logger) (Service, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}

	if err := db.AutoMigrate(&ParkingLotRow{}, &GeocodeRow{}); err != nil {
		return nil, fmt.Errorf("failed to migrate parking schema: %w", err)
	}

	if seed {
		if err := seedCatalog(db, logger); err != nil {
			return nil, fmt.Errorf("failed to seed parking catalog: %w", err)
		}
	}

	return &sqliteService{db: db, logger: logger}, nil
}

// Close releases the underlying database handle.
func (s *sqliteService) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func (s *sqliteService) FindNearbyParkingLots(ctx context.Context, req *models.NearbyParkingRequest) (*models.NearbySearchResult, error) {
	s.logger.Debug("Searching nearby parking lots (sqlite)", "address", req.Address, "radiusKm", req.RadiusKm)

	var origin GeocodeRow
	err := s.db.WithContext(ctx).
		Where("address = ?", normalizeAddress(req.Address)).
		First(&origin).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAddressNotFound
		}
		s.logger.Error("Failed to resolve search address", "error", err)
		return nil, fmt.Errorf("%w: address lookup failed", ErrBackendUnavailable)
	}

	var rows []ParkingLotRow
	if err := s.db.WithContext(ctx).Find(&rows).Error; err != nil {
		s.logger.Error("Failed to query parking lots", "error", err)
		return nil, fmt.Errorf("%w: parking lot query failed", ErrBackendUnavailable)
	}

	lots := make([]models.ParkingLotSummary, 0, len(rows))
	for i := range rows {
		row := &rows[i]
		dist := haversineKm(origin.Latitude, origin.Longitude, row.Latitude, row.Longitude)
		if dist > req.RadiusKm {
			continue
		}
		lots = append(lots, models.ParkingLotSummary{
			ID:              row.ID,
			Name:            row.Name,
			Address:         row.Address,
			DistanceKm:      roundKm(dist),
			AvailableSpaces: row.AvailableSpaces,
			TotalSpaces:     row.TotalSpaces,
			HourlyRate:      row.HourlyRate,
			Coordinates:     models.Coordinates{Latitude: row.Latitude, Longitude: row.Longitude},
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

func (s *sqliteService) GetParkingLotDetails(ctx context.Context, parkingLotID string) (*models.ParkingLotDetails, error) {
	s.logger.Debug("Fetching parking lot details (sqlite)", "parkingLotId", parkingLotID)

	var row ParkingLotRow
	err := s.db.WithContext(ctx).Where("id = ?", parkingLotID).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrParkingLotNotFound
		}
		s.logger.Error("Failed to query parking lot", "error", err, "parkingLotId", parkingLotID)
		return nil, fmt.Errorf("%w: parking lot query failed", ErrBackendUnavailable)
	}

	level, wait := congestionLevel(row.AvailableSpaces, row.TotalSpaces)
	return &models.ParkingLotDetails{
		ID:              row.ID,
		Name:            row.Name,
		Address:         row.Address,
		AvailableSpaces: row.AvailableSpaces,
		TotalSpaces:     row.TotalSpaces,
		HourlyRate:      row.HourlyRate,
		BusinessHours:   row.BusinessHours,
		Features:        row.Features,
		PaymentMethods:  row.PaymentMethods,
		Contact:         models.ContactInfo{Phone: row.Phone, Email: row.Email},
		RealTime:        models.RealTimeStatus{IsOpen: true, CongestionLevel: level, EstimatedWaitMinutes: wait},
		Coordinates:     models.Coordinates{Latitude: row.Latitude, Longitude: row.Longitude},
	}, nil
}

// seedCatalog upserts the demo catalog rows so the sqlite variant is usable
// out of the box. Existing availability counts are preserved.
func seedCatalog(db *gorm.DB, logger *slog.Logger) error {
	for i := range catalog {
		rec := &catalog[i]
		row := ParkingLotRow{
			ID:              rec.ID,
			Name:            rec.Name,
			Address:         rec.Address,
			Latitude:        rec.Latitude,
			Longitude:       rec.Longitude,
			TotalSpaces:     rec.TotalSpaces,
			AvailableSpaces: rec.TotalSpaces / 2,
			HourlyRate:      rec.HourlyRate,
			BusinessHours:   rec.BusinessHours,
			Features:        rec.Features,
			PaymentMethods:  rec.PaymentMethods,
			Phone:           rec.Phone,
			Email:           rec.Email,
		}
		res := db.Where("id = ?", rec.ID).FirstOrCreate(&row)
		if res.Error != nil {
			return res.Error
		}
	}

	// Seed a geocode entry per lot address plus a generic downtown origin
	// so nearby searches have resolvable inputs.
	seeds := make([]GeocodeRow, 0, len(catalog)+1)
	for i := range catalog {
		seeds = append(seeds, GeocodeRow{
			Address:   normalizeAddress(catalog[i].Address),
			Latitude:  catalog[i].Latitude,
			Longitude: catalog[i].Longitude,
		})
	}
	seeds = append(seeds, GeocodeRow{
		Address:   normalizeAddress("Taipei City Hall"),
		Latitude:  25.0375,
		Longitude: 121.5637,
	})

	for i := range seeds {
		res := db.Where("address = ?", seeds[i].Address).FirstOrCreate(&seeds[i])
		if res.Error != nil {
			return res.Error
		}
	}

	logger.Debug("Seeded parking catalog", "lots", len(catalog), "geocodes", len(seeds))
	return nil
}

// normalizeAddress canonicalizes addresses for geocode lookups.
func normalizeAddress(address string) string {
	return strings.ToLower(strings.TrimSpace(address))
}
