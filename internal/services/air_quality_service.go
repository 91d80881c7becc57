package services

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"github.com/aslanbek/weatherdesk/internal/models"
	"github.com/aslanbek/weatherdesk/internal/upstream"
)

// AirQualitySource fetches the latest PM2.5 reading from the upstream provider.
type AirQualitySource interface {
	Latest(ctx context.Context, city string) (upstream.AirQualityReading, error)
}

// AirQualityServiceProvider defines the interface for air-quality services.
type AirQualityServiceProvider interface {
	Lookup(ctx context.Context, city, userID string) (models.AirQualityRecord, error)
}

// AirQualityService performs PM2.5 lookups for authenticated users.
type AirQualityService struct {
	db     *sql.DB
	source AirQualitySource
}

// NewAirQualityService creates a new AirQualityService.
func NewAirQualityService(db *sql.DB, source AirQualitySource) *AirQualityService {
	return &AirQualityService{db: db, source: source}
}

// Lookup fetches the latest reading for a city and persists one record owned
// by the user. A failed fetch persists nothing.
func (s *AirQualityService) Lookup(ctx context.Context, city, userID string) (models.AirQualityRecord, error) {
	reading, err := s.source.Latest(ctx, city)
	if err != nil {
		return models.AirQualityRecord{}, err
	}

	record := models.AirQualityRecord{
		ID:            uuid.New().String(),
		City:          reading.City,
		AQI:           reading.AQI,
		MainPollutant: reading.MainPollutant,
		UserID:        userID,
	}

	stmt, err := s.db.Prepare(`INSERT INTO air_quality_lookups
		(id, city, aqi, main_pollutant, user_id) VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		return models.AirQualityRecord{}, err
	}
	defer stmt.Close()

	_, err = stmt.Exec(record.ID, record.City, record.AQI, record.MainPollutant, record.UserID)
	if err != nil {
		return models.AirQualityRecord{}, err
	}
	return record, nil
}
