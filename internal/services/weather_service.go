package services

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"github.com/aslanbek/weatherdesk/internal/models"
	"github.com/aslanbek/weatherdesk/internal/upstream"
)

// WeatherSource fetches current conditions from the upstream provider.
type WeatherSource interface {
	Current(ctx context.Context, city string) (upstream.CurrentWeather, error)
}

// WeatherServiceProvider defines the interface for weather lookup services.
type WeatherServiceProvider interface {
	Lookup(ctx context.Context, city, userID string) (models.WeatherRecord, error)
	HistoryForUser(userID string) ([]models.WeatherRecord, error)
}

// WeatherService performs weather lookups and keeps the per-user history.
type WeatherService struct {
	db     *sql.DB
	source WeatherSource
}

// NewWeatherService creates a new WeatherService.
func NewWeatherService(db *sql.DB, source WeatherSource) *WeatherService {
	return &WeatherService{db: db, source: source}
}

// Lookup fetches current conditions for a city and persists one record owned
// by the user. A failed fetch persists nothing; partial data is never saved.
func (s *WeatherService) Lookup(ctx context.Context, city, userID string) (models.WeatherRecord, error) {
	current, err := s.source.Current(ctx, city)
	if err != nil {
		return models.WeatherRecord{}, err
	}

	record := models.WeatherRecord{
		ID:          uuid.New().String(),
		City:        current.City,
		Temperature: current.Temperature,
		Description: current.Description,
		Icon:        current.Icon,
		UserID:      userID,
		Sunrise:     current.Sunrise,
		Sunset:      current.Sunset,
		Lon:         current.Lon,
		Lat:         current.Lat,
	}

	stmt, err := s.db.Prepare(`INSERT INTO weather_lookups
		(id, city, temperature, description, icon, user_id, sunrise, sunset, lon, lat)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return models.WeatherRecord{}, err
	}
	defer stmt.Close()

	_, err = stmt.Exec(record.ID, record.City, record.Temperature, record.Description,
		record.Icon, record.UserID, record.Sunrise, record.Sunset, record.Lon, record.Lat)
	if err != nil {
		return models.WeatherRecord{}, err
	}
	return record, nil
}

// HistoryForUser returns the user's weather lookups, most recent first.
func (s *WeatherService) HistoryForUser(userID string) ([]models.WeatherRecord, error) {
	rows, err := s.db.Query(`SELECT id, city, temperature, description, icon, user_id,
		sunrise, sunset, lon, lat, created_at
		FROM weather_lookups WHERE user_id = ? ORDER BY created_at DESC, id`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []models.WeatherRecord
	for rows.Next() {
		var r models.WeatherRecord
		if err := rows.Scan(&r.ID, &r.City, &r.Temperature, &r.Description, &r.Icon,
			&r.UserID, &r.Sunrise, &r.Sunset, &r.Lon, &r.Lat, &r.CreatedAt); err != nil {
			return nil, err
		}
		records = append(records, r)
	}
	return records, rows.Err()
}
