package models

import "time"

// AirQualityRecord is one persisted PM2.5 lookup, append-only like the
// other lookup collections.
type AirQualityRecord struct {
	ID            string    `json:"id"`
	City          string    `json:"city"`
	AQI           float64   `json:"aqi"`
	MainPollutant string    `json:"mainPollutant"`
	UserID        string    `json:"userId"`
	CreatedAt     time.Time `json:"createdAt"`
}
