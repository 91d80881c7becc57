package models

import "time"

// WeatherRecord is one persisted weather lookup, owned by the user who
// performed it. Records are append-only.
type WeatherRecord struct {
	ID          string     `json:"id"`
	City        string     `json:"city"`
	Temperature float64    `json:"temperature"`
	Description string     `json:"description"`
	Icon        string     `json:"icon"`
	UserID      string     `json:"userId"`
	Sunrise     *time.Time `json:"sunrise,omitempty"`
	Sunset      *time.Time `json:"sunset,omitempty"`
	Lon         *float64   `json:"lon,omitempty"`
	Lat         *float64   `json:"lat,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
}
