package models

import "time"

// ExchangeRateRecord is one persisted currency conversion lookup.
// Only lookups performed with an active session are persisted.
type ExchangeRateRecord struct {
	ID           string    `json:"id"`
	FromCurrency string    `json:"fromCurrency"`
	ToCurrency   string    `json:"toCurrency"`
	Rate         float64   `json:"rate"`
	UserID       string    `json:"userId"`
	CreatedAt    time.Time `json:"createdAt"`
}
