package services

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"github.com/aslanbek/weatherdesk/internal/models"
)

// RateSource fetches a conversion rate from the upstream provider.
type RateSource interface {
	Rate(ctx context.Context, from, to string) (float64, error)
}

// ExchangeRateServiceProvider defines the interface for exchange-rate services.
type ExchangeRateServiceProvider interface {
	Lookup(ctx context.Context, from, to, userID string) (models.ExchangeRateRecord, error)
	HistoryForUser(userID string) ([]models.ExchangeRateRecord, error)
}

// ExchangeRateService performs conversion lookups. The lookup itself is open
// to anonymous callers; a record is persisted only for a session user.
type ExchangeRateService struct {
	db     *sql.DB
	source RateSource
}

// NewExchangeRateService creates a new ExchangeRateService.
func NewExchangeRateService(db *sql.DB, source RateSource) *ExchangeRateService {
	return &ExchangeRateService{db: db, source: source}
}

// Lookup fetches the rate from one currency to another. An empty userID
// means an anonymous caller: the rate is returned but nothing is persisted,
// and the returned record carries no ID.
func (s *ExchangeRateService) Lookup(ctx context.Context, from, to, userID string) (models.ExchangeRateRecord, error) {
	rate, err := s.source.Rate(ctx, from, to)
	if err != nil {
		return models.ExchangeRateRecord{}, err
	}

	record := models.ExchangeRateRecord{
		FromCurrency: from,
		ToCurrency:   to,
		Rate:         rate,
		UserID:       userID,
	}
	if userID == "" {
		return record, nil
	}

	record.ID = uuid.New().String()
	stmt, err := s.db.Prepare(`INSERT INTO exchange_rate_lookups
		(id, from_currency, to_currency, rate, user_id) VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		return models.ExchangeRateRecord{}, err
	}
	defer stmt.Close()

	_, err = stmt.Exec(record.ID, record.FromCurrency, record.ToCurrency, record.Rate, record.UserID)
	if err != nil {
		return models.ExchangeRateRecord{}, err
	}
	return record, nil
}

// HistoryForUser returns the user's conversion lookups, most recent first.
func (s *ExchangeRateService) HistoryForUser(userID string) ([]models.ExchangeRateRecord, error) {
	rows, err := s.db.Query(`SELECT id, from_currency, to_currency, rate, user_id, created_at
		FROM exchange_rate_lookups WHERE user_id = ? ORDER BY created_at DESC, id`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []models.ExchangeRateRecord
	for rows.Next() {
		var r models.ExchangeRateRecord
		if err := rows.Scan(&r.ID, &r.FromCurrency, &r.ToCurrency, &r.Rate, &r.UserID, &r.CreatedAt); err != nil {
			return nil, err
		}
		records = append(records, r)
	}
	return records, rows.Err()
}
