package services

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aslanbek/weatherdesk/internal/testutil"
	"github.com/aslanbek/weatherdesk/internal/upstream"
)

// fakeRateSource returns a canned rate or error.
type fakeRateSource struct {
	rate float64
	err  error
}

func (f *fakeRateSource) Rate(ctx context.Context, from, to string) (float64, error) {
	if f.err != nil {
		return 0, f.err
	}
	return f.rate, nil
}

func TestExchangeLookupAnonymousIsNotPersisted(t *testing.T) {
	db := testutil.OpenInMemoryDB(t, "exchange_anon")
	svc := NewExchangeRateService(db, &fakeRateSource{rate: 0.0021})

	record, err := svc.Lookup(context.Background(), "KZT", "USD", "")
	require.NoError(t, err)

	assert.Equal(t, 0.0021, record.Rate)
	assert.Empty(t, record.ID)
	assert.Equal(t, 0, countRows(t, db, "exchange_rate_lookups"))
}

func TestExchangeLookupSessionUserIsPersisted(t *testing.T) {
	db := testutil.OpenInMemoryDB(t, "exchange_user")
	svc := NewExchangeRateService(db, &fakeRateSource{rate: 0.0021})

	record, err := svc.Lookup(context.Background(), "KZT", "USD", "user-1")
	require.NoError(t, err)

	assert.NotEmpty(t, record.ID)
	assert.Equal(t, "user-1", record.UserID)
	assert.Equal(t, 1, countRows(t, db, "exchange_rate_lookups"))
}

func TestExchangeLookupFailurePersistsNothing(t *testing.T) {
	db := testutil.OpenInMemoryDB(t, "exchange_fail")
	svc := NewExchangeRateService(db, &fakeRateSource{
		err: &upstream.Error{Kind: upstream.KindNetwork, Op: "exchangerate.rate"},
	})

	_, err := svc.Lookup(context.Background(), "KZT", "USD", "user-1")
	require.Error(t, err)
	assert.Equal(t, 0, countRows(t, db, "exchange_rate_lookups"))
}

func TestExchangeHistoryOrderAndScope(t *testing.T) {
	db := testutil.OpenInMemoryDB(t, "exchange_hist")
	svc := NewExchangeRateService(db, nil)

	seedRateRow(t, db, "r1", "user-a", "2024-03-01 09:00:00")
	seedRateRow(t, db, "r2", "user-b", "2024-03-01 10:00:00")
	seedRateRow(t, db, "r3", "user-a", "2024-03-02 09:00:00")

	records, err := svc.HistoryForUser("user-a")
	require.NoError(t, err)
	require.Len(t, records, 2)

	// Descending by timestamp, and never another user's rows.
	assert.Equal(t, "r3", records[0].ID)
	assert.Equal(t, "r1", records[1].ID)
	for _, r := range records {
		assert.Equal(t, "user-a", r.UserID)
	}
}

func seedRateRow(t *testing.T, db *sql.DB, id, userID, createdAt string) {
	t.Helper()
	_, err := db.Exec(`INSERT INTO exchange_rate_lookups
		(id, from_currency, to_currency, rate, user_id, created_at)
		VALUES (?, 'KZT', 'USD', 0.0021, ?, ?)`, id, userID, createdAt)
	require.NoError(t, err)
}
