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

// fakeWeatherSource returns a canned result or error.
type fakeWeatherSource struct {
	result upstream.CurrentWeather
	err    error
}

func (f *fakeWeatherSource) Current(ctx context.Context, city string) (upstream.CurrentWeather, error) {
	if f.err != nil {
		return upstream.CurrentWeather{}, f.err
	}
	return f.result, nil
}

func countRows(t *testing.T, db *sql.DB, table string) int {
	t.Helper()
	var n int
	require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM "+table).Scan(&n))
	return n
}

func TestWeatherLookupPersistsOneRecord(t *testing.T) {
	db := testutil.OpenInMemoryDB(t, "weather_ok")
	svc := NewWeatherService(db, &fakeWeatherSource{result: upstream.CurrentWeather{
		City:        "Almaty",
		Temperature: 21.5,
		Description: "clear sky",
		Icon:        "https://openweathermap.org/img/w/01d.png",
	}})

	record, err := svc.Lookup(context.Background(), "Almaty", "user-1")
	require.NoError(t, err)

	assert.Equal(t, 21.5, record.Temperature)
	assert.Equal(t, "clear sky", record.Description)
	assert.Equal(t, "Almaty", record.City)
	assert.Equal(t, "user-1", record.UserID)
	assert.Equal(t, 1, countRows(t, db, "weather_lookups"))
}

func TestWeatherLookupFailurePersistsNothing(t *testing.T) {
	db := testutil.OpenInMemoryDB(t, "weather_fail")
	svc := NewWeatherService(db, &fakeWeatherSource{
		err: &upstream.Error{Kind: upstream.KindMissingField, Op: "weather.current"},
	})

	_, err := svc.Lookup(context.Background(), "Almaty", "user-1")
	require.Error(t, err)

	var upErr *upstream.Error
	require.ErrorAs(t, err, &upErr)
	assert.Equal(t, upstream.KindMissingField, upErr.Kind)
	assert.Equal(t, 0, countRows(t, db, "weather_lookups"))
}

func TestWeatherHistoryIsScopedToOwner(t *testing.T) {
	db := testutil.OpenInMemoryDB(t, "weather_scope")
	svc := NewWeatherService(db, nil)

	seedWeatherRow(t, db, "w1", "Almaty", "user-a", "2024-03-01 09:00:00")
	seedWeatherRow(t, db, "w2", "Astana", "user-b", "2024-03-01 10:00:00")
	seedWeatherRow(t, db, "w3", "Taraz", "user-a", "2024-03-02 09:00:00")

	records, err := svc.HistoryForUser("user-a")
	require.NoError(t, err)
	require.Len(t, records, 2)
	for _, r := range records {
		assert.Equal(t, "user-a", r.UserID)
	}

	// Most recent first.
	assert.Equal(t, "w3", records[0].ID)
	assert.Equal(t, "w1", records[1].ID)

	none, err := svc.HistoryForUser("user-c")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func seedWeatherRow(t *testing.T, db *sql.DB, id, city, userID, createdAt string) {
	t.Helper()
	_, err := db.Exec(`INSERT INTO weather_lookups
		(id, city, temperature, description, icon, user_id, created_at)
		VALUES (?, ?, 10.0, 'overcast', 'icon.png', ?, ?)`, id, city, userID, createdAt)
	require.NoError(t, err)
}
