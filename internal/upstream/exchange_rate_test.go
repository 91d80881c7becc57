package upstream

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRateServer(t *testing.T, body string) *ExchangeRateProvider {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/latest/KZT", r.URL.Path)
		w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)

	p := NewExchangeRateProvider(NewClient(), "test-key")
	p.BaseURL = srv.URL
	return p
}

func TestExchangeRate(t *testing.T) {
	p := newRateServer(t, `{"base":"KZT","rates":{"USD":0.0021,"EUR":0.0019}}`)

	rate, err := p.Rate(context.Background(), "KZT", "USD")
	require.NoError(t, err)
	assert.Equal(t, 0.0021, rate)
}

func TestExchangeRateMissingTargetCurrency(t *testing.T) {
	p := newRateServer(t, `{"base":"KZT","rates":{"EUR":0.0019}}`)

	_, err := p.Rate(context.Background(), "KZT", "XYZ")
	var upErr *Error
	require.ErrorAs(t, err, &upErr)
	assert.Equal(t, KindMissingField, upErr.Kind)
}
