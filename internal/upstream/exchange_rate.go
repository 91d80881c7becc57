package upstream

import (
	"context"
	"fmt"
	"net/url"
)

const defaultExchangeRateBaseURL = "https://api.exchangerate-api.com/v4"

// ExchangeRateProvider fetches the latest rates for a base currency.
type ExchangeRateProvider struct {
	client *Client
	apiKey string

	// BaseURL is overridable for tests.
	BaseURL string
}

// NewExchangeRateProvider creates an exchange-rate provider client.
func NewExchangeRateProvider(client *Client, apiKey string) *ExchangeRateProvider {
	return &ExchangeRateProvider{client: client, apiKey: apiKey, BaseURL: defaultExchangeRateBaseURL}
}

// Rate fetches the conversion rate from one currency to another. A rates
// table without the target code is a missing-field failure.
func (p *ExchangeRateProvider) Rate(ctx context.Context, from, to string) (float64, error) {
	const op = "exchangerate.rate"

	u := fmt.Sprintf("%s/latest/%s?apiKey=%s",
		p.BaseURL, url.PathEscape(from), url.QueryEscape(p.apiKey))

	var payload struct {
		Rates map[string]float64 `json:"rates"`
	}
	if err := p.client.FetchJSON(ctx, op, u, &payload); err != nil {
		return 0, err
	}

	rate, ok := payload.Rates[to]
	if !ok {
		return 0, missingField(op, "rates."+to)
	}
	return rate, nil
}
