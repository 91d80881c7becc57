package upstream

import (
	"context"
	"fmt"
	"net/url"
)

const defaultAirQualityBaseURL = "https://api.openaq.org/v2"

// AirQualityReading is the PM2.5 measurement extracted from the latest
// air-quality result for a city.
type AirQualityReading struct {
	City          string
	AQI           float64
	MainPollutant string
}

// AirQualityProvider fetches the latest PM2.5 measurement by city.
type AirQualityProvider struct {
	client *Client
	apiKey string

	// BaseURL is overridable for tests.
	BaseURL string
}

// NewAirQualityProvider creates an air-quality provider client.
func NewAirQualityProvider(client *Client, apiKey string) *AirQualityProvider {
	return &AirQualityProvider{client: client, apiKey: apiKey, BaseURL: defaultAirQualityBaseURL}
}

// Latest fetches the first result's pm25 measurement for a city. No result
// or no pm25 entry is a missing-field failure.
func (p *AirQualityProvider) Latest(ctx context.Context, city string) (AirQualityReading, error) {
	const op = "airquality.latest"

	u := fmt.Sprintf("%s/latest?city=%s&api_key=%s",
		p.BaseURL, url.QueryEscape(city), url.QueryEscape(p.apiKey))

	var payload struct {
		Results []struct {
			City         string `json:"city"`
			Measurements []struct {
				Parameter string  `json:"parameter"`
				Value     float64 `json:"value"`
			} `json:"measurements"`
		} `json:"results"`
	}
	if err := p.client.FetchJSON(ctx, op, u, &payload); err != nil {
		return AirQualityReading{}, err
	}

	if len(payload.Results) == 0 {
		return AirQualityReading{}, missingField(op, "results[0]")
	}

	first := payload.Results[0]
	for _, m := range first.Measurements {
		if m.Parameter == "pm25" {
			reading := AirQualityReading{City: first.City, AQI: m.Value, MainPollutant: "pm25"}
			if reading.City == "" {
				reading.City = city
			}
			return reading, nil
		}
	}
	return AirQualityReading{}, missingField(op, "results[0].measurements[pm25]")
}
