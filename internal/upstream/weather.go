package upstream

import (
	"context"
	"fmt"
	"net/url"
	"time"
)

const defaultWeatherBaseURL = "https://api.openweathermap.org/data/2.5"

// CurrentWeather is the fixed set of fields extracted from a weather
// provider response. Coordinates and sun times are best-effort.
type CurrentWeather struct {
	City        string
	Temperature float64
	Description string
	Icon        string
	Lon, Lat    *float64
	Sunrise     *time.Time
	Sunset      *time.Time
}

// WeatherProvider fetches current conditions by city (metric units).
type WeatherProvider struct {
	client *Client
	apiKey string

	// BaseURL is overridable for tests.
	BaseURL string
}

// NewWeatherProvider creates a weather provider client.
func NewWeatherProvider(client *Client, apiKey string) *WeatherProvider {
	return &WeatherProvider{client: client, apiKey: apiKey, BaseURL: defaultWeatherBaseURL}
}

// Current fetches current conditions for a city. A payload without at least
// one weather entry is a missing-field failure, not a partial result.
func (p *WeatherProvider) Current(ctx context.Context, city string) (CurrentWeather, error) {
	const op = "weather.current"

	u := fmt.Sprintf("%s/weather?q=%s&units=metric&appid=%s",
		p.BaseURL, url.QueryEscape(city), url.QueryEscape(p.apiKey))

	var payload struct {
		Weather []struct {
			Description string `json:"description"`
			Icon        string `json:"icon"`
		} `json:"weather"`
		Main struct {
			Temp float64 `json:"temp"`
		} `json:"main"`
		Coord *struct {
			Lon float64 `json:"lon"`
			Lat float64 `json:"lat"`
		} `json:"coord"`
		Sys *struct {
			Sunrise int64 `json:"sunrise"`
			Sunset  int64 `json:"sunset"`
		} `json:"sys"`
		Name string `json:"name"`
	}
	if err := p.client.FetchJSON(ctx, op, u, &payload); err != nil {
		return CurrentWeather{}, err
	}

	if len(payload.Weather) == 0 {
		return CurrentWeather{}, missingField(op, "weather[0]")
	}

	cw := CurrentWeather{
		City:        payload.Name,
		Temperature: payload.Main.Temp,
		Description: payload.Weather[0].Description,
		Icon:        fmt.Sprintf("https://openweathermap.org/img/w/%s.png", payload.Weather[0].Icon),
	}
	if cw.City == "" {
		cw.City = city
	}
	if payload.Coord != nil {
		cw.Lon, cw.Lat = &payload.Coord.Lon, &payload.Coord.Lat
	}
	if payload.Sys != nil && payload.Sys.Sunrise > 0 {
		sunrise := time.Unix(payload.Sys.Sunrise, 0).UTC()
		sunset := time.Unix(payload.Sys.Sunset, 0).UTC()
		cw.Sunrise, cw.Sunset = &sunrise, &sunset
	}
	return cw, nil
}
