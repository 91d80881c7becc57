package upstream

import (
	"context"
	"fmt"
	"net/url"
	"time"
)

const defaultNewsBaseURL = "https://newsapi.org/v2"

// Headline is one news item from the headlines provider. Headlines are never
// persisted; they pass straight through to the view.
type Headline struct {
	Title       string    `json:"title"`
	Source      string    `json:"source"`
	URL         string    `json:"url"`
	PublishedAt time.Time `json:"publishedAt"`
}

// NewsProvider fetches top headlines for a country code.
type NewsProvider struct {
	client *Client
	apiKey string

	// BaseURL is overridable for tests.
	BaseURL string
}

// NewNewsProvider creates a news provider client.
func NewNewsProvider(client *Client, apiKey string) *NewsProvider {
	return &NewsProvider{client: client, apiKey: apiKey, BaseURL: defaultNewsBaseURL}
}

// TopHeadlines fetches current headlines. An empty article list is a valid
// result, not an error.
func (p *NewsProvider) TopHeadlines(ctx context.Context, country string) ([]Headline, error) {
	const op = "news.headlines"

	u := fmt.Sprintf("%s/top-headlines?country=%s&apiKey=%s",
		p.BaseURL, url.QueryEscape(country), url.QueryEscape(p.apiKey))

	var payload struct {
		Articles []struct {
			Title  string `json:"title"`
			Source struct {
				Name string `json:"name"`
			} `json:"source"`
			URL         string    `json:"url"`
			PublishedAt time.Time `json:"publishedAt"`
		} `json:"articles"`
	}
	if err := p.client.FetchJSON(ctx, op, u, &payload); err != nil {
		return nil, err
	}

	headlines := make([]Headline, 0, len(payload.Articles))
	for _, a := range payload.Articles {
		headlines = append(headlines, Headline{
			Title:       a.Title,
			Source:      a.Source.Name,
			URL:         a.URL,
			PublishedAt: a.PublishedAt,
		})
	}
	return headlines, nil
}
