// ABOUTME: Current-conditions lookup for the habit check-in screen.
// ABOUTME: Metric units, locale language, nil result on any failure.
package weather

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

const (
	defaultBaseURL = "https://api.openweathermap.org/data/2.5/weather"
	requestTimeout = 10 * time.Second
)

// ErrNotConfigured means no weather API key is set.
var ErrNotConfigured = errors.New("weather not configured: no API key")

// Conditions describes current weather in metric units.
type Conditions struct {
	Description string
	Temp        float64
	FeelsLike   float64
	Humidity    int
	WindSpeed   float64
	Icon        string
}

// Client looks up current conditions for a city.
type Client struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

// NewClient creates a weather client. An empty apiKey yields a client that
// reports ErrNotConfigured without touching the network.
func NewClient(apiKey string) *Client {
	return &Client{
		apiKey:  apiKey,
		baseURL: defaultBaseURL,
		client:  &http.Client{Timeout: requestTimeout},
	}
}

type owmResponse struct {
	Weather []struct {
		Description string `json:"description"`
		Icon        string `json:"icon"`
	} `json:"weather"`
	Main struct {
		Temp      float64 `json:"temp"`
		FeelsLike float64 `json:"feels_like"`
		Humidity  int     `json:"humidity"`
	} `json:"main"`
	Wind struct {
		Speed float64 `json:"speed"`
	} `json:"wind"`
}

// Current returns current conditions for the city in the given language,
// or an error on any failure. Callers treat failures as "no weather", not
// as a reason to fail the surrounding operation.
func (c *Client) Current(ctx context.Context, city, lang string) (*Conditions, error) {
	if c.apiKey == "" {
		return nil, ErrNotConfigured
	}
	if lang == "" {
		lang = "en"
	}

	q := url.Values{}
	q.Set("q", city)
	q.Set("appid", c.apiKey)
	q.Set("units", "metric")
	q.Set("lang", lang)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("build weather request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch weather: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch weather: status %d", resp.StatusCode)
	}

	var body owmResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("decode weather: %w", err)
	}

	cond := &Conditions{
		Temp:      body.Main.Temp,
		FeelsLike: body.Main.FeelsLike,
		Humidity:  body.Main.Humidity,
		WindSpeed: body.Wind.Speed,
	}
	if len(body.Weather) > 0 {
		cond.Description = body.Weather[0].Description
		cond.Icon = body.Weather[0].Icon
	}
	return cond, nil
}
