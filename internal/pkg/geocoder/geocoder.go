// Package geocoder resolves street addresses to coordinates through an
// external API. Lookups are best-effort: callers treat any failure as
// "no coordinates", never as a request failure.
package geocoder

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/Vicky-coder616/dealdish-backend/config"
)

var ErrNoResult = errors.New("address could not be geocoded")

type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type Client struct {
	baseURL  string
	apiKey   string
	http     *http.Client
	cache    *redis.Client // optional
	cacheTTL time.Duration
}

// the API returns an array of candidates; only the first is used.
type apiResult struct {
	Lat string `json:"lat"`
	Lon string `json:"lon"`
}

func NewClient(cfg *config.GeocoderConfig, cache *redis.Client) *Client {
	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	ttl := time.Duration(cfg.CacheTTLSeconds) * time.Second
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}

	return &Client{
		baseURL:  cfg.BaseURL,
		apiKey:   cfg.APIKey,
		http:     &http.Client{Timeout: timeout},
		cache:    cache,
		cacheTTL: ttl,
	}
}

// Lookup resolves address to coordinates. Results are cached in redis
// when a cache client is configured.
func (c *Client) Lookup(ctx context.Context, address string) (*Coordinates, error) {
	cacheKey := "geocode:" + address

	if c.cache != nil {
		if cached, err := c.cache.Get(ctx, cacheKey).Result(); err == nil {
			var coords Coordinates
			if err := json.Unmarshal([]byte(cached), &coords); err == nil {
				return &coords, nil
			}
		}
	}

	coords, err := c.fetch(ctx, address)
	if err != nil {
		return nil, err
	}

	if c.cache != nil {
		if data, err := json.Marshal(coords); err == nil {
			c.cache.Set(ctx, cacheKey, data, c.cacheTTL)
		}
	}

	return coords, nil
}

func (c *Client) fetch(ctx context.Context, address string) (*Coordinates, error) {
	q := url.Values{}
	q.Set("q", address)
	if c.apiKey != "" {
		q.Set("api_key", c.apiKey)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+q.Encode(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("geocode request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("geocode api status %d", resp.StatusCode)
	}

	var results []apiResult
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return nil, fmt.Errorf("geocode decode failed: %w", err)
	}
	if len(results) == 0 {
		return nil, ErrNoResult
	}

	var coords Coordinates
	if _, err := fmt.Sscanf(results[0].Lat, "%f", &coords.Latitude); err != nil {
		return nil, ErrNoResult
	}
	if _, err := fmt.Sscanf(results[0].Lon, "%f", &coords.Longitude); err != nil {
		return nil, ErrNoResult
	}

	return &coords, nil
}
