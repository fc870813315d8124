// Package geocoder resolves postal codes to coordinates through an external
// HTTP provider.
package geocoder

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/campushq-id/bootcamp-api/config"
)

// ErrNoResult means the provider knows nothing about the postal code.
var ErrNoResult = errors.New("geocoder: no result for postal code")

type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Geocoder resolves a postal code to a coordinate pair.
type Geocoder interface {
	Geocode(ctx context.Context, zipcode string) (Location, error)
}

// Client talks to a Nominatim-compatible search endpoint.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

func NewClient(cfg config.GeocoderConfig) *Client {
	return &Client{
		baseURL: cfg.BaseURL,
		apiKey:  cfg.APIKey,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
	}
}

type providerResult struct {
	Lat string `json:"lat"`
	Lon string `json:"lon"`
}

func (c *Client) Geocode(ctx context.Context, zipcode string) (Location, error) {
	query := url.Values{}
	query.Set("postalcode", zipcode)
	query.Set("format", "json")
	query.Set("limit", "1")
	if c.apiKey != "" {
		query.Set("key", c.apiKey)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+query.Encode(), nil)
	if err != nil {
		return Location{}, fmt.Errorf("geocoder: build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Location{}, fmt.Errorf("geocoder: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Location{}, fmt.Errorf("geocoder: provider returned status %d", resp.StatusCode)
	}

	var results []providerResult
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return Location{}, fmt.Errorf("geocoder: decode response: %w", err)
	}
	if len(results) == 0 {
		return Location{}, ErrNoResult
	}

	lat, err := strconv.ParseFloat(results[0].Lat, 64)
	if err != nil {
		return Location{}, fmt.Errorf("geocoder: malformed latitude %q", results[0].Lat)
	}
	lng, err := strconv.ParseFloat(results[0].Lon, 64)
	if err != nil {
		return Location{}, fmt.Errorf("geocoder: malformed longitude %q", results[0].Lon)
	}

	return Location{Latitude: lat, Longitude: lng}, nil
}
