package geocoder

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/campushq-id/bootcamp-api/config"
	"github.com/campushq-id/bootcamp-api/pkg/redis"
)

func newTestClient(serverURL string) *Client {
	return NewClient(config.GeocoderConfig{
		BaseURL: serverURL,
		Timeout: 2 * time.Second,
	})
}

func TestClient_Geocode(t *testing.T) {
	var gotQuery string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"lat":"42.3467","lon":"-71.0972"}]`))
	}))
	defer server.Close()

	loc, err := newTestClient(server.URL).Geocode(context.Background(), "02118")
	require.NoError(t, err)

	assert.Equal(t, 42.3467, loc.Latitude)
	assert.Equal(t, -71.0972, loc.Longitude)
	assert.Contains(t, gotQuery, "postalcode=02118")
	assert.Contains(t, gotQuery, "format=json")
}

func TestClient_GeocodeNoResult(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[]`))
	}))
	defer server.Close()

	_, err := newTestClient(server.URL).Geocode(context.Background(), "00000")
	assert.ErrorIs(t, err, ErrNoResult)
}

func TestClient_GeocodeProviderError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	_, err := newTestClient(server.URL).Geocode(context.Background(), "02118")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrNoResult)
}

func TestCachedGeocoder_DisabledCachePassesThrough(t *testing.T) {
	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"lat":"42.3467","lon":"-71.0972"}]`))
	}))
	defer server.Close()

	cache := redis.NewClient(redis.Config{Enabled: false}, zap.NewNop())
	geo := NewCachedGeocoder(newTestClient(server.URL), cache, time.Hour)

	for i := 0; i < 2; i++ {
		loc, err := geo.Geocode(context.Background(), "02118")
		require.NoError(t, err)
		assert.Equal(t, 42.3467, loc.Latitude)
	}

	// Without a cache every lookup reaches the provider.
	assert.Equal(t, 2, calls)
}
