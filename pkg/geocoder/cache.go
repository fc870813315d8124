package geocoder

import (
	"context"
	"encoding/json"
	"time"

	"github.com/campushq-id/bootcamp-api/pkg/redis"
)

const cacheKeyPrefix = "geocode:"

// CachedGeocoder memoizes lookups in redis. Postal codes do not move, so a
// long TTL is safe; cache failures fall through to the provider.
type CachedGeocoder struct {
	inner Geocoder
	cache *redis.Client
	ttl   time.Duration
}

func NewCachedGeocoder(inner Geocoder, cache *redis.Client, ttl time.Duration) *CachedGeocoder {
	return &CachedGeocoder{inner: inner, cache: cache, ttl: ttl}
}

func (g *CachedGeocoder) Geocode(ctx context.Context, zipcode string) (Location, error) {
	key := cacheKeyPrefix + zipcode

	if cached, ok := g.cache.Get(ctx, key); ok {
		var loc Location
		if err := json.Unmarshal([]byte(cached), &loc); err == nil {
			return loc, nil
		}
	}

	loc, err := g.inner.Geocode(ctx, zipcode)
	if err != nil {
		return Location{}, err
	}

	if encoded, err := json.Marshal(loc); err == nil {
		g.cache.Set(ctx, key, string(encoded), g.ttl)
	}
	return loc, nil
}
