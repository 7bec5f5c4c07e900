package common

import (
	"context"
	"time"

	"autokomis/backoffice/internal/models/entities"
)

const listingCacheKey = "cars:all"

// ListingCache mirrors the car collection for the public pages. It is a
// read-through, write-after-confirm cache: mutations touch it only after the
// store has accepted them, and it can be discarded and rebuilt from the
// listing service at any time. The instance is injected, never a package
// global.
type ListingCache struct {
	cache CacheInterface
	ttl   time.Duration
}

func NewListingCache(cache CacheInterface, ttl time.Duration) *ListingCache {
	return &ListingCache{cache: cache, ttl: ttl}
}

// Load replaces the cached collection via loader when the cache is empty,
// returning the mirrored collection either way.
func (lc *ListingCache) Load(ctx context.Context, loader func(ctx context.Context) ([]entities.Car, error)) ([]entities.Car, error) {
	val, err := lc.cache.GetOrSet(listingCacheKey, lc.ttl, func() (any, error) {
		return loader(ctx)
	})
	if err != nil {
		return nil, err
	}

	cars, ok := val.([]entities.Car)
	if !ok {
		// Defective entry; drop it and reload directly.
		lc.cache.Delete(listingCacheKey)
		return loader(ctx)
	}
	return cars, nil
}

// UpsertLocal merges a confirmed server-side mutation into the mirror,
// stamping a fresh updatedAt. A cold cache is left cold.
func (lc *ListingCache) UpsertLocal(car entities.Car) {
	val, found := lc.cache.Get(listingCacheKey)
	if !found {
		return
	}
	cached, ok := val.([]entities.Car)
	if !ok {
		lc.cache.Delete(listingCacheKey)
		return
	}

	car.UpdatedAt = time.Now().UTC()

	replaced := false
	next := make([]entities.Car, 0, len(cached)+1)
	for _, c := range cached {
		if c.ID == car.ID {
			next = append(next, car)
			replaced = true
			continue
		}
		next = append(next, c)
	}
	if !replaced {
		// New records go first; the mirror is ordered newest-first.
		next = append([]entities.Car{car}, next...)
	}

	lc.cache.Set(listingCacheKey, next, lc.ttl)
}

// RemoveLocal evicts a record after a confirmed server delete.
func (lc *ListingCache) RemoveLocal(id string) {
	val, found := lc.cache.Get(listingCacheKey)
	if !found {
		return
	}
	cached, ok := val.([]entities.Car)
	if !ok {
		lc.cache.Delete(listingCacheKey)
		return
	}

	next := make([]entities.Car, 0, len(cached))
	for _, c := range cached {
		if c.ID == id {
			continue
		}
		next = append(next, c)
	}

	lc.cache.Set(listingCacheKey, next, lc.ttl)
}

// Invalidate drops the mirror entirely; the next Load rebuilds it.
func (lc *ListingCache) Invalidate() {
	lc.cache.Delete(listingCacheKey)
}
