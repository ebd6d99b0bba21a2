package memory

import (
	"context"
	"sync"

	"courierhub/internal/core/domain/model/kernel"
)

// PositionCache is the process-local stand-in for the Redis position cache.
type PositionCache struct {
	mu        sync.RWMutex
	positions map[kernel.UUID]kernel.GeoPoint
}

func NewPositionCache() *PositionCache {
	return &PositionCache{positions: make(map[kernel.UUID]kernel.GeoPoint)}
}

func (c *PositionCache) Set(_ context.Context, courierID kernel.UUID, point kernel.GeoPoint) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.positions[courierID] = point
	return nil
}

func (c *PositionCache) Get(_ context.Context, courierID kernel.UUID) (*kernel.GeoPoint, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	p, ok := c.positions[courierID]
	if !ok {
		return nil, nil //nolint:nilnil // a cache miss is not an error
	}
	return &p, nil
}

func (c *PositionCache) Remove(_ context.Context, courierID kernel.UUID) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.positions, courierID)
	return nil
}
