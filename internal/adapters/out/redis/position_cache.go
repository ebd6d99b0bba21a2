// Package redis mirrors courier positions into a Redis GEO set. The set is a
// read cache for live tracking; the courier table stays authoritative.
package redis

import (
	"context"
	"fmt"

	"courierhub/internal/core/domain/model/kernel"

	goredis "github.com/redis/go-redis/v9"
)

const DefaultKey = "courier:positions"

type PositionCache struct {
	client goredis.Cmdable
	key    string
}

// NewClient builds a client for addr. Callers own Close.
func NewClient(addr, password string) *goredis.Client {
	return goredis.NewClient(&goredis.Options{Addr: addr, Password: password})
}

func NewPositionCache(client goredis.Cmdable, key string) *PositionCache {
	if key == "" {
		key = DefaultKey
	}
	return &PositionCache{client: client, key: key}
}

func (c *PositionCache) Set(ctx context.Context, courierID kernel.UUID, point kernel.GeoPoint) error {
	err := c.client.GeoAdd(ctx, c.key, &goredis.GeoLocation{
		Name:      courierID.String(),
		Longitude: point.Lng(),
		Latitude:  point.Lat(),
	}).Err()
	if err != nil {
		return fmt.Errorf("cache position of %s: %w", courierID, err)
	}
	return nil
}

// Get returns nil without error when the courier is not cached.
func (c *PositionCache) Get(ctx context.Context, courierID kernel.UUID) (*kernel.GeoPoint, error) {
	res, err := c.client.GeoPos(ctx, c.key, courierID.String()).Result()
	if err != nil {
		return nil, fmt.Errorf("read position of %s: %w", courierID, err)
	}
	if len(res) == 0 || res[0] == nil {
		return nil, nil //nolint:nilnil // a cache miss is not an error
	}
	p, err := kernel.NewGeoPoint(res[0].Latitude, res[0].Longitude)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (c *PositionCache) Remove(ctx context.Context, courierID kernel.UUID) error {
	if err := c.client.ZRem(ctx, c.key, courierID.String()).Err(); err != nil {
		return fmt.Errorf("evict position of %s: %w", courierID, err)
	}
	return nil
}
