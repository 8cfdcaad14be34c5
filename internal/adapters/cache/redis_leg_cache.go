package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"nurse-route-service/internal/domain"
	"nurse-route-service/internal/platform/obs"
	"nurse-route-service/internal/ports"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisLegCache stores computed legs in Redis, keyed by floor plan, layout
// fingerprint and (start, goal). Entries expire after TTL; a zero TTL keeps them forever.
type RedisLegCache struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisLegCache(client *redis.Client, ttl time.Duration) *RedisLegCache {
	return &RedisLegCache{Client: client, TTL: ttl}
}

type legEntry struct {
	Found    bool     `json:"found"`
	Cost     int      `json:"cost"`
	Expanded int      `json:"expanded"`
	Path     [][2]int `json:"path,omitempty"`
}

func legKey(k ports.LegKey) string {
	return fmt.Sprintf("leg:%s:%016x:%d,%d->%d,%d", k.FloorPlan, k.Layout, k.Start.Row, k.Start.Col, k.Goal.Row, k.Goal.Col)
}

func (c *RedisLegCache) Get(ctx context.Context, key ports.LegKey) (_ domain.PathResult, _ bool, err error) {
	defer obs.Time(ctx, "leg.cache.Get")(&err)

	if c.Client == nil {
		return domain.PathResult{}, false, errors.New("leg cache: client is nil")
	}

	raw, err := c.Client.Get(ctx, legKey(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return domain.PathResult{}, false, nil
	}
	if err != nil {
		return domain.PathResult{}, false, fmt.Errorf("get leg cache key=%s: %w", legKey(key), err)
	}

	var e legEntry
	if err := json.Unmarshal(raw, &e); err != nil {
		return domain.PathResult{}, false, fmt.Errorf("get leg cache key=%s: decode: %w", legKey(key), err)
	}

	if !e.Found {
		return domain.Unreachable(e.Expanded), true, nil
	}

	path := make([]domain.Coord, 0, len(e.Path))
	for _, p := range e.Path {
		path = append(path, domain.Coord{Row: p[0], Col: p[1]})
	}
	return domain.PathResult{Found: true, Path: path, Cost: e.Cost, Expanded: e.Expanded}, true, nil
}

func (c *RedisLegCache) Put(ctx context.Context, key ports.LegKey, result domain.PathResult) (err error) {
	defer obs.Time(ctx, "leg.cache.Put")(&err)

	if c.Client == nil {
		return errors.New("leg cache: client is nil")
	}

	e := legEntry{Found: result.Found, Cost: result.Cost, Expanded: result.Expanded}
	if result.Found {
		e.Path = make([][2]int, 0, len(result.Path))
		for _, p := range result.Path {
			e.Path = append(e.Path, [2]int{p.Row, p.Col})
		}
	}

	raw, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("put leg cache key=%s: encode: %w", legKey(key), err)
	}

	if err := c.Client.Set(ctx, legKey(key), raw, c.TTL).Err(); err != nil {
		return fmt.Errorf("put leg cache key=%s: %w", legKey(key), err)
	}
	return nil
}
