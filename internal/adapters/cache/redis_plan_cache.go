package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"voyage-fuel-service/internal/domain"
)

// Redis-backed cache for computed voyage plans, implementing the
// PlanCache port. Entries are invalidated on segment writes and expire
// on a TTL as a backstop.
type RedisPlanCache struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

func NewRedisPlanCache(addr, password string, db int, ttl time.Duration) (*RedisPlanCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis plan cache: ping: %w", err)
	}

	return &RedisPlanCache{
		client: client,
		prefix: "voyagefuel:plan:",
		ttl:    ttl,
	}, nil
}

func (c *RedisPlanCache) Close() error {
	return c.client.Close()
}

func (c *RedisPlanCache) key(voyageID int) string {
	return fmt.Sprintf("%s%d", c.prefix, voyageID)
}

func (c *RedisPlanCache) GetPlan(ctx context.Context, voyageID int) (*domain.VoyagePlan, bool, error) {
	data, err := c.client.Get(ctx, c.key(voyageID)).Bytes()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("redis plan cache: get voyage %d: %w", voyageID, err)
	}

	var plan domain.VoyagePlan
	if err := json.Unmarshal(data, &plan); err != nil {
		return nil, false, fmt.Errorf("redis plan cache: decode voyage %d: %w", voyageID, err)
	}
	return &plan, true, nil
}

func (c *RedisPlanCache) PutPlan(ctx context.Context, voyageID int, plan *domain.VoyagePlan) error {
	data, err := json.Marshal(plan)
	if err != nil {
		return fmt.Errorf("redis plan cache: encode voyage %d: %w", voyageID, err)
	}

	if err := c.client.Set(ctx, c.key(voyageID), data, c.ttl).Err(); err != nil {
		return fmt.Errorf("redis plan cache: set voyage %d: %w", voyageID, err)
	}
	return nil
}

func (c *RedisPlanCache) InvalidatePlan(ctx context.Context, voyageID int) error {
	if err := c.client.Del(ctx, c.key(voyageID)).Err(); err != nil {
		return fmt.Errorf("redis plan cache: del voyage %d: %w", voyageID, err)
	}
	return nil
}
