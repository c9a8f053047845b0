package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"pricebook/internal/domain"
)

const (
	genKey    = "pricebook:gen"
	keyPrefix = "pricebook:q"
	opTimeout = 2 * time.Second
)

// Redis caches query results in a shared redis instance. Clearing bumps a
// generation counter instead of scanning for keys; stale generations simply
// age out via TTL.
type Redis struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedis connects to redis and verifies the connection with a ping.
func NewRedis(addr, password string, ttl time.Duration) (*Redis, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       0,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}
	if ttl <= 0 {
		ttl = 15 * time.Minute
	}
	return &Redis{client: client, ttl: ttl}, nil
}

// Close closes the underlying connection.
func (r *Redis) Close() error { return r.client.Close() }

func (r *Redis) key(ctx context.Context, key string) string {
	gen, _ := r.client.Get(ctx, genKey).Int64()
	return fmt.Sprintf("%s:%d:%s", keyPrefix, gen, key)
}

func (r *Redis) Get(key string) ([]domain.Product, bool) {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	raw, err := r.client.Get(ctx, r.key(ctx, key)).Bytes()
	if err != nil {
		return nil, false
	}
	var products []domain.Product
	if err := json.Unmarshal(raw, &products); err != nil {
		return nil, false
	}
	return products, true
}

func (r *Redis) Set(key string, products []domain.Product) {
	raw, err := json.Marshal(products)
	if err != nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()
	r.client.Set(ctx, r.key(ctx, key), raw, r.ttl)
}

func (r *Redis) Clear() {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()
	r.client.Incr(ctx, genKey)
}
