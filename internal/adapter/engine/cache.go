package engine

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/flights-api/flights-api/internal/domain"
)

// keyPrefix namespaces cached results in a shared Redis.
const keyPrefix = "flights:result:"

// Cache stores engine results by query key.
type Cache interface {
	Get(ctx context.Context, key string) (*domain.SearchResult, bool, error)
	Set(ctx context.Context, key string, result *domain.SearchResult) error
	Close() error
}

// RedisConfig holds the Redis connection settings.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
	TTL      time.Duration
}

// DefaultRedisConfig returns the local default configuration.
func DefaultRedisConfig() RedisConfig {
	return RedisConfig{
		Addr: "localhost:6379",
		TTL:  5 * time.Minute,
	}
}

// RedisCache is a Cache backed by Redis.
type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisCache connects to Redis and verifies the connection.
func NewRedisCache(ctx context.Context, cfg RedisConfig) (*RedisCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, err
	}

	return NewRedisCacheFromClient(client, cfg.TTL), nil
}

// NewRedisCacheFromClient wraps an existing client.
func NewRedisCacheFromClient(client *redis.Client, ttl time.Duration) *RedisCache {
	return &RedisCache{client: client, ttl: ttl}
}

// Get returns the cached result for key. A missing key is not an error.
func (c *RedisCache) Get(ctx context.Context, key string) (*domain.SearchResult, bool, error) {
	data, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	result, err := decodeResult(data)
	if err != nil {
		return nil, false, err
	}
	return result, true, nil
}

// Set stores result under key for the configured TTL.
func (c *RedisCache) Set(ctx context.Context, key string, result *domain.SearchResult) error {
	data, err := encodeResult(result)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, key, data, c.ttl).Err()
}

// Close closes the Redis client.
func (c *RedisCache) Close() error {
	return c.client.Close()
}

// NoOpCache never stores anything.
type NoOpCache struct{}

// NewNoOpCache creates a NoOpCache.
func NewNoOpCache() *NoOpCache {
	return &NoOpCache{}
}

func (c *NoOpCache) Get(_ context.Context, _ string) (*domain.SearchResult, bool, error) {
	return nil, false, nil
}

func (c *NoOpCache) Set(_ context.Context, _ string, _ *domain.SearchResult) error {
	return nil
}

func (c *NoOpCache) Close() error {
	return nil
}

// CacheKey derives a stable key from everything the engine sees.
func CacheKey(query domain.FlightQuery) string {
	data, _ := json.Marshal(query)
	sum := sha256.Sum256(data)
	return keyPrefix + hex.EncodeToString(sum[:])
}

// CachingFetcher serves repeated queries from a Cache and delegates misses.
// Cache failures are logged and bypassed; failed fetches are never cached.
type CachingFetcher struct {
	next  domain.FlightFetcher
	cache Cache
	log   zerolog.Logger
}

// NewCachingFetcher decorates next with cache.
func NewCachingFetcher(next domain.FlightFetcher, cache Cache, log zerolog.Logger) *CachingFetcher {
	return &CachingFetcher{next: next, cache: cache, log: log}
}

// Mode implements domain.FlightFetcher.
func (c *CachingFetcher) Mode() domain.FetchMode {
	return c.next.Mode()
}

// Fetch implements domain.FlightFetcher.
func (c *CachingFetcher) Fetch(ctx context.Context, query domain.FlightQuery) (*domain.SearchResult, error) {
	key := CacheKey(query)

	cached, ok, err := c.cache.Get(ctx, key)
	switch {
	case err != nil:
		c.log.Warn().Err(err).Str("fetch_mode", string(c.Mode())).Msg("Result cache read failed")
	case ok:
		c.log.Debug().Str("fetch_mode", string(c.Mode())).Msg("Result cache hit")
		return cached, nil
	}

	result, err := c.next.Fetch(ctx, query)
	if err != nil {
		return nil, err
	}

	if err := c.cache.Set(ctx, key, result); err != nil {
		c.log.Warn().Err(err).Str("fetch_mode", string(c.Mode())).Msg("Result cache write failed")
	}
	return result, nil
}

// cachedResult is the stored form of a domain.SearchResult.
type cachedResult struct {
	CurrentPrice string         `json:"current_price"`
	Flights      []cachedFlight `json:"flights"`
}

type cachedFlight struct {
	IsBest           bool    `json:"is_best"`
	Name             string  `json:"name"`
	Departure        string  `json:"departure"`
	Arrival          string  `json:"arrival"`
	ArrivalTimeAhead string  `json:"arrival_time_ahead"`
	Duration         string  `json:"duration"`
	Stops            int     `json:"stops"`
	Delay            *string `json:"delay"`
	Price            string  `json:"price"`
}

func encodeResult(r *domain.SearchResult) ([]byte, error) {
	if r == nil {
		return nil, errors.New("nil result")
	}
	out := cachedResult{
		CurrentPrice: string(r.CurrentPrice),
		Flights:      make([]cachedFlight, len(r.Flights)),
	}
	for i, f := range r.Flights {
		out.Flights[i] = cachedFlight(f)
	}
	return json.Marshal(out)
}

func decodeResult(data []byte) (*domain.SearchResult, error) {
	var in cachedResult
	if err := json.Unmarshal(data, &in); err != nil {
		return nil, err
	}
	r := &domain.SearchResult{
		CurrentPrice: domain.PriceLevel(in.CurrentPrice),
		Flights:      make([]domain.FlightOffer, len(in.Flights)),
	}
	for i, f := range in.Flights {
		r.Flights[i] = domain.FlightOffer(f)
	}
	return r, nil
}

var (
	_ Cache                = (*RedisCache)(nil)
	_ Cache                = (*NoOpCache)(nil)
	_ domain.FlightFetcher = (*CachingFetcher)(nil)
)
