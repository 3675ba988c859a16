// Package cache keeps the public reel listing in Redis. Every failure
// degrades to a cache miss so callers fall back to the store.
//
// Listings are stored under a generation number. Writers bump the generation
// instead of deleting the entry, so a listing read from the store before a
// write can only land under the old generation, which no reader asks for
// again.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"dreamshoots/pkg/logger"
	"dreamshoots/pkg/model"

	"github.com/redis/go-redis/v9"
)

const (
	ListKey       = "dreamshoots:reels:list"
	GenerationKey = "dreamshoots:reels:gen"
)

// NoGeneration is returned when the current generation could not be read.
// Set ignores it.
const NoGeneration int64 = -1

type ReelCache interface {
	// Get returns the cached listing for the current generation. The
	// generation is returned on a miss too; pass it to Set together with
	// the listing loaded from the store.
	Get(ctx context.Context) (reels []*model.Reel, gen int64, ok bool)
	Set(ctx context.Context, gen int64, reels []*model.Reel)
	Invalidate(ctx context.Context)
}

func ListKeyFor(gen int64) string {
	return ListKey + ":" + strconv.FormatInt(gen, 10)
}

type redisReelCache struct {
	client *redis.Client
	ttl    time.Duration
	log    *logger.Logger
}

// New returns a Redis-backed cache, or a no-op cache when client is nil.
func New(client *redis.Client, ttl time.Duration, log *logger.Logger) ReelCache {
	if client == nil {
		return nopReelCache{}
	}
	return &redisReelCache{
		client: client,
		ttl:    ttl,
		log:    log,
	}
}

func (c *redisReelCache) generation(ctx context.Context) int64 {
	gen, err := c.client.Get(ctx, GenerationKey).Int64()
	if errors.Is(err, redis.Nil) {
		return 0
	}
	if err != nil {
		c.log.Warn("Reel cache generation read failed", "key", GenerationKey, "error", err)
		return NoGeneration
	}
	return gen
}

func (c *redisReelCache) Get(ctx context.Context) ([]*model.Reel, int64, bool) {
	gen := c.generation(ctx)
	if gen == NoGeneration {
		return nil, gen, false
	}

	key := ListKeyFor(gen)
	data, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.log.Warn("Reel cache read failed", "key", key, "error", err)
		}
		return nil, gen, false
	}

	var reels []*model.Reel
	if err := json.Unmarshal(data, &reels); err != nil {
		c.log.Warn("Discarding corrupt reel cache entry", "key", key, "error", err)
		c.client.Del(ctx, key)
		return nil, gen, false
	}
	return reels, gen, true
}

func (c *redisReelCache) Set(ctx context.Context, gen int64, reels []*model.Reel) {
	if gen == NoGeneration {
		return
	}
	data, err := json.Marshal(reels)
	if err != nil {
		c.log.Warn("Failed to encode reel cache entry", "error", err)
		return
	}
	key := ListKeyFor(gen)
	if err := c.client.Set(ctx, key, data, c.ttl).Err(); err != nil {
		c.log.Warn("Reel cache write failed", "key", key, "error", err)
	}
}

// Invalidate moves readers to a fresh generation. The previous listing is
// left to expire with its TTL.
func (c *redisReelCache) Invalidate(ctx context.Context) {
	if err := c.client.Incr(ctx, GenerationKey).Err(); err != nil {
		c.log.Warn("Reel cache invalidation failed", "key", GenerationKey, "error", err)
	}
}

type nopReelCache struct{}

func (nopReelCache) Get(context.Context) ([]*model.Reel, int64, bool) { return nil, NoGeneration, false }

func (nopReelCache) Set(context.Context, int64, []*model.Reel) {}

func (nopReelCache) Invalidate(context.Context) {}
