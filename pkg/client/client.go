package client

import (
	"context"
	"time"

	"dreamshoots/pkg/logger"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const shutdownTimeout = 5 * time.Second

// Client holds the process-wide connections to backing services.
type Client struct {
	Mongo *mongo.Client
	Redis *redis.Client

	log *logger.Logger
}

func NewClient() *Client {
	return &Client{}
}

func (c *Client) SetMongo(log *logger.Logger, mongoURI string, mongoConnTimeout time.Duration) {
	c.log = log
	ctx, cancel := context.WithTimeout(context.Background(), mongoConnTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(mongoURI))
	if err != nil {
		log.Fatal("Failed to connect to MongoDB", "error", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		log.Fatal("Failed to ping MongoDB", "error", err)
	}

	log.Info("Successfully connected to MongoDB")
	c.Mongo = client
}

// SetRedis connects the optional cache. A failed ping is logged and the cache
// stays disabled; the service keeps serving from the store.
func (c *Client) SetRedis(log *logger.Logger, addr, password string, db int) {
	c.log = log
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Warn("Redis unavailable, reel cache disabled", "addr", addr, "error", err)
		_ = rdb.Close()
		return
	}

	log.Info("Successfully connected to Redis", "addr", addr)
	c.Redis = rdb
}

// Ping checks every configured backing service.
func (c *Client) Ping(ctx context.Context) error {
	if c.Mongo != nil {
		if err := c.Mongo.Ping(ctx, nil); err != nil {
			return err
		}
	}
	return nil
}

func (c *Client) GracefulShutdown() {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if c.Mongo != nil {
		if err := c.Mongo.Disconnect(ctx); err != nil && c.log != nil {
			c.log.Error("Failed to disconnect from MongoDB", "error", err)
		}
	}
	if c.Redis != nil {
		if err := c.Redis.Close(); err != nil && c.log != nil {
			c.log.Error("Failed to close Redis client", "error", err)
		}
	}
}
