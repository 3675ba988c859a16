package config

import "time"

const (
	Development = "development"
	Production  = "production"

	StoreMongo  = "mongo"
	StoreMemory = "memory"
)

const (
	DefaultEnvironment = Development
	DefaultPort        = "8000"
	DefaultLogLevel    = "info"

	DefaultStoreDriver       = StoreMongo
	DefaultMongoURI          = "mongodb://localhost:27017"
	DefaultMongoDatabaseName = "dreamshoots"
	DefaultMongoConnTimeout  = 10 * time.Second

	DefaultAdminTokenHeader = "X-Admin-Token"

	DefaultRateLimitRequests = 5
	DefaultRateLimitWindow   = 1 * time.Minute

	DefaultRequestTimeout = 30 * time.Second
	DefaultIdempotencyTTL = 24 * time.Hour
	DefaultMaxRequestSize = 64 * 1024 // 64KB

	DefaultReadTimeout     = 15 * time.Second
	DefaultWriteTimeout    = 15 * time.Second
	DefaultIdleTimeout     = 60 * time.Second
	DefaultShutdownTimeout = 30 * time.Second

	DefaultStrictStatusTransitions = true
	DefaultExportTimezone          = "UTC"
	DefaultReelEmbedTemplate       = "https://www.instagram.com/p/%s/embed"

	DefaultRedisDB      = 0
	DefaultReelCacheTTL = 5 * time.Minute

	DefaultKafkaBookingsTopic = "dreamshoots.bookings"
	DefaultKafkaReelsTopic    = "dreamshoots.reels"
)

var DefaultCORSOrigins = []string{
	"https://www.dreamshoots.in",
	"https://dreamshootsapp-production.up.railway.app",
	"http://localhost:3000",
	"http://localhost:8000",
}
