package config

const (
	EnvEnvironment = "ENVIRONMENT"
	EnvPort        = "PORT"
	EnvLogLevel    = "LOG_LEVEL"
	EnvLogFormat   = "LOG_FORMAT"

	EnvStoreDriver       = "STORE_DRIVER"
	EnvMongoURI          = "MONGO_URI"
	EnvMongoDatabaseName = "MONGO_DATABASE_NAME"
	EnvMongoConnTimeout  = "MONGO_CONN_TIMEOUT"

	EnvAdminToken       = "ADMIN_TOKEN"
	EnvAdminTokenHeader = "ADMIN_TOKEN_HEADER"
	EnvCORSOrigins      = "CORS_ORIGINS"

	EnvRateLimitRequests = "RATE_LIMIT_REQUESTS"
	EnvRateLimitWindow   = "RATE_LIMIT_WINDOW"
	EnvTrustedProxies    = "TRUSTED_PROXIES"

	EnvRequestTimeout = "REQUEST_TIMEOUT"
	EnvIdempotencyTTL = "IDEMPOTENCY_TTL"
	EnvMaxRequestSize = "MAX_REQUEST_SIZE"

	EnvReadTimeout     = "READ_TIMEOUT"
	EnvWriteTimeout    = "WRITE_TIMEOUT"
	EnvIdleTimeout     = "IDLE_TIMEOUT"
	EnvShutdownTimeout = "SHUTDOWN_TIMEOUT"

	EnvStrictStatusTransitions = "STRICT_STATUS_TRANSITIONS"
	EnvExportTimezone          = "EXPORT_TIMEZONE"
	EnvReelEmbedTemplate       = "REEL_EMBED_TEMPLATE"

	EnvRedisAddr     = "REDIS_ADDR"
	EnvRedisPassword = "REDIS_PASSWORD"
	EnvRedisDB       = "REDIS_DB"
	EnvReelCacheTTL  = "REEL_CACHE_TTL"

	EnvKafkaBookingsTopic = "KAFKA_BOOKINGS_TOPIC"
	EnvKafkaReelsTopic    = "KAFKA_REELS_TOPIC"
)
