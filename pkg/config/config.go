package config

import (
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"
	"time"

	"dreamshoots/pkg/client"
	httputil "dreamshoots/pkg/http"
	kafka_config "dreamshoots/pkg/kafka/config"
	"dreamshoots/pkg/logger"

	"github.com/joho/godotenv"
)

type Config struct {
	ServiceName string
	Environment string
	Port        string

	StoreDriver       string
	MongoURI          string
	MongoDatabaseName string
	MongoConnTimeout  time.Duration

	AdminToken       string
	AdminTokenHeader string

	CORSOrigins          []string
	CORSAllowCredentials bool

	RateLimitRequests int
	RateLimitWindow   time.Duration

	TrustedProxies   []string
	TrustedProxyNets httputil.TrustedProxies

	RequestTimeout time.Duration
	IdempotencyTTL time.Duration
	MaxRequestSize int

	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration

	StrictStatusTransitions bool
	ExportTimezone          string
	ExportLocation          *time.Location
	ReelEmbedTemplate       string

	RedisAddr     string
	RedisPassword string
	RedisDB       int
	ReelCacheTTL  time.Duration

	Kafka              *kafka_config.Config
	KafkaBookingsTopic string
	KafkaReelsTopic    string

	Log    *logger.Logger
	Client *client.Client
}

// Load reads configuration from the environment. A .env file in the working
// directory is applied first when present; real environment variables win.
func Load(serviceName string) *Config {
	envFileErr := godotenv.Load()

	environment := strings.ToLower(getEnvStr(EnvEnvironment, DefaultEnvironment))
	corsOrigins, corsCredentials := loadCORSOrigins(environment)
	exportTimezone := getEnvStr(EnvExportTimezone, DefaultExportTimezone)

	cfg := &Config{
		ServiceName: serviceName,
		Environment: environment,
		Port:        getEnvStr(EnvPort, DefaultPort),

		StoreDriver:       strings.ToLower(getEnvStr(EnvStoreDriver, DefaultStoreDriver)),
		MongoURI:          getEnvStr(EnvMongoURI, DefaultMongoURI),
		MongoDatabaseName: getEnvStr(EnvMongoDatabaseName, DefaultMongoDatabaseName),
		MongoConnTimeout:  getEnvDuration(EnvMongoConnTimeout, DefaultMongoConnTimeout),

		AdminToken:       cleanSecret(os.Getenv(EnvAdminToken)),
		AdminTokenHeader: getEnvStr(EnvAdminTokenHeader, DefaultAdminTokenHeader),

		CORSOrigins:          corsOrigins,
		CORSAllowCredentials: corsCredentials,

		RateLimitRequests: getEnvNum(EnvRateLimitRequests, DefaultRateLimitRequests),
		RateLimitWindow:   getEnvDuration(EnvRateLimitWindow, DefaultRateLimitWindow),
		TrustedProxies:    splitList(os.Getenv(EnvTrustedProxies)),

		RequestTimeout: getEnvDuration(EnvRequestTimeout, DefaultRequestTimeout),
		IdempotencyTTL: getEnvDuration(EnvIdempotencyTTL, DefaultIdempotencyTTL),
		MaxRequestSize: getEnvNum(EnvMaxRequestSize, DefaultMaxRequestSize),

		ReadTimeout:     getEnvDuration(EnvReadTimeout, DefaultReadTimeout),
		WriteTimeout:    getEnvDuration(EnvWriteTimeout, DefaultWriteTimeout),
		IdleTimeout:     getEnvDuration(EnvIdleTimeout, DefaultIdleTimeout),
		ShutdownTimeout: getEnvDuration(EnvShutdownTimeout, DefaultShutdownTimeout),

		StrictStatusTransitions: getEnvBool(EnvStrictStatusTransitions, DefaultStrictStatusTransitions),
		ExportTimezone:          exportTimezone,
		ReelEmbedTemplate:       getEnvStr(EnvReelEmbedTemplate, DefaultReelEmbedTemplate),

		RedisAddr:     os.Getenv(EnvRedisAddr),
		RedisPassword: os.Getenv(EnvRedisPassword),
		RedisDB:       getEnvNum(EnvRedisDB, DefaultRedisDB),
		ReelCacheTTL:  getEnvDuration(EnvReelCacheTTL, DefaultReelCacheTTL),

		Kafka:              kafka_config.Load(),
		KafkaBookingsTopic: getEnvStr(EnvKafkaBookingsTopic, DefaultKafkaBookingsTopic),
		KafkaReelsTopic:    getEnvStr(EnvKafkaReelsTopic, DefaultKafkaReelsTopic),

		Log: logger.New(logger.Config{
			Level:     getEnvStr(EnvLogLevel, DefaultLogLevel),
			Format:    getEnvStr(EnvLogFormat, logger.JSON),
			AddSource: true,
			Service:   serviceName,
		}),
		Client: client.NewClient(),
	}

	if loc, err := time.LoadLocation(exportTimezone); err == nil {
		cfg.ExportLocation = loc
	}
	if nets, err := httputil.ParseTrustedProxies(cfg.TrustedProxies); err == nil {
		cfg.TrustedProxyNets = nets
	}

	if envFileErr == nil {
		cfg.Log.Debug("Loaded environment overrides from .env")
	}
	return cfg
}

func (cfg *Config) SetMongo() {
	cfg.Client.SetMongo(cfg.Log, cfg.MongoURI, cfg.MongoConnTimeout)
}

// SetRedis connects the optional Redis client. Without REDIS_ADDR it is a no-op.
func (cfg *Config) SetRedis() {
	if cfg.RedisAddr == "" {
		return
	}
	cfg.Client.SetRedis(cfg.Log, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
}

func (cfg *Config) UsesMongo() bool {
	return cfg.StoreDriver == StoreMongo
}

func (cfg *Config) IsProduction() bool {
	return cfg.Environment == Production
}

func (cfg *Config) Validate() error {
	var errors []string

	if port, err := strconv.Atoi(cfg.Port); err != nil || port < 1 || port > 65535 {
		errors = append(errors, fmt.Sprintf("Port must be between 1 and 65535, got: %s", cfg.Port))
	}

	if cfg.AdminToken == "" {
		errors = append(errors, "AdminToken cannot be empty (set ADMIN_TOKEN)")
	}
	if strings.TrimSpace(cfg.AdminTokenHeader) == "" {
		errors = append(errors, "AdminTokenHeader cannot be empty")
	}

	switch cfg.StoreDriver {
	case StoreMongo:
		if cfg.MongoURI == "" {
			errors = append(errors, "MongoURI cannot be empty")
		} else if len(cfg.MongoURI) < 10 || !regexp.MustCompile(`^mongodb(\+srv)?://`).MatchString(cfg.MongoURI) {
			errors = append(errors, fmt.Sprintf("MongoURI must start with 'mongodb://' or 'mongodb+srv://', got: %s", redactMongoURI(cfg.MongoURI)))
		}
		if cfg.MongoDatabaseName == "" {
			errors = append(errors, "MongoDatabaseName cannot be empty")
		}
		if cfg.MongoConnTimeout <= 0 {
			errors = append(errors, fmt.Sprintf("MongoConnTimeout must be positive, got: %s", cfg.MongoConnTimeout))
		}
	case StoreMemory:
		if cfg.IsProduction() {
			errors = append(errors, "StoreDriver 'memory' is not durable and cannot be used in production")
		}
	default:
		errors = append(errors, fmt.Sprintf("StoreDriver must be '%s' or '%s', got: %s", StoreMongo, StoreMemory, cfg.StoreDriver))
	}

	if cfg.ExportLocation == nil {
		errors = append(errors, fmt.Sprintf("ExportTimezone must be a valid IANA zone, got: %s", cfg.ExportTimezone))
	}
	if strings.Count(cfg.ReelEmbedTemplate, "%s") != 1 {
		errors = append(errors, fmt.Sprintf("ReelEmbedTemplate must contain exactly one %%s, got: %s", cfg.ReelEmbedTemplate))
	}

	if _, err := httputil.ParseTrustedProxies(cfg.TrustedProxies); err != nil {
		errors = append(errors, fmt.Sprintf("TrustedProxies must be IPs or CIDR blocks: %v", err))
	}

	if cfg.RateLimitWindow <= 0 {
		errors = append(errors, fmt.Sprintf("RateLimitWindow must be positive, got: %s", cfg.RateLimitWindow))
	}
	if cfg.RequestTimeout <= 0 {
		errors = append(errors, fmt.Sprintf("RequestTimeout must be positive, got: %s", cfg.RequestTimeout))
	}
	if cfg.IdempotencyTTL <= 0 {
		errors = append(errors, fmt.Sprintf("IdempotencyTTL must be positive, got: %s", cfg.IdempotencyTTL))
	}
	if cfg.ReadTimeout <= 0 {
		errors = append(errors, fmt.Sprintf("ReadTimeout must be positive, got: %s", cfg.ReadTimeout))
	}
	if cfg.WriteTimeout <= 0 {
		errors = append(errors, fmt.Sprintf("WriteTimeout must be positive, got: %s", cfg.WriteTimeout))
	}
	if cfg.IdleTimeout <= 0 {
		errors = append(errors, fmt.Sprintf("IdleTimeout must be positive, got: %s", cfg.IdleTimeout))
	}
	if cfg.ShutdownTimeout <= 0 {
		errors = append(errors, fmt.Sprintf("ShutdownTimeout must be positive, got: %s", cfg.ShutdownTimeout))
	}
	if cfg.ReelCacheTTL <= 0 {
		errors = append(errors, fmt.Sprintf("ReelCacheTTL must be positive, got: %s", cfg.ReelCacheTTL))
	}

	if cfg.RateLimitRequests <= 0 {
		errors = append(errors, fmt.Sprintf("RateLimitRequests must be positive, got: %d", cfg.RateLimitRequests))
	}
	if cfg.MaxRequestSize <= 0 {
		errors = append(errors, fmt.Sprintf("MaxRequestSize must be positive, got: %d", cfg.MaxRequestSize))
	}

	if cfg.Kafka != nil && cfg.Kafka.Enabled() {
		if err := cfg.Kafka.Validate(); err != nil {
			errors = append(errors, err.Error())
		}
		if cfg.KafkaBookingsTopic == "" || cfg.KafkaReelsTopic == "" {
			errors = append(errors, "Kafka topics cannot be empty when KAFKA_BROKERS is set")
		}
	}

	if len(errors) > 0 {
		errMsg := "Configuration validation failed:\n"
		for i, err := range errors {
			errMsg += fmt.Sprintf("  %d. %s\n", i+1, err)
		}
		return fmt.Errorf("%s", errMsg)
	}

	return nil
}

func (cfg *Config) LogConfiguration() {
	kafkaBrokers := []string{}
	if cfg.Kafka != nil {
		kafkaBrokers = cfg.Kafka.Brokers
	}

	cfg.Log.Info("Configuration loaded successfully",
		"environment", cfg.Environment,
		"port", cfg.Port,
		"store_driver", cfg.StoreDriver,
		"mongo_uri", redactMongoURI(cfg.MongoURI),
		"mongo_database", cfg.MongoDatabaseName,
		"mongo_conn_timeout", cfg.MongoConnTimeout,
		"admin_token_set", cfg.AdminToken != "",
		"admin_token_header", cfg.AdminTokenHeader,
		"cors_origins", cfg.CORSOrigins,
		"cors_allow_credentials", cfg.CORSAllowCredentials,
		"rate_limit_requests", cfg.RateLimitRequests,
		"rate_limit_window", cfg.RateLimitWindow,
		"trusted_proxies", cfg.TrustedProxies,
		"request_timeout", cfg.RequestTimeout,
		"idempotency_ttl", cfg.IdempotencyTTL,
		"max_request_size", cfg.MaxRequestSize,
		"read_timeout", cfg.ReadTimeout,
		"write_timeout", cfg.WriteTimeout,
		"idle_timeout", cfg.IdleTimeout,
		"shutdown_timeout", cfg.ShutdownTimeout,
		"strict_status_transitions", cfg.StrictStatusTransitions,
		"export_timezone", cfg.ExportTimezone,
		"redis_enabled", cfg.RedisAddr != "",
		"reel_cache_ttl", cfg.ReelCacheTTL,
		"kafka_brokers", kafkaBrokers,
		"kafka_bookings_topic", cfg.KafkaBookingsTopic,
		"kafka_reels_topic", cfg.KafkaReelsTopic,
	)
}

func (cfg *Config) GracefulShutdown() {
	cfg.Client.GracefulShutdown()
}

// loadCORSOrigins mirrors the storefront's policy: outside production with no
// explicit list any origin may call the API without credentials.
func loadCORSOrigins(environment string) ([]string, bool) {
	raw := os.Getenv(EnvCORSOrigins)
	if raw == "" && environment != Production {
		return []string{"*"}, false
	}

	origins := append([]string{}, DefaultCORSOrigins...)
	for _, origin := range strings.Split(raw, ",") {
		o := strings.TrimSpace(origin)
		if o == "" || contains(origins, o) {
			continue
		}
		origins = append(origins, o)
	}
	return origins, true
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func contains(values []string, v string) bool {
	for _, existing := range values {
		if existing == v {
			return true
		}
	}
	return false
}

// cleanSecret strips whitespace and stray quotes left by dashboard-managed env files.
func cleanSecret(s string) string {
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, `"`, "")
	return strings.ReplaceAll(s, "'", "")
}

func redactMongoURI(uri string) string {
	credentialRegex := regexp.MustCompile(`(mongodb(\+srv)?://)[^:]+:[^@]+@`)
	return credentialRegex.ReplaceAllString(uri, "${1}***:***@")
}

func getEnvStr(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvNum(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return fallback
}
