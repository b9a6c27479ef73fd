package config

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"regexp"
	"strconv"
	"strings"
	"time"

	"assetbook/pkg/client"
	"assetbook/pkg/docstore/firestoredb"
	kafka_config "assetbook/pkg/kafka/config"
	"assetbook/pkg/logger"
	"assetbook/pkg/middleware"

	"github.com/joho/godotenv"
)

type Config struct {
	Port string

	StoreBackend string
	StoreTimeout time.Duration

	MongoURI          string
	MongoDatabaseName string
	MongoConnTimeout  time.Duration

	Firestore firestoredb.Options

	RedisURL string

	RateLimitRPS   float64
	RateLimitBurst int
	TrustedProxies []string

	RequestTimeout time.Duration
	IdempotencyTTL time.Duration
	MaxRequestSize int64

	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration

	CORSAllowedOrigins   []string
	CORSAllowCredentials bool

	MetricsEnabled bool

	LogLevel  string
	LogFormat string

	Kafka *kafka_config.Config

	Log    *logger.Logger
	Client *client.Client
}

// Load reads the environment (after applying the optional env file), validates it and
// exits through Log.Fatal on any problem.
func Load(serviceName string) *Config {
	envErr := loadEnvFile()

	cfg, err := FromEnv()
	cfg.Log = logger.New(logger.Config{
		Level:     cfg.LogLevel,
		Format:    cfg.LogFormat,
		AddSource: true,
		Service:   serviceName,
	})
	cfg.Client = client.NewClient()

	if envErr != nil {
		cfg.Log.Warn("Failed to load env file", "error", envErr)
	}
	if err != nil {
		cfg.Log.Fatal(err.Error())
	}
	cfg.LogConfiguration()
	return cfg
}

func loadEnvFile() error {
	path := getEnvStr(EnvFile, DefaultEnvFile)
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}

// FromEnv builds and validates a Config from the process environment. Log and Client
// are left for the caller.
func FromEnv() (*Config, error) {
	kafkaCfg, kafkaErr := kafka_config.Load()

	cfg := &Config{
		Port: getEnvStr(EnvPort, DefaultPort),

		StoreBackend: strings.ToLower(getEnvStr(EnvStoreBackend, DefaultStoreBackend)),
		StoreTimeout: getEnvDuration(EnvStoreTimeout, DefaultStoreTimeout),

		MongoURI:          getEnvStr(EnvMongoURI, DefaultMongoURI),
		MongoDatabaseName: getEnvStr(EnvMongoDatabaseName, DefaultMongoDatabaseName),
		MongoConnTimeout:  getEnvDuration(EnvMongoConnTimeout, DefaultMongoConnTimeout),

		Firestore: firestoredb.Options{
			ProjectID:       getEnvStr(EnvFirebaseProjectID, ""),
			CredentialsFile: getEnvStr(EnvFirebaseCredentialsFile, ""),
			ServiceAccount: firestoredb.ServiceAccount{
				ProjectID:         getEnvStr(EnvFirebaseProjectID, ""),
				PrivateKeyID:      getEnvStr(EnvFirebasePrivateKeyID, ""),
				PrivateKey:        getEnvStr(EnvFirebasePrivateKey, ""),
				ClientEmail:       getEnvStr(EnvFirebaseClientEmail, ""),
				ClientID:          getEnvStr(EnvFirebaseClientID, ""),
				ClientX509CertURL: getEnvStr(EnvFirebaseClientX509CertURL, ""),
			},
		},

		RedisURL: getEnvStr(EnvRedisURL, ""),

		RateLimitRPS:   getEnvFloat(EnvRateLimitRPS, DefaultRateLimitRPS),
		RateLimitBurst: getEnvNum(EnvRateLimitBurst, DefaultRateLimitBurst),
		TrustedProxies: splitList(getEnvStr(EnvTrustedProxies, "")),

		RequestTimeout: getEnvDuration(EnvRequestTimeout, DefaultRequestTimeout),
		IdempotencyTTL: getEnvDuration(EnvIdempotencyTTL, DefaultIdempotencyTTL),
		MaxRequestSize: int64(getEnvNum(EnvMaxRequestSize, DefaultMaxRequestSize)),

		ReadTimeout:     getEnvDuration(EnvReadTimeout, DefaultReadTimeout),
		WriteTimeout:    getEnvDuration(EnvWriteTimeout, DefaultWriteTimeout),
		IdleTimeout:     getEnvDuration(EnvIdleTimeout, DefaultIdleTimeout),
		ShutdownTimeout: getEnvDuration(EnvShutdownTimeout, DefaultShutdownTimeout),

		CORSAllowedOrigins:   splitList(getEnvStr(EnvCORSAllowedOrigins, DefaultCORSAllowedOrigins)),
		CORSAllowCredentials: getEnvBool(EnvCORSAllowCredentials, DefaultCORSAllowCredentials),

		MetricsEnabled: getEnvBool(EnvMetricsEnabled, DefaultMetricsEnabled),

		LogLevel:  strings.ToLower(getEnvStr(EnvLogLevel, DefaultLogLevel)),
		LogFormat: strings.ToLower(getEnvStr(EnvLogFormat, DefaultLogFormat)),

		Kafka: kafkaCfg,
	}

	err := cfg.Validate()
	if kafkaErr != nil {
		err = errors.Join(err, kafkaErr)
	}
	return cfg, err
}

// SetStore connects the backend named by StoreBackend.
func (cfg *Config) SetStore() {
	switch cfg.StoreBackend {
	case StoreFirestore:
		cfg.Client.SetFirestore(cfg.Log, cfg.Firestore, cfg.MongoConnTimeout, cfg.StoreTimeout)
	case StoreMemory:
		cfg.Client.SetMemory(cfg.Log, cfg.StoreTimeout)
	default:
		cfg.Client.SetMongo(cfg.Log, cfg.MongoURI, cfg.MongoDatabaseName, cfg.MongoConnTimeout, cfg.StoreTimeout)
	}
}

func (cfg *Config) SetRedis() {
	cfg.Client.SetRedis(cfg.Log, cfg.RedisURL, cfg.MongoConnTimeout)
}

func (cfg *Config) SetEvents() {
	cfg.Client.SetEvents(cfg.Log, cfg.Kafka)
}

func (cfg *Config) Validate() error {
	var errors []string

	if port, err := strconv.Atoi(cfg.Port); err != nil || port < 1 || port > 65535 {
		errors = append(errors, fmt.Sprintf("Port must be between 1 and 65535, got: %s", cfg.Port))
	}

	switch cfg.StoreBackend {
	case StoreMongo:
		if cfg.MongoURI == "" {
			errors = append(errors, "MongoURI cannot be empty")
		} else if len(cfg.MongoURI) < 10 || !regexp.MustCompile(`^mongodb(\+srv)?://`).MatchString(cfg.MongoURI) {
			errors = append(errors, fmt.Sprintf("MongoURI must start with 'mongodb://' or 'mongodb+srv://', got: %s", redactMongoURI(cfg.MongoURI)))
		}
		if cfg.MongoDatabaseName == "" {
			errors = append(errors, "MongoDatabaseName cannot be empty")
		}
	case StoreFirestore:
		if cfg.Firestore.ProjectID == "" {
			errors = append(errors, "FirebaseProjectID cannot be empty when STORE_BACKEND=firestore")
		}
		if cfg.Firestore.CredentialsFile == "" && !cfg.Firestore.ServiceAccount.Empty() {
			if _, err := cfg.Firestore.ServiceAccount.JSON(); err != nil {
				errors = append(errors, fmt.Sprintf("Firebase service account is incomplete: %v", err))
			}
		}
	case StoreMemory:
	default:
		errors = append(errors, fmt.Sprintf("StoreBackend must be one of %s, %s, %s, got: %s", StoreMongo, StoreFirestore, StoreMemory, cfg.StoreBackend))
	}

	if cfg.RedisURL != "" && !regexp.MustCompile(`^rediss?://`).MatchString(cfg.RedisURL) {
		errors = append(errors, "RedisURL must start with 'redis://' or 'rediss://'")
	}

	if cfg.StoreTimeout <= 0 {
		errors = append(errors, fmt.Sprintf("StoreTimeout must be positive, got: %s", cfg.StoreTimeout))
	}
	if cfg.MongoConnTimeout <= 0 {
		errors = append(errors, fmt.Sprintf("MongoConnTimeout must be positive, got: %s", cfg.MongoConnTimeout))
	}
	if cfg.RequestTimeout <= 0 {
		errors = append(errors, fmt.Sprintf("RequestTimeout must be positive, got: %s", cfg.RequestTimeout))
	}
	if cfg.RequestTimeout > 0 && cfg.WriteTimeout > 0 && cfg.RequestTimeout >= cfg.WriteTimeout {
		errors = append(errors, fmt.Sprintf("RequestTimeout (%s) must be shorter than WriteTimeout (%s)", cfg.RequestTimeout, cfg.WriteTimeout))
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

	if cfg.RateLimitRPS <= 0 {
		errors = append(errors, fmt.Sprintf("RateLimitRPS must be positive, got: %g", cfg.RateLimitRPS))
	}
	if cfg.RateLimitBurst <= 0 {
		errors = append(errors, fmt.Sprintf("RateLimitBurst must be positive, got: %d", cfg.RateLimitBurst))
	}
	if cfg.MaxRequestSize <= 0 {
		errors = append(errors, fmt.Sprintf("MaxRequestSize must be positive, got: %d", cfg.MaxRequestSize))
	}

	if _, err := middleware.ParseTrustedProxies(cfg.TrustedProxies); err != nil {
		errors = append(errors, fmt.Sprintf("TrustedProxies: %v", err))
	}

	if len(cfg.CORSAllowedOrigins) == 0 {
		errors = append(errors, "CORSAllowedOrigins cannot be empty")
	}

	switch cfg.LogFormat {
	case logger.JSON, logger.TEXT:
	default:
		errors = append(errors, fmt.Sprintf("LogFormat must be json or text, got: %s", cfg.LogFormat))
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
	cfg.Log.Info("Configuration loaded successfully",
		"port", cfg.Port,
		"store_backend", cfg.StoreBackend,
		"store_timeout", cfg.StoreTimeout,
		"mongo_uri", redactMongoURI(cfg.MongoURI),
		"mongo_database", cfg.MongoDatabaseName,
		"mongo_conn_timeout", cfg.MongoConnTimeout,
		"firebase_project_id", cfg.Firestore.ProjectID,
		"firebase_credentials_file_set", cfg.Firestore.CredentialsFile != "",
		"firebase_private_key_set", cfg.Firestore.ServiceAccount.PrivateKey != "",
		"redis_set", cfg.RedisURL != "",
		"rate_limit_rps", cfg.RateLimitRPS,
		"rate_limit_burst", cfg.RateLimitBurst,
		"trusted_proxies", cfg.TrustedProxies,
		"request_timeout", cfg.RequestTimeout,
		"idempotency_ttl", cfg.IdempotencyTTL,
		"max_request_size", cfg.MaxRequestSize,
		"read_timeout", cfg.ReadTimeout,
		"write_timeout", cfg.WriteTimeout,
		"idle_timeout", cfg.IdleTimeout,
		"shutdown_timeout", cfg.ShutdownTimeout,
		"cors_allowed_origins", cfg.CORSAllowedOrigins,
		"cors_allow_credentials", cfg.CORSAllowCredentials,
		"metrics_enabled", cfg.MetricsEnabled,
		"log_level", cfg.LogLevel,
	)
	if cfg.Kafka != nil {
		cfg.Kafka.LogConfiguration(cfg.Log.Info)
	}
}

func redactMongoURI(uri string) string {
	credentialRegex := regexp.MustCompile(`(mongodb(\+srv)?://)[^:]+:[^@]+@`)
	return credentialRegex.ReplaceAllString(uri, "${1}***:***@")
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
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

func getEnvFloat(key string, fallback float64) float64 {
	if value := os.Getenv(key); value != "" {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
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

func (cfg *Config) GracefulShutdown(ctx context.Context) {
	if err := cfg.Client.GracefulShutdown(ctx); err != nil {
		cfg.Log.Error("Failed to release clients", "error", err)
	}
}
