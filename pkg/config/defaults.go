package config

import "time"

const (
	StoreMongo     = "mongo"
	StoreFirestore = "firestore"
	StoreMemory    = "memory"
)

const (
	DefaultEnvFile = ".env"

	DefaultPort      = "8000"
	DefaultLogLevel  = "info"
	DefaultLogFormat = "json"

	DefaultStoreBackend = StoreMongo
	DefaultStoreTimeout = 5 * time.Second

	DefaultMongoURI          = "mongodb://localhost:27017"
	DefaultMongoDatabaseName = "assetbook"
	DefaultMongoConnTimeout  = 10 * time.Second

	DefaultRateLimitRPS   = 10.0
	DefaultRateLimitBurst = 20

	// Below DefaultWriteTimeout so the timeout response can still be written
	DefaultRequestTimeout = 10 * time.Second
	DefaultIdempotencyTTL = 24 * time.Hour
	DefaultMaxRequestSize = 1 * 1024 * 1024 // 1MB

	DefaultReadTimeout     = 15 * time.Second
	DefaultWriteTimeout    = 15 * time.Second
	DefaultIdleTimeout     = 60 * time.Second
	DefaultShutdownTimeout = 30 * time.Second

	DefaultCORSAllowedOrigins   = "*"
	DefaultCORSAllowCredentials = true

	DefaultMetricsEnabled = true
)
