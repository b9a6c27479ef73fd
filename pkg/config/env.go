package config

const (
	EnvFile = "ENV_FILE"

	EnvPort      = "PORT"
	EnvLogLevel  = "LOG_LEVEL"
	EnvLogFormat = "LOG_FORMAT"

	EnvStoreBackend = "STORE_BACKEND"
	EnvStoreTimeout = "STORE_TIMEOUT"

	EnvMongoURI          = "MONGO_URI"
	EnvMongoDatabaseName = "MONGO_DATABASE_NAME"
	EnvMongoConnTimeout  = "MONGO_CONN_TIMEOUT"

	EnvFirebaseProjectID         = "FIREBASE_PROJECT_ID"
	EnvFirebaseCredentialsFile   = "FIREBASE_CREDENTIALS_FILE"
	EnvFirebasePrivateKeyID      = "FIREBASE_PRIVATE_KEY_ID"
	EnvFirebasePrivateKey        = "FIREBASE_PRIVATE_KEY"
	EnvFirebaseClientEmail       = "FIREBASE_CLIENT_EMAIL"
	EnvFirebaseClientID          = "FIREBASE_CLIENT_ID"
	EnvFirebaseClientX509CertURL = "FIREBASE_CLIENT_X509_CERT_URL"

	EnvRedisURL = "REDIS_URL"

	EnvRateLimitRPS   = "RATE_LIMIT_RPS"
	EnvRateLimitBurst = "RATE_LIMIT_BURST"
	EnvTrustedProxies = "TRUSTED_PROXIES"

	EnvRequestTimeout = "REQUEST_TIMEOUT"
	EnvIdempotencyTTL = "IDEMPOTENCY_TTL"
	EnvMaxRequestSize = "MAX_REQUEST_SIZE"

	EnvReadTimeout     = "READ_TIMEOUT"
	EnvWriteTimeout    = "WRITE_TIMEOUT"
	EnvIdleTimeout     = "IDLE_TIMEOUT"
	EnvShutdownTimeout = "SHUTDOWN_TIMEOUT"

	EnvCORSAllowedOrigins   = "CORS_ALLOWED_ORIGINS"
	EnvCORSAllowCredentials = "CORS_ALLOW_CREDENTIALS"

	EnvMetricsEnabled = "METRICS_ENABLED"
)
