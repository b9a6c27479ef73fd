package kafka_config

import "time"

const (
	// Empty means event publishing is disabled
	DefaultKafkaBrokers = ""

	// Producer defaults
	DefaultProducerMaxAttempts  = 3
	DefaultProducerBatchTimeout = 10 * time.Millisecond
	DefaultProducerRequireAcks  = -1 // Require all replicas
	DefaultProducerCompression  = "snappy"
	DefaultProducerAsync        = false
	DefaultPublishTimeout       = 10 * time.Second

	DefaultEventsTopic    = "assetbook.events"
	DefaultEventsDLQTopic = ""

	// Middleware defaults
	DefaultEnableMiddleware = true
)
