package client

import (
	"context"
	"errors"
	"time"

	"assetbook/pkg/docstore"
	"assetbook/pkg/docstore/firestoredb"
	"assetbook/pkg/docstore/memory"
	"assetbook/pkg/docstore/mongodb"
	"assetbook/pkg/events"
	"assetbook/pkg/kafka"
	kafka_config "assetbook/pkg/kafka/config"
	kafka_middleware "assetbook/pkg/kafka/middleware"
	"assetbook/pkg/logger"
	"assetbook/pkg/metrics"

	"github.com/redis/go-redis/v9"
)

// Client holds the long-lived connections of a service. Store is always wrapped with
// metrics and a per-call timeout.
type Client struct {
	Store  docstore.Store
	Redis  *redis.Client
	Events events.Publisher
}

func NewClient() *Client {
	return &Client{Events: events.NopPublisher{}}
}

func (c *Client) setStore(store docstore.Store, callTimeout time.Duration) {
	c.Store = docstore.WithTimeout(metrics.InstrumentStore(store), callTimeout)
}

func (c *Client) SetMongo(log *logger.Logger, mongoURI, database string, connTimeout, callTimeout time.Duration) {
	ctx, cancel := context.WithTimeout(context.Background(), connTimeout)
	defer cancel()

	store, err := mongodb.Connect(ctx, mongoURI, database)
	if err != nil {
		log.Fatal("Failed to connect to MongoDB", "error", err)
	}

	log.Info("Successfully connected to MongoDB", "database", database)
	c.setStore(store, callTimeout)
}

func (c *Client) SetFirestore(log *logger.Logger, opts firestoredb.Options, connTimeout, callTimeout time.Duration) {
	ctx, cancel := context.WithTimeout(context.Background(), connTimeout)
	defer cancel()

	store, err := firestoredb.Connect(ctx, opts)
	if err != nil {
		log.Fatal("Failed to connect to Firestore", "error", err, "project_id", opts.ProjectID)
	}

	log.Info("Successfully connected to Firestore", "project_id", opts.ProjectID)
	c.setStore(store, callTimeout)
}

func (c *Client) SetMemory(log *logger.Logger, callTimeout time.Duration) {
	log.Warn("Using in-memory document store; data is lost on restart")
	c.setStore(memory.NewStore(), callTimeout)
}

// SetRedis connects to redisURL. An empty URL leaves Redis unset.
func (c *Client) SetRedis(log *logger.Logger, redisURL string, connTimeout time.Duration) {
	if redisURL == "" {
		return
	}

	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		log.Fatal("Invalid Redis URL", "error", err)
	}

	rdb := redis.NewClient(opts)
	ctx, cancel := context.WithTimeout(context.Background(), connTimeout)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		log.Fatal("Failed to ping Redis", "error", err)
	}

	log.Info("Successfully connected to Redis", "addr", opts.Addr)
	c.Redis = rdb
}

// SetEvents starts the Kafka producer when brokers are configured and keeps the no-op
// publisher otherwise.
func (c *Client) SetEvents(log *logger.Logger, cfg *kafka_config.Config) {
	if cfg == nil || !cfg.Enabled() {
		log.Info("Kafka brokers not configured; domain events disabled")
		c.Events = events.NopPublisher{}
		return
	}

	producer, err := kafka.NewProducer(cfg, log)
	if err != nil {
		log.Fatal("Failed to create Kafka producer", "error", err)
	}
	if cfg.EnableMiddleware {
		producer.Use(kafka_middleware.LoggingProducerMiddleware(log))
		producer.Use(kafka_middleware.MetricsProducerMiddleware())
	}

	log.Info("Kafka producer ready",
		"brokers", cfg.Brokers,
		"topic", cfg.EventsTopic,
		"publish_timeout", cfg.PublishTimeout,
	)
	c.Events = events.NewAsyncPublisher(events.NewKafkaPublisher(producer), cfg.PublishTimeout, log)
}

func (c *Client) GracefulShutdown(ctx context.Context) error {
	var errs []error

	if c.Events != nil {
		if err := c.Events.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	if c.Redis != nil {
		if err := c.Redis.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	if c.Store != nil {
		if err := c.Store.Close(ctx); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}
