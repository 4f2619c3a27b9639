package config

import "time"

const (
	DefaultMongoURI          = "mongodb://localhost:27017"
	DefaultMongoDatabaseName = "staysearch"
	DefaultMongoConnTimeout  = 10 * time.Second

	DefaultPort     = "8080"
	DefaultLogLevel = "info"

	DefaultAccommodationTopic = "accommodation-events"
	DefaultAvailabilityTopic  = "availability-events"
	DefaultConsumerGroup      = "search-service"
	DefaultDLQTopic           = "dlq-search-service"

	DefaultRequestTimeout = 30 * time.Second

	DefaultReadTimeout      = 15 * time.Second
	DefaultWriteTimeout     = 15 * time.Second
	DefaultIdleTimeout      = 60 * time.Second
	DefaultShutdownTimeout  = 30 * time.Second
	DefaultMongoReadTimeout = 5 * time.Second
	DefaultMongoWriteTimout = 5 * time.Second
)
