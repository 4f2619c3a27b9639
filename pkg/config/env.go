package config

const (
	EnvMongoURI          = "MONGO_URI"
	EnvMongoDatabaseName = "MONGO_DATABASE_NAME"
	EnvMongoConnTimeout  = "MONGO_CONN_TIMEOUT"

	EnvPort     = "PORT"
	EnvLogLevel = "LOG_LEVEL"

	EnvAccommodationTopic = "ACCOMMODATION_EVENTS_TOPIC"
	EnvAvailabilityTopic  = "AVAILABILITY_EVENTS_TOPIC"
	EnvConsumerGroup      = "CONSUMER_GROUP"
	EnvDLQTopic           = "DLQ_TOPIC"

	EnvRequestTimeout = "REQUEST_TIMEOUT"

	EnvReadTimeout      = "READ_TIMEOUT"
	EnvWriteTimeout     = "WRITE_TIMEOUT"
	EnvIdleTimeout      = "IDLE_TIMEOUT"
	EnvShutdownTimeout  = "SHUTDOWN_TIMEOUT"
	EnvMongoReadTimeout = "MONGO_READ_TIMEOUT"
	EnvMongoWriteTimout = "MONGO_WRITE_TIMEOUT"
)
