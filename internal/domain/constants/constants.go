// Package constants contains string constants shared across layers.
package constants

// Deployment environments.
const (
	EnvDevelop    = "develop"
	EnvProduction = "production"
)

// Pub/Sub provider names accepted by config.PubSub.Provider.
const (
	PubSubProviderLocal    = "local"
	PubSubProviderGoogle   = "google"
	PubSubProviderKafka    = "kafka"
	PubSubProviderRabbitMQ = "rabbitmq"
)

// Court index provider names accepted by config.CourtIndex.Provider.
const (
	CourtIndexProviderMemory = "memory"
	CourtIndexProviderRedis  = "redis"
)
