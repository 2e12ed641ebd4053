// Package constants holds configuration values shared across layers.
package constants

const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
	PubSubProviderAMQP   = "amqp"
)

const (
	DraftsDriverPostgres = "postgres"
	DraftsDriverSQLite   = "sqlite"
)
