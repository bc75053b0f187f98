package constants

// Pub/Sub providers accepted in pubSub.provider.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)
