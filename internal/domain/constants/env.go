package constants

// Environments accepted in env.env.
const (
	EnvDevelop    = "development"
	EnvStaging    = "staging"
	EnvProduction = "production"
)
