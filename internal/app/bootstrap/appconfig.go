// internal/app/bootstrap/appconfig.go
package bootstrap

// AppConfig holds service-specific configuration for FolioHub.
//
// Values come from environment variables (FOLIOHUB_*), configuration
// files, or command-line flags, loaded in LoadConfig. WAFFLE's CoreConfig
// covers the framework-level settings (ports, TLS, log level, body
// limits); everything specific to this service lives here.
type AppConfig struct {
	// MongoDB connection configuration
	MongoURI      string // MongoDB connection string (e.g. mongodb://localhost:27017)
	MongoDatabase string // database name within MongoDB

	MongoMaxPoolSize uint64
	MongoMinPoolSize uint64
}
