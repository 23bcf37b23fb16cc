// internal/app/bootstrap/config.go
package bootstrap

import (
	"fmt"

	"github.com/dalemusser/waffle/config"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"go.uber.org/zap"
)

// appConfigKeys defines the configuration keys for FolioHub, loaded via
// WAFFLE's config system:
//   - Config files: mongo_uri, mongo_database, …
//   - Environment variables: FOLIOHUB_MONGO_URI, FOLIOHUB_MONGO_DATABASE, …
//   - Command-line flags: --mongo_uri, --mongo_database, …
var appConfigKeys = []config.AppKey{
	{Name: "mongo_uri", Default: "", Desc: "MongoDB connection URI"},
	{Name: "mongo_database", Default: "", Desc: "MongoDB database name"},
	{Name: "mongo_max_pool_size", Default: 100, Desc: "MongoDB max connection pool size"},
	{Name: "mongo_min_pool_size", Default: 10, Desc: "MongoDB min connection pool size"},
}

// LoadConfig loads WAFFLE core config and app-specific config.
//
// mongo_uri and mongo_database intentionally have no defaults: the /test
// diagnostic endpoint reports whether each was actually provided, which
// only means something if absence is representable.
func LoadConfig(logger *zap.Logger) (*config.CoreConfig, AppConfig, error) {
	coreCfg, appValues, err := config.LoadWithAppConfig(logger, "FOLIOHUB", appConfigKeys)
	if err != nil {
		return nil, AppConfig{}, err
	}

	appCfg := AppConfig{
		MongoURI:         appValues.String("mongo_uri"),
		MongoDatabase:    appValues.String("mongo_database"),
		MongoMaxPoolSize: uint64(appValues.Int("mongo_max_pool_size")),
		MongoMinPoolSize: uint64(appValues.Int("mongo_min_pool_size")),
	}

	return coreCfg, appCfg, nil
}

// ValidateConfig enforces the config invariants before any connection is
// attempted.
func ValidateConfig(coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) error {
	if appCfg.MongoURI == "" {
		return fmt.Errorf("mongo_uri is required (set FOLIOHUB_MONGO_URI)")
	}
	if appCfg.MongoDatabase == "" {
		return fmt.Errorf("mongo_database is required (set FOLIOHUB_MONGO_DATABASE)")
	}
	if err := wafflemongo.ValidateURI(appCfg.MongoURI); err != nil {
		logger.Error("invalid MongoDB URI", zap.Error(err))
		return fmt.Errorf("invalid MongoDB URI: %w", err)
	}
	return nil
}
