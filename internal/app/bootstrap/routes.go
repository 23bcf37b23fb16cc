// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"

	"github.com/dalemusser/waffle/config"
	authfeature "github.com/foliohub/foliohub/internal/app/features/auth"
	blogsfeature "github.com/foliohub/foliohub/internal/app/features/blogs"
	homefeature "github.com/foliohub/foliohub/internal/app/features/home"
	profilesfeature "github.com/foliohub/foliohub/internal/app/features/profiles"
	projectsfeature "github.com/foliohub/foliohub/internal/app/features/projects"
	statusfeature "github.com/foliohub/foliohub/internal/app/features/status"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"go.uber.org/zap"
)

// BuildHandler constructs the root HTTP handler for FolioHub.
//
// WAFFLE calls this after config, DB connection, schema setup, and Startup
// have completed. The API is consumed by browser frontends on arbitrary
// origins, so CORS is wide open: all origins, methods, and headers.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: false,
	}))

	homeHandler := homefeature.NewHandler(logger)
	r.Mount("/", homefeature.Routes(homeHandler))

	statusHandler := statusfeature.NewHandler(
		deps.MongoDatabase,
		appCfg.MongoURI != "",
		appCfg.MongoDatabase != "",
		logger,
	)
	r.Mount("/test", statusfeature.Routes(statusHandler))

	authHandler := authfeature.NewHandler(deps.MongoDatabase, logger)
	r.Mount("/auth", authfeature.Routes(authHandler))

	profilesHandler := profilesfeature.NewHandler(deps.MongoDatabase, logger)
	projectsHandler := projectsfeature.NewHandler(deps.MongoDatabase, logger)
	blogsHandler := blogsfeature.NewHandler(deps.MongoDatabase, logger)
	r.Mount("/profiles", profilesfeature.Routes(profilesHandler, projectsHandler, blogsHandler))

	return r, nil
}
