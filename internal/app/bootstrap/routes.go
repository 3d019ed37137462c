// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"

	announcementsfeature "github.com/dalemusser/campusboard/internal/app/features/announcements"
	healthfeature "github.com/dalemusser/campusboard/internal/app/features/health"
	"github.com/dalemusser/campusboard/internal/app/system/requestlog"
	"github.com/dalemusser/waffle/config"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// BuildHandler constructs the root HTTP handler (router) for this WAFFLE app.
//
// WAFFLE calls this after configuration, DB connections, schema setup, and
// any Startup hooks have completed. Campusboard mounts the health endpoint
// and the announcements API behind request logging.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	r := chi.NewRouter()

	r.Use(requestlog.Middleware(logger))

	// Health check endpoint for load balancers and orchestrators
	healthHandler := healthfeature.NewHandler(deps.MongoClient, logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))

	// Announcement lifecycle API
	annHandler := announcementsfeature.NewHandler(deps.MongoDatabase, logger)
	r.Mount("/announcements", announcementsfeature.Routes(annHandler))

	return r, nil
}
