// internal/app/bootstrap/startup.go
package bootstrap

import (
	"context"

	teacherstore "github.com/dalemusser/campusboard/internal/app/store/teachers"
	"github.com/dalemusser/campusboard/internal/app/system/timeouts"
	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

// Startup runs one-time application initialization after DB connections and
// schema setup are complete, but before the HTTP handler is built. It applies
// timeout overrides from the environment and seeds the teacher directory
// when configured.
func Startup(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	if n := timeouts.ConfigureFromEnv(); n > 0 {
		logger.Info("timeouts configured from environment", zap.Int("count", n))
	}

	if appCfg.SeedTeacherUsername != "" {
		teachers := teacherstore.New(deps.MongoDatabase)
		if err := teachers.Ensure(ctx, appCfg.SeedTeacherUsername, appCfg.SeedTeacherName); err != nil {
			logger.Error("teacher seed failed",
				zap.String("username", appCfg.SeedTeacherUsername),
				zap.Error(err))
			return err
		}
		logger.Info("teacher directory seeded", zap.String("username", appCfg.SeedTeacherUsername))
	}

	return nil
}
