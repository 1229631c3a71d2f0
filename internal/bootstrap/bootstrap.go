package bootstrap

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/Destoh2020/iesrform/internal/app/controllers"
	appMigrations "github.com/Destoh2020/iesrform/internal/app/migrations"
	appRepos "github.com/Destoh2020/iesrform/internal/app/repositories"
	appRoutes "github.com/Destoh2020/iesrform/internal/app/routes"
	appServices "github.com/Destoh2020/iesrform/internal/app/services"
	"github.com/Destoh2020/iesrform/internal/config"
	"github.com/Destoh2020/iesrform/internal/db"
	appMiddleware "github.com/Destoh2020/iesrform/internal/middleware"
	"github.com/Destoh2020/iesrform/internal/pkg/logger"
	"github.com/Destoh2020/iesrform/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	CourseService         *appServices.CourseService
	ApplicationService    *appServices.ApplicationService
	FormStatusService     *appServices.FormStatusService
	CourseController      *appControllers.CourseController
	ApplicationController *appControllers.ApplicationController
	FormStatusController  *appControllers.FormStatusController
	AdminMiddleware       *appMiddleware.AdminMiddleware
	Repos                 *appRepos.Repositories
	Logger                zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.LogLevel(strings.ToLower(cfg.Logging.Level))
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
	})

	lgr := log.Logger
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase establishes the database connection, runs migrations and
// seeds default data.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*pgxpool.Pool, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	dbPool := database.Pool

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := dbPool.Ping(ctx); err != nil {
		lgr.Error().Err(err).Msg("Failed to ping database")
		dbPool.Close()
		return nil, err
	}
	lgr.Info().Msg("Database connection successfully established.")

	lgr.Info().Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(dbPool)

	migrationsDir := "migrations"
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		lgr.Error().Str("path", migrationsDir).Msg("Migrations directory not found")
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	if err := migrator.MigrateFromDirectory(migrationsDir); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}

	lgr.Info().Msg("Database migrations successfully applied.")

	if err := seed.CreateDefaultData(context.Background(), dbPool, lgr); err != nil {
		// Seeding failures are logged but never block startup.
		lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
	}

	return dbPool, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(dbPool)

	deps.CourseService = appServices.NewCourseService(deps.Repos.CourseRepository)
	deps.ApplicationService = appServices.NewApplicationService(deps.Repos.ApplicationRepository, deps.Repos.CourseRepository)
	deps.FormStatusService = appServices.NewFormStatusService(deps.Repos.FormStatusRepository)

	deps.AdminMiddleware = appMiddleware.NewAdminMiddleware(cfg.Admin.Password, cfg.Admin.PasswordHash)

	deps.CourseController = appControllers.NewCourseController(deps.CourseService)
	deps.ApplicationController = appControllers.NewApplicationController(deps.ApplicationService, deps.FormStatusService)
	deps.FormStatusController = appControllers.NewFormStatusController(deps.FormStatusService)

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	router := gin.New()
	router.Use(appMiddleware.RequestLogger(), gin.Recovery())

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = cfg.AllowedOrigins()
	corsConfig.AllowCredentials = true
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, appMiddleware.AdminHeader)
	router.Use(cors.New(corsConfig))

	appRoutes.SetupSwagger(router)

	appRoutes.SetupRouter(router,
		deps.CourseController,
		deps.ApplicationController,
		deps.FormStatusController,
		deps.AdminMiddleware,
	)

	return router
}
