package bootstrap

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/umut/campusgate/internal/app/controllers"
	appMigrations "github.com/umut/campusgate/internal/app/migrations"
	appRepos "github.com/umut/campusgate/internal/app/repositories"
	appRoutes "github.com/umut/campusgate/internal/app/routes"
	appServices "github.com/umut/campusgate/internal/app/services"
	"github.com/umut/campusgate/internal/config"
	"github.com/umut/campusgate/internal/db"
	appMiddleware "github.com/umut/campusgate/internal/middleware"
	pkgAuth "github.com/umut/campusgate/internal/pkg/auth"
	"github.com/umut/campusgate/internal/pkg/logger"
	"github.com/umut/campusgate/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	AuthService           appServices.AuthService
	StudentService        appServices.StudentService
	MaintenanceService    appServices.MaintenanceService
	ToolService           appServices.ToolService
	CampusService         appServices.CampusService
	CollegeService        appServices.CollegeService
	MetricsService        appServices.MetricsService
	AuthController        *appControllers.AuthController
	StudentController     *appControllers.StudentController
	MaintenanceController *appControllers.MaintenanceController
	ToolController        *appControllers.ToolController
	CampusController      *appControllers.CampusController
	CollegeController     *appControllers.CollegeController
	MetricsController     *appControllers.MetricsController
	AuthMiddleware        *appMiddleware.AuthMiddleware
	Repos                 *appRepos.Repositories
	JWTService            *pkgAuth.JWTService
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

// SetupDatabase establishes the database connection and runs migrations.
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
		// Seeding failures are logged but do not block startup.
		lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
	}

	return dbPool, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(dbPool)

	accessTokenExp, err := time.ParseDuration(cfg.JWT.AccessTokenExpiration)
	if err != nil {
		accessTokenExp = time.Hour
	}
	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:      cfg.JWT.Secret,
		AccessTokenExp: accessTokenExp,
		TokenIssuer:    cfg.JWT.Issuer,
	})

	deps.AuthService = appServices.NewAuthService(deps.Repos.UserRepository, deps.JWTService, lgr)
	deps.StudentService = appServices.NewStudentService(deps.Repos.StudentRepository, lgr)
	deps.MaintenanceService = appServices.NewMaintenanceService(deps.Repos.MaintenanceRepository, deps.Repos.ToolRepository, lgr)
	deps.ToolService = appServices.NewToolService(deps.Repos.ToolRepository, lgr)
	deps.CampusService = appServices.NewCampusService(
		deps.Repos.ClubRepository,
		deps.Repos.InstrumentRepository,
		deps.Repos.ClassroomRepository,
		lgr,
	)
	deps.CollegeService = appServices.NewCollegeService(deps.Repos.CollegeRepository, lgr)
	deps.MetricsService = appServices.NewMetricsService(deps.Repos.MetricsRepository, lgr)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService)

	deps.AuthController = appControllers.NewAuthController(deps.AuthService)
	deps.StudentController = appControllers.NewStudentController(deps.StudentService)
	deps.MaintenanceController = appControllers.NewMaintenanceController(deps.MaintenanceService)
	deps.ToolController = appControllers.NewToolController(deps.ToolService)
	deps.CampusController = appControllers.NewCampusController(deps.CampusService)
	deps.CollegeController = appControllers.NewCollegeController(deps.CollegeService)
	deps.MetricsController = appControllers.NewMetricsController(deps.MetricsService)

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
	router.Use(appMiddleware.RequestID())
	router.Use(appMiddleware.RequestLogger())
	router.Use(gin.Recovery())

	appRoutes.SetupRouter(router,
		deps.AuthController,
		deps.StudentController,
		deps.MaintenanceController,
		deps.ToolController,
		deps.CampusController,
		deps.CollegeController,
		deps.MetricsController,
		deps.AuthMiddleware,
	)

	return router
}
