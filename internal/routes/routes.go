// Файл: internal/routes/routes.go
package routes

import (
	"github.com/go-redis/redis/v8"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"donation-system/internal/controllers"
	"donation-system/internal/repositories"
	"donation-system/internal/services"
	"donation-system/pkg/config"
	"donation-system/pkg/middleware"
	"donation-system/pkg/service"
)

type Loggers struct {
	Main *zap.Logger
	Auth *zap.Logger
	User *zap.Logger
}

func InitRouter(e *echo.Echo, dbConn *pgxpool.Pool, redisClient *redis.Client, jwtSvc service.JWTService, loggers *Loggers, cfg *config.Config) {
	loggers.Main.Info("InitRouter: начало создания маршрутов")

	// --- 0. ОБЩИЕ КОМПОНЕНТЫ ---
	api := e.Group("/api")
	authMW := middleware.NewAuthMiddleware(jwtSvc, loggers.Auth)
	cacheRepo := repositories.NewRedisCacheRepository(redisClient)

	// --- 1. РЕПОЗИТОРИИ ---
	userRepo := repositories.NewUserRepository(dbConn, loggers.User)
	committeeRepo := repositories.NewCommitteeRepository(dbConn, loggers.Main)
	contributionRepo := repositories.NewContributionRepository(dbConn, loggers.Main)
	landDonorRepo := repositories.NewLandDonorRepository(dbConn, loggers.Main)
	settingRepo := repositories.NewSettingRepository(dbConn, loggers.Main)

	// --- 2. СЕРВИСЫ ---
	authService := services.NewAuthService(userRepo, cacheRepo, loggers.Auth, &cfg.Auth)
	userService := services.NewUserService(userRepo, loggers.User)
	committeeService := services.NewCommitteeService(committeeRepo, loggers.Main)
	contributionService := services.NewContributionService(contributionRepo, loggers.Main)
	landDonorService := services.NewLandDonorService(landDonorRepo, loggers.Main)
	settingService := services.NewSettingService(settingRepo, cacheRepo, loggers.Main, cfg.Cache.SettingsTTL)
	dashboardService := services.NewDashboardService(contributionRepo, committeeRepo, landDonorRepo, loggers.Main)
	reportService := services.NewReportService(contributionRepo, loggers.Main)

	// --- 3. КОНТРОЛЛЕРЫ ---
	authController := controllers.NewAuthController(authService, jwtSvc, loggers.Auth)
	userController := controllers.NewUserController(userService, loggers.User)
	committeeController := controllers.NewCommitteeController(committeeService, loggers.Main)
	contributionController := controllers.NewContributionController(contributionService, loggers.Main)
	landDonorController := controllers.NewLandDonorController(landDonorService, loggers.Main)
	settingController := controllers.NewSettingController(settingService, loggers.Main)
	dashboardController := controllers.NewDashboardController(dashboardService, loggers.Main)
	reportController := controllers.NewReportController(reportService, loggers.Main)

	// --- 4. РОУТЕРЫ ---
	secureGroup := api.Group("", authMW.Auth)

	runAuthRouter(api, authController, authMW)
	runUserRouter(secureGroup, userController, authMW)
	runCommitteeRouter(secureGroup, committeeController, authMW)
	runContributionRouter(secureGroup, contributionController, authMW)
	runLandDonorRouter(secureGroup, landDonorController, authMW)
	runSettingRouter(secureGroup, settingController, authMW)
	runDashboardRouter(secureGroup, dashboardController, authMW)
	runReportRouter(secureGroup, reportController, authMW)

	loggers.Main.Info("InitRouter: создание маршрутов завершено")
}
