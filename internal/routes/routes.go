package routes

import (
	"github.com/go-redis/redis/v8"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/Trunday/kalfa-api/internal/repositories"
	"github.com/Trunday/kalfa-api/internal/services"
	"github.com/Trunday/kalfa-api/pkg/config"
	"github.com/Trunday/kalfa-api/pkg/middleware"
	"github.com/Trunday/kalfa-api/pkg/service"
)

// InitRouter wires repositories, services and controllers onto the echo
// instance. Resources answer at the root (/calisanlar, /isler, ...) the way
// the operators' clients address them. Every resource group sits behind the
// bearer-token guard; only register, login and forgot-password stay open.
func InitRouter(e *echo.Echo, dbConn *pgxpool.Pool, redisClient *redis.Client, jwtSvc service.JWTService, logger *zap.Logger, cfg *config.Config) {
	root := e.Group("")
	authMW := middleware.NewAuthMiddleware(jwtSvc, logger)

	userRepo := repositories.NewUserRepository(dbConn, logger)
	jobRepo := repositories.NewJobRepository(dbConn, logger)
	advanceRepo := repositories.NewAdvanceRepository(dbConn, logger)
	paymentRepo := repositories.NewPaymentRepository(dbConn, logger)
	reportRepo := repositories.NewReportRepository(dbConn, logger)
	cacheRepo := repositories.NewRedisCacheRepository(redisClient)

	authService := services.NewAuthService(userRepo, cacheRepo, logger, &cfg.Auth)
	employeeService := services.NewEmployeeService(userRepo, logger)
	jobService := services.NewJobService(jobRepo, logger)
	advanceService := services.NewAdvanceService(advanceRepo, logger)
	paymentService := services.NewPaymentService(paymentRepo, logger)
	reportService := services.NewReportService(reportRepo, logger)

	secureGroup := root.Group("", authMW.Auth)

	runAuthRouter(root, secureGroup, authService, jwtSvc, logger)
	runEmployeeRouter(secureGroup, employeeService, logger)
	runJobRouter(secureGroup, jobService, logger)
	runAdvanceRouter(secureGroup, advanceService, logger)
	runPaymentRouter(secureGroup, paymentService, logger)
	runReportRouter(secureGroup, reportService, logger)

	logger.Info("routes registered")
}
