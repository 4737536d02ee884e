package routes

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/Trunday/kalfa-api/internal/controllers"
	"github.com/Trunday/kalfa-api/internal/services"
	"github.com/Trunday/kalfa-api/pkg/service"
)

func runAuthRouter(open *echo.Group, secure *echo.Group, authService services.AuthServiceInterface, jwtSvc service.JWTService, logger *zap.Logger) {
	authCtrl := controllers.NewAuthController(authService, jwtSvc, logger)

	open.POST("/auth/register", authCtrl.Register)
	open.POST("/auth/login", authCtrl.Login)
	open.POST("/auth/forgot-password", authCtrl.ForgotPassword)

	secure.GET("/auth/profile", authCtrl.GetProfile)
}
