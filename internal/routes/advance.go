package routes

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/Trunday/kalfa-api/internal/controllers"
	"github.com/Trunday/kalfa-api/internal/services"
)

func runAdvanceRouter(g *echo.Group, advanceService services.AdvanceServiceInterface, logger *zap.Logger) {
	advanceCtrl := controllers.NewAdvanceController(advanceService, logger)

	g.GET("/avanslar", advanceCtrl.GetAdvances)
	g.GET("/avanslar/:id", advanceCtrl.FindAdvance)
	g.POST("/avanslar", advanceCtrl.CreateAdvance)
	g.PUT("/avanslar/:id", advanceCtrl.UpdateAdvance)
	g.DELETE("/avanslar/:id", advanceCtrl.DeleteAdvance)
}
