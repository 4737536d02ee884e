package routes

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/Trunday/kalfa-api/internal/controllers"
	"github.com/Trunday/kalfa-api/internal/services"
)

func runJobRouter(g *echo.Group, jobService services.JobServiceInterface, logger *zap.Logger) {
	jobCtrl := controllers.NewJobController(jobService, logger)

	g.GET("/isler", jobCtrl.GetJobs)
	g.GET("/isler/:id", jobCtrl.FindJob)
	g.POST("/isler", jobCtrl.CreateJob)
	g.PUT("/isler/:id", jobCtrl.UpdateJob)
	g.DELETE("/isler/:id", jobCtrl.DeleteJob)
}
