package routes

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/Trunday/kalfa-api/internal/controllers"
	"github.com/Trunday/kalfa-api/internal/services"
)

func runEmployeeRouter(g *echo.Group, employeeService services.EmployeeServiceInterface, logger *zap.Logger) {
	employeeCtrl := controllers.NewEmployeeController(employeeService, logger)

	g.GET("/calisanlar", employeeCtrl.GetEmployees)
	g.GET("/calisanlar/:id", employeeCtrl.FindEmployee)
	g.POST("/calisanlar", employeeCtrl.CreateEmployee)
	g.PUT("/calisanlar/:id", employeeCtrl.UpdateEmployee)
	g.DELETE("/calisanlar/:id", employeeCtrl.DeactivateEmployee)
}
