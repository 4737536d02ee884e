package routes

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/Trunday/kalfa-api/internal/controllers"
	"github.com/Trunday/kalfa-api/internal/services"
)

func runPaymentRouter(g *echo.Group, paymentService services.PaymentServiceInterface, logger *zap.Logger) {
	paymentCtrl := controllers.NewPaymentController(paymentService, logger)

	g.GET("/odeme", paymentCtrl.GetPayments)
	g.GET("/odeme/:id", paymentCtrl.FindPayment)
	g.POST("/odeme", paymentCtrl.CreatePayment)
	g.PUT("/odeme/:id", paymentCtrl.UpdatePayment)
	g.DELETE("/odeme/:id", paymentCtrl.DeletePayment)
}
