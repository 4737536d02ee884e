package controllers

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/Trunday/kalfa-api/internal/dto"
	"github.com/Trunday/kalfa-api/internal/services"
	apperrors "github.com/Trunday/kalfa-api/pkg/errors"
	"github.com/Trunday/kalfa-api/pkg/utils"
)

type PaymentController struct {
	paymentService services.PaymentServiceInterface
	logger         *zap.Logger
}

func NewPaymentController(paymentService services.PaymentServiceInterface, logger *zap.Logger) *PaymentController {
	return &PaymentController{paymentService: paymentService, logger: logger}
}

// includeUser reads the ?include=user query switch.
func includeUser(ctx echo.Context) bool {
	return ctx.QueryParam("include") == "user"
}

func (c *PaymentController) GetPayments(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	payments, err := c.paymentService.GetPayments(reqCtx, includeUser(ctx))
	if err != nil {
		c.logger.Error("payment list failed", zap.Error(err))
		return utils.ErrorResponse(ctx, err)
	}

	return utils.SuccessResponse(ctx, http.StatusOK, payments)
}

func (c *PaymentController) FindPayment(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewBadRequestError("Geçersiz ödeme ID."))
	}

	payment, err := c.paymentService.FindPayment(reqCtx, id, includeUser(ctx))
	if err != nil {
		c.logger.Error("payment lookup failed", zap.Error(err), zap.Uint64("id", id))
		return utils.ErrorResponse(ctx, err)
	}

	return utils.SuccessResponse(ctx, http.StatusOK, payment)
}

func (c *PaymentController) CreatePayment(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	var payload dto.CreatePaymentDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewBadRequestError("Geçersiz istek gövdesi."))
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err)
	}

	payment, err := c.paymentService.CreatePayment(reqCtx, payload)
	if err != nil {
		c.logger.Error("payment create failed", zap.Error(err))
		return utils.ErrorResponse(ctx, err)
	}

	return utils.SuccessResponse(ctx, http.StatusCreated, payment)
}

func (c *PaymentController) UpdatePayment(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewBadRequestError("Geçersiz ödeme ID."))
	}

	var payload dto.UpdatePaymentDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewBadRequestError("Geçersiz istek gövdesi."))
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err)
	}

	payment, err := c.paymentService.UpdatePayment(reqCtx, id, payload)
	if err != nil {
		c.logger.Error("payment update failed", zap.Error(err), zap.Uint64("id", id))
		return utils.ErrorResponse(ctx, err)
	}

	return utils.SuccessResponse(ctx, http.StatusOK, payment)
}

func (c *PaymentController) DeletePayment(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewBadRequestError("Geçersiz ödeme ID."))
	}

	if err := c.paymentService.DeletePayment(reqCtx, id); err != nil {
		c.logger.Error("payment delete failed", zap.Error(err), zap.Uint64("id", id))
		return utils.ErrorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}
