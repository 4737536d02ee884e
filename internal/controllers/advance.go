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

type AdvanceController struct {
	advanceService services.AdvanceServiceInterface
	logger         *zap.Logger
}

func NewAdvanceController(advanceService services.AdvanceServiceInterface, logger *zap.Logger) *AdvanceController {
	return &AdvanceController{advanceService: advanceService, logger: logger}
}

func (c *AdvanceController) GetAdvances(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	var userID uint64
	if v := ctx.QueryParam("user_id"); v != "" {
		parsed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return utils.ErrorResponse(ctx, apperrors.NewBadRequestError("Geçersiz kullanıcı ID."))
		}
		userID = parsed
	}

	advances, err := c.advanceService.GetAdvances(reqCtx, userID)
	if err != nil {
		c.logger.Error("advance list failed", zap.Error(err))
		return utils.ErrorResponse(ctx, err)
	}

	return utils.SuccessResponse(ctx, http.StatusOK, advances)
}

func (c *AdvanceController) FindAdvance(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewBadRequestError("Geçersiz avans ID."))
	}

	advance, err := c.advanceService.FindAdvance(reqCtx, id)
	if err != nil {
		c.logger.Error("advance lookup failed", zap.Error(err), zap.Uint64("id", id))
		return utils.ErrorResponse(ctx, err)
	}

	return utils.SuccessResponse(ctx, http.StatusOK, advance)
}

func (c *AdvanceController) CreateAdvance(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	var payload dto.CreateAdvanceDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewBadRequestError("Geçersiz istek gövdesi."))
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err)
	}

	advance, err := c.advanceService.CreateAdvance(reqCtx, payload)
	if err != nil {
		c.logger.Error("advance create failed", zap.Error(err))
		return utils.ErrorResponse(ctx, err)
	}

	return utils.SuccessResponse(ctx, http.StatusCreated, advance)
}

func (c *AdvanceController) UpdateAdvance(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewBadRequestError("Geçersiz avans ID."))
	}

	var payload dto.UpdateAdvanceDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewBadRequestError("Geçersiz istek gövdesi."))
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err)
	}

	advance, err := c.advanceService.UpdateAdvance(reqCtx, id, payload)
	if err != nil {
		c.logger.Error("advance update failed", zap.Error(err), zap.Uint64("id", id))
		return utils.ErrorResponse(ctx, err)
	}

	return utils.SuccessResponse(ctx, http.StatusOK, advance)
}

func (c *AdvanceController) DeleteAdvance(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewBadRequestError("Geçersiz avans ID."))
	}

	if err := c.advanceService.DeleteAdvance(reqCtx, id); err != nil {
		c.logger.Error("advance delete failed", zap.Error(err), zap.Uint64("id", id))
		return utils.ErrorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}
