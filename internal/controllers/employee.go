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

type EmployeeController struct {
	employeeService services.EmployeeServiceInterface
	logger          *zap.Logger
}

func NewEmployeeController(employeeService services.EmployeeServiceInterface, logger *zap.Logger) *EmployeeController {
	return &EmployeeController{employeeService: employeeService, logger: logger}
}

func (c *EmployeeController) GetEmployees(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	employees, err := c.employeeService.GetEmployees(reqCtx)
	if err != nil {
		c.logger.Error("employee list failed", zap.Error(err))
		return utils.ErrorResponse(ctx, err)
	}

	return utils.SuccessResponse(ctx, http.StatusOK, employees)
}

func (c *EmployeeController) FindEmployee(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewBadRequestError("Geçersiz çalışan ID."))
	}

	employee, err := c.employeeService.FindEmployee(reqCtx, id)
	if err != nil {
		c.logger.Error("employee lookup failed", zap.Error(err), zap.Uint64("id", id))
		return utils.ErrorResponse(ctx, err)
	}

	return utils.SuccessResponse(ctx, http.StatusOK, employee)
}

func (c *EmployeeController) CreateEmployee(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	var payload dto.CreateEmployeeDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewBadRequestError("Geçersiz istek gövdesi."))
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err)
	}

	employee, err := c.employeeService.CreateEmployee(reqCtx, payload)
	if err != nil {
		c.logger.Error("employee create failed", zap.Error(err), zap.String("username", payload.Username))
		return utils.ErrorResponse(ctx, err)
	}

	return utils.SuccessResponse(ctx, http.StatusCreated, employee)
}

func (c *EmployeeController) UpdateEmployee(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewBadRequestError("Geçersiz çalışan ID."))
	}

	var payload dto.UpdateEmployeeDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewBadRequestError("Geçersiz istek gövdesi."))
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err)
	}

	employee, err := c.employeeService.UpdateEmployee(reqCtx, id, payload)
	if err != nil {
		c.logger.Error("employee update failed", zap.Error(err), zap.Uint64("id", id))
		return utils.ErrorResponse(ctx, err)
	}

	return utils.SuccessResponse(ctx, http.StatusOK, employee)
}

func (c *EmployeeController) DeactivateEmployee(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewBadRequestError("Geçersiz çalışan ID."))
	}

	if err := c.employeeService.DeactivateEmployee(reqCtx, id); err != nil {
		c.logger.Error("employee deactivate failed", zap.Error(err), zap.Uint64("id", id))
		return utils.ErrorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}
