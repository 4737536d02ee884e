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

type JobController struct {
	jobService services.JobServiceInterface
	logger     *zap.Logger
}

func NewJobController(jobService services.JobServiceInterface, logger *zap.Logger) *JobController {
	return &JobController{jobService: jobService, logger: logger}
}

func (c *JobController) GetJobs(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	// Unknown query keys are dropped by the repository whitelist.
	filters := map[string]string{}
	for _, key := range []string{"user_id", "status", "project_name"} {
		if v := ctx.QueryParam(key); v != "" {
			filters[key] = v
		}
	}

	jobs, err := c.jobService.GetJobs(reqCtx, filters)
	if err != nil {
		c.logger.Error("job list failed", zap.Error(err))
		return utils.ErrorResponse(ctx, err)
	}

	return utils.SuccessResponse(ctx, http.StatusOK, jobs)
}

func (c *JobController) FindJob(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewBadRequestError("Geçersiz iş ID."))
	}

	job, err := c.jobService.FindJob(reqCtx, id)
	if err != nil {
		c.logger.Error("job lookup failed", zap.Error(err), zap.Uint64("id", id))
		return utils.ErrorResponse(ctx, err)
	}

	return utils.SuccessResponse(ctx, http.StatusOK, job)
}

func (c *JobController) CreateJob(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	var payload dto.CreateJobDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewBadRequestError("Geçersiz istek gövdesi."))
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err)
	}

	job, err := c.jobService.CreateJob(reqCtx, payload)
	if err != nil {
		c.logger.Error("job create failed", zap.Error(err))
		return utils.ErrorResponse(ctx, err)
	}

	return utils.SuccessResponse(ctx, http.StatusCreated, job)
}

func (c *JobController) UpdateJob(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewBadRequestError("Geçersiz iş ID."))
	}

	var payload dto.UpdateJobDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewBadRequestError("Geçersiz istek gövdesi."))
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err)
	}

	job, err := c.jobService.UpdateJob(reqCtx, id, payload)
	if err != nil {
		c.logger.Error("job update failed", zap.Error(err), zap.Uint64("id", id))
		return utils.ErrorResponse(ctx, err)
	}

	return utils.SuccessResponse(ctx, http.StatusOK, job)
}

func (c *JobController) DeleteJob(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewBadRequestError("Geçersiz iş ID."))
	}

	if err := c.jobService.DeleteJob(reqCtx, id); err != nil {
		c.logger.Error("job delete failed", zap.Error(err), zap.Uint64("id", id))
		return utils.ErrorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}
