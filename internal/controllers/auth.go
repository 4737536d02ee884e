package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/Trunday/kalfa-api/internal/dto"
	"github.com/Trunday/kalfa-api/internal/services"
	apperrors "github.com/Trunday/kalfa-api/pkg/errors"
	"github.com/Trunday/kalfa-api/pkg/service"
	"github.com/Trunday/kalfa-api/pkg/utils"
)

type AuthController struct {
	authService services.AuthServiceInterface
	jwtService  service.JWTService
	logger      *zap.Logger
}

func NewAuthController(
	authService services.AuthServiceInterface,
	jwtService service.JWTService,
	logger *zap.Logger,
) *AuthController {
	return &AuthController{
		authService: authService,
		jwtService:  jwtService,
		logger:      logger,
	}
}

func (c *AuthController) Register(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	var payload dto.RegisterDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewBadRequestError("Geçersiz istek gövdesi."))
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err)
	}

	user, err := c.authService.Register(reqCtx, payload)
	if err != nil {
		c.logger.Error("register failed", zap.Error(err), zap.String("username", payload.Username))
		return utils.ErrorResponse(ctx, err)
	}

	token, err := c.jwtService.GenerateToken(user.ID, user.Username, user.Role)
	if err != nil {
		c.logger.Error("token generation failed after register", zap.Error(err))
		return utils.ErrorResponse(ctx, err)
	}

	return utils.SuccessResponse(ctx, http.StatusCreated, dto.AuthResponseDTO{
		Message: "Kayıt başarılı.",
		Token:   token,
		User:    user,
	})
}

func (c *AuthController) Login(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	var payload dto.LoginDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewBadRequestError("Geçersiz istek gövdesi."))
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err)
	}

	user, err := c.authService.Login(reqCtx, payload)
	if err != nil {
		c.logger.Warn("login failed", zap.Error(err), zap.String("login", payload.Username))
		return utils.ErrorResponse(ctx, err)
	}

	token, err := c.jwtService.GenerateToken(user.ID, user.Username, user.Role)
	if err != nil {
		c.logger.Error("token generation failed after login", zap.Error(err))
		return utils.ErrorResponse(ctx, err)
	}

	return utils.SuccessResponse(ctx, http.StatusOK, dto.AuthResponseDTO{
		Message: "Giriş başarılı.",
		Token:   token,
		User:    user,
	})
}

func (c *AuthController) GetProfile(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	claims, err := utils.GetClaimsFromCtx(reqCtx)
	if err != nil {
		return utils.ErrorResponse(ctx, err)
	}

	user, err := c.authService.GetProfile(reqCtx, claims.UserID)
	if err != nil {
		c.logger.Error("profile lookup failed", zap.Error(err), zap.Uint64("id", claims.UserID))
		return utils.ErrorResponse(ctx, err)
	}

	return utils.SuccessResponse(ctx, http.StatusOK, user)
}

func (c *AuthController) ForgotPassword(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	var payload dto.ForgotPasswordDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewBadRequestError("Geçersiz istek gövdesi."))
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err)
	}

	if err := c.authService.ForgotPassword(reqCtx, payload); err != nil {
		c.logger.Error("forgot-password failed", zap.Error(err))
		return utils.ErrorResponse(ctx, err)
	}

	return utils.SuccessResponse(ctx, http.StatusOK, utils.MessageResponse{
		Message: "Eğer hesap mevcutsa sıfırlama talimatları gönderildi.",
	})
}
