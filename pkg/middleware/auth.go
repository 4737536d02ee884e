package middleware

import (
	"context"
	"strings"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/Trunday/kalfa-api/pkg/contextkeys"
	apperrors "github.com/Trunday/kalfa-api/pkg/errors"
	"github.com/Trunday/kalfa-api/pkg/service"
	"github.com/Trunday/kalfa-api/pkg/utils"
)

type AuthMiddleware struct {
	jwtService service.JWTService
	logger     *zap.Logger
}

func NewAuthMiddleware(jwtSvc service.JWTService, logger *zap.Logger) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtSvc,
		logger:     logger,
	}
}

// Auth resolves the bearer token to identity claims before the handler runs.
// Absent header answers 401; a present but unusable token answers 403.
func (m *AuthMiddleware) Auth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			m.logger.Warn("auth: empty Authorization header",
				zap.String("uri", c.Request().RequestURI))
			return utils.ErrorResponse(c, apperrors.ErrMissingToken)
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			m.logger.Warn("auth: malformed Authorization header")
			return utils.ErrorResponse(c, apperrors.ErrInvalidAuthHeader)
		}

		claims, err := m.jwtService.ValidateToken(parts[1])
		if err != nil {
			m.logger.Warn("auth: token validation failed", zap.Error(err))
			return utils.ErrorResponse(c, err)
		}

		ctx := context.WithValue(c.Request().Context(), contextkeys.ClaimsKey, claims)
		c.SetRequest(c.Request().WithContext(ctx))

		return next(c)
	}
}
