package controllers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Trunday/kalfa-api/internal/controllers"
	"github.com/Trunday/kalfa-api/internal/dto"
	"github.com/Trunday/kalfa-api/internal/entities"
	apperrors "github.com/Trunday/kalfa-api/pkg/errors"
	"github.com/Trunday/kalfa-api/pkg/service"
	"github.com/Trunday/kalfa-api/pkg/utils"
)

type fakeAuthService struct {
	user     *entities.User
	loginErr error
}

func (s *fakeAuthService) Register(_ context.Context, payload dto.RegisterDTO) (*entities.User, error) {
	return &entities.User{ID: 1, Username: payload.Username, Role: entities.RoleUser, Active: true}, nil
}

func (s *fakeAuthService) Login(_ context.Context, _ dto.LoginDTO) (*entities.User, error) {
	if s.loginErr != nil {
		return nil, s.loginErr
	}
	return s.user, nil
}

func (s *fakeAuthService) GetProfile(_ context.Context, _ uint64) (*entities.User, error) {
	return s.user, nil
}

func (s *fakeAuthService) ForgotPassword(_ context.Context, _ dto.ForgotPasswordDTO) error {
	return nil
}

func newAuthTestEcho(svc *fakeAuthService) (*echo.Echo, *controllers.AuthController) {
	e := echo.New()
	e.Validator = utils.NewValidator(validator.New())
	jwtSvc := service.NewJWTService("test-secret", time.Hour)
	ctrl := controllers.NewAuthController(svc, jwtSvc, zap.NewNop())
	return e, ctrl
}

func TestLoginEndpoint(t *testing.T) {
	t.Parallel()

	t.Run("success returns token and user", func(t *testing.T) {
		t.Parallel()
		svc := &fakeAuthService{user: &entities.User{ID: 7, Username: "usta", Role: entities.RoleUser, Active: true}}
		e, ctrl := newAuthTestEcho(svc)
		e.POST("/auth/login", ctrl.Login)

		body := `{"username":"usta","password":"gizli123"}`
		req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)

		var resp dto.AuthResponseDTO
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.NotEmpty(t, resp.Token)
		require.NotNil(t, resp.User)
		assert.Equal(t, "usta", resp.User.Username)
	})

	t.Run("wrong password answers 401 with message only", func(t *testing.T) {
		t.Parallel()
		svc := &fakeAuthService{loginErr: apperrors.ErrInvalidCredentials}
		e, ctrl := newAuthTestEcho(svc)
		e.POST("/auth/login", ctrl.Login)

		body := `{"username":"usta","password":"yanlis"}`
		req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		require.Equal(t, http.StatusUnauthorized, rec.Code)

		var resp map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Contains(t, resp, "message")
		assert.Len(t, resp, 1)
	})

	t.Run("missing fields answer 400", func(t *testing.T) {
		t.Parallel()
		svc := &fakeAuthService{}
		e, ctrl := newAuthTestEcho(svc)
		e.POST("/auth/login", ctrl.Login)

		req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(`{"username":"usta"}`))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestRegisterEndpointHidesPassword(t *testing.T) {
	t.Parallel()
	svc := &fakeAuthService{}
	e, ctrl := newAuthTestEcho(svc)
	e.POST("/auth/register", ctrl.Register)

	body := `{"username":"usta","password":"gizli123"}`
	req := httptest.NewRequest(http.MethodPost, "/auth/register", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.NotContains(t, rec.Body.String(), "password")
	assert.NotContains(t, rec.Body.String(), "gizli123")
}
