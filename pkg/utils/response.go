package utils

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	apperrors "github.com/Trunday/kalfa-api/pkg/errors"
)

// MessageResponse is the error/notice envelope: {"message": "..."}.
// Resource payloads are written as-is, the way the operators' clients expect.
type MessageResponse struct {
	Message string `json:"message"`
}

func SuccessResponse(c echo.Context, code int, body interface{}) error {
	return c.JSON(code, body)
}

// ErrorResponse converts the error taxonomy to a status code and a stable
// message. Internal detail never leaks into the body; callers log it.
func ErrorResponse(c echo.Context, err error) error {
	code := http.StatusInternalServerError
	message := "Sunucu hatası."

	var httpErr *apperrors.HttpError
	var validationErrs validator.ValidationErrors

	switch {
	case errors.As(err, &httpErr):
		code = httpErr.Code
		message = httpErr.Message
	case errors.As(err, &validationErrs):
		code = http.StatusBadRequest
		message = "Doğrulama hatası: eksik veya geçersiz alan."
	case errors.Is(err, apperrors.ErrNotFound), errors.Is(err, apperrors.ErrUserNotFound):
		code = http.StatusNotFound
		message = err.Error()
	case errors.Is(err, apperrors.ErrMissingToken):
		code = http.StatusUnauthorized
		message = err.Error()
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		code = http.StatusUnauthorized
		message = err.Error()
	case errors.Is(err, apperrors.ErrInvalidToken),
		errors.Is(err, apperrors.ErrTokenExpired),
		errors.Is(err, apperrors.ErrInvalidSigningMethod),
		errors.Is(err, apperrors.ErrInvalidAuthHeader):
		code = http.StatusForbidden
		message = err.Error()
	case errors.Is(err, apperrors.ErrBadRequest):
		code = http.StatusBadRequest
		message = err.Error()
	}

	return c.JSON(code, MessageResponse{Message: message})
}
