package errors

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// Tokens.
	ErrInvalidSigningMethod = errors.New("Geçersiz token imza yöntemi.")
	ErrInvalidToken         = errors.New("Geçersiz token.")
	ErrTokenExpired         = errors.New("Token süresi dolmuş.")

	// Authorization header.
	ErrMissingToken      = errors.New("Erişim reddedildi. Token eksik.")
	ErrInvalidAuthHeader = errors.New("Geçersiz Authorization başlığı.")

	// Credentials.
	ErrInvalidCredentials = errors.New("Geçersiz şifre.")
	ErrUserNotFound       = errors.New("Kullanıcı bulunamadı.")

	// Context.
	ErrClaimsNotFoundInContext = errors.New("Kimlik bilgisi istek bağlamında bulunamadı.")

	// Generic.
	ErrNotFound   = errors.New("Kayıt bulunamadı.")
	ErrBadRequest = errors.New("Geçersiz istek.")
)

// HttpError carries a status code and an operator-facing message. The wrapped
// error is for server-side logs only and never reaches the response body.
type HttpError struct {
	Code    int
	Message string
	Err     error
}

func (e *HttpError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *HttpError) Unwrap() error { return e.Err }

func NewHttpError(code int, message string, err error) *HttpError {
	return &HttpError{Code: code, Message: message, Err: err}
}

func NewBadRequestError(message string) *HttpError {
	return &HttpError{Code: http.StatusBadRequest, Message: message}
}

// NewDuplicateError reports a unique-constraint hit on registration or create.
func NewDuplicateError(field string, err error) *HttpError {
	return &HttpError{
		Code:    http.StatusBadRequest,
		Message: fmt.Sprintf("Bu %s zaten kayıtlı.", field),
		Err:     err,
	}
}
