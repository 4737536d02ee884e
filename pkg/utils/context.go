package utils

import (
	"context"

	"github.com/Trunday/kalfa-api/pkg/contextkeys"
	apperrors "github.com/Trunday/kalfa-api/pkg/errors"
	"github.com/Trunday/kalfa-api/pkg/service"
)

// GetClaimsFromCtx returns the identity the access guard attached to the
// request context.
func GetClaimsFromCtx(ctx context.Context) (*service.JwtCustomClaim, error) {
	claims, ok := ctx.Value(contextkeys.ClaimsKey).(*service.JwtCustomClaim)
	if !ok || claims == nil {
		return nil, apperrors.ErrClaimsNotFoundInContext
	}
	return claims, nil
}
