package service

import (
	"context"

	apperrors "github.com/jonboyd/site-server/internal/errors"
	"github.com/jonboyd/site-server/internal/model"
)

type principalKey struct{}

func WithPrincipal(ctx context.Context, principal *model.Principal) context.Context {
	return context.WithValue(ctx, principalKey{}, principal)
}

func PrincipalFrom(ctx context.Context) *model.Principal {
	principal, _ := ctx.Value(principalKey{}).(*model.Principal)
	return principal
}

// RequirePrincipal guards admin-only operations.
func RequirePrincipal(ctx context.Context) (*model.Principal, error) {
	principal := PrincipalFrom(ctx)
	if principal == nil {
		return nil, apperrors.Unauthorized("Unauthorized")
	}
	return principal, nil
}
