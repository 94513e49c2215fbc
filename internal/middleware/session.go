package middleware

import (
	"context"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/jonboyd/site-server/internal/audit"
	apperrors "github.com/jonboyd/site-server/internal/errors"
	"github.com/jonboyd/site-server/internal/model"
	"github.com/jonboyd/site-server/internal/service"
)

type PrincipalResolver interface {
	CurrentPrincipal(ctx context.Context, cookies service.CookieReader) (*model.Principal, error)
}

// AdminSessionMiddleware resolves the admin behind the session cookie and
// stores it in the request context for the services to check.
type AdminSessionMiddleware struct {
	resolver PrincipalResolver
}

func NewAdminSessionMiddleware(resolver PrincipalResolver) *AdminSessionMiddleware {
	return &AdminSessionMiddleware{resolver: resolver}
}

// Load attaches the principal when there is one and never rejects.
func (m *AdminSessionMiddleware) Load(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		principal, err := m.resolver.CurrentPrincipal(r.Context(), r)
		if err != nil {
			log.Error().Err(err).Msg("admin session middleware: resolve principal")
			writeError(w, err)
			return
		}
		if principal != nil {
			r = r.WithContext(service.WithPrincipal(r.Context(), principal))
		}
		next.ServeHTTP(w, r)
	})
}

// Require rejects requests without a valid admin session.
func (m *AdminSessionMiddleware) Require(next http.Handler) http.Handler {
	return m.Load(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if service.PrincipalFrom(r.Context()) == nil {
			audit.LogFromRequest(r, audit.Event{
				Type:    audit.EventAuthFailure,
				Details: map[string]interface{}{"path": r.URL.Path},
			})
			writeError(w, apperrors.Unauthorized("Unauthorized"))
			return
		}
		next.ServeHTTP(w, r)
	}))
}
