package app

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/jonboyd/site-server/internal/config"
	"github.com/jonboyd/site-server/internal/handler"
	"github.com/jonboyd/site-server/internal/middleware"
	"github.com/jonboyd/site-server/internal/repository"
	"github.com/jonboyd/site-server/internal/service"
)

// NewRouter wires the services, middleware and handlers over store.
func NewRouter(cfg *config.Config, store repository.Store, limiter service.Limiter) http.Handler {
	authService := service.NewAuthService(store.Accounts(), store.Sessions(), cfg.SessionTTL(), cfg.IsProduction())
	contentService := service.NewContentService(store.Content())
	socialLinkService := service.NewSocialLinkService(store.SocialLinks())
	videoService := service.NewVideoService(store.Videos())
	subscriberService := service.NewSubscriberService(store.Subscribers())

	sessionMiddleware := middleware.NewAdminSessionMiddleware(authService)
	loginLimit := middleware.NewIPRateLimitMiddleware(limiter, cfg.LoginRateLimitPerMin, config.LoginRateLimitWindow, "login")
	subscribeLimit := middleware.NewIPRateLimitMiddleware(limiter, cfg.SubscribeRateLimitPerMin, config.SubscribeRateLimitWindow, "subscribe")
	csrfMiddleware := middleware.NewCSRFMiddleware(cfg.IsProduction())
	bodyLimitMiddleware := middleware.NewBodyLimitMiddleware(0)
	securityHeadersMiddleware := middleware.NewSecurityHeadersMiddleware(cfg.IsProduction())

	publicHandler := handler.NewPublicHandler(
		contentService, socialLinkService, videoService, subscriberService, subscribeLimit.Handler,
	)
	adminHandler := handler.NewAdminHandler(
		authService, contentService, socialLinkService, videoService, subscriberService,
		handler.AdminMiddleware{
			CSRF:           csrfMiddleware.Handler,
			LoadSession:    sessionMiddleware.Load,
			RequireSession: sessionMiddleware.Require,
			LoginLimit:     loginLimit.Handler,
		},
	)

	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RequestLogger)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(config.ServerRequestTimeout))
	r.Use(bodyLimitMiddleware.Handler)
	r.Use(securityHeadersMiddleware.Handler)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		status := http.StatusOK
		body := map[string]any{"status": "ok", "timestamp": time.Now().UnixMilli()}
		if err := store.Ping(r.Context()); err != nil {
			status = http.StatusServiceUnavailable
			body["status"] = "degraded"
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		json.NewEncoder(w).Encode(body)
	})

	r.Mount("/api", publicHandler.Routes())
	r.Mount("/admin", adminHandler.Routes())

	r.NotFound(handler.StaticFileServer(cfg.StaticDir).ServeHTTP)

	return r
}
