package handler

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/jonboyd/site-server/internal/audit"
	"github.com/jonboyd/site-server/internal/service"
)

// AdminMiddleware is the per-route middleware the admin API needs.
type AdminMiddleware struct {
	CSRF           func(http.Handler) http.Handler
	LoadSession    func(http.Handler) http.Handler
	RequireSession func(http.Handler) http.Handler
	LoginLimit     func(http.Handler) http.Handler
}

type AdminHandler struct {
	auth        *service.AuthService
	content     *service.ContentService
	socialLinks *service.SocialLinkService
	videos      *service.VideoService
	subscribers *service.SubscriberService
	mw          AdminMiddleware
}

func NewAdminHandler(
	auth *service.AuthService,
	content *service.ContentService,
	socialLinks *service.SocialLinkService,
	videos *service.VideoService,
	subscribers *service.SubscriberService,
	mw AdminMiddleware,
) *AdminHandler {
	return &AdminHandler{
		auth:        auth,
		content:     content,
		socialLinks: socialLinks,
		videos:      videos,
		subscribers: subscribers,
		mw:          mw,
	}
}

// Routes serves the admin API. Logout sits outside the CSRF check: it must
// always clear the cookie, and a forged logout only signs the admin out.
func (h *AdminHandler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Post("/api/logout", h.Logout)

	r.Group(func(r chi.Router) {
		r.Use(h.mw.CSRF)

		r.With(h.mw.LoginLimit).Post("/api/login", h.Login)
		r.With(h.mw.LoadSession).Get("/api/me", h.Me)

		r.Group(func(r chi.Router) {
			r.Use(h.mw.RequireSession)

			r.Patch("/api/content", h.UpdateContent)

			r.Get("/api/social-links", h.ListSocialLinks)
			r.Post("/api/social-links", h.CreateSocialLink)
			r.Patch("/api/social-links/{id}", h.UpdateSocialLink)
			r.Delete("/api/social-links/{id}", h.DeleteSocialLink)

			r.Get("/api/videos", h.ListVideos)
			r.Post("/api/videos", h.CreateVideo)
			r.Patch("/api/videos/{id}", h.UpdateVideo)
			r.Delete("/api/videos/{id}", h.DeleteVideo)

			r.Get("/api/subscribers", h.ListSubscribers)
			r.Get("/api/subscribers/export.csv", h.ExportSubscribers)
			r.Delete("/api/subscribers/{id}", h.DeleteSubscriber)
		})
	})

	return r
}

func (h *AdminHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req service.LoginInput
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	cookie, err := h.auth.Login(r.Context(), req)
	if err != nil {
		audit.LogFromRequest(r, audit.Event{
			Type:    audit.EventLoginFailure,
			Email:   req.Email,
			Details: map[string]interface{}{"reason": string(errorCode(err))},
		})
		writeError(w, r, err)
		return
	}

	audit.LogFromRequest(r, audit.Event{Type: audit.EventLoginSuccess, Email: req.Email})
	http.SetCookie(w, cookie)
	writeSuccess(w, nil)
}

func (h *AdminHandler) Logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, h.auth.Logout(r.Context(), r))
	audit.LogFromRequest(r, audit.Event{Type: audit.EventLogout})
	writeSuccess(w, nil)
}

// Me returns the signed-in admin or null.
func (h *AdminHandler) Me(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, service.PrincipalFrom(r.Context()))
}

func (h *AdminHandler) UpdateContent(w http.ResponseWriter, r *http.Request) {
	var req service.UpdateContentInput
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	content, err := h.content.Update(r.Context(), req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	h.audit(r, audit.EventContentUpdate, "update", content.ID)
	writeSuccess(w, map[string]any{"content": content})
}

func (h *AdminHandler) ListSocialLinks(w http.ResponseWriter, r *http.Request) {
	links, err := h.socialLinks.ListAll(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, links)
}

func (h *AdminHandler) CreateSocialLink(w http.ResponseWriter, r *http.Request) {
	var req service.CreateSocialLinkInput
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	link, err := h.socialLinks.Create(r.Context(), req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	h.audit(r, audit.EventSocialLinkWrite, "create", link.ID)
	writeSuccess(w, map[string]any{"social_link": link})
}

func (h *AdminHandler) UpdateSocialLink(w http.ResponseWriter, r *http.Request) {
	var req service.UpdateSocialLinkInput
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	req.ID = chi.URLParam(r, "id")

	link, err := h.socialLinks.Update(r.Context(), req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	h.audit(r, audit.EventSocialLinkWrite, "update", link.ID)
	writeSuccess(w, map[string]any{"social_link": link})
}

func (h *AdminHandler) DeleteSocialLink(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.socialLinks.Delete(r.Context(), id); err != nil {
		writeError(w, r, err)
		return
	}

	h.audit(r, audit.EventSocialLinkWrite, "delete", id)
	writeSuccess(w, nil)
}

func (h *AdminHandler) ListVideos(w http.ResponseWriter, r *http.Request) {
	videos, err := h.videos.ListAll(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, videos)
}

func (h *AdminHandler) CreateVideo(w http.ResponseWriter, r *http.Request) {
	var req service.CreateVideoInput
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	video, err := h.videos.Create(r.Context(), req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	h.audit(r, audit.EventVideoWrite, "create", video.ID)
	writeSuccess(w, map[string]any{"video": video})
}

func (h *AdminHandler) UpdateVideo(w http.ResponseWriter, r *http.Request) {
	var req service.UpdateVideoInput
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	req.ID = chi.URLParam(r, "id")

	video, err := h.videos.Update(r.Context(), req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	h.audit(r, audit.EventVideoWrite, "update", video.ID)
	writeSuccess(w, map[string]any{"video": video})
}

func (h *AdminHandler) DeleteVideo(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.videos.Delete(r.Context(), id); err != nil {
		writeError(w, r, err)
		return
	}

	h.audit(r, audit.EventVideoWrite, "delete", id)
	writeSuccess(w, nil)
}

func (h *AdminHandler) ListSubscribers(w http.ResponseWriter, r *http.Request) {
	subscribers, err := h.subscribers.List(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, subscribers)
}

func (h *AdminHandler) DeleteSubscriber(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.subscribers.Delete(r.Context(), id); err != nil {
		writeError(w, r, err)
		return
	}

	h.audit(r, audit.EventSubscriberWrite, "delete", id)
	writeSuccess(w, nil)
}

func (h *AdminHandler) ExportSubscribers(w http.ResponseWriter, r *http.Request) {
	csv, err := h.subscribers.ExportCSV(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	h.audit(r, audit.EventSubscriberCSV, "export", "")

	filename := "subscribers-" + time.Now().UTC().Format("2006-01-02") + ".csv"
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(csv))
}

func (h *AdminHandler) audit(r *http.Request, event audit.EventType, action, targetID string) {
	e := audit.Event{
		Type:    event,
		Details: map[string]interface{}{"action": action},
	}
	if p := service.PrincipalFrom(r.Context()); p != nil {
		e.AccountID = p.ID
		e.Email = p.Email
	}
	if targetID != "" {
		e.Details["target_id"] = targetID
	}
	audit.LogFromRequest(r, e)
}
