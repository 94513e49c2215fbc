package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jonboyd/site-server/internal/service"
)

// PublicHandler serves the unauthenticated site API.
type PublicHandler struct {
	content        *service.ContentService
	socialLinks    *service.SocialLinkService
	videos         *service.VideoService
	subscribers    *service.SubscriberService
	subscribeLimit func(http.Handler) http.Handler
}

func NewPublicHandler(
	content *service.ContentService,
	socialLinks *service.SocialLinkService,
	videos *service.VideoService,
	subscribers *service.SubscriberService,
	subscribeLimit func(http.Handler) http.Handler,
) *PublicHandler {
	return &PublicHandler{
		content:        content,
		socialLinks:    socialLinks,
		videos:         videos,
		subscribers:    subscribers,
		subscribeLimit: subscribeLimit,
	}
}

func (h *PublicHandler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/content", h.Content)
	r.Get("/social-links", h.SocialLinks)
	r.Get("/videos", h.Videos)
	r.With(h.subscribeLimit).Post("/subscribe", h.Subscribe)

	return r
}

func (h *PublicHandler) Content(w http.ResponseWriter, r *http.Request) {
	content, err := h.content.Get(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, content)
}

func (h *PublicHandler) SocialLinks(w http.ResponseWriter, r *http.Request) {
	links, err := h.socialLinks.ListActive(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, links)
}

func (h *PublicHandler) Videos(w http.ResponseWriter, r *http.Request) {
	videos, err := h.videos.ListActive(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, videos)
}

func (h *PublicHandler) Subscribe(w http.ResponseWriter, r *http.Request) {
	var req service.SubscribeInput
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	if err := h.subscribers.Subscribe(r.Context(), req); err != nil {
		writeError(w, r, err)
		return
	}
	writeSuccess(w, nil)
}
