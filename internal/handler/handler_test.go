package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jonboyd/site-server/internal/config"
	"github.com/jonboyd/site-server/internal/middleware"
	"github.com/jonboyd/site-server/internal/model"
	"github.com/jonboyd/site-server/internal/repository/gormstore"
	"github.com/jonboyd/site-server/internal/service"
)

const (
	testEmail    = "admin@example.com"
	testPassword = "changeme123"
)

type testServer struct {
	router http.Handler
	store  *gormstore.Store
}

func passthrough(next http.Handler) http.Handler { return next }

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	db, err := gormstore.OpenSQLite(fmt.Sprintf("file:handler_%s?mode=memory&cache=shared", name))
	require.NoError(t, err)
	store := gormstore.New(db)
	require.NoError(t, store.AutoMigrate())
	t.Cleanup(func() { store.Close() })

	ctx := context.Background()
	hash, err := bcrypt.GenerateFromPassword([]byte(testPassword), bcrypt.MinCost)
	require.NoError(t, err)
	_, err = store.Accounts().Create(ctx, model.CreateAdminAccountParams{Email: testEmail, PasswordHash: string(hash)})
	require.NoError(t, err)
	require.NoError(t, store.Content().Seed(ctx, model.SiteContent{BioText: "Stand-up comedian.", HeroTitle: "Jon Boyd"}))

	auth := service.NewAuthService(store.Accounts(), store.Sessions(), config.DefaultSessionTTL, false)
	content := service.NewContentService(store.Content())
	social := service.NewSocialLinkService(store.SocialLinks())
	videos := service.NewVideoService(store.Videos())
	subscribers := service.NewSubscriberService(store.Subscribers())
	sessions := middleware.NewAdminSessionMiddleware(auth)

	r := chi.NewRouter()
	r.Mount("/api", NewPublicHandler(content, social, videos, subscribers, passthrough).Routes())
	r.Mount("/admin", NewAdminHandler(auth, content, social, videos, subscribers, AdminMiddleware{
		CSRF:           passthrough,
		LoadSession:    sessions.Load,
		RequireSession: sessions.Require,
		LoginLimit:     passthrough,
	}).Routes())

	return &testServer{router: r, store: store}
}

func (s *testServer) do(t *testing.T, method, path string, body any, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func (s *testServer) login(t *testing.T) *http.Cookie {
	t.Helper()

	rec := s.do(t, http.MethodPost, "/admin/api/login", map[string]string{"email": testEmail, "password": testPassword})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	for _, c := range rec.Result().Cookies() {
		if c.Name == config.SessionCookieName {
			return c
		}
	}
	t.Fatal("no session cookie issued")
	return nil
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestLoginMeLogout(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(t, http.MethodGet, "/admin/api/me", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "null", strings.TrimSpace(rec.Body.String()))

	cookie := s.login(t)
	assert.True(t, cookie.HttpOnly)
	assert.Equal(t, "/", cookie.Path)

	rec = s.do(t, http.MethodGet, "/admin/api/me", nil, cookie)
	assert.Equal(t, http.StatusOK, rec.Code)
	me := decodeBody(t, rec)
	assert.Equal(t, testEmail, me["email"])
	assert.NotContains(t, rec.Body.String(), "password")

	rec = s.do(t, http.MethodPost, "/admin/api/logout", nil, cookie)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, decodeBody(t, rec)["success"])
	cleared := rec.Result().Cookies()
	require.Len(t, cleared, 1)
	assert.Equal(t, config.SessionCookieName, cleared[0].Name)
	assert.Equal(t, "", cleared[0].Value)

	rec = s.do(t, http.MethodGet, "/admin/api/me", nil, cookie)
	assert.Equal(t, "null", strings.TrimSpace(rec.Body.String()))
}

func TestLoginFailures(t *testing.T) {
	s := newTestServer(t)

	wrong := s.do(t, http.MethodPost, "/admin/api/login", map[string]string{"email": testEmail, "password": "wrongpassword"})
	unknown := s.do(t, http.MethodPost, "/admin/api/login", map[string]string{"email": "nobody@example.com", "password": testPassword})

	assert.Equal(t, http.StatusUnauthorized, wrong.Code)
	assert.Equal(t, wrong.Code, unknown.Code)
	assert.JSONEq(t, wrong.Body.String(), unknown.Body.String())
	assert.Empty(t, wrong.Result().Cookies())

	rec := s.do(t, http.MethodPost, "/admin/api/login", map[string]string{"email": "not-an-email", "password": "short"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = s.do(t, http.MethodPost, "/admin/api/login", "{not json")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "INVALID_INPUT", decodeBody(t, rec)["code"])
}

func TestAdminRoutesRequireSession(t *testing.T) {
	s := newTestServer(t)

	routes := []struct {
		method string
		path   string
	}{
		{http.MethodPatch, "/admin/api/content"},
		{http.MethodGet, "/admin/api/social-links"},
		{http.MethodPost, "/admin/api/social-links"},
		{http.MethodDelete, "/admin/api/videos/3f1c9a4e-8b2d-4c6e-9f10-2a3b4c5d6e7f"},
		{http.MethodGet, "/admin/api/subscribers"},
		{http.MethodGet, "/admin/api/subscribers/export.csv"},
	}

	forged := &http.Cookie{Name: config.SessionCookieName, Value: "forged"}
	for _, rt := range routes {
		t.Run(rt.method+" "+rt.path, func(t *testing.T) {
			rec := s.do(t, rt.method, rt.path, "{}")
			assert.Equal(t, http.StatusUnauthorized, rec.Code)

			rec = s.do(t, rt.method, rt.path, "{}", forged)
			assert.Equal(t, http.StatusUnauthorized, rec.Code)
		})
	}
}

func TestContentUpdate(t *testing.T) {
	s := newTestServer(t)
	cookie := s.login(t)

	rec := s.do(t, http.MethodPatch, "/admin/api/content", map[string]string{"hero_subtitle": "Live in Chicago"}, cookie)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = s.do(t, http.MethodGet, "/api/content", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	content := decodeBody(t, rec)
	assert.Equal(t, "Jon Boyd", content["hero_title"])
	assert.Equal(t, "Live in Chicago", content["hero_subtitle"])
	assert.Equal(t, "Stand-up comedian.", content["bio_text"])
}

func TestSocialLinkCRUD(t *testing.T) {
	s := newTestServer(t)
	cookie := s.login(t)

	rec := s.do(t, http.MethodPost, "/admin/api/social-links", map[string]any{
		"platform": "instagram", "url": "https://instagram.com/jonboyd", "display_order": 1,
	}, cookie)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	link := decodeBody(t, rec)["social_link"].(map[string]any)
	id := link["id"].(string)
	assert.Equal(t, true, link["is_active"])

	rec = s.do(t, http.MethodPatch, "/admin/api/social-links/"+id, map[string]any{"is_active": false}, cookie)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = s.do(t, http.MethodGet, "/api/social-links", nil)
	assert.JSONEq(t, "[]", rec.Body.String())

	rec = s.do(t, http.MethodGet, "/admin/api/social-links", nil, cookie)
	var all []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &all))
	require.Len(t, all, 1)
	assert.Equal(t, "instagram", all[0]["platform"])

	rec = s.do(t, http.MethodDelete, "/admin/api/social-links/"+id, nil, cookie)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = s.do(t, http.MethodPatch, "/admin/api/social-links/"+id, map[string]any{"platform": "x"}, cookie)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = s.do(t, http.MethodPatch, "/admin/api/social-links/not-a-uuid", map[string]any{"platform": "x"}, cookie)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestVideoCreate(t *testing.T) {
	s := newTestServer(t)
	cookie := s.login(t)

	rec := s.do(t, http.MethodPost, "/admin/api/videos", map[string]any{
		"title": "Late show set", "youtube_url": "https://youtu.be/abc12345678",
	}, cookie)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	video := decodeBody(t, rec)["video"].(map[string]any)
	assert.Equal(t, "abc12345678", video["youtube_id"])

	rec = s.do(t, http.MethodPost, "/admin/api/videos", map[string]any{
		"title": "Broken", "youtube_url": "not a video",
	}, cookie)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "INVALID_VIDEO_REFERENCE", decodeBody(t, rec)["code"])

	rec = s.do(t, http.MethodGet, "/api/videos", nil)
	var videos []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &videos))
	require.Len(t, videos, 1)
	assert.Equal(t, "Late show set", videos[0]["title"])
}

func TestSubscribeAndExport(t *testing.T) {
	s := newTestServer(t)
	cookie := s.login(t)

	rec := s.do(t, http.MethodPost, "/api/subscribe", map[string]string{"email": "Fan@Example.com", "first_name": "Ada"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = s.do(t, http.MethodPost, "/api/subscribe", map[string]string{"email": "a@b.com", "website": "spamvalue"})
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, decodeBody(t, rec)["success"])

	rec = s.do(t, http.MethodPost, "/api/subscribe", map[string]string{"email": "nope"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = s.do(t, http.MethodGet, "/admin/api/subscribers", nil, cookie)
	var subs []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &subs))
	require.Len(t, subs, 1)
	assert.Equal(t, "fan@example.com", subs[0]["email"])

	rec = s.do(t, http.MethodGet, "/admin/api/subscribers/export.csv", nil, cookie)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/csv")
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "attachment")
	lines := strings.Split(strings.TrimSpace(rec.Body.String()), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "Email,First Name,Subscribed Date", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "fan@example.com,Ada,"))

	rec = s.do(t, http.MethodDelete, "/admin/api/subscribers/"+subs[0]["id"].(string), nil, cookie)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = s.do(t, http.MethodGet, "/admin/api/subscribers", nil, cookie)
	assert.JSONEq(t, "[]", rec.Body.String())
}

func TestUnknownFieldsRejected(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(t, http.MethodPost, "/api/subscribe", `{"email":"a@b.com","admin":true}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
