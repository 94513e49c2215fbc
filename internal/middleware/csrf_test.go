package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
}

func TestCSRFMiddleware(t *testing.T) {
	mw := NewCSRFMiddleware(false).Handler(okHandler())

	t.Run("safe request issues cookie", func(t *testing.T) {
		rec := httptest.NewRecorder()
		mw.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/admin/api/me", nil))

		assert.Equal(t, http.StatusNoContent, rec.Code)
		cookies := rec.Result().Cookies()
		require.Len(t, cookies, 1)
		assert.Equal(t, CSRFCookieName, cookies[0].Name)
		assert.False(t, cookies[0].HttpOnly)
		assert.Len(t, cookies[0].Value, 64)
	})

	t.Run("post without header is rejected", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/admin/api/login", nil)
		req.AddCookie(&http.Cookie{Name: CSRFCookieName, Value: "abc"})
		rec := httptest.NewRecorder()
		mw.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Contains(t, rec.Body.String(), "Missing CSRF token")
		assert.Contains(t, rec.Body.String(), `"code":"FORBIDDEN"`)
	})

	t.Run("post with mismatched header is rejected", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/admin/api/login", nil)
		req.AddCookie(&http.Cookie{Name: CSRFCookieName, Value: "abc"})
		req.Header.Set(CSRFHeaderName, "xyz")
		rec := httptest.NewRecorder()
		mw.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Contains(t, rec.Body.String(), "Invalid CSRF token")
	})

	t.Run("post with matching header passes", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodDelete, "/admin/api/videos/1", nil)
		req.AddCookie(&http.Cookie{Name: CSRFCookieName, Value: "abc"})
		req.Header.Set(CSRFHeaderName, "abc")
		rec := httptest.NewRecorder()
		mw.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNoContent, rec.Code)
	})
}
