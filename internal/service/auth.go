package service

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/jonboyd/site-server/internal/config"
	apperrors "github.com/jonboyd/site-server/internal/errors"
	"github.com/jonboyd/site-server/internal/model"
	"github.com/jonboyd/site-server/internal/repository"
	"github.com/jonboyd/site-server/internal/util"
)

// CookieReader is the request-scoped view the auth gate needs. *http.Request satisfies it.
type CookieReader interface {
	Cookie(name string) (*http.Cookie, error)
}

type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type AuthService struct {
	accounts     repository.AdminAccountRepository
	sessions     repository.SessionRepository
	sessionTTL   time.Duration
	secureCookie bool
	now          func() time.Time
}

func NewAuthService(
	accounts repository.AdminAccountRepository,
	sessions repository.SessionRepository,
	sessionTTL time.Duration,
	secureCookie bool,
) *AuthService {
	if sessionTTL <= 0 {
		sessionTTL = config.DefaultSessionTTL
	}
	return &AuthService{
		accounts:     accounts,
		sessions:     sessions,
		sessionTTL:   sessionTTL,
		secureCookie: secureCookie,
		now:          time.Now,
	}
}

// ValidateCredentials returns the account id for a matching email and password.
// Unknown emails and wrong passwords produce the same error.
func (s *AuthService) ValidateCredentials(ctx context.Context, email, password string) (string, error) {
	account, err := s.accounts.FindByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		return "", apperrors.Storage("sign in", err)
	}

	if account == nil {
		util.BurnPasswordCheck(password)
		return "", apperrors.InvalidCredentials()
	}

	if !util.CheckPasswordHash(password, account.PasswordHash) {
		return "", apperrors.InvalidCredentials()
	}

	return account.ID, nil
}

// Login validates the credentials, persists a new session and returns the
// cookie that carries its token. No cookie is returned on failure.
func (s *AuthService) Login(ctx context.Context, input LoginInput) (*http.Cookie, error) {
	if err := util.ValidateStruct(input); err != nil {
		return nil, err
	}

	accountID, err := s.ValidateCredentials(ctx, input.Email, input.Password)
	if err != nil {
		return nil, err
	}

	token, err := util.GenerateToken()
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeInternal, "Failed to sign in", err)
	}

	createdAt := s.now()
	session, err := s.sessions.Create(ctx, model.CreateSessionParams{
		AdminAccountID: accountID,
		Token:          token,
		CreatedAt:      createdAt,
		ExpiresAt:      createdAt.Add(s.sessionTTL),
	})
	if err != nil {
		return nil, apperrors.Storage("sign in", err)
	}

	log.Info().
		Str("accountId", accountID).
		Str("sessionId", session.ID).
		Time("expiresAt", session.ExpiresAt).
		Msg("admin session created")

	return s.sessionCookie(token, session.ExpiresAt), nil
}

// CurrentPrincipal resolves the admin behind the request's session cookie.
// A missing, unknown or expired token yields nil without an error.
func (s *AuthService) CurrentPrincipal(ctx context.Context, cookies CookieReader) (*model.Principal, error) {
	token := sessionToken(cookies)
	if token == "" {
		return nil, nil
	}

	session, err := s.sessions.FindValid(ctx, token)
	if err != nil {
		return nil, apperrors.Storage("load session", err)
	}
	if session == nil {
		return nil, nil
	}

	account, err := s.accounts.FindByID(ctx, session.AdminAccountID)
	if err != nil {
		return nil, apperrors.Storage("load session", err)
	}
	if account == nil {
		return nil, nil
	}

	return account.Principal(), nil
}

// Logout revokes the request's session if it has one and always returns a
// cookie that clears it in the browser.
func (s *AuthService) Logout(ctx context.Context, cookies CookieReader) *http.Cookie {
	if token := sessionToken(cookies); token != "" {
		if err := s.sessions.DeleteByToken(ctx, token); err != nil {
			log.Error().Err(err).Msg("logout: delete session")
		}
	}
	return s.clearCookie()
}

func (s *AuthService) sessionCookie(token string, expiresAt time.Time) *http.Cookie {
	return &http.Cookie{
		Name:     config.SessionCookieName,
		Value:    token,
		Path:     "/",
		Expires:  expiresAt,
		MaxAge:   int(s.sessionTTL.Seconds()),
		HttpOnly: true,
		Secure:   s.secureCookie,
		SameSite: http.SameSiteLaxMode,
	}
}

func (s *AuthService) clearCookie() *http.Cookie {
	return &http.Cookie{
		Name:     config.SessionCookieName,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   s.secureCookie,
		SameSite: http.SameSiteLaxMode,
	}
}

func sessionToken(cookies CookieReader) string {
	if cookies == nil {
		return ""
	}
	cookie, err := cookies.Cookie(config.SessionCookieName)
	if err != nil {
		return ""
	}
	return cookie.Value
}
