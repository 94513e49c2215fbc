package audit

import (
	"context"
	"net/http"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type EventType string

const (
	EventLoginSuccess    EventType = "login_success"
	EventLoginFailure    EventType = "login_failure"
	EventLogout          EventType = "logout"
	EventRateLimitExceed EventType = "rate_limit_exceeded"
	EventCSRFFailure     EventType = "csrf_failure"
	EventAuthFailure     EventType = "auth_failure"
	EventContentUpdate   EventType = "content_update"
	EventSocialLinkWrite EventType = "social_link_write"
	EventVideoWrite      EventType = "video_write"
	EventSubscriberWrite EventType = "subscriber_write"
	EventSubscriberCSV   EventType = "subscriber_export"
	EventSessionSweep    EventType = "session_sweep"
)

// Event is one security-relevant action. AccountID is the acting admin, when known.
type Event struct {
	Type      EventType
	AccountID string
	Email     string
	IP        string
	UserAgent string
	RequestID string
	Details   map[string]interface{}
}

// Log writes the event through the global logger at info level. Empty
// fields are omitted so sweeps and anonymous failures stay compact.
func Log(_ context.Context, event Event) {
	entry := log.Info().
		Str("audit", "security").
		Str("event_type", string(event.Type))

	optional := []struct{ key, value string }{
		{"email", event.Email},
		{"account_id", event.AccountID},
		{"ip", event.IP},
		{"user_agent", event.UserAgent},
		{"request_id", event.RequestID},
	}
	for _, f := range optional {
		if f.value != "" {
			entry = entry.Str(f.key, f.value)
		}
	}

	for k, v := range event.Details {
		entry = addField(entry, k, v)
	}
	entry.Msg("security audit event")
}

func addField(e *zerolog.Event, key string, value interface{}) *zerolog.Event {
	switch v := value.(type) {
	case string:
		return e.Str(key, v)
	case int:
		return e.Int(key, v)
	case int64:
		return e.Int64(key, v)
	case bool:
		return e.Bool(key, v)
	default:
		return e.Interface(key, v)
	}
}

// LogFromRequest fills in the caller's address, user agent and request id.
// RemoteAddr is trusted because chi's RealIP middleware has already rewritten it.
func LogFromRequest(r *http.Request, event Event) {
	event.IP = r.RemoteAddr
	event.UserAgent = r.UserAgent()
	event.RequestID = chimiddleware.GetReqID(r.Context())
	Log(r.Context(), event)
}
