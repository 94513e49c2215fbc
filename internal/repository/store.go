package repository

import (
	"context"

	"github.com/jonboyd/site-server/internal/model"
)

// Store is the storage capability set the services depend on. The postgres
// implementation lives in this package; gormstore provides the ORM one.
type Store interface {
	Accounts() AdminAccountRepository
	Sessions() SessionRepository
	Content() SiteContentRepository
	SocialLinks() SocialLinkRepository
	Videos() VideoRepository
	Subscribers() SubscriberRepository
	Ping(ctx context.Context) error
	Close() error
}

type AdminAccountRepository interface {
	FindByID(ctx context.Context, id string) (*model.AdminAccount, error)
	// FindByEmail matches case-insensitively; the email is lower-cased before lookup.
	FindByEmail(ctx context.Context, email string) (*model.AdminAccount, error)
	Create(ctx context.Context, params model.CreateAdminAccountParams) (*model.AdminAccount, error)
}

type SessionRepository interface {
	// FindValid returns nil for unknown and expired tokens alike.
	FindValid(ctx context.Context, token string) (*model.Session, error)
	Create(ctx context.Context, params model.CreateSessionParams) (*model.Session, error)
	DeleteByToken(ctx context.Context, token string) error
	DeleteExpired(ctx context.Context) (int64, error)
}

type SiteContentRepository interface {
	Get(ctx context.Context) (*model.SiteContent, error)
	Update(ctx context.Context, params model.UpdateSiteContentParams) (*model.SiteContent, error)
	// Seed inserts the singleton row if it does not exist yet.
	Seed(ctx context.Context, content model.SiteContent) error
}

type SocialLinkRepository interface {
	List(ctx context.Context, activeOnly bool) ([]model.SocialLink, error)
	Create(ctx context.Context, params model.CreateSocialLinkParams) (*model.SocialLink, error)
	Update(ctx context.Context, id string, params model.UpdateSocialLinkParams) (*model.SocialLink, error)
	Delete(ctx context.Context, id string) error
}

type VideoRepository interface {
	List(ctx context.Context, activeOnly bool) ([]model.Video, error)
	Create(ctx context.Context, params model.CreateVideoParams) (*model.Video, error)
	Update(ctx context.Context, id string, params model.UpdateVideoParams) (*model.Video, error)
	Delete(ctx context.Context, id string) error
}

type SubscriberRepository interface {
	// List orders newest-subscribed first.
	List(ctx context.Context, activeOnly bool) ([]model.EmailSubscriber, error)
	Upsert(ctx context.Context, params model.UpsertSubscriberParams) (*model.EmailSubscriber, error)
	Delete(ctx context.Context, id string) error
}
