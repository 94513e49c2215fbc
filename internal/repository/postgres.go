package repository

import (
	"context"

	"github.com/jmoiron/sqlx"
)

type postgresStore struct {
	db          *sqlx.DB
	accounts    AdminAccountRepository
	sessions    SessionRepository
	content     SiteContentRepository
	socialLinks SocialLinkRepository
	videos      VideoRepository
	subscribers SubscriberRepository
}

// NewPostgresStore wires the sqlx repositories around a single connection pool.
func NewPostgresStore(db *sqlx.DB) Store {
	return &postgresStore{
		db:          db,
		accounts:    NewAdminAccountRepository(db),
		sessions:    NewSessionRepository(db),
		content:     NewSiteContentRepository(db),
		socialLinks: NewSocialLinkRepository(db),
		videos:      NewVideoRepository(db),
		subscribers: NewSubscriberRepository(db),
	}
}

func (s *postgresStore) Accounts() AdminAccountRepository  { return s.accounts }
func (s *postgresStore) Sessions() SessionRepository       { return s.sessions }
func (s *postgresStore) Content() SiteContentRepository    { return s.content }
func (s *postgresStore) SocialLinks() SocialLinkRepository { return s.socialLinks }
func (s *postgresStore) Videos() VideoRepository           { return s.videos }
func (s *postgresStore) Subscribers() SubscriberRepository { return s.subscribers }

func (s *postgresStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *postgresStore) Close() error {
	return s.db.Close()
}
