package repository

import (
	"context"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/jonboyd/site-server/internal/model"
)

type subscriberRepo struct {
	db sqlxDB
}

func NewSubscriberRepository(db *sqlx.DB) SubscriberRepository {
	return &subscriberRepo{db: db}
}

func (r *subscriberRepo) List(ctx context.Context, activeOnly bool) ([]model.EmailSubscriber, error) {
	subscribers := []model.EmailSubscriber{}
	err := r.db.SelectContext(ctx, &subscribers, `
		SELECT * FROM email_subscribers
		WHERE is_active OR NOT $1
		ORDER BY subscribed_at DESC
	`, activeOnly)
	if err != nil {
		return nil, err
	}
	return subscribers, nil
}

func (r *subscriberRepo) Upsert(ctx context.Context, params model.UpsertSubscriberParams) (*model.EmailSubscriber, error) {
	source := params.Source
	if source == "" {
		source = model.DefaultSubscriberSource
	}

	var subscriber model.EmailSubscriber
	err := r.db.GetContext(ctx, &subscriber, `
		INSERT INTO email_subscribers (email, first_name, source)
		VALUES ($1, $2, $3)
		ON CONFLICT (email) DO UPDATE SET
			first_name = COALESCE(EXCLUDED.first_name, email_subscribers.first_name),
			is_active = TRUE
		RETURNING *
	`, strings.ToLower(params.Email), params.FirstName, source)
	if err != nil {
		return nil, mapPQError(err)
	}
	return &subscriber, nil
}

func (r *subscriberRepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM email_subscribers WHERE id = $1`, id)
	return err
}
