package repository

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/jonboyd/site-server/internal/model"
)

type socialLinkRepo struct {
	db sqlxDB
}

func NewSocialLinkRepository(db *sqlx.DB) SocialLinkRepository {
	return &socialLinkRepo{db: db}
}

func (r *socialLinkRepo) List(ctx context.Context, activeOnly bool) ([]model.SocialLink, error) {
	links := []model.SocialLink{}
	err := r.db.SelectContext(ctx, &links, `
		SELECT * FROM social_links
		WHERE is_active OR NOT $1
		ORDER BY display_order ASC, created_at ASC
	`, activeOnly)
	if err != nil {
		return nil, err
	}
	return links, nil
}

func (r *socialLinkRepo) Create(ctx context.Context, params model.CreateSocialLinkParams) (*model.SocialLink, error) {
	var link model.SocialLink
	err := r.db.GetContext(ctx, &link, `
		INSERT INTO social_links (platform, url, display_order)
		VALUES ($1, $2, COALESCE($3, 0))
		RETURNING *
	`, params.Platform, params.URL, params.DisplayOrder)
	if err != nil {
		return nil, mapPQError(err)
	}
	return &link, nil
}

func (r *socialLinkRepo) Update(ctx context.Context, id string, params model.UpdateSocialLinkParams) (*model.SocialLink, error) {
	var link model.SocialLink
	err := r.db.GetContext(ctx, &link, `
		UPDATE social_links SET
			platform = COALESCE($2, platform),
			url = COALESCE($3, url),
			display_order = COALESCE($4, display_order),
			is_active = COALESCE($5, is_active),
			updated_at = $6
		WHERE id = $1
		RETURNING *
	`, id, params.Platform, params.URL, params.DisplayOrder, params.IsActive, time.Now())
	return HandleNotFound(&link, err)
}

func (r *socialLinkRepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM social_links WHERE id = $1`, id)
	return err
}
