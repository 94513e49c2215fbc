package repository

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/jonboyd/site-server/internal/model"
)

type siteContentRepo struct {
	db sqlxDB
}

func NewSiteContentRepository(db *sqlx.DB) SiteContentRepository {
	return &siteContentRepo{db: db}
}

func (r *siteContentRepo) Get(ctx context.Context) (*model.SiteContent, error) {
	var content model.SiteContent
	err := r.db.GetContext(ctx, &content, `SELECT * FROM site_content WHERE id = $1`, model.SiteContentID)
	return HandleNotFound(&content, err)
}

func (r *siteContentRepo) Update(ctx context.Context, params model.UpdateSiteContentParams) (*model.SiteContent, error) {
	var content model.SiteContent
	err := r.db.GetContext(ctx, &content, `
		UPDATE site_content SET
			bio_text = COALESCE($2, bio_text),
			hero_title = COALESCE($3, hero_title),
			hero_subtitle = COALESCE($4, hero_subtitle),
			updated_at = $5
		WHERE id = $1
		RETURNING *
	`, model.SiteContentID, params.BioText, params.HeroTitle, params.HeroSubtitle, time.Now())
	return HandleNotFound(&content, err)
}

func (r *siteContentRepo) Seed(ctx context.Context, content model.SiteContent) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO site_content (id, bio_text, hero_title, hero_subtitle)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (id) DO NOTHING
	`, model.SiteContentID, content.BioText, content.HeroTitle, content.HeroSubtitle)
	return err
}
