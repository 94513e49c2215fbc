package gormstore

import (
	"context"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/jonboyd/site-server/internal/model"
)

type siteContentRepo struct {
	db *gorm.DB
}

func (r *siteContentRepo) Get(ctx context.Context) (*model.SiteContent, error) {
	var row siteContentRow
	found, err := first(&row, r.db.WithContext(ctx).Where("id = ?", model.SiteContentID).First(&row).Error)
	if err != nil || found == nil {
		return nil, err
	}
	return found.toModel(), nil
}

func (r *siteContentRepo) Update(ctx context.Context, params model.UpdateSiteContentParams) (*model.SiteContent, error) {
	updates := map[string]any{"updated_at": r.db.NowFunc()}
	if params.BioText != nil {
		updates["bio_text"] = *params.BioText
	}
	if params.HeroTitle != nil {
		updates["hero_title"] = *params.HeroTitle
	}
	if params.HeroSubtitle != nil {
		updates["hero_subtitle"] = *params.HeroSubtitle
	}

	result := r.db.WithContext(ctx).Model(&siteContentRow{}).Where("id = ?", model.SiteContentID).Updates(updates)
	if result.Error != nil {
		return nil, mapError(result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, nil
	}
	return r.Get(ctx)
}

func (r *siteContentRepo) Seed(ctx context.Context, content model.SiteContent) error {
	row := siteContentRow{
		ID:           model.SiteContentID,
		BioText:      content.BioText,
		HeroTitle:    content.HeroTitle,
		HeroSubtitle: content.HeroSubtitle,
	}
	if strings.TrimSpace(row.HeroTitle) == "" {
		row.HeroTitle = "Jon Boyd"
	}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&row).Error
}
