package gormstore

import (
	"context"

	"gorm.io/gorm"

	"github.com/jonboyd/site-server/internal/model"
)

// ordered sorts by display order, breaking ties by insertion order.
func ordered(db *gorm.DB) *gorm.DB {
	return db.Order("display_order ASC").Order("created_at ASC").Order("rowid ASC")
}

func activeOnly(db *gorm.DB, only bool) *gorm.DB {
	if only {
		return db.Where("is_active = ?", true)
	}
	return db
}

type socialLinkRepo struct {
	db *gorm.DB
}

func (r *socialLinkRepo) List(ctx context.Context, only bool) ([]model.SocialLink, error) {
	var rows []socialLinkRow
	if err := ordered(activeOnly(r.db.WithContext(ctx), only)).Find(&rows).Error; err != nil {
		return nil, err
	}

	links := make([]model.SocialLink, len(rows))
	for i, row := range rows {
		links[i] = row.toModel()
	}
	return links, nil
}

func (r *socialLinkRepo) Create(ctx context.Context, params model.CreateSocialLinkParams) (*model.SocialLink, error) {
	row := socialLinkRow{
		Platform: params.Platform,
		URL:      params.URL,
		IsActive: true,
	}
	if params.DisplayOrder != nil {
		row.DisplayOrder = *params.DisplayOrder
	}

	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return nil, mapError(err)
	}
	link := row.toModel()
	return &link, nil
}

func (r *socialLinkRepo) Update(ctx context.Context, id string, params model.UpdateSocialLinkParams) (*model.SocialLink, error) {
	updates := map[string]any{"updated_at": r.db.NowFunc()}
	if params.Platform != nil {
		updates["platform"] = *params.Platform
	}
	if params.URL != nil {
		updates["url"] = *params.URL
	}
	if params.DisplayOrder != nil {
		updates["display_order"] = *params.DisplayOrder
	}
	if params.IsActive != nil {
		updates["is_active"] = *params.IsActive
	}

	result := r.db.WithContext(ctx).Model(&socialLinkRow{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return nil, mapError(result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, nil
	}

	var row socialLinkRow
	found, err := first(&row, r.db.WithContext(ctx).Where("id = ?", id).First(&row).Error)
	if err != nil || found == nil {
		return nil, err
	}
	link := found.toModel()
	return &link, nil
}

func (r *socialLinkRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&socialLinkRow{}).Error
}
