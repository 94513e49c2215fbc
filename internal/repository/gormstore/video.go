package gormstore

import (
	"context"

	"gorm.io/gorm"

	"github.com/jonboyd/site-server/internal/model"
)

type videoRepo struct {
	db *gorm.DB
}

func (r *videoRepo) List(ctx context.Context, only bool) ([]model.Video, error) {
	var rows []videoRow
	if err := ordered(activeOnly(r.db.WithContext(ctx), only)).Find(&rows).Error; err != nil {
		return nil, err
	}

	videos := make([]model.Video, len(rows))
	for i, row := range rows {
		videos[i] = row.toModel()
	}
	return videos, nil
}

func (r *videoRepo) Create(ctx context.Context, params model.CreateVideoParams) (*model.Video, error) {
	row := videoRow{
		Title:       params.Title,
		Description: params.Description,
		YouTubeID:   params.YouTubeID,
		IsActive:    true,
	}
	if params.DisplayOrder != nil {
		row.DisplayOrder = *params.DisplayOrder
	}

	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return nil, mapError(err)
	}
	video := row.toModel()
	return &video, nil
}

func (r *videoRepo) Update(ctx context.Context, id string, params model.UpdateVideoParams) (*model.Video, error) {
	updates := map[string]any{"updated_at": r.db.NowFunc()}
	if params.Title != nil {
		updates["title"] = *params.Title
	}
	if params.Description != nil {
		updates["description"] = *params.Description
	}
	if params.YouTubeID != nil {
		updates["youtube_id"] = *params.YouTubeID
	}
	if params.DisplayOrder != nil {
		updates["display_order"] = *params.DisplayOrder
	}
	if params.IsActive != nil {
		updates["is_active"] = *params.IsActive
	}

	result := r.db.WithContext(ctx).Model(&videoRow{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return nil, mapError(result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, nil
	}

	var row videoRow
	found, err := first(&row, r.db.WithContext(ctx).Where("id = ?", id).First(&row).Error)
	if err != nil || found == nil {
		return nil, err
	}
	video := found.toModel()
	return &video, nil
}

func (r *videoRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&videoRow{}).Error
}
