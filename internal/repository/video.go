package repository

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/jonboyd/site-server/internal/model"
)

type videoRepo struct {
	db sqlxDB
}

func NewVideoRepository(db *sqlx.DB) VideoRepository {
	return &videoRepo{db: db}
}

func (r *videoRepo) List(ctx context.Context, activeOnly bool) ([]model.Video, error) {
	videos := []model.Video{}
	err := r.db.SelectContext(ctx, &videos, `
		SELECT * FROM videos
		WHERE is_active OR NOT $1
		ORDER BY display_order ASC, created_at ASC
	`, activeOnly)
	if err != nil {
		return nil, err
	}
	return videos, nil
}

func (r *videoRepo) Create(ctx context.Context, params model.CreateVideoParams) (*model.Video, error) {
	var video model.Video
	err := r.db.GetContext(ctx, &video, `
		INSERT INTO videos (title, description, youtube_id, display_order)
		VALUES ($1, $2, $3, COALESCE($4, 0))
		RETURNING *
	`, params.Title, params.Description, params.YouTubeID, params.DisplayOrder)
	if err != nil {
		return nil, mapPQError(err)
	}
	return &video, nil
}

func (r *videoRepo) Update(ctx context.Context, id string, params model.UpdateVideoParams) (*model.Video, error) {
	var video model.Video
	err := r.db.GetContext(ctx, &video, `
		UPDATE videos SET
			title = COALESCE($2, title),
			description = COALESCE($3, description),
			youtube_id = COALESCE($4, youtube_id),
			display_order = COALESCE($5, display_order),
			is_active = COALESCE($6, is_active),
			updated_at = $7
		WHERE id = $1
		RETURNING *
	`, id, params.Title, params.Description, params.YouTubeID, params.DisplayOrder, params.IsActive, time.Now())
	return HandleNotFound(&video, err)
}

func (r *videoRepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM videos WHERE id = $1`, id)
	return err
}
