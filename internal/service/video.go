package service

import (
	"context"

	apperrors "github.com/jonboyd/site-server/internal/errors"
	"github.com/jonboyd/site-server/internal/model"
	"github.com/jonboyd/site-server/internal/repository"
	"github.com/jonboyd/site-server/internal/util"
)

type CreateVideoInput struct {
	Title        string  `json:"title" validate:"required,max=200"`
	Description  *string `json:"description" validate:"omitempty,max=2000"`
	YouTubeURL   string  `json:"youtube_url" validate:"required"`
	DisplayOrder *int    `json:"display_order"`
}

type UpdateVideoInput struct {
	ID           string  `json:"id" validate:"required,uuid"`
	Title        *string `json:"title" validate:"omitempty,max=200"`
	Description  *string `json:"description" validate:"omitempty,max=2000"`
	YouTubeURL   *string `json:"youtube_url"`
	DisplayOrder *int    `json:"display_order"`
	IsActive     *bool   `json:"is_active"`
}

type VideoService struct {
	repo repository.VideoRepository
}

func NewVideoService(repo repository.VideoRepository) *VideoService {
	return &VideoService{repo: repo}
}

func (s *VideoService) ListActive(ctx context.Context) ([]model.Video, error) {
	videos, err := s.repo.List(ctx, true)
	if err != nil {
		return nil, apperrors.Storage("load videos", err)
	}
	return videos, nil
}

func (s *VideoService) ListAll(ctx context.Context) ([]model.Video, error) {
	if _, err := RequirePrincipal(ctx); err != nil {
		return nil, err
	}
	videos, err := s.repo.List(ctx, false)
	if err != nil {
		return nil, apperrors.Storage("load videos", err)
	}
	return videos, nil
}

func (s *VideoService) Create(ctx context.Context, input CreateVideoInput) (*model.Video, error) {
	if _, err := RequirePrincipal(ctx); err != nil {
		return nil, err
	}
	if err := util.ValidateStruct(input); err != nil {
		return nil, err
	}

	youtubeID, ok := util.ExtractYouTubeID(input.YouTubeURL)
	if !ok {
		return nil, apperrors.InvalidVideoReference()
	}

	video, err := s.repo.Create(ctx, model.CreateVideoParams{
		Title:        input.Title,
		Description:  input.Description,
		YouTubeID:    youtubeID,
		DisplayOrder: input.DisplayOrder,
	})
	if err != nil {
		return nil, apperrors.Storage("add video", err)
	}
	return video, nil
}

// Update re-parses youtube_url only when it is present and non-empty.
func (s *VideoService) Update(ctx context.Context, input UpdateVideoInput) (*model.Video, error) {
	if _, err := RequirePrincipal(ctx); err != nil {
		return nil, err
	}
	if err := util.ValidateStruct(input); err != nil {
		return nil, err
	}

	params := model.UpdateVideoParams{
		Title:        input.Title,
		Description:  input.Description,
		DisplayOrder: input.DisplayOrder,
		IsActive:     input.IsActive,
	}
	if input.YouTubeURL != nil && *input.YouTubeURL != "" {
		youtubeID, ok := util.ExtractYouTubeID(*input.YouTubeURL)
		if !ok {
			return nil, apperrors.InvalidVideoReference()
		}
		params.YouTubeID = &youtubeID
	}

	video, err := s.repo.Update(ctx, input.ID, params)
	if err != nil {
		return nil, apperrors.Storage("update video", err)
	}
	if video == nil {
		return nil, apperrors.NotFound("Video")
	}
	return video, nil
}

func (s *VideoService) Delete(ctx context.Context, id string) error {
	if _, err := RequirePrincipal(ctx); err != nil {
		return err
	}
	if err := util.ValidateStruct(idInput{ID: id}); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return apperrors.Storage("delete video", err)
	}
	return nil
}
