package service

import (
	"context"

	apperrors "github.com/jonboyd/site-server/internal/errors"
	"github.com/jonboyd/site-server/internal/model"
	"github.com/jonboyd/site-server/internal/repository"
	"github.com/jonboyd/site-server/internal/util"
)

type CreateSocialLinkInput struct {
	Platform     string `json:"platform" validate:"required,max=50"`
	URL          string `json:"url" validate:"required,url"`
	DisplayOrder *int   `json:"display_order"`
}

type UpdateSocialLinkInput struct {
	ID           string  `json:"id" validate:"required,uuid"`
	Platform     *string `json:"platform" validate:"omitempty,max=50"`
	URL          *string `json:"url" validate:"omitempty,url"`
	DisplayOrder *int    `json:"display_order"`
	IsActive     *bool   `json:"is_active"`
}

// idInput validates the target of update and delete operations.
type idInput struct {
	ID string `json:"id" validate:"required,uuid"`
}

type SocialLinkService struct {
	repo repository.SocialLinkRepository
}

func NewSocialLinkService(repo repository.SocialLinkRepository) *SocialLinkService {
	return &SocialLinkService{repo: repo}
}

func (s *SocialLinkService) ListActive(ctx context.Context) ([]model.SocialLink, error) {
	links, err := s.repo.List(ctx, true)
	if err != nil {
		return nil, apperrors.Storage("load social links", err)
	}
	return links, nil
}

func (s *SocialLinkService) ListAll(ctx context.Context) ([]model.SocialLink, error) {
	if _, err := RequirePrincipal(ctx); err != nil {
		return nil, err
	}
	links, err := s.repo.List(ctx, false)
	if err != nil {
		return nil, apperrors.Storage("load social links", err)
	}
	return links, nil
}

func (s *SocialLinkService) Create(ctx context.Context, input CreateSocialLinkInput) (*model.SocialLink, error) {
	if _, err := RequirePrincipal(ctx); err != nil {
		return nil, err
	}
	if err := util.ValidateStruct(input); err != nil {
		return nil, err
	}

	link, err := s.repo.Create(ctx, model.CreateSocialLinkParams{
		Platform:     input.Platform,
		URL:          input.URL,
		DisplayOrder: input.DisplayOrder,
	})
	if err != nil {
		return nil, apperrors.Storage("add social link", err)
	}
	return link, nil
}

func (s *SocialLinkService) Update(ctx context.Context, input UpdateSocialLinkInput) (*model.SocialLink, error) {
	if _, err := RequirePrincipal(ctx); err != nil {
		return nil, err
	}
	if err := util.ValidateStruct(input); err != nil {
		return nil, err
	}

	link, err := s.repo.Update(ctx, input.ID, model.UpdateSocialLinkParams{
		Platform:     input.Platform,
		URL:          input.URL,
		DisplayOrder: input.DisplayOrder,
		IsActive:     input.IsActive,
	})
	if err != nil {
		return nil, apperrors.Storage("update social link", err)
	}
	if link == nil {
		return nil, apperrors.NotFound("Social link")
	}
	return link, nil
}

// Delete is a no-op for ids that do not exist.
func (s *SocialLinkService) Delete(ctx context.Context, id string) error {
	if _, err := RequirePrincipal(ctx); err != nil {
		return err
	}
	if err := util.ValidateStruct(idInput{ID: id}); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return apperrors.Storage("delete social link", err)
	}
	return nil
}
