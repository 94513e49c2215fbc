package service

import (
	"context"

	apperrors "github.com/jonboyd/site-server/internal/errors"
	"github.com/jonboyd/site-server/internal/model"
	"github.com/jonboyd/site-server/internal/repository"
	"github.com/jonboyd/site-server/internal/util"
)

type UpdateContentInput struct {
	BioText      *string `json:"bio_text" validate:"omitempty,max=20000"`
	HeroTitle    *string `json:"hero_title" validate:"omitempty,max=200"`
	HeroSubtitle *string `json:"hero_subtitle" validate:"omitempty,max=500"`
}

type ContentService struct {
	repo repository.SiteContentRepository
}

func NewContentService(repo repository.SiteContentRepository) *ContentService {
	return &ContentService{repo: repo}
}

func (s *ContentService) Get(ctx context.Context) (*model.SiteContent, error) {
	content, err := s.repo.Get(ctx)
	if err != nil {
		return nil, apperrors.Storage("load site content", err)
	}
	if content == nil {
		return nil, apperrors.NotFound("Site content")
	}
	return content, nil
}

func (s *ContentService) Update(ctx context.Context, input UpdateContentInput) (*model.SiteContent, error) {
	if _, err := RequirePrincipal(ctx); err != nil {
		return nil, err
	}
	if err := util.ValidateStruct(input); err != nil {
		return nil, err
	}

	content, err := s.repo.Update(ctx, model.UpdateSiteContentParams{
		BioText:      input.BioText,
		HeroTitle:    input.HeroTitle,
		HeroSubtitle: input.HeroSubtitle,
	})
	if err != nil {
		return nil, apperrors.Storage("save site content", err)
	}
	if content == nil {
		return nil, apperrors.NotFound("Site content")
	}
	return content, nil
}
