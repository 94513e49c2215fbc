package service

import (
	"context"
	"encoding/csv"
	"strings"

	"github.com/rs/zerolog/log"

	apperrors "github.com/jonboyd/site-server/internal/errors"
	"github.com/jonboyd/site-server/internal/model"
	"github.com/jonboyd/site-server/internal/repository"
	"github.com/jonboyd/site-server/internal/util"
)

const csvDateLayout = "2006-01-02T15:04:05.000Z07:00"

var csvHeader = []string{"Email", "First Name", "Subscribed Date"}

type SubscribeInput struct {
	Email     string  `json:"email" validate:"required,email,max=255"`
	FirstName *string `json:"first_name" validate:"omitempty,max=100"`
	// Website is a honeypot. Real visitors never see the field.
	Website string `json:"website"`
}

type SubscriberService struct {
	repo repository.SubscriberRepository
}

func NewSubscriberService(repo repository.SubscriberRepository) *SubscriberService {
	return &SubscriberService{repo: repo}
}

// Subscribe adds or reactivates a subscriber. A filled honeypot reports
// success without writing anything.
func (s *SubscriberService) Subscribe(ctx context.Context, input SubscribeInput) error {
	if err := util.ValidateStruct(input); err != nil {
		return err
	}

	if input.Website != "" {
		log.Debug().Msg("subscribe: honeypot filled, discarding")
		return nil
	}

	firstName := input.FirstName
	if firstName != nil {
		trimmed := strings.TrimSpace(*firstName)
		firstName = &trimmed
		if trimmed == "" {
			firstName = nil
		}
	}

	_, err := s.repo.Upsert(ctx, model.UpsertSubscriberParams{
		Email:     strings.ToLower(strings.TrimSpace(input.Email)),
		FirstName: firstName,
		Source:    model.DefaultSubscriberSource,
	})
	if err != nil {
		return apperrors.Storage("subscribe", err)
	}
	return nil
}

// List returns every subscriber, newest first.
func (s *SubscriberService) List(ctx context.Context) ([]model.EmailSubscriber, error) {
	if _, err := RequirePrincipal(ctx); err != nil {
		return nil, err
	}
	subscribers, err := s.repo.List(ctx, false)
	if err != nil {
		return nil, apperrors.Storage("load subscribers", err)
	}
	return subscribers, nil
}

func (s *SubscriberService) Delete(ctx context.Context, id string) error {
	if _, err := RequirePrincipal(ctx); err != nil {
		return err
	}
	if err := util.ValidateStruct(idInput{ID: id}); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return apperrors.Storage("delete subscriber", err)
	}
	return nil
}

// ExportCSV renders active subscribers, newest first.
func (s *SubscriberService) ExportCSV(ctx context.Context) (string, error) {
	if _, err := RequirePrincipal(ctx); err != nil {
		return "", err
	}

	subscribers, err := s.repo.List(ctx, true)
	if err != nil {
		return "", apperrors.Storage("export subscribers", err)
	}

	var sb strings.Builder
	w := csv.NewWriter(&sb)
	if err := w.Write(csvHeader); err != nil {
		return "", apperrors.Wrap(apperrors.ErrCodeInternal, "Failed to export subscribers", err)
	}
	for _, sub := range subscribers {
		firstName := ""
		if sub.FirstName != nil {
			firstName = *sub.FirstName
		}
		record := []string{sub.Email, firstName, sub.SubscribedAt.UTC().Format(csvDateLayout)}
		if err := w.Write(record); err != nil {
			return "", apperrors.Wrap(apperrors.ErrCodeInternal, "Failed to export subscribers", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", apperrors.Wrap(apperrors.ErrCodeInternal, "Failed to export subscribers", err)
	}

	return sb.String(), nil
}
