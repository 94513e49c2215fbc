package gormstore

import (
	"context"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/jonboyd/site-server/internal/model"
)

type subscriberRepo struct {
	db *gorm.DB
}

func (r *subscriberRepo) List(ctx context.Context, only bool) ([]model.EmailSubscriber, error) {
	var rows []subscriberRow
	err := activeOnly(r.db.WithContext(ctx), only).
		Order("subscribed_at DESC").Order("rowid DESC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	subscribers := make([]model.EmailSubscriber, len(rows))
	for i, row := range rows {
		subscribers[i] = row.toModel()
	}
	return subscribers, nil
}

func (r *subscriberRepo) Upsert(ctx context.Context, params model.UpsertSubscriberParams) (*model.EmailSubscriber, error) {
	email := strings.ToLower(params.Email)
	source := params.Source
	if source == "" {
		source = model.DefaultSubscriberSource
	}

	row := subscriberRow{
		Email:     email,
		FirstName: params.FirstName,
		IsActive:  true,
		Source:    source,
	}
	// Re-subscribing reactivates the row; a missing first name keeps the stored one.
	set := map[string]any{"is_active": true}
	if params.FirstName != nil {
		set["first_name"] = *params.FirstName
	}
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "email"}},
		DoUpdates: clause.Assignments(set),
	}).Create(&row).Error
	if err != nil {
		return nil, mapError(err)
	}

	var stored subscriberRow
	found, err := first(&stored, r.db.WithContext(ctx).Where("email = ?", email).First(&stored).Error)
	if err != nil || found == nil {
		return nil, err
	}
	subscriber := found.toModel()
	return &subscriber, nil
}

func (r *subscriberRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&subscriberRow{}).Error
}
