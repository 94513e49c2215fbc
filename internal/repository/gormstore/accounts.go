package gormstore

import (
	"context"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/jonboyd/site-server/internal/model"
	"github.com/jonboyd/site-server/internal/repository"
)

type adminAccountRepo struct {
	db *gorm.DB
}

func (r *adminAccountRepo) FindByID(ctx context.Context, id string) (*model.AdminAccount, error) {
	var row adminAccountRow
	found, err := first(&row, r.db.WithContext(ctx).Where("id = ?", id).First(&row).Error)
	if err != nil || found == nil {
		return nil, err
	}
	return found.toModel(), nil
}

func (r *adminAccountRepo) FindByEmail(ctx context.Context, email string) (*model.AdminAccount, error) {
	var row adminAccountRow
	err := r.db.WithContext(ctx).Where("email = ?", strings.ToLower(email)).First(&row).Error
	found, err := first(&row, err)
	if err != nil || found == nil {
		return nil, err
	}
	return found.toModel(), nil
}

func (r *adminAccountRepo) Create(ctx context.Context, params model.CreateAdminAccountParams) (*model.AdminAccount, error) {
	row := adminAccountRow{
		Email:        strings.ToLower(params.Email),
		PasswordHash: params.PasswordHash,
	}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return nil, mapError(err)
	}
	return row.toModel(), nil
}

type sessionRepo struct {
	db *gorm.DB
}

func (r *sessionRepo) FindValid(ctx context.Context, token string) (*model.Session, error) {
	var row sessionRow
	err := r.db.WithContext(ctx).
		Where("token = ? AND expires_at > ?", token, r.db.NowFunc()).
		First(&row).Error
	found, err := first(&row, err)
	if err != nil || found == nil {
		return nil, err
	}
	return found.toModel(), nil
}

func (r *sessionRepo) Create(ctx context.Context, params model.CreateSessionParams) (*model.Session, error) {
	row := sessionRow{
		AdminAccountID: params.AdminAccountID,
		Token:          params.Token,
		ExpiresAt:      params.ExpiresAt.UTC(),
		CreatedAt:      params.CreatedAt.UTC(),
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&adminAccountRow{}).Where("id = ?", params.AdminAccountID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return repository.ErrForeignKeyViolation
		}
		return tx.Omit(clause.Associations).Create(&row).Error
	})
	if err != nil {
		return nil, mapError(err)
	}
	return row.toModel(), nil
}

func (r *sessionRepo) DeleteByToken(ctx context.Context, token string) error {
	return r.db.WithContext(ctx).Where("token = ?", token).Delete(&sessionRow{}).Error
}

func (r *sessionRepo) DeleteExpired(ctx context.Context) (int64, error) {
	result := r.db.WithContext(ctx).Where("expires_at <= ?", r.db.NowFunc()).Delete(&sessionRow{})
	return result.RowsAffected, result.Error
}
