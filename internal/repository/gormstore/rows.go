package gormstore

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/jonboyd/site-server/internal/model"
)

type adminAccountRow struct {
	ID           string    `gorm:"column:id;primaryKey"`
	Email        string    `gorm:"column:email;uniqueIndex;not null"`
	PasswordHash string    `gorm:"column:password_hash;not null"`
	CreatedAt    time.Time `gorm:"column:created_at"`
}

func (adminAccountRow) TableName() string { return "admin_accounts" }

func (r *adminAccountRow) BeforeCreate(*gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}

func (r adminAccountRow) toModel() *model.AdminAccount {
	return &model.AdminAccount{
		ID:           r.ID,
		Email:        r.Email,
		PasswordHash: r.PasswordHash,
		CreatedAt:    r.CreatedAt,
	}
}

type sessionRow struct {
	ID             string          `gorm:"column:id;primaryKey"`
	AdminAccountID string          `gorm:"column:admin_account_id;not null;index"`
	AdminAccount   adminAccountRow `gorm:"foreignKey:AdminAccountID;constraint:OnDelete:CASCADE"`
	Token          string          `gorm:"column:token;uniqueIndex;not null"`
	ExpiresAt      time.Time       `gorm:"column:expires_at;index;not null"`
	CreatedAt      time.Time       `gorm:"column:created_at"`
}

func (sessionRow) TableName() string { return "sessions" }

func (r *sessionRow) BeforeCreate(*gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}

func (r sessionRow) toModel() *model.Session {
	return &model.Session{
		ID:             r.ID,
		AdminAccountID: r.AdminAccountID,
		Token:          r.Token,
		ExpiresAt:      r.ExpiresAt,
		CreatedAt:      r.CreatedAt,
	}
}

type siteContentRow struct {
	ID           string    `gorm:"column:id;primaryKey"`
	BioText      string    `gorm:"column:bio_text;not null;default:''"`
	HeroTitle    string    `gorm:"column:hero_title;not null;default:'Jon Boyd'"`
	HeroSubtitle *string   `gorm:"column:hero_subtitle"`
	CreatedAt    time.Time `gorm:"column:created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at"`
}

func (siteContentRow) TableName() string { return "site_content" }

func (r siteContentRow) toModel() *model.SiteContent {
	return &model.SiteContent{
		ID:           r.ID,
		BioText:      r.BioText,
		HeroTitle:    r.HeroTitle,
		HeroSubtitle: r.HeroSubtitle,
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}
}

type socialLinkRow struct {
	ID           string    `gorm:"column:id;primaryKey"`
	Platform     string    `gorm:"column:platform;not null"`
	URL          string    `gorm:"column:url;not null"`
	DisplayOrder int       `gorm:"column:display_order;not null;default:0"`
	IsActive     bool      `gorm:"column:is_active;not null;default:true"`
	CreatedAt    time.Time `gorm:"column:created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at"`
}

func (socialLinkRow) TableName() string { return "social_links" }

func (r *socialLinkRow) BeforeCreate(*gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}

func (r socialLinkRow) toModel() model.SocialLink {
	return model.SocialLink{
		ID:           r.ID,
		Platform:     r.Platform,
		URL:          r.URL,
		DisplayOrder: r.DisplayOrder,
		IsActive:     r.IsActive,
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}
}

type videoRow struct {
	ID           string    `gorm:"column:id;primaryKey"`
	Title        string    `gorm:"column:title;not null"`
	Description  *string   `gorm:"column:description"`
	YouTubeID    string    `gorm:"column:youtube_id;not null"`
	DisplayOrder int       `gorm:"column:display_order;not null;default:0"`
	IsActive     bool      `gorm:"column:is_active;not null;default:true"`
	CreatedAt    time.Time `gorm:"column:created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at"`
}

func (videoRow) TableName() string { return "videos" }

func (r *videoRow) BeforeCreate(*gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}

func (r videoRow) toModel() model.Video {
	return model.Video{
		ID:           r.ID,
		Title:        r.Title,
		Description:  r.Description,
		YouTubeID:    r.YouTubeID,
		DisplayOrder: r.DisplayOrder,
		IsActive:     r.IsActive,
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}
}

type subscriberRow struct {
	ID           string    `gorm:"column:id;primaryKey"`
	Email        string    `gorm:"column:email;uniqueIndex;not null"`
	FirstName    *string   `gorm:"column:first_name"`
	SubscribedAt time.Time `gorm:"column:subscribed_at;not null"`
	IsActive     bool      `gorm:"column:is_active;not null;default:true"`
	Source       string    `gorm:"column:source;not null;default:'website'"`
}

func (subscriberRow) TableName() string { return "email_subscribers" }

func (r *subscriberRow) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	if r.SubscribedAt.IsZero() {
		r.SubscribedAt = tx.NowFunc()
	}
	return nil
}

func (r subscriberRow) toModel() model.EmailSubscriber {
	return model.EmailSubscriber{
		ID:           r.ID,
		Email:        r.Email,
		FirstName:    r.FirstName,
		SubscribedAt: r.SubscribedAt,
		IsActive:     r.IsActive,
		Source:       r.Source,
	}
}

func allRows() []any {
	return []any{
		&adminAccountRow{},
		&sessionRow{},
		&siteContentRow{},
		&socialLinkRow{},
		&videoRow{},
		&subscriberRow{},
	}
}
