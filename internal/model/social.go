package model

import (
	"time"
)

type SocialLink struct {
	ID           string    `db:"id" json:"id"`
	Platform     string    `db:"platform" json:"platform"`
	URL          string    `db:"url" json:"url"`
	DisplayOrder int       `db:"display_order" json:"display_order"`
	IsActive     bool      `db:"is_active" json:"is_active"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time `db:"updated_at" json:"updated_at"`
}

type CreateSocialLinkParams struct {
	Platform     string
	URL          string
	DisplayOrder *int
}

type UpdateSocialLinkParams struct {
	Platform     *string
	URL          *string
	DisplayOrder *int
	IsActive     *bool
}
