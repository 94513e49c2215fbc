package model

import (
	"time"
)

// SiteContentID is the primary key of the singleton site_content row.
const SiteContentID = "00000000-0000-0000-0000-000000000001"

type SiteContent struct {
	ID           string    `db:"id" json:"id"`
	BioText      string    `db:"bio_text" json:"bio_text"`
	HeroTitle    string    `db:"hero_title" json:"hero_title"`
	HeroSubtitle *string   `db:"hero_subtitle" json:"hero_subtitle"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time `db:"updated_at" json:"updated_at"`
}

type UpdateSiteContentParams struct {
	BioText      *string
	HeroTitle    *string
	HeroSubtitle *string
}
