package model

import (
	"time"
)

type Video struct {
	ID           string    `db:"id" json:"id"`
	Title        string    `db:"title" json:"title"`
	Description  *string   `db:"description" json:"description"`
	YouTubeID    string    `db:"youtube_id" json:"youtube_id"`
	DisplayOrder int       `db:"display_order" json:"display_order"`
	IsActive     bool      `db:"is_active" json:"is_active"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time `db:"updated_at" json:"updated_at"`
}

type CreateVideoParams struct {
	Title        string
	Description  *string
	YouTubeID    string
	DisplayOrder *int
}

type UpdateVideoParams struct {
	Title        *string
	Description  *string
	YouTubeID    *string
	DisplayOrder *int
	IsActive     *bool
}
