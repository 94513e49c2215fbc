package model

import (
	"time"
)

type Session struct {
	ID             string    `db:"id" json:"id"`
	AdminAccountID string    `db:"admin_account_id" json:"admin_account_id"`
	Token          string    `db:"token" json:"-"`
	ExpiresAt      time.Time `db:"expires_at" json:"expires_at"`
	CreatedAt      time.Time `db:"created_at" json:"created_at"`
}

type CreateSessionParams struct {
	AdminAccountID string
	Token          string
	CreatedAt      time.Time
	ExpiresAt      time.Time
}
