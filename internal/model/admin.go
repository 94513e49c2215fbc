package model

import (
	"time"
)

type AdminAccount struct {
	ID           string    `db:"id" json:"id"`
	Email        string    `db:"email" json:"email"`
	PasswordHash string    `db:"password_hash" json:"-"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}

type CreateAdminAccountParams struct {
	Email        string
	PasswordHash string
}

// Principal is the authenticated admin behind a request. It never carries the password hash.
type Principal struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

func (a *AdminAccount) Principal() *Principal {
	return &Principal{ID: a.ID, Email: a.Email}
}
