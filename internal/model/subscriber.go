package model

import (
	"time"
)

const DefaultSubscriberSource = "website"

type EmailSubscriber struct {
	ID           string    `db:"id" json:"id"`
	Email        string    `db:"email" json:"email"`
	FirstName    *string   `db:"first_name" json:"first_name"`
	SubscribedAt time.Time `db:"subscribed_at" json:"subscribed_at"`
	IsActive     bool      `db:"is_active" json:"is_active"`
	Source       string    `db:"source" json:"source"`
}

// UpsertSubscriberParams re-activates an existing subscriber with the same email. A nil FirstName keeps the stored one.
type UpsertSubscriberParams struct {
	Email     string
	FirstName *string
	Source    string
}
