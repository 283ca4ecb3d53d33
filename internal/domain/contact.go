package domain

import "time"

const (
	ContactStatusNew     = "new"
	ContactStatusRead    = "read"
	ContactStatusReplied = "replied"
)

func IsValidContactStatus(status string) bool {
	switch status {
	case ContactStatusNew, ContactStatusRead, ContactStatusReplied:
		return true
	}
	return false
}

type Contact struct {
	ID         string    `bson:"id" json:"id"`
	Name       string    `bson:"name" json:"name"`
	Email      string    `bson:"email" json:"email"`
	Message    string    `bson:"message" json:"message"`
	Newsletter bool      `bson:"newsletter" json:"newsletter"`
	Status     string    `bson:"status" json:"status"`
	CreatedAt  time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt  time.Time `bson:"updated_at" json:"updated_at"`
}

type NewsletterSubscription struct {
	ID             string     `bson:"id" json:"id"`
	Email          string     `bson:"email" json:"email"`
	Name           *string    `bson:"name" json:"name"`
	Subscribed     bool       `bson:"subscribed" json:"subscribed"`
	SubscribedAt   time.Time  `bson:"subscribed_at" json:"subscribed_at"`
	UnsubscribedAt *time.Time `bson:"unsubscribed_at" json:"unsubscribed_at"`
}
