package domain

import "time"

// AnalyticsEvent is a free-form client event. Attributes keep whatever the
// client sent; only the id and timestamp are set by the server.
type AnalyticsEvent struct {
	ID         string                 `bson:"id" json:"id"`
	Attributes map[string]interface{} `bson:",inline" json:"-"`
	Timestamp  time.Time              `bson:"timestamp" json:"timestamp"`
}

// CollectionCounts are the raw document counts behind the site statistics.
type CollectionCounts struct {
	Products              int64
	Reviews               int64
	NewsletterSubscribers int64
	Contacts              int64
}

// RecentActivity summarises the newest documents of the interaction collections.
type RecentActivity struct {
	RecentContacts    int        `json:"recent_contacts"`
	RecentReviews     int        `json:"recent_reviews"`
	RecentSubscribers int        `json:"recent_subscribers"`
	LastContact       *time.Time `json:"last_contact"`
	LastReview        *time.Time `json:"last_review"`
	LastSubscription  *time.Time `json:"last_subscription"`
}
