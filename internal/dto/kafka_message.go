package dto

const (
	EventReviewCreated          = "review_created"
	EventProductRatingUpdated   = "product_rating_updated"
	EventContactSubmitted       = "contact_submitted"
	EventNewsletterSubscribed   = "newsletter_subscribed"
	EventAnalyticsTracked       = "analytics_event"
	EventRecomputeProductRating = "recompute_product_rating"
)

type KafkaMessage struct {
	EventType string      `json:"event_type"`
	Data      interface{} `json:"data"`
}

type ProductRatingEvent struct {
	ProductID   string  `json:"product_id"`
	Rating      float64 `json:"rating,omitempty"`
	ReviewCount int     `json:"review_count,omitempty"`
}
