package domain

import "time"

const (
	MinRating = 1
	MaxRating = 5
)

// Review is a customer review. Reviews without a product id are general
// testimonials and never count towards a product's rating.
type Review struct {
	ID            string    `bson:"id" json:"id"`
	ProductID     *string   `bson:"product_id" json:"product_id"`
	CustomerName  string    `bson:"customer_name" json:"customer_name"`
	CustomerEmail *string   `bson:"customer_email" json:"customer_email"`
	Rating        int       `bson:"rating" json:"rating"`
	Comment       string    `bson:"comment" json:"comment"`
	Verified      bool      `bson:"verified" json:"verified"`
	Featured      bool      `bson:"featured" json:"featured"`
	Avatar        *string   `bson:"avatar" json:"avatar"`
	CreatedAt     time.Time `bson:"created_at" json:"created_at"`
}

func (r Review) IsTestimonial() bool {
	return r.ProductID == nil || *r.ProductID == ""
}

// ReviewModeration is the admin-controlled part of a review.
type ReviewModeration struct {
	Verified *bool
	Featured *bool
}

func (m ReviewModeration) Apply(r *Review) {
	if m.Verified != nil {
		r.Verified = *m.Verified
	}
	if m.Featured != nil {
		r.Featured = *m.Featured
	}
}

func (m ReviewModeration) IsEmpty() bool {
	return m.Verified == nil && m.Featured == nil
}

// RatingSummary is the raw aggregate of a product's reviews.
type RatingSummary struct {
	Average float64 `bson:"avg_rating"`
	Count   int     `bson:"review_count"`
}
