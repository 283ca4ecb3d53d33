package repository

import (
	"context"
	"time"

	"github.com/matifood/catalog-service/internal/domain"
	"github.com/matifood/catalog-service/internal/filter"
	pkgdto "github.com/matifood/catalog-service/pkg/dto"
)

type ProductRepository interface {
	AddProduct(ctx context.Context, data domain.Product) (err error)
	AddProducts(ctx context.Context, data []domain.Product) (err error)
	GetProducts(ctx context.Context, f filter.ProductFilter, page pkgdto.Pagination) (data []domain.Product, err error)
	GetProductByID(ctx context.Context, id string) (product domain.Product, err error)
	UpdateProduct(ctx context.Context, id string, data domain.ProductUpdate, updatedAt time.Time) (product domain.Product, err error)
	// UpdateProductRating writes the derived rating fields. It is the only
	// write path for rating and review_count.
	UpdateProductRating(ctx context.Context, id string, rating float64, count int) (matched bool, err error)
	DeleteProduct(ctx context.Context, id string) (err error)
	CountProducts(ctx context.Context) (count int64, err error)
}

type ReviewRepository interface {
	AddReview(ctx context.Context, data domain.Review) (err error)
	AddReviews(ctx context.Context, data []domain.Review) (err error)
	// GetReviews returns matching reviews newest first.
	GetReviews(ctx context.Context, f filter.ReviewFilter, page pkgdto.Pagination) (data []domain.Review, err error)
	GetReviewByID(ctx context.Context, id string) (review domain.Review, err error)
	UpdateReviewModeration(ctx context.Context, id string, data domain.ReviewModeration) (review domain.Review, err error)
	// AggregateRating averages and counts the ratings of every review linked
	// to productID. A zero Count means no review references the product.
	AggregateRating(ctx context.Context, productID string) (summary domain.RatingSummary, err error)
	CountReviews(ctx context.Context) (count int64, err error)
}

type ContactRepository interface {
	AddContact(ctx context.Context, data domain.Contact) (err error)
	GetContacts(ctx context.Context, status *string, page pkgdto.Pagination) (data []domain.Contact, err error)
	UpdateContactStatus(ctx context.Context, id string, status string, updatedAt time.Time) (contact domain.Contact, err error)
	CountContacts(ctx context.Context) (count int64, err error)
}

type NewsletterRepository interface {
	AddSubscription(ctx context.Context, data domain.NewsletterSubscription) (err error)
	GetSubscriptionByEmail(ctx context.Context, email string) (subscription domain.NewsletterSubscription, err error)
	Resubscribe(ctx context.Context, email string) (subscription domain.NewsletterSubscription, err error)
	Unsubscribe(ctx context.Context, email string, at time.Time) (err error)
	CountActiveSubscribers(ctx context.Context) (count int64, err error)
	// GetRecentSubscriptions returns active subscriptions, newest first.
	GetRecentSubscriptions(ctx context.Context, limit int) (data []domain.NewsletterSubscription, err error)
}

type AnalyticsRepository interface {
	AddEvent(ctx context.Context, data domain.AnalyticsEvent) (err error)
}

// HealthChecker reports whether the backing store is reachable.
type HealthChecker interface {
	Ping(ctx context.Context) (err error)
}

// Store groups the repositories of one storage backend.
type Store struct {
	Products   ProductRepository
	Reviews    ReviewRepository
	Contacts   ContactRepository
	Newsletter NewsletterRepository
	Analytics  AnalyticsRepository
	Health     HealthChecker
}
