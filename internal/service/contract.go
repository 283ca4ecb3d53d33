package service

import (
	"context"

	"github.com/matifood/catalog-service/internal/domain"
	"github.com/matifood/catalog-service/internal/dto"
	"github.com/matifood/catalog-service/internal/filter"
	pkgdto "github.com/matifood/catalog-service/pkg/dto"
)

// RatingAggregator keeps a product's rating and review count in line with
// the reviews that reference it. Neither method reports errors.
type RatingAggregator interface {
	Recompute(ctx context.Context, productID string)
	OnReviewCreated(ctx context.Context, review domain.Review)
}

type ProductService interface {
	GetProducts(ctx context.Context, params filter.ProductParams, page pkgdto.Pagination) (data []domain.Product, err error)
	GetProductByID(ctx context.Context, id string) (product domain.Product, err error)
	AddProduct(ctx context.Context, req dto.ProductRequest) (product domain.Product, err error)
	UpdateProduct(ctx context.Context, id string, req dto.ProductUpdateRequest) (product domain.Product, err error)
	DeleteProduct(ctx context.Context, id string) (err error)
}

type ReviewService interface {
	GetReviews(ctx context.Context, params filter.ReviewParams, page pkgdto.Pagination) (data []domain.Review, err error)
	GetFeaturedReviews(ctx context.Context, limit int) (data []domain.Review, err error)
	GetProductReviews(ctx context.Context, productID string, page pkgdto.Pagination) (data []domain.Review, err error)
	AddReview(ctx context.Context, req dto.ReviewRequest) (review domain.Review, err error)
	ModerateReview(ctx context.Context, id string, req dto.ReviewModerationRequest) (review domain.Review, err error)
}

type ContactService interface {
	SubmitContact(ctx context.Context, req dto.ContactRequest, remoteIP string) (contact domain.Contact, err error)
	GetContacts(ctx context.Context, status *string, page pkgdto.Pagination) (data []domain.Contact, err error)
	UpdateContactStatus(ctx context.Context, id string, status string) (contact domain.Contact, err error)
	Subscribe(ctx context.Context, req dto.NewsletterRequest) (subscription domain.NewsletterSubscription, err error)
	Unsubscribe(ctx context.Context, email string) (err error)
}

type AnalyticsService interface {
	GetStats(ctx context.Context) (stats dto.StatsResponse, err error)
	RefreshStats(ctx context.Context) (err error)
	GetRecentActivity(ctx context.Context) (activity domain.RecentActivity, err error)
	TrackEvent(ctx context.Context, attributes map[string]interface{}) (event domain.AnalyticsEvent, err error)
}

type HealthService interface {
	CheckHealth(ctx context.Context) dto.HealthResponse
}

// EventPublisher emits domain events. Publishing is best-effort: callers log
// a failure and carry on.
type EventPublisher interface {
	Publish(ctx context.Context, eventType string, key string, data interface{}) (err error)
}

// EventDrainer is implemented by publishers that deliver in the background.
type EventDrainer interface {
	Drain(ctx context.Context) error
}

type EventConsumer interface {
	ConsumeEvent(ctx context.Context)
}

type RecaptchaVerifier interface {
	Verify(ctx context.Context, token string, remoteIP string) (err error)
}

type ContactNotifier interface {
	NotifyContact(ctx context.Context, contact domain.Contact) (err error)
}
