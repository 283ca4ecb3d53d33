package service

import (
	"context"
	"sync"
	"time"

	"github.com/matifood/catalog-service/internal/domain"
	"github.com/matifood/catalog-service/internal/dto"
	"github.com/matifood/catalog-service/internal/filter"
	"github.com/matifood/catalog-service/internal/repository"
	pkgdto "github.com/matifood/catalog-service/pkg/dto"
	"github.com/oklog/ulid/v2"
	"github.com/rs/zerolog/log"
)

const (
	minHappyFamilies    = 50000
	recentActivityLimit = 5
)

// Attributes a client may not set on a tracked event.
var reservedEventKeys = []string{"_id", "id", "timestamp"}

type AnalyticsServiceImpl struct {
	store     repository.Store
	publisher EventPublisher

	mu       sync.RWMutex
	snapshot *dto.StatsResponse
}

func CreateAnalyticsService(store repository.Store, publisher EventPublisher) AnalyticsService {
	return &AnalyticsServiceImpl{store: store, publisher: publisher}
}

// GetStats serves the last snapshot taken by RefreshStats, computing one on
// first use.
func (s *AnalyticsServiceImpl) GetStats(ctx context.Context) (stats dto.StatsResponse, err error) {
	s.mu.RLock()
	snapshot := s.snapshot
	s.mu.RUnlock()

	if snapshot != nil {
		return *snapshot, nil
	}

	if err = s.RefreshStats(ctx); err != nil {
		return dto.StatsResponse{}, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	return *s.snapshot, nil
}

func (s *AnalyticsServiceImpl) RefreshStats(ctx context.Context) (err error) {
	counts, err := s.collectionCounts(ctx)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "RefreshStats").Msg("")
		return err
	}

	stats := buildStats(counts, time.Now().UTC())

	s.mu.Lock()
	s.snapshot = &stats
	s.mu.Unlock()

	return nil
}

func (s *AnalyticsServiceImpl) collectionCounts(ctx context.Context) (counts domain.CollectionCounts, err error) {
	if counts.Products, err = s.store.Products.CountProducts(ctx); err != nil {
		return
	}
	if counts.Reviews, err = s.store.Reviews.CountReviews(ctx); err != nil {
		return
	}
	if counts.NewsletterSubscribers, err = s.store.Newsletter.CountActiveSubscribers(ctx); err != nil {
		return
	}
	if counts.Contacts, err = s.store.Contacts.CountContacts(ctx); err != nil {
		return
	}
	return counts, nil
}

func buildStats(counts domain.CollectionCounts, generatedAt time.Time) dto.StatsResponse {
	return dto.StatsResponse{
		HappyFamilies:         max(counts.NewsletterSubscribers+counts.Contacts, minHappyFamilies),
		Countries:             25,
		OrganicPercentage:     100,
		MichelinStars:         3,
		ProductsAvailable:     counts.Products,
		TotalReviews:          counts.Reviews,
		NewsletterSubscribers: counts.NewsletterSubscribers,
		AverageRating:         4.9,
		YearsOfExperience:     25,
		MasterArtisans:        12,
		AwardsWon:             15,
		GeneratedAt:           generatedAt,
	}
}

func (s *AnalyticsServiceImpl) GetRecentActivity(ctx context.Context) (activity domain.RecentActivity, err error) {
	page := pkgdto.Pagination{Limit: recentActivityLimit}

	contacts, err := s.store.Contacts.GetContacts(ctx, nil, page)
	if err != nil {
		return
	}

	reviews, err := s.store.Reviews.GetReviews(ctx, filter.BuildReviewFilter(filter.ReviewParams{}), page)
	if err != nil {
		return
	}

	subscriptions, err := s.store.Newsletter.GetRecentSubscriptions(ctx, recentActivityLimit)
	if err != nil {
		return
	}

	activity = domain.RecentActivity{
		RecentContacts:    len(contacts),
		RecentReviews:     len(reviews),
		RecentSubscribers: len(subscriptions),
	}
	if len(contacts) > 0 {
		activity.LastContact = &contacts[0].CreatedAt
	}
	if len(reviews) > 0 {
		activity.LastReview = &reviews[0].CreatedAt
	}
	if len(subscriptions) > 0 {
		activity.LastSubscription = &subscriptions[0].SubscribedAt
	}

	return activity, nil
}

func (s *AnalyticsServiceImpl) TrackEvent(ctx context.Context, attributes map[string]interface{}) (event domain.AnalyticsEvent, err error) {
	attrs := make(map[string]interface{}, len(attributes))
	for k, v := range attributes {
		attrs[k] = v
	}
	for _, key := range reservedEventKeys {
		delete(attrs, key)
	}

	event = domain.AnalyticsEvent{
		ID:         ulid.Make().String(),
		Attributes: attrs,
		Timestamp:  time.Now().UTC(),
	}

	if err = s.store.Analytics.AddEvent(ctx, event); err != nil {
		return domain.AnalyticsEvent{}, err
	}

	if err := s.publisher.Publish(ctx, dto.EventAnalyticsTracked, event.ID, attrs); err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "TrackEvent").Msg("Failed to publish analytics_event")
	}

	return event, nil
}

type HealthServiceImpl struct {
	checker repository.HealthChecker
}

func CreateHealthService(checker repository.HealthChecker) HealthService {
	return &HealthServiceImpl{checker: checker}
}

func (s *HealthServiceImpl) CheckHealth(ctx context.Context) dto.HealthResponse {
	if err := s.checker.Ping(ctx); err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "CheckHealth").Msg("Database ping failed")
		return dto.HealthResponse{Status: "unhealthy", Database: "disconnected", Message: "Mati Food API is running"}
	}

	return dto.HealthResponse{Status: "healthy", Database: "connected", Message: "Mati Food API is running"}
}
