package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/matifood/catalog-service/internal/domain"
	"github.com/matifood/catalog-service/internal/repository/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyticsService_GetStats(t *testing.T) {
	ctx := context.Background()
	store := memory.CreateMemoryStore()
	require.NoError(t, store.AddProduct(ctx, domain.Product{ID: "p1"}))
	require.NoError(t, store.AddReview(ctx, domain.Review{ID: "r1"}))
	require.NoError(t, store.AddContact(ctx, domain.Contact{ID: "c1"}))
	require.NoError(t, store.AddSubscription(ctx, domain.NewsletterSubscription{ID: "n1", Email: "a@example.com", Subscribed: true}))
	require.NoError(t, store.AddSubscription(ctx, domain.NewsletterSubscription{ID: "n2", Email: "b@example.com", Subscribed: false}))

	svc := CreateAnalyticsService(store.Repositories(), CreateNoopEventPublisher())

	stats, err := svc.GetStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(50000), stats.HappyFamilies)
	assert.Equal(t, int64(1), stats.ProductsAvailable)
	assert.Equal(t, int64(1), stats.TotalReviews)
	assert.Equal(t, int64(1), stats.NewsletterSubscribers)
	assert.Equal(t, 25, stats.Countries)
	assert.Equal(t, 100, stats.OrganicPercentage)
	assert.Equal(t, 3, stats.MichelinStars)
	assert.Equal(t, 4.9, stats.AverageRating)
	assert.Equal(t, 25, stats.YearsOfExperience)
	assert.Equal(t, 12, stats.MasterArtisans)
	assert.Equal(t, 15, stats.AwardsWon)

	// Served from the snapshot until the next refresh.
	require.NoError(t, store.AddProduct(ctx, domain.Product{ID: "p2"}))
	stats, err = svc.GetStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), stats.ProductsAvailable)

	require.NoError(t, svc.RefreshStats(ctx))
	stats, err = svc.GetStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), stats.ProductsAvailable)
}

func TestBuildStats_HappyFamiliesAboveFloor(t *testing.T) {
	stats := buildStats(domain.CollectionCounts{NewsletterSubscribers: 40000, Contacts: 20001}, time.Now())

	assert.Equal(t, int64(60001), stats.HappyFamilies)
}

func TestAnalyticsService_GetStatsPropagatesStoreErrors(t *testing.T) {
	ctx := context.Background()
	productRepo := new(mockProductRepository)
	productRepo.On("CountProducts", ctx).Return(int64(0), errors.New("connection refused")).Once()

	store := memory.CreateMemoryStore().Repositories()
	store.Products = productRepo

	_, err := CreateAnalyticsService(store, CreateNoopEventPublisher()).GetStats(ctx)

	assert.Error(t, err)
}

func TestAnalyticsService_GetRecentActivity(t *testing.T) {
	ctx := context.Background()
	store := memory.CreateMemoryStore()
	svc := CreateAnalyticsService(store.Repositories(), CreateNoopEventPublisher())

	empty, err := svc.GetRecentActivity(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.RecentActivity{}, empty)

	base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 7; i++ {
		require.NoError(t, store.AddContact(ctx, domain.Contact{ID: string(rune('a' + i)), CreatedAt: base.Add(time.Duration(i) * time.Minute)}))
	}
	require.NoError(t, store.AddReview(ctx, domain.Review{ID: "r1", CreatedAt: base}))
	require.NoError(t, store.AddSubscription(ctx, domain.NewsletterSubscription{ID: "n1", Email: "a@example.com", Subscribed: true, SubscribedAt: base.Add(time.Hour)}))

	activity, err := svc.GetRecentActivity(ctx)
	require.NoError(t, err)
	assert.Equal(t, 5, activity.RecentContacts)
	assert.Equal(t, 1, activity.RecentReviews)
	assert.Equal(t, 1, activity.RecentSubscribers)
	require.NotNil(t, activity.LastContact)
	assert.Equal(t, base.Add(6*time.Minute), *activity.LastContact)
	require.NotNil(t, activity.LastSubscription)
	assert.Equal(t, base.Add(time.Hour), *activity.LastSubscription)
}

func TestAnalyticsService_TrackEvent(t *testing.T) {
	ctx := context.Background()
	store := memory.CreateMemoryStore()
	svc := CreateAnalyticsService(store.Repositories(), CreateNoopEventPublisher())

	event, err := svc.TrackEvent(ctx, map[string]interface{}{
		"event":     "page_view",
		"page":      "/products",
		"timestamp": "client-supplied",
		"id":        "client-id",
	})

	require.NoError(t, err)
	assert.Len(t, event.ID, 26)
	assert.NotEqual(t, "client-id", event.ID)
	assert.Equal(t, map[string]interface{}{"event": "page_view", "page": "/products"}, event.Attributes)

	events := store.Events()
	require.Len(t, events, 1)
	assert.Equal(t, event.ID, events[0].ID)
}

func TestHealthService(t *testing.T) {
	ctx := context.Background()
	svc := CreateHealthService(memory.CreateMemoryStore())

	health := svc.CheckHealth(ctx)
	assert.Equal(t, "healthy", health.Status)
	assert.Equal(t, "connected", health.Database)

	cancelled, cancel := context.WithCancel(ctx)
	cancel()

	health = svc.CheckHealth(cancelled)
	assert.Equal(t, "unhealthy", health.Status)
	assert.Equal(t, "disconnected", health.Database)
}
