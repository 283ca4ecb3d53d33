package service

import (
	"context"
	"time"

	"github.com/matifood/catalog-service/internal/domain"
	"github.com/matifood/catalog-service/internal/filter"
	pkgdto "github.com/matifood/catalog-service/pkg/dto"
	"github.com/stretchr/testify/mock"
)

type mockProductRepository struct {
	mock.Mock
}

func (m *mockProductRepository) AddProduct(ctx context.Context, data domain.Product) error {
	args := m.Called(ctx, data)
	return args.Error(0)
}

func (m *mockProductRepository) AddProducts(ctx context.Context, data []domain.Product) error {
	args := m.Called(ctx, data)
	return args.Error(0)
}

func (m *mockProductRepository) GetProducts(ctx context.Context, f filter.ProductFilter, page pkgdto.Pagination) ([]domain.Product, error) {
	args := m.Called(ctx, f, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Product), args.Error(1)
}

func (m *mockProductRepository) GetProductByID(ctx context.Context, id string) (domain.Product, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Product), args.Error(1)
}

func (m *mockProductRepository) UpdateProduct(ctx context.Context, id string, data domain.ProductUpdate, updatedAt time.Time) (domain.Product, error) {
	args := m.Called(ctx, id, data, updatedAt)
	return args.Get(0).(domain.Product), args.Error(1)
}

func (m *mockProductRepository) UpdateProductRating(ctx context.Context, id string, rating float64, count int) (bool, error) {
	args := m.Called(ctx, id, rating, count)
	return args.Bool(0), args.Error(1)
}

func (m *mockProductRepository) DeleteProduct(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockProductRepository) CountProducts(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

type mockReviewRepository struct {
	mock.Mock
}

func (m *mockReviewRepository) AddReview(ctx context.Context, data domain.Review) error {
	args := m.Called(ctx, data)
	return args.Error(0)
}

func (m *mockReviewRepository) AddReviews(ctx context.Context, data []domain.Review) error {
	args := m.Called(ctx, data)
	return args.Error(0)
}

func (m *mockReviewRepository) GetReviews(ctx context.Context, f filter.ReviewFilter, page pkgdto.Pagination) ([]domain.Review, error) {
	args := m.Called(ctx, f, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Review), args.Error(1)
}

func (m *mockReviewRepository) GetReviewByID(ctx context.Context, id string) (domain.Review, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Review), args.Error(1)
}

func (m *mockReviewRepository) UpdateReviewModeration(ctx context.Context, id string, data domain.ReviewModeration) (domain.Review, error) {
	args := m.Called(ctx, id, data)
	return args.Get(0).(domain.Review), args.Error(1)
}

func (m *mockReviewRepository) AggregateRating(ctx context.Context, productID string) (domain.RatingSummary, error) {
	args := m.Called(ctx, productID)
	return args.Get(0).(domain.RatingSummary), args.Error(1)
}

func (m *mockReviewRepository) CountReviews(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

type mockRatingAggregator struct {
	mock.Mock
}

func (m *mockRatingAggregator) Recompute(ctx context.Context, productID string) {
	m.Called(ctx, productID)
}

func (m *mockRatingAggregator) OnReviewCreated(ctx context.Context, review domain.Review) {
	m.Called(ctx, review)
}

type mockEventPublisher struct {
	mock.Mock
}

func (m *mockEventPublisher) Publish(ctx context.Context, eventType string, key string, data interface{}) error {
	args := m.Called(ctx, eventType, key, data)
	return args.Error(0)
}

type mockRecaptchaVerifier struct {
	mock.Mock
}

func (m *mockRecaptchaVerifier) Verify(ctx context.Context, token string, remoteIP string) error {
	args := m.Called(ctx, token, remoteIP)
	return args.Error(0)
}

type mockContactNotifier struct {
	mock.Mock
}

func (m *mockContactNotifier) NotifyContact(ctx context.Context, contact domain.Contact) error {
	args := m.Called(ctx, contact)
	return args.Error(0)
}
