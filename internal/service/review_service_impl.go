package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/matifood/catalog-service/internal/domain"
	"github.com/matifood/catalog-service/internal/dto"
	"github.com/matifood/catalog-service/internal/filter"
	"github.com/matifood/catalog-service/internal/repository"
	pkgdto "github.com/matifood/catalog-service/pkg/dto"
	"github.com/matifood/catalog-service/pkg/errs"
	"github.com/rs/zerolog/log"
)

type ReviewServiceImpl struct {
	reviewRepo repository.ReviewRepository
	aggregator RatingAggregator
	publisher  EventPublisher
}

func CreateReviewService(reviewRepo repository.ReviewRepository, aggregator RatingAggregator, publisher EventPublisher) ReviewService {
	return &ReviewServiceImpl{reviewRepo: reviewRepo, aggregator: aggregator, publisher: publisher}
}

func (s *ReviewServiceImpl) GetReviews(ctx context.Context, params filter.ReviewParams, page pkgdto.Pagination) (data []domain.Review, err error) {
	return s.reviewRepo.GetReviews(ctx, filter.BuildReviewFilter(params), page)
}

func (s *ReviewServiceImpl) GetFeaturedReviews(ctx context.Context, limit int) (data []domain.Review, err error) {
	featured := true
	f := filter.BuildReviewFilter(filter.ReviewParams{Featured: &featured})

	return s.reviewRepo.GetReviews(ctx, f, pkgdto.Pagination{Limit: limit})
}

func (s *ReviewServiceImpl) GetProductReviews(ctx context.Context, productID string, page pkgdto.Pagination) (data []domain.Review, err error) {
	f := filter.BuildReviewFilter(filter.ReviewParams{ProductID: &productID})

	return s.reviewRepo.GetReviews(ctx, f, page)
}

func (s *ReviewServiceImpl) AddReview(ctx context.Context, req dto.ReviewRequest) (review domain.Review, err error) {
	if req.Rating < domain.MinRating || req.Rating > domain.MaxRating {
		return domain.Review{}, errs.ErrInvalidRating
	}

	productID := req.ProductID
	if productID != nil && *productID == "" {
		productID = nil
	}

	review = domain.Review{
		ID:            uuid.New().String(),
		ProductID:     productID,
		CustomerName:  req.CustomerName,
		CustomerEmail: req.CustomerEmail,
		Rating:        req.Rating,
		Comment:       req.Comment,
		Avatar:        req.Avatar,
		CreatedAt:     time.Now().UTC(),
	}

	if err = s.reviewRepo.AddReview(ctx, review); err != nil {
		return domain.Review{}, err
	}

	// The review is already stored, so a client disconnect must not leave
	// the product's rating stale.
	s.aggregator.OnReviewCreated(context.WithoutCancel(ctx), review)

	key := ""
	if productID != nil {
		key = *productID
	}
	if err := s.publisher.Publish(ctx, dto.EventReviewCreated, key, review); err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "AddReview").Msg("Failed to publish review_created")
	}

	return review, nil
}

// ModerateReview only touches verified and featured, so it never changes a
// product's rating.
func (s *ReviewServiceImpl) ModerateReview(ctx context.Context, id string, req dto.ReviewModerationRequest) (review domain.Review, err error) {
	return s.reviewRepo.UpdateReviewModeration(ctx, id, req.ToDomain())
}
