package service

import (
	"context"
	"math"

	"github.com/matifood/catalog-service/internal/domain"
	"github.com/matifood/catalog-service/internal/dto"
	"github.com/matifood/catalog-service/internal/repository"
	"github.com/rs/zerolog/log"
)

type RatingAggregatorImpl struct {
	productRepo repository.ProductRepository
	reviewRepo  repository.ReviewRepository
	publisher   EventPublisher
}

func CreateRatingAggregator(productRepo repository.ProductRepository, reviewRepo repository.ReviewRepository, publisher EventPublisher) RatingAggregator {
	return &RatingAggregatorImpl{productRepo: productRepo, reviewRepo: reviewRepo, publisher: publisher}
}

// Recompute reads the rating aggregate of productID and writes it onto the
// product. It performs one read and at most one write. The read and write are
// not atomic: concurrent recomputes for one product may overwrite each other,
// and the last write wins.
func (a *RatingAggregatorImpl) Recompute(ctx context.Context, productID string) {
	logger := log.Ctx(ctx).With().Str("component", "RecomputeRating").Str("product_id", productID).Logger()

	summary, err := a.reviewRepo.AggregateRating(ctx, productID)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to aggregate product rating")
		return
	}

	if summary.Count == 0 {
		return
	}

	rating := roundRating(summary.Average)

	matched, err := a.productRepo.UpdateProductRating(ctx, productID, rating, summary.Count)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to update product rating")
		return
	}

	if !matched {
		logger.Debug().Msg("Reviewed product does not exist, rating not stored")
		return
	}

	event := dto.ProductRatingEvent{ProductID: productID, Rating: rating, ReviewCount: summary.Count}
	if err := a.publisher.Publish(ctx, dto.EventProductRatingUpdated, productID, event); err != nil {
		logger.Error().Err(err).Msg("Failed to publish rating update")
	}
}

// OnReviewCreated recomputes the rating of the reviewed product. Testimonials
// are ignored.
func (a *RatingAggregatorImpl) OnReviewCreated(ctx context.Context, review domain.Review) {
	if review.IsTestimonial() {
		return
	}

	a.Recompute(ctx, *review.ProductID)
}

// roundRating rounds to one decimal place, halves away from zero.
func roundRating(avg float64) float64 {
	return math.Round(avg*10) / 10
}
