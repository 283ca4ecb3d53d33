package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/matifood/catalog-service/internal/domain"
	"github.com/matifood/catalog-service/internal/filter"
	pkgdto "github.com/matifood/catalog-service/pkg/dto"
	"github.com/matifood/catalog-service/pkg/errs"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoDBReviewRepositoryImpl struct {
	db *mongo.Database
}

func CreateMongoDBReviewRepository(db *mongo.Database) ReviewRepository {
	return &MongoDBReviewRepositoryImpl{db: db}
}

func (r *MongoDBReviewRepositoryImpl) AddReview(ctx context.Context, data domain.Review) (err error) {
	_, err = r.db.Collection(CollectionReviews).InsertOne(ctx, data)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "AddReview").Msg("")
		return fmt.Errorf("insert review: %w", err)
	}

	return nil
}

func (r *MongoDBReviewRepositoryImpl) AddReviews(ctx context.Context, data []domain.Review) (err error) {
	if len(data) == 0 {
		return nil
	}

	docs := make([]interface{}, 0, len(data))
	for _, review := range data {
		docs = append(docs, review)
	}

	_, err = r.db.Collection(CollectionReviews).InsertMany(ctx, docs)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "AddReviews").Msg("")
		return fmt.Errorf("insert reviews: %w", err)
	}

	return nil
}

func (r *MongoDBReviewRepositoryImpl) GetReviews(ctx context.Context, f filter.ReviewFilter, page pkgdto.Pagination) (data []domain.Review, err error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetSkip(int64(page.Skip))
	if page.Limit > 0 {
		opts.SetLimit(int64(page.Limit))
	}

	cursor, err := r.db.Collection(CollectionReviews).Find(ctx, f.BSON(), opts)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetReviews").Msg("")
		return nil, fmt.Errorf("find reviews: %w", err)
	}

	data = []domain.Review{}
	if err = cursor.All(ctx, &data); err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetReviews").Msg("")
		return nil, fmt.Errorf("decode reviews: %w", err)
	}

	return data, nil
}

func (r *MongoDBReviewRepositoryImpl) GetReviewByID(ctx context.Context, id string) (review domain.Review, err error) {
	err = r.db.Collection(CollectionReviews).FindOne(ctx, bson.D{{Key: "id", Value: id}}).Decode(&review)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return review, errs.ErrReviewNotFound
		}

		log.Ctx(ctx).Error().Err(err).Str("component", "GetReviewByID").Msg("")
		return review, fmt.Errorf("find review %s: %w", id, err)
	}

	return review, nil
}

func (r *MongoDBReviewRepositoryImpl) UpdateReviewModeration(ctx context.Context, id string, data domain.ReviewModeration) (review domain.Review, err error) {
	if data.IsEmpty() {
		return r.GetReviewByID(ctx, id)
	}

	fields := bson.D{}
	if data.Verified != nil {
		fields = append(fields, bson.E{Key: "verified", Value: *data.Verified})
	}
	if data.Featured != nil {
		fields = append(fields, bson.E{Key: "featured", Value: *data.Featured})
	}

	filter := bson.D{{Key: "id", Value: id}}
	update := bson.D{{Key: "$set", Value: fields}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	err = r.db.Collection(CollectionReviews).FindOneAndUpdate(ctx, filter, update, opts).Decode(&review)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return review, errs.ErrReviewNotFound
		}

		log.Ctx(ctx).Error().Err(err).Str("component", "UpdateReviewModeration").Msg("Failed to update review")
		return review, fmt.Errorf("update review %s: %w", id, err)
	}

	return review, nil
}

func (r *MongoDBReviewRepositoryImpl) AggregateRating(ctx context.Context, productID string) (summary domain.RatingSummary, err error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.D{{Key: "product_id", Value: productID}}}},
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: nil},
			{Key: "avg_rating", Value: bson.D{{Key: "$avg", Value: "$rating"}}},
			{Key: "review_count", Value: bson.D{{Key: "$sum", Value: 1}}},
		}}},
	}

	cursor, err := r.db.Collection(CollectionReviews).Aggregate(ctx, pipeline)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "AggregateRating").Msg("")
		return summary, fmt.Errorf("aggregate rating %s: %w", productID, err)
	}
	defer cursor.Close(ctx)

	if cursor.Next(ctx) {
		if err = cursor.Decode(&summary); err != nil {
			log.Ctx(ctx).Error().Err(err).Str("component", "AggregateRating").Msg("")
			return summary, fmt.Errorf("decode rating summary %s: %w", productID, err)
		}
	}

	if err = cursor.Err(); err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "AggregateRating").Msg("")
		return domain.RatingSummary{}, fmt.Errorf("aggregate rating %s: %w", productID, err)
	}

	return summary, nil
}

func (r *MongoDBReviewRepositoryImpl) CountReviews(ctx context.Context) (count int64, err error) {
	count, err = r.db.Collection(CollectionReviews).CountDocuments(ctx, bson.D{})
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "CountReviews").Msg("")
		return 0, fmt.Errorf("count reviews: %w", err)
	}

	return count, nil
}
