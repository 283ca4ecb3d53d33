package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/matifood/catalog-service/internal/domain"
	"github.com/matifood/catalog-service/pkg/errs"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoDBNewsletterRepositoryImpl struct {
	db *mongo.Database
}

func CreateMongoDBNewsletterRepository(db *mongo.Database) NewsletterRepository {
	return &MongoDBNewsletterRepositoryImpl{db: db}
}

func (r *MongoDBNewsletterRepositoryImpl) AddSubscription(ctx context.Context, data domain.NewsletterSubscription) (err error) {
	_, err = r.db.Collection(CollectionNewsletter).InsertOne(ctx, data)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return errs.ErrConflict
		}

		log.Ctx(ctx).Error().Err(err).Str("component", "AddSubscription").Msg("")
		return fmt.Errorf("insert subscription: %w", err)
	}

	return nil
}

func (r *MongoDBNewsletterRepositoryImpl) GetSubscriptionByEmail(ctx context.Context, email string) (subscription domain.NewsletterSubscription, err error) {
	err = r.db.Collection(CollectionNewsletter).FindOne(ctx, bson.D{{Key: "email", Value: email}}).Decode(&subscription)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return subscription, errs.ErrSubscriberNotFound
		}

		log.Ctx(ctx).Error().Err(err).Str("component", "GetSubscriptionByEmail").Msg("")
		return subscription, fmt.Errorf("find subscription: %w", err)
	}

	return subscription, nil
}

func (r *MongoDBNewsletterRepositoryImpl) Resubscribe(ctx context.Context, email string) (subscription domain.NewsletterSubscription, err error) {
	filter := bson.D{{Key: "email", Value: email}}
	update := bson.D{{Key: "$set", Value: bson.D{
		{Key: "subscribed", Value: true},
		{Key: "unsubscribed_at", Value: nil},
	}}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	err = r.db.Collection(CollectionNewsletter).FindOneAndUpdate(ctx, filter, update, opts).Decode(&subscription)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return subscription, errs.ErrSubscriberNotFound
		}

		log.Ctx(ctx).Error().Err(err).Str("component", "Resubscribe").Msg("")
		return subscription, fmt.Errorf("resubscribe: %w", err)
	}

	return subscription, nil
}

func (r *MongoDBNewsletterRepositoryImpl) Unsubscribe(ctx context.Context, email string, at time.Time) (err error) {
	filter := bson.D{{Key: "email", Value: email}}
	update := bson.D{{Key: "$set", Value: bson.D{
		{Key: "subscribed", Value: false},
		{Key: "unsubscribed_at", Value: at},
	}}}

	result, err := r.db.Collection(CollectionNewsletter).UpdateOne(ctx, filter, update)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "Unsubscribe").Msg("")
		return fmt.Errorf("unsubscribe: %w", err)
	}

	if result.MatchedCount == 0 {
		return errs.ErrSubscriberNotFound
	}

	return nil
}

func (r *MongoDBNewsletterRepositoryImpl) CountActiveSubscribers(ctx context.Context) (count int64, err error) {
	count, err = r.db.Collection(CollectionNewsletter).CountDocuments(ctx, bson.D{{Key: "subscribed", Value: true}})
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "CountActiveSubscribers").Msg("")
		return 0, fmt.Errorf("count subscribers: %w", err)
	}

	return count, nil
}

func (r *MongoDBNewsletterRepositoryImpl) GetRecentSubscriptions(ctx context.Context, limit int) (data []domain.NewsletterSubscription, err error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "subscribed_at", Value: -1}}).
		SetLimit(int64(limit))

	cursor, err := r.db.Collection(CollectionNewsletter).Find(ctx, bson.D{{Key: "subscribed", Value: true}}, opts)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetRecentSubscriptions").Msg("")
		return nil, fmt.Errorf("find subscriptions: %w", err)
	}

	data = []domain.NewsletterSubscription{}
	if err = cursor.All(ctx, &data); err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetRecentSubscriptions").Msg("")
		return nil, fmt.Errorf("decode subscriptions: %w", err)
	}

	return data, nil
}
