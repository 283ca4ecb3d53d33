package repository

import (
	"context"
	"fmt"

	"github.com/matifood/catalog-service/internal/domain"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/mongo"
)

type MongoDBAnalyticsRepositoryImpl struct {
	db *mongo.Database
}

func CreateMongoDBAnalyticsRepository(db *mongo.Database) AnalyticsRepository {
	return &MongoDBAnalyticsRepositoryImpl{db: db}
}

func (r *MongoDBAnalyticsRepositoryImpl) AddEvent(ctx context.Context, data domain.AnalyticsEvent) (err error) {
	_, err = r.db.Collection(CollectionEvents).InsertOne(ctx, data)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "AddEvent").Msg("")
		return fmt.Errorf("insert event: %w", err)
	}

	return nil
}

type MongoDBHealthCheckerImpl struct {
	db *mongo.Database
}

func (h *MongoDBHealthCheckerImpl) Ping(ctx context.Context) (err error) {
	return h.db.Client().Ping(ctx, nil)
}

// CreateMongoDBStore builds every repository on top of db.
func CreateMongoDBStore(db *mongo.Database) Store {
	return Store{
		Products:   CreateMongoDBProductRepository(db),
		Reviews:    CreateMongoDBReviewRepository(db),
		Contacts:   CreateMongoDBContactRepository(db),
		Newsletter: CreateMongoDBNewsletterRepository(db),
		Analytics:  CreateMongoDBAnalyticsRepository(db),
		Health:     &MongoDBHealthCheckerImpl{db: db},
	}
}
