package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/matifood/catalog-service/internal/domain"
	pkgdto "github.com/matifood/catalog-service/pkg/dto"
	"github.com/matifood/catalog-service/pkg/errs"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoDBContactRepositoryImpl struct {
	db *mongo.Database
}

func CreateMongoDBContactRepository(db *mongo.Database) ContactRepository {
	return &MongoDBContactRepositoryImpl{db: db}
}

func (r *MongoDBContactRepositoryImpl) AddContact(ctx context.Context, data domain.Contact) (err error) {
	_, err = r.db.Collection(CollectionContacts).InsertOne(ctx, data)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "AddContact").Msg("")
		return fmt.Errorf("insert contact: %w", err)
	}

	return nil
}

func (r *MongoDBContactRepositoryImpl) GetContacts(ctx context.Context, status *string, page pkgdto.Pagination) (data []domain.Contact, err error) {
	query := bson.D{}
	if status != nil && *status != "" {
		query = append(query, bson.E{Key: "status", Value: *status})
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetSkip(int64(page.Skip))
	if page.Limit > 0 {
		opts.SetLimit(int64(page.Limit))
	}

	cursor, err := r.db.Collection(CollectionContacts).Find(ctx, query, opts)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetContacts").Msg("")
		return nil, fmt.Errorf("find contacts: %w", err)
	}

	data = []domain.Contact{}
	if err = cursor.All(ctx, &data); err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetContacts").Msg("")
		return nil, fmt.Errorf("decode contacts: %w", err)
	}

	return data, nil
}

func (r *MongoDBContactRepositoryImpl) UpdateContactStatus(ctx context.Context, id string, status string, updatedAt time.Time) (contact domain.Contact, err error) {
	filter := bson.D{{Key: "id", Value: id}}
	update := bson.D{{Key: "$set", Value: bson.D{
		{Key: "status", Value: status},
		{Key: "updated_at", Value: updatedAt},
	}}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	err = r.db.Collection(CollectionContacts).FindOneAndUpdate(ctx, filter, update, opts).Decode(&contact)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return contact, errs.ErrContactNotFound
		}

		log.Ctx(ctx).Error().Err(err).Str("component", "UpdateContactStatus").Msg("Failed to update contact")
		return contact, fmt.Errorf("update contact %s: %w", id, err)
	}

	return contact, nil
}

func (r *MongoDBContactRepositoryImpl) CountContacts(ctx context.Context) (count int64, err error) {
	count, err = r.db.Collection(CollectionContacts).CountDocuments(ctx, bson.D{})
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "CountContacts").Msg("")
		return 0, fmt.Errorf("count contacts: %w", err)
	}

	return count, nil
}
