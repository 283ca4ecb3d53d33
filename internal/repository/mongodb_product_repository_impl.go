package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/matifood/catalog-service/internal/domain"
	"github.com/matifood/catalog-service/internal/filter"
	pkgdto "github.com/matifood/catalog-service/pkg/dto"
	"github.com/matifood/catalog-service/pkg/errs"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	CollectionProducts   = "products"
	CollectionReviews    = "reviews"
	CollectionContacts   = "contacts"
	CollectionNewsletter = "newsletter"
	CollectionEvents     = "events"
)

type MongoDBProductRepositoryImpl struct {
	db *mongo.Database
}

func CreateMongoDBProductRepository(db *mongo.Database) ProductRepository {
	return &MongoDBProductRepositoryImpl{db: db}
}

func (r *MongoDBProductRepositoryImpl) AddProduct(ctx context.Context, data domain.Product) (err error) {
	_, err = r.db.Collection(CollectionProducts).InsertOne(ctx, data)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "AddProduct").Msg("")
		if mongo.IsDuplicateKeyError(err) {
			return errs.ErrConflict
		}
		return fmt.Errorf("insert product: %w", err)
	}

	return nil
}

func (r *MongoDBProductRepositoryImpl) AddProducts(ctx context.Context, data []domain.Product) (err error) {
	if len(data) == 0 {
		return nil
	}

	docs := make([]interface{}, 0, len(data))
	for _, p := range data {
		docs = append(docs, p)
	}

	_, err = r.db.Collection(CollectionProducts).InsertMany(ctx, docs)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "AddProducts").Msg("")
		return fmt.Errorf("insert products: %w", err)
	}

	return nil
}

func (r *MongoDBProductRepositoryImpl) GetProducts(ctx context.Context, f filter.ProductFilter, page pkgdto.Pagination) (data []domain.Product, err error) {
	opts := options.Find().SetSkip(int64(page.Skip))
	if page.Limit > 0 {
		opts.SetLimit(int64(page.Limit))
	}

	cursor, err := r.db.Collection(CollectionProducts).Find(ctx, f.BSON(), opts)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetProducts").Msg("")
		return nil, fmt.Errorf("find products: %w", err)
	}

	data = []domain.Product{}
	if err = cursor.All(ctx, &data); err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetProducts").Msg("")
		return nil, fmt.Errorf("decode products: %w", err)
	}

	return data, nil
}

func (r *MongoDBProductRepositoryImpl) GetProductByID(ctx context.Context, id string) (product domain.Product, err error) {
	filter := bson.D{{Key: "id", Value: id}}

	err = r.db.Collection(CollectionProducts).FindOne(ctx, filter).Decode(&product)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return product, errs.ErrProductNotFound
		}

		log.Ctx(ctx).Error().Err(err).Str("component", "GetProductByID").Msg("")
		return product, fmt.Errorf("find product %s: %w", id, err)
	}

	return product, nil
}

func (r *MongoDBProductRepositoryImpl) UpdateProduct(ctx context.Context, id string, data domain.ProductUpdate, updatedAt time.Time) (product domain.Product, err error) {
	filter := bson.D{{Key: "id", Value: id}}
	update := bson.D{{Key: "$set", Value: productUpdateFields(data, updatedAt)}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	err = r.db.Collection(CollectionProducts).FindOneAndUpdate(ctx, filter, update, opts).Decode(&product)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return product, errs.ErrProductNotFound
		}

		log.Ctx(ctx).Error().Err(err).Str("component", "UpdateProduct").Msg("Failed to update product")
		return product, fmt.Errorf("update product %s: %w", id, err)
	}

	return product, nil
}

func (r *MongoDBProductRepositoryImpl) UpdateProductRating(ctx context.Context, id string, rating float64, count int) (matched bool, err error) {
	filter := bson.D{{Key: "id", Value: id}}
	update := bson.D{{Key: "$set", Value: bson.D{
		{Key: "rating", Value: rating},
		{Key: "review_count", Value: count},
	}}}

	result, err := r.db.Collection(CollectionProducts).UpdateOne(ctx, filter, update)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "UpdateProductRating").Msg("Failed to update product rating")
		return false, fmt.Errorf("update product rating %s: %w", id, err)
	}

	return result.MatchedCount > 0, nil
}

func (r *MongoDBProductRepositoryImpl) DeleteProduct(ctx context.Context, id string) (err error) {
	filter := bson.D{{Key: "id", Value: id}}

	result, err := r.db.Collection(CollectionProducts).DeleteOne(ctx, filter)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "DeleteProduct").Msg("")
		return fmt.Errorf("delete product %s: %w", id, err)
	}

	if result.DeletedCount == 0 {
		return errs.ErrProductNotFound
	}

	return nil
}

func (r *MongoDBProductRepositoryImpl) CountProducts(ctx context.Context) (count int64, err error) {
	count, err = r.db.Collection(CollectionProducts).CountDocuments(ctx, bson.D{})
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "CountProducts").Msg("")
		return 0, fmt.Errorf("count products: %w", err)
	}

	return count, nil
}

func productUpdateFields(data domain.ProductUpdate, updatedAt time.Time) bson.D {
	fields := bson.D{}
	set := func(key string, value interface{}) {
		fields = append(fields, bson.E{Key: key, Value: value})
	}

	if data.Name != nil {
		set("name", *data.Name)
	}
	if data.Category != nil {
		set("category", *data.Category)
	}
	if data.Price != nil {
		set("price", *data.Price)
	}
	if data.OriginalPrice != nil {
		set("original_price", *data.OriginalPrice)
	}
	if data.Image != nil {
		set("image", *data.Image)
	}
	if data.Images != nil {
		set("images", data.Images)
	}
	if data.Description != nil {
		set("description", *data.Description)
	}
	if data.LongDescription != nil {
		set("long_description", *data.LongDescription)
	}
	if data.Ingredients != nil {
		set("ingredients", data.Ingredients)
	}
	if data.NutritionFacts != nil {
		set("nutrition_facts", data.NutritionFacts)
	}
	if data.InStock != nil {
		set("in_stock", *data.InStock)
	}
	if data.StockQuantity != nil {
		set("stock_quantity", *data.StockQuantity)
	}
	if data.Featured != nil {
		set("featured", *data.Featured)
	}
	if data.Tags != nil {
		set("tags", data.Tags)
	}
	set("updated_at", updatedAt)

	return fields
}
