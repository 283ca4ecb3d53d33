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
)

const (
	defaultProductRating = 5.0
	defaultStockQuantity = 100
)

type ProductServiceImpl struct {
	productRepo repository.ProductRepository
}

func CreateProductService(productRepo repository.ProductRepository) ProductService {
	return &ProductServiceImpl{productRepo: productRepo}
}

func (s *ProductServiceImpl) GetProducts(ctx context.Context, params filter.ProductParams, page pkgdto.Pagination) (data []domain.Product, err error) {
	return s.productRepo.GetProducts(ctx, filter.BuildProductFilter(params), page)
}

func (s *ProductServiceImpl) GetProductByID(ctx context.Context, id string) (product domain.Product, err error) {
	return s.productRepo.GetProductByID(ctx, id)
}

func (s *ProductServiceImpl) AddProduct(ctx context.Context, req dto.ProductRequest) (product domain.Product, err error) {
	now := time.Now().UTC()

	product = domain.Product{
		ID:              uuid.New().String(),
		Name:            req.Name,
		Category:        req.Category,
		OriginalPrice:   req.OriginalPrice,
		Image:           req.Image,
		Images:          orEmpty(req.Images),
		Description:     req.Description,
		LongDescription: req.LongDescription,
		Ingredients:     orEmpty(req.Ingredients),
		NutritionFacts:  req.NutritionFacts,
		InStock:         true,
		StockQuantity:   defaultStockQuantity,
		Rating:          defaultProductRating,
		ReviewCount:     0,
		Featured:        req.Featured,
		Organic:         true,
		Tags:            orEmpty(req.Tags),
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if req.Price != nil {
		product.Price = *req.Price
	}
	if req.StockQuantity != nil {
		product.StockQuantity = *req.StockQuantity
	}
	if product.NutritionFacts == nil {
		product.NutritionFacts = map[string]interface{}{}
	}

	if err = s.productRepo.AddProduct(ctx, product); err != nil {
		return domain.Product{}, err
	}

	return product, nil
}

func (s *ProductServiceImpl) UpdateProduct(ctx context.Context, id string, req dto.ProductUpdateRequest) (product domain.Product, err error) {
	return s.productRepo.UpdateProduct(ctx, id, req.ToDomain(), time.Now().UTC())
}

func (s *ProductServiceImpl) DeleteProduct(ctx context.Context, id string) (err error) {
	return s.productRepo.DeleteProduct(ctx, id)
}

func orEmpty(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
