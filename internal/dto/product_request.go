package dto

import "github.com/matifood/catalog-service/internal/domain"

// ProductRequest creates a catalog entry. Rating and review count are not
// accepted; they start at their defaults and are maintained from reviews.
type ProductRequest struct {
	Name            string                 `json:"name" validate:"required"`
	Category        string                 `json:"category" validate:"required"`
	Price           *float64               `json:"price" validate:"required,gte=0"`
	OriginalPrice   *float64               `json:"original_price" validate:"omitempty,gte=0"`
	Image           string                 `json:"image" validate:"required"`
	Images          []string               `json:"images"`
	Description     string                 `json:"description" validate:"required"`
	LongDescription *string                `json:"long_description"`
	Ingredients     []string               `json:"ingredients"`
	NutritionFacts  map[string]interface{} `json:"nutrition_facts"`
	StockQuantity   *int                   `json:"stock_quantity" validate:"omitempty,gte=0"`
	Featured        bool                   `json:"featured"`
	Tags            []string               `json:"tags"`
}

type ProductUpdateRequest struct {
	Name            *string                `json:"name" validate:"omitempty,min=1"`
	Category        *string                `json:"category" validate:"omitempty,min=1"`
	Price           *float64               `json:"price" validate:"omitempty,gte=0"`
	OriginalPrice   *float64               `json:"original_price" validate:"omitempty,gte=0"`
	Image           *string                `json:"image"`
	Images          []string               `json:"images"`
	Description     *string                `json:"description"`
	LongDescription *string                `json:"long_description"`
	Ingredients     []string               `json:"ingredients"`
	NutritionFacts  map[string]interface{} `json:"nutrition_facts"`
	InStock         *bool                  `json:"in_stock"`
	StockQuantity   *int                   `json:"stock_quantity" validate:"omitempty,gte=0"`
	Featured        *bool                  `json:"featured"`
	Tags            []string               `json:"tags"`
}

func (r ProductUpdateRequest) ToDomain() domain.ProductUpdate {
	return domain.ProductUpdate{
		Name:            r.Name,
		Category:        r.Category,
		Price:           r.Price,
		OriginalPrice:   r.OriginalPrice,
		Image:           r.Image,
		Images:          r.Images,
		Description:     r.Description,
		LongDescription: r.LongDescription,
		Ingredients:     r.Ingredients,
		NutritionFacts:  r.NutritionFacts,
		InStock:         r.InStock,
		StockQuantity:   r.StockQuantity,
		Featured:        r.Featured,
		Tags:            r.Tags,
	}
}
