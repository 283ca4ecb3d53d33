package domain

import "time"

type Product struct {
	ID              string                 `bson:"id" json:"id"`
	Name            string                 `bson:"name" json:"name"`
	Category        string                 `bson:"category" json:"category"`
	Price           float64                `bson:"price" json:"price"`
	OriginalPrice   *float64               `bson:"original_price" json:"original_price"`
	Image           string                 `bson:"image" json:"image"`
	Images          []string               `bson:"images" json:"images"`
	Description     string                 `bson:"description" json:"description"`
	LongDescription *string                `bson:"long_description" json:"long_description"`
	Ingredients     []string               `bson:"ingredients" json:"ingredients"`
	NutritionFacts  map[string]interface{} `bson:"nutrition_facts" json:"nutrition_facts"`
	InStock         bool                   `bson:"in_stock" json:"in_stock"`
	StockQuantity   int                    `bson:"stock_quantity" json:"stock_quantity"`
	Rating          float64                `bson:"rating" json:"rating"`
	ReviewCount     int                    `bson:"review_count" json:"review_count"`
	Featured        bool                   `bson:"featured" json:"featured"`
	Organic         bool                   `bson:"organic" json:"organic"`
	Tags            []string               `bson:"tags" json:"tags"`
	CreatedAt       time.Time              `bson:"created_at" json:"created_at"`
	UpdatedAt       time.Time              `bson:"updated_at" json:"updated_at"`
}

// ProductUpdate holds the catalog fields an edit may change. Rating and
// review count are maintained by the rating aggregator and cannot be set here.
type ProductUpdate struct {
	Name            *string
	Category        *string
	Price           *float64
	OriginalPrice   *float64
	Image           *string
	Images          []string
	Description     *string
	LongDescription *string
	Ingredients     []string
	NutritionFacts  map[string]interface{}
	InStock         *bool
	StockQuantity   *int
	Featured        *bool
	Tags            []string
}

// Apply copies every set field of u onto p.
func (u ProductUpdate) Apply(p *Product) {
	if u.Name != nil {
		p.Name = *u.Name
	}
	if u.Category != nil {
		p.Category = *u.Category
	}
	if u.Price != nil {
		p.Price = *u.Price
	}
	if u.OriginalPrice != nil {
		p.OriginalPrice = u.OriginalPrice
	}
	if u.Image != nil {
		p.Image = *u.Image
	}
	if u.Images != nil {
		p.Images = u.Images
	}
	if u.Description != nil {
		p.Description = *u.Description
	}
	if u.LongDescription != nil {
		p.LongDescription = u.LongDescription
	}
	if u.Ingredients != nil {
		p.Ingredients = u.Ingredients
	}
	if u.NutritionFacts != nil {
		p.NutritionFacts = u.NutritionFacts
	}
	if u.InStock != nil {
		p.InStock = *u.InStock
	}
	if u.StockQuantity != nil {
		p.StockQuantity = *u.StockQuantity
	}
	if u.Featured != nil {
		p.Featured = *u.Featured
	}
	if u.Tags != nil {
		p.Tags = u.Tags
	}
}
