// Package seed loads the demo catalogue into an empty store.
package seed

import (
	"context"
	"errors"
	"time"

	"github.com/matifood/catalog-service/internal/domain"
	"github.com/matifood/catalog-service/internal/repository"
	"github.com/matifood/catalog-service/pkg/errs"
	"github.com/rs/zerolog/log"
)

// Seed inserts the demo products and homepage testimonials when the product
// collection is empty. A populated catalogue is left untouched.
func Seed(ctx context.Context, store repository.Store) error {
	count, err := store.Products.CountProducts(ctx)
	if err != nil {
		return err
	}

	if count > 0 {
		log.Ctx(ctx).Info().Int64("products", count).Msg("Catalogue already populated, skipping seed")
		return nil
	}

	now := time.Now().UTC()

	products := Products(now)
	if err := store.Products.AddProducts(ctx, products); err != nil {
		return err
	}
	log.Ctx(ctx).Info().Int("products", len(products)).Msg("Seeded products")

	var testimonials []domain.Review
	for _, r := range Testimonials(now) {
		_, err := store.Reviews.GetReviewByID(ctx, r.ID)
		if err == nil {
			continue
		}
		if !errors.Is(err, errs.ErrReviewNotFound) {
			return err
		}
		testimonials = append(testimonials, r)
	}

	if err := store.Reviews.AddReviews(ctx, testimonials); err != nil {
		return err
	}
	log.Ctx(ctx).Info().Int("reviews", len(testimonials)).Msg("Seeded testimonials")

	return nil
}

func Products(now time.Time) []domain.Product {
	products := []domain.Product{
		{
			ID:              "1",
			Name:            "Organic Vegetable Soup Mix",
			Category:        "Soups",
			Price:           12.99,
			OriginalPrice:   floatPtr(19.99),
			Image:           "https://images.unsplash.com/photo-1679949479680-c65ef800b48b?crop=entropy&cs=srgb&fm=jpg&ixid=M3w3MjQyMTd8MHwxfHNlYXJjaHwxfHxvcmdhbmljJTIwc291cCUyMGJvd2xzfGVufDB8fHx8MTc1NDA2MjQ3NHww&ixlib=rb-4.1.0&q=85",
			Description:     "A nutritious blend of organic vegetables perfect for creating hearty, wholesome soups. Made with premium ingredients sourced from certified organic farms.",
			LongDescription: strPtr("Our signature Organic Vegetable Soup Mix represents three generations of culinary mastery. Each ingredient is hand-selected at the peak of ripeness from our partner organic farms nestled in pristine valleys. This extraordinary blend combines heirloom vegetables with ancient grains, creating a symphony of flavors that nourishes both body and soul."),
			Ingredients:     []string{"Organic Carrots", "Organic Celery", "Organic Onions", "Organic Herbs", "Sea Salt"},
			NutritionFacts:  map[string]interface{}{"calories": 45, "protein": "2g", "fiber": "3g", "sodium": "120mg"},
			Rating:          4.9,
			ReviewCount:     347,
			Featured:        true,
			Tags:            []string{"vegetarian", "gluten-free", "organic", "premium"},
		},
		{
			ID:              "2",
			Name:            "Natural Green Smoothie Bowl",
			Category:        "Smoothies",
			Price:           8.99,
			OriginalPrice:   floatPtr(12.99),
			Image:           "https://images.unsplash.com/photo-1590794056675-8354831935b2?crop=entropy&cs=srgb&fm=jpg&ixid=M3w3MjQyMTd8MHwxfHNlYXJjaHwyfHxvcmdhbmljJTIwc291cCUyMGJvd2xzfGVufDB8fHx8MTc1NDA2MjQ3NHww&ixlib=rb-4.1.0&q=85",
			Description:     "Fresh, nutrient-packed green smoothie blend featuring organic spinach, kale, and superfoods. Perfect for a healthy start to your day.",
			LongDescription: strPtr("Awaken your senses with our Natural Green Smoothie Bowl - a vibrant celebration of nature's finest superfoods. Crafted with love from organic spinach, baby kale, and exotic superfruits, this emerald elixir is more than nutrition; it's pure liquid vitality that energizes your soul."),
			Ingredients:     []string{"Organic Spinach", "Organic Kale", "Organic Spirulina", "Coconut Water", "Natural Flavors"},
			NutritionFacts:  map[string]interface{}{"calories": 65, "protein": "4g", "fiber": "5g", "vitamin_c": "80mg"},
			Rating:          4.8,
			ReviewCount:     289,
			Featured:        true,
			Tags:            []string{"vegan", "superfood", "organic", "detox"},
		},
		{
			ID:              "3",
			Name:            "Premium Tomato Basil Soup",
			Category:        "Soups",
			Price:           10.99,
			OriginalPrice:   floatPtr(14.99),
			Image:           "https://images.pexels.com/photos/262947/pexels-photo-262947.jpeg",
			Description:     "Rich and creamy tomato soup made with vine-ripened organic tomatoes and fresh basil. A classic comfort food with a natural twist.",
			LongDescription: strPtr("Experience the essence of summer in every spoonful of our Premium Tomato Basil Soup. Made from heirloom tomatoes that have basked in Mediterranean sunshine and fresh basil grown in our sacred gardens, this liquid poetry captures the soul of traditional Italian cuisine with a luxurious organic touch."),
			Ingredients:     []string{"Organic Vine Tomatoes", "Fresh Basil", "Organic Cream", "Sea Salt", "Organic Herbs"},
			NutritionFacts:  map[string]interface{}{"calories": 78, "protein": "3g", "fiber": "2g", "vitamin_a": "25%"},
			Rating:          4.9,
			ReviewCount:     456,
			Featured:        true,
			Tags:            []string{"vegetarian", "comfort-food", "organic", "premium"},
		},
		{
			ID:              "4",
			Name:            "Golden Turmeric Broth",
			Category:        "Broths",
			Price:           14.99,
			OriginalPrice:   floatPtr(19.99),
			Image:           "https://images.pexels.com/photos/5662121/pexels-photo-5662121.jpeg",
			Description:     "Anti-inflammatory golden broth infused with organic turmeric, ginger, and healing spices. Perfect for wellness and recovery.",
			LongDescription: strPtr("Discover the ancient wisdom of our Golden Turmeric Broth - a sacred elixir crafted from centuries-old Ayurvedic traditions. Each sip delivers the healing power of organic turmeric, wild ginger, and mystical spices that have been cherished by wellness masters for generations."),
			Ingredients:     []string{"Organic Turmeric", "Wild Ginger", "Black Pepper", "Coconut Milk", "Healing Spices"},
			NutritionFacts:  map[string]interface{}{"calories": 52, "protein": "2g", "curcumin": "95mg", "antioxidants": "High"},
			Rating:          4.9,
			ReviewCount:     234,
			Featured:        false,
			Tags:            []string{"wellness", "anti-inflammatory", "organic", "healing"},
		},
		{
			ID:              "5",
			Name:            "Artisan Fruit Preserves",
			Category:        "Preserves",
			Price:           15.99,
			OriginalPrice:   floatPtr(21.99),
			Image:           "https://images.pexels.com/photos/48817/jam-preparations-jars-fruit-48817.jpeg",
			Description:     "Handcrafted fruit preserves made from organic seasonal fruits. No artificial preservatives, just pure natural sweetness.",
			LongDescription: strPtr("Our Artisan Fruit Preserves are love letters written in the language of taste. Master craftsmen carefully select only the most perfect organic fruits at the moment of peak ripeness, transforming them into liquid gold that captures the essence of each season in a jar."),
			Ingredients:     []string{"Organic Seasonal Fruits", "Organic Cane Sugar", "Lemon Juice", "Natural Pectin"},
			NutritionFacts:  map[string]interface{}{"calories": 35, "sugar": "8g", "fiber": "1g", "vitamin_c": "12mg"},
			Rating:          4.8,
			ReviewCount:     178,
			Featured:        false,
			Tags:            []string{"handcrafted", "seasonal", "organic", "artisan"},
		},
		{
			ID:              "6",
			Name:            "Mixed Nuts & Seeds Bowl",
			Category:        "Snacks",
			Price:           11.99,
			OriginalPrice:   floatPtr(15.99),
			Image:           "https://images.pexels.com/photos/1306548/pexels-photo-1306548.jpeg",
			Description:     "Premium mix of organic nuts and seeds, perfect for snacking or adding to your favorite dishes. Rich in healthy fats and protein.",
			LongDescription: strPtr("Indulge in nature's perfect snack with our Mixed Nuts & Seeds Bowl. Each nut and seed has been carefully sourced from sustainable organic farms and roasted to perfection by our master artisans, creating a symphony of textures and flavors that nourish both body and soul."),
			Ingredients:     []string{"Organic Almonds", "Organic Walnuts", "Organic Pumpkin Seeds", "Organic Sunflower Seeds", "Sea Salt"},
			NutritionFacts:  map[string]interface{}{"calories": 165, "protein": "7g", "healthy_fats": "14g", "fiber": "3g"},
			Rating:          4.7,
			ReviewCount:     312,
			Featured:        false,
			Tags:            []string{"protein", "healthy-fats", "organic", "snack"},
		},
		{
			ID:              "7",
			Name:            "Elegant Flower Soup",
			Category:        "Gourmet",
			Price:           18.99,
			OriginalPrice:   floatPtr(24.99),
			Image:           "https://images.unsplash.com/photo-1594306627270-88a533d13bf8?crop=entropy&cs=srgb&fm=jpg&ixid=M3w3MjQyMTd8MHwxfHNlYXJjaHw0fHxvcmdhbmljJTIwc291cCUyMGJvd2xzfGVufDB8fHx8MTc1NDA2MjQ3NHww&ixlib=rb-4.1.0&q=85",
			Description:     "Gourmet soup blend enhanced with edible flowers and premium ingredients. A sophisticated dining experience with natural elegance.",
			LongDescription: strPtr("Experience culinary artistry at its finest with our Elegant Flower Soup. This masterpiece combines the delicate beauty of organic edible flowers with the richest flavors nature can offer, creating an ethereal dining experience that transcends ordinary cuisine and becomes liquid poetry."),
			Ingredients:     []string{"Organic Edible Flowers", "Vegetable Broth", "Organic Cream", "Herbs de Provence", "Truffle Oil"},
			NutritionFacts:  map[string]interface{}{"calories": 89, "protein": "4g", "fiber": "2g", "antioxidants": "Very High"},
			Rating:          5.0,
			ReviewCount:     67,
			Featured:        true,
			Tags:            []string{"gourmet", "luxury", "organic", "edible-flowers"},
		},
		{
			ID:              "8",
			Name:            "Traditional Herbal Broth",
			Category:        "Broths",
			Price:           13.99,
			OriginalPrice:   floatPtr(17.99),
			Image:           "https://images.unsplash.com/photo-1704642155498-70b60672f1f3?crop=entropy&cs=srgb&fm=jpg&ixid=M3w3MjQyMTd8MHwxfHNlYXJjaHwzfHxvcmdhbmljJTIwc291cCUyMGJvd2xzfGVufDB8fHx8MTc1NDA2MjQ3NHww&ixlib=rb-4.1.0&q=85",
			Description:     "Time-honored herbal broth recipe using traditional healing herbs and organic ingredients. Perfect for nourishment and wellness.",
			LongDescription: strPtr("Our Traditional Herbal Broth carries the wisdom of ancient healers and the love of countless generations. Crafted from sacred herbs and organic ingredients following time-honored recipes, this healing elixir offers comfort, nourishment, and the profound connection to nature's healing power."),
			Ingredients:     []string{"Traditional Herbs", "Organic Vegetables", "Healing Spices", "Pure Water", "Sea Salt"},
			NutritionFacts:  map[string]interface{}{"calories": 38, "protein": "2g", "minerals": "High", "herbs": "Traditional Blend"},
			Rating:          4.8,
			ReviewCount:     189,
			Featured:        false,
			Tags:            []string{"traditional", "healing", "organic", "wellness"},
		},
	}

	for i := range products {
		products[i].Images = []string{}
		products[i].InStock = true
		products[i].StockQuantity = 100
		products[i].Organic = true
		products[i].CreatedAt = now
		products[i].UpdatedAt = now
	}

	return products
}

// Testimonials are verified, featured reviews not tied to any product.
func Testimonials(now time.Time) []domain.Review {
	reviews := []domain.Review{
		{
			ID:            "r1",
			CustomerName:  "Sarah Johnson",
			CustomerEmail: strPtr("sarah.j@email.com"),
			Rating:        5,
			Comment:       "The quality of Mati Food products is exceptional. I can taste the difference in every bite - truly natural and organic! My family has been transformed by these incredible flavors.",
			Avatar:        strPtr("https://images.unsplash.com/photo-1494790108755-2616b612b762?w=150&h=150&fit=crop&crop=face"),
		},
		{
			ID:            "r2",
			CustomerName:  "Michael Chen",
			CustomerEmail: strPtr("m.chen@email.com"),
			Rating:        5,
			Comment:       "As someone who cares about healthy eating, Mati Food has become my go-to source for premium organic products. The artistry in every bowl is simply breathtaking.",
			Avatar:        strPtr("https://images.unsplash.com/photo-1472099645785-5658abf4ff4e?w=150&h=150&fit=crop&crop=face"),
		},
		{
			ID:            "r3",
			CustomerName:  "Emily Rodriguez",
			CustomerEmail: strPtr("emily.r@email.com"),
			Rating:        5,
			Comment:       "The soups are absolutely delicious and you can really taste the quality of the organic ingredients. This isn't just food - it's liquid poetry that nourishes my soul. Highly recommended!",
			Avatar:        strPtr("https://images.unsplash.com/photo-1438761681033-6461ffad8d80?w=150&h=150&fit=crop&crop=face"),
		},
	}

	for i := range reviews {
		reviews[i].Verified = true
		reviews[i].Featured = true
		reviews[i].CreatedAt = now
	}

	return reviews
}

func strPtr(s string) *string { return &s }

func floatPtr(f float64) *float64 { return &f }
