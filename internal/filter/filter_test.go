package filter

import (
	"testing"

	"github.com/matifood/catalog-service/internal/domain"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func strPtr(s string) *string { return &s }

func boolPtr(b bool) *bool { return &b }

func TestBuildProductFilter_Empty(t *testing.T) {
	f := BuildProductFilter(ProductParams{Category: strPtr(""), Search: strPtr("")})

	assert.Equal(t, bson.D{}, f.BSON())
	assert.True(t, f.Match(domain.Product{Name: "anything"}))
}

func TestBuildProductFilter_BSON(t *testing.T) {
	f := BuildProductFilter(ProductParams{
		Category: strPtr("Soup"),
		Featured: boolPtr(true),
		Search:   strPtr("organic"),
	})

	expected := bson.D{
		{Key: "category", Value: primitive.Regex{Pattern: "Soup", Options: "i"}},
		{Key: "featured", Value: true},
		{Key: "$or", Value: bson.A{
			bson.D{{Key: "name", Value: primitive.Regex{Pattern: "organic", Options: "i"}}},
			bson.D{{Key: "description", Value: primitive.Regex{Pattern: "organic", Options: "i"}}},
			bson.D{{Key: "tags", Value: bson.D{{Key: "$in", Value: bson.A{"organic"}}}}},
		}},
	}

	assert.Equal(t, expected, f.BSON())
}

func TestBuildProductFilter_EscapesRegexMetacharacters(t *testing.T) {
	f := BuildProductFilter(ProductParams{Category: strPtr("soup (mix)")})

	assert.Equal(t, bson.D{
		{Key: "category", Value: primitive.Regex{Pattern: `soup \(mix\)`, Options: "i"}},
	}, f.BSON())
	assert.True(t, f.Match(domain.Product{Category: "Organic Soup (Mix)"}))
	assert.False(t, f.Match(domain.Product{Category: "Organic Soup Mix"}))
}

func TestProductFilter_CategorySubstring(t *testing.T) {
	f := BuildProductFilter(ProductParams{Category: strPtr("Soup")})

	testCases := []struct {
		Name     string
		Category string
		Expected bool
	}{
		{Name: "contained, different case", Category: "Organic Vegetable Soup Mix", Expected: true},
		{Name: "lower case", Category: "soups", Expected: true},
		{Name: "exact", Category: "Soup", Expected: true},
		{Name: "missing", Category: "Broths", Expected: false},
		{Name: "empty category", Category: "", Expected: false},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			assert.Equal(t, tc.Expected, f.Match(domain.Product{Category: tc.Category}))
		})
	}
}

func TestProductFilter_Featured(t *testing.T) {
	onlyFeatured := BuildProductFilter(ProductParams{Featured: boolPtr(true)})
	notFeatured := BuildProductFilter(ProductParams{Featured: boolPtr(false)})

	assert.True(t, onlyFeatured.Match(domain.Product{Featured: true}))
	assert.False(t, onlyFeatured.Match(domain.Product{Featured: false}))
	assert.True(t, notFeatured.Match(domain.Product{Featured: false}))
	assert.False(t, notFeatured.Match(domain.Product{Featured: true}))
}

func TestProductFilter_Search(t *testing.T) {
	f := BuildProductFilter(ProductParams{Search: strPtr("organic")})

	testCases := []struct {
		Name     string
		Product  domain.Product
		Expected bool
	}{
		{
			Name:     "name substring, different case",
			Product:  domain.Product{Name: "Organic Vegetable Soup Mix"},
			Expected: true,
		},
		{
			Name:     "description substring",
			Product:  domain.Product{Name: "Tomato Soup", Description: "Made with ORGANIC tomatoes"},
			Expected: true,
		},
		{
			Name:     "exact tag",
			Product:  domain.Product{Name: "Broth", Tags: []string{"vegan", "organic"}},
			Expected: true,
		},
		{
			Name:     "tag with different case is not an exact element",
			Product:  domain.Product{Name: "Broth", Tags: []string{"Organic"}},
			Expected: false,
		},
		{
			Name:     "tag containing the term is not an exact element",
			Product:  domain.Product{Name: "Broth", Tags: []string{"organic-certified"}},
			Expected: false,
		},
		{
			Name:     "no match anywhere",
			Product:  domain.Product{Name: "Nuts", Description: "Roasted", Tags: []string{"snack"}},
			Expected: false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			assert.Equal(t, tc.Expected, f.Match(tc.Product))
		})
	}
}

func TestProductFilter_CombinesWithAnd(t *testing.T) {
	f := BuildProductFilter(ProductParams{
		Category: strPtr("soup"),
		Featured: boolPtr(true),
		Search:   strPtr("tomato"),
	})

	assert.True(t, f.Match(domain.Product{Category: "Soups", Featured: true, Name: "Premium Tomato Basil Soup"}))
	assert.False(t, f.Match(domain.Product{Category: "Soups", Featured: false, Name: "Premium Tomato Basil Soup"}))
	assert.False(t, f.Match(domain.Product{Category: "Broths", Featured: true, Name: "Tomato Broth"}))
	assert.False(t, f.Match(domain.Product{Category: "Soups", Featured: true, Name: "Vegetable Soup"}))
}

func TestBuildReviewFilter(t *testing.T) {
	f := BuildReviewFilter(ReviewParams{Featured: boolPtr(true), ProductID: strPtr("1")})

	assert.Equal(t, bson.D{
		{Key: "featured", Value: true},
		{Key: "product_id", Value: "1"},
	}, f.BSON())

	assert.True(t, f.Match(domain.Review{Featured: true, ProductID: strPtr("1")}))
	assert.False(t, f.Match(domain.Review{Featured: true, ProductID: strPtr("2")}))
	assert.False(t, f.Match(domain.Review{Featured: true}))
	assert.False(t, f.Match(domain.Review{Featured: false, ProductID: strPtr("1")}))
}

func TestBuildReviewFilter_Empty(t *testing.T) {
	f := BuildReviewFilter(ReviewParams{ProductID: strPtr("")})

	assert.Equal(t, bson.D{}, f.BSON())
	assert.True(t, f.Match(domain.Review{}))
	assert.True(t, f.Match(domain.Review{ProductID: strPtr("7"), Featured: true}))
}
