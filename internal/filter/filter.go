// Package filter turns optional listing parameters into store predicates.
//
// Every filter renders to a MongoDB query document and can also be evaluated
// against a document in memory; both forms express the same predicate.
package filter

import (
	"regexp"
	"slices"
	"strings"

	"github.com/matifood/catalog-service/internal/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ProductParams struct {
	Category *string
	Featured *bool
	Search   *string
}

type ReviewParams struct {
	Featured  *bool
	ProductID *string
}

// ProductFilter is the AND of the category, featured and search predicates.
// A nil field imposes no constraint.
type ProductFilter struct {
	category *string
	featured *bool
	search   *string
}

type ReviewFilter struct {
	featured  *bool
	productID *string
}

// BuildProductFilter drops empty strings so that "?category=" behaves like an
// absent parameter.
func BuildProductFilter(params ProductParams) ProductFilter {
	return ProductFilter{
		category: nonEmpty(params.Category),
		featured: params.Featured,
		search:   nonEmpty(params.Search),
	}
}

func BuildReviewFilter(params ReviewParams) ReviewFilter {
	return ReviewFilter{
		featured:  params.Featured,
		productID: nonEmpty(params.ProductID),
	}
}

// BSON renders the filter as a MongoDB query document. Substring matches use
// escaped, case-insensitive regular expressions; tags use exact membership.
func (f ProductFilter) BSON() bson.D {
	query := bson.D{}

	if f.category != nil {
		query = append(query, bson.E{Key: "category", Value: containsFold(*f.category)})
	}

	if f.featured != nil {
		query = append(query, bson.E{Key: "featured", Value: *f.featured})
	}

	if f.search != nil {
		query = append(query, bson.E{Key: "$or", Value: bson.A{
			bson.D{{Key: "name", Value: containsFold(*f.search)}},
			bson.D{{Key: "description", Value: containsFold(*f.search)}},
			bson.D{{Key: "tags", Value: bson.D{{Key: "$in", Value: bson.A{*f.search}}}}},
		}})
	}

	return query
}

func (f ProductFilter) Match(p domain.Product) bool {
	if f.category != nil && !containsFoldString(p.Category, *f.category) {
		return false
	}

	if f.featured != nil && p.Featured != *f.featured {
		return false
	}

	if f.search != nil {
		term := *f.search
		if !containsFoldString(p.Name, term) &&
			!containsFoldString(p.Description, term) &&
			!slices.Contains(p.Tags, term) {
			return false
		}
	}

	return true
}

func (f ReviewFilter) BSON() bson.D {
	query := bson.D{}

	if f.featured != nil {
		query = append(query, bson.E{Key: "featured", Value: *f.featured})
	}

	if f.productID != nil {
		query = append(query, bson.E{Key: "product_id", Value: *f.productID})
	}

	return query
}

func (f ReviewFilter) Match(r domain.Review) bool {
	if f.featured != nil && r.Featured != *f.featured {
		return false
	}

	if f.productID != nil && (r.ProductID == nil || *r.ProductID != *f.productID) {
		return false
	}

	return true
}

func containsFold(term string) primitive.Regex {
	return primitive.Regex{Pattern: regexp.QuoteMeta(term), Options: "i"}
}

func containsFoldString(s, term string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(term))
}

func nonEmpty(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	return s
}
