package dto

import "github.com/matifood/catalog-service/internal/domain"

type ReviewRequest struct {
	ProductID     *string `json:"product_id"`
	CustomerName  string  `json:"customer_name" validate:"required"`
	CustomerEmail *string `json:"customer_email" validate:"omitempty,email"`
	Rating        int     `json:"rating" validate:"required,gte=1,lte=5"`
	Comment       string  `json:"comment" validate:"required"`
	Avatar        *string `json:"avatar"`
}

type ReviewModerationRequest struct {
	Verified *bool `json:"verified"`
	Featured *bool `json:"featured"`
}

func (r ReviewModerationRequest) ToDomain() domain.ReviewModeration {
	return domain.ReviewModeration{
		Verified: r.Verified,
		Featured: r.Featured,
	}
}
