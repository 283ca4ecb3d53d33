package controller

import (
	"github.com/labstack/echo/v4"
	"github.com/matifood/catalog-service/internal/dto"
	"github.com/matifood/catalog-service/internal/filter"
	"github.com/matifood/catalog-service/internal/service"
	pkgdto "github.com/matifood/catalog-service/pkg/dto"
	"github.com/matifood/catalog-service/pkg/errs"
	"github.com/matifood/catalog-service/pkg/response"
	"github.com/matifood/catalog-service/pkg/validator"
	"github.com/rs/zerolog/log"
)

type ReviewController struct {
	service service.ReviewService
}

func CreateReviewController(g *echo.Group, service service.ReviewService) {
	c := ReviewController{
		service: service,
	}
	g.GET("/reviews", c.GetReviews)
	g.GET("/reviews/featured", c.GetFeaturedReviews)
	g.GET("/reviews/product/:product_id", c.GetProductReviews)
	g.POST("/reviews", c.AddReview)
	g.PUT("/reviews/:id", c.ModerateReview)
}

func (c *ReviewController) GetReviews(e echo.Context) error {
	page, fields := bindPagination(e, reviewPageLimits)
	if fields != nil {
		return response.WriteErrorResponse(e, errs.ErrClient, fields)
	}

	featured, err := optionalBool(e, "featured")
	if err != nil {
		return response.WriteErrorResponse(e, errs.ErrClient, map[string]string{"featured": "must be a boolean"})
	}

	params := filter.ReviewParams{
		Featured:  featured,
		ProductID: optionalString(e, "product_id"),
	}

	reviews, err := c.service.GetReviews(e.Request().Context(), params, page)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "successfully retrieved reviews", pkgdto.NewPaginationResponse(page, len(reviews), reviews))
}

func (c *ReviewController) GetFeaturedReviews(e echo.Context) error {
	limit, fields := bindLimit(e, featuredReviewPageLimits)
	if fields != nil {
		return response.WriteErrorResponse(e, errs.ErrClient, fields)
	}

	reviews, err := c.service.GetFeaturedReviews(e.Request().Context(), limit)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "successfully retrieved featured reviews", reviews)
}

func (c *ReviewController) GetProductReviews(e echo.Context) error {
	page, fields := bindPagination(e, productReviewPageLimits)
	if fields != nil {
		return response.WriteErrorResponse(e, errs.ErrClient, fields)
	}

	reviews, err := c.service.GetProductReviews(e.Request().Context(), e.Param("product_id"), page)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "successfully retrieved product reviews", pkgdto.NewPaginationResponse(page, len(reviews), reviews))
}

func (c *ReviewController) AddReview(e echo.Context) error {
	payload := dto.ReviewRequest{}
	if err := e.Bind(&payload); err != nil {
		log.Ctx(e.Request().Context()).Error().Err(err).Str("component", "AddReview").Msg("")
		return response.WriteErrorResponse(e, errs.ErrClient, nil)
	}

	if err := e.Validate(&payload); err != nil {
		return response.WriteErrorResponse(e, errs.ErrClient, validator.Fields(err))
	}

	review, err := c.service.AddReview(e.Request().Context(), payload)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "successfully submitted review", review)
}

func (c *ReviewController) ModerateReview(e echo.Context) error {
	payload := dto.ReviewModerationRequest{}
	if err := e.Bind(&payload); err != nil {
		log.Ctx(e.Request().Context()).Error().Err(err).Str("component", "ModerateReview").Msg("")
		return response.WriteErrorResponse(e, errs.ErrClient, nil)
	}

	review, err := c.service.ModerateReview(e.Request().Context(), e.Param("id"), payload)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "successfully updated review", review)
}
