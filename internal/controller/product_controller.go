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

type ProductController struct {
	service service.ProductService
}

func CreateProductController(g *echo.Group, service service.ProductService) {
	c := ProductController{
		service: service,
	}
	g.GET("/products", c.GetProducts)
	g.GET("/products/:id", c.GetProductByID)
	g.POST("/products", c.AddProduct)
	g.PUT("/products/:id", c.UpdateProduct)
	g.DELETE("/products/:id", c.DeleteProduct)
}

func (c *ProductController) GetProducts(e echo.Context) error {
	page, fields := bindPagination(e, productPageLimits)
	if fields != nil {
		return response.WriteErrorResponse(e, errs.ErrClient, fields)
	}

	featured, err := optionalBool(e, "featured")
	if err != nil {
		return response.WriteErrorResponse(e, errs.ErrClient, map[string]string{"featured": "must be a boolean"})
	}

	params := filter.ProductParams{
		Category: optionalString(e, "category"),
		Featured: featured,
		Search:   optionalString(e, "search"),
	}

	products, err := c.service.GetProducts(e.Request().Context(), params, page)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "successfully retrieved products", pkgdto.NewPaginationResponse(page, len(products), products))
}

func (c *ProductController) GetProductByID(e echo.Context) error {
	product, err := c.service.GetProductByID(e.Request().Context(), e.Param("id"))
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "successfully retrieved product", product)
}

func (c *ProductController) AddProduct(e echo.Context) error {
	payload := dto.ProductRequest{}
	if err := e.Bind(&payload); err != nil {
		log.Ctx(e.Request().Context()).Error().Err(err).Str("component", "AddProduct").Msg("")
		return response.WriteErrorResponse(e, errs.ErrClient, nil)
	}

	if err := e.Validate(&payload); err != nil {
		return response.WriteErrorResponse(e, errs.ErrClient, validator.Fields(err))
	}

	product, err := c.service.AddProduct(e.Request().Context(), payload)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "successfully created product", product)
}

func (c *ProductController) UpdateProduct(e echo.Context) error {
	payload := dto.ProductUpdateRequest{}
	if err := e.Bind(&payload); err != nil {
		log.Ctx(e.Request().Context()).Error().Err(err).Str("component", "UpdateProduct").Msg("")
		return response.WriteErrorResponse(e, errs.ErrClient, nil)
	}

	if err := e.Validate(&payload); err != nil {
		return response.WriteErrorResponse(e, errs.ErrClient, validator.Fields(err))
	}

	product, err := c.service.UpdateProduct(e.Request().Context(), e.Param("id"), payload)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "successfully updated product", product)
}

func (c *ProductController) DeleteProduct(e echo.Context) error {
	err := c.service.DeleteProduct(e.Request().Context(), e.Param("id"))
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "Product deleted successfully", nil)
}
