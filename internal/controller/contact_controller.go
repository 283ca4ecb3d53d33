package controller

import (
	"github.com/labstack/echo/v4"
	"github.com/matifood/catalog-service/internal/dto"
	"github.com/matifood/catalog-service/internal/service"
	pkgdto "github.com/matifood/catalog-service/pkg/dto"
	"github.com/matifood/catalog-service/pkg/errs"
	"github.com/matifood/catalog-service/pkg/response"
	"github.com/matifood/catalog-service/pkg/validator"
	"github.com/rs/zerolog/log"
)

type ContactController struct {
	service service.ContactService
}

func CreateContactController(g *echo.Group, service service.ContactService) {
	c := ContactController{
		service: service,
	}
	g.POST("/contact", c.SubmitContact)
	g.GET("/contact", c.GetContacts)
	g.PUT("/contact/:id", c.UpdateContactStatus)
	g.POST("/contact/newsletter", c.Subscribe)
	g.DELETE("/contact/newsletter/:email", c.Unsubscribe)
}

func (c *ContactController) SubmitContact(e echo.Context) error {
	payload := dto.ContactRequest{}
	if err := e.Bind(&payload); err != nil {
		log.Ctx(e.Request().Context()).Error().Err(err).Str("component", "SubmitContact").Msg("")
		return response.WriteErrorResponse(e, errs.ErrClient, nil)
	}

	if err := e.Validate(&payload); err != nil {
		return response.WriteErrorResponse(e, errs.ErrClient, validator.Fields(err))
	}

	contact, err := c.service.SubmitContact(e.Request().Context(), payload, e.RealIP())
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "successfully submitted contact form", contact)
}

func (c *ContactController) GetContacts(e echo.Context) error {
	page, fields := bindPagination(e, contactPageLimits)
	if fields != nil {
		return response.WriteErrorResponse(e, errs.ErrClient, fields)
	}

	contacts, err := c.service.GetContacts(e.Request().Context(), optionalString(e, "status"), page)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "successfully retrieved contacts", pkgdto.NewPaginationResponse(page, len(contacts), contacts))
}

func (c *ContactController) UpdateContactStatus(e echo.Context) error {
	payload := dto.ContactStatusRequest{}
	if err := e.Bind(&payload); err != nil {
		log.Ctx(e.Request().Context()).Error().Err(err).Str("component", "UpdateContactStatus").Msg("")
		return response.WriteErrorResponse(e, errs.ErrClient, nil)
	}

	if err := e.Validate(&payload); err != nil {
		return response.WriteErrorResponse(e, errs.ErrInvalidContactStatus, validator.Fields(err))
	}

	contact, err := c.service.UpdateContactStatus(e.Request().Context(), e.Param("id"), payload.Status)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "successfully updated contact", contact)
}

func (c *ContactController) Subscribe(e echo.Context) error {
	payload := dto.NewsletterRequest{}
	if err := e.Bind(&payload); err != nil {
		log.Ctx(e.Request().Context()).Error().Err(err).Str("component", "Subscribe").Msg("")
		return response.WriteErrorResponse(e, errs.ErrClient, nil)
	}

	if err := e.Validate(&payload); err != nil {
		return response.WriteErrorResponse(e, errs.ErrClient, validator.Fields(err))
	}

	subscription, err := c.service.Subscribe(e.Request().Context(), payload)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "successfully subscribed to newsletter", subscription)
}

func (c *ContactController) Unsubscribe(e echo.Context) error {
	err := c.service.Unsubscribe(e.Request().Context(), e.Param("email"))
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "Successfully unsubscribed from newsletter", nil)
}
