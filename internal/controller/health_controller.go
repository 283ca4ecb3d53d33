package controller

import (
	"github.com/labstack/echo/v4"
	"github.com/matifood/catalog-service/internal/service"
	"github.com/matifood/catalog-service/pkg/response"
)

const APIVersion = "1.0.0"

type HealthController struct {
	service service.HealthService
}

func CreateHealthController(g *echo.Group, service service.HealthService) {
	c := HealthController{
		service: service,
	}
	g.GET("", c.Root)
	g.GET("/health", c.Health)
	g.GET("/ping", c.Ping)
}

func (c *HealthController) Root(e echo.Context) error {
	return response.WriteSuccessResponse(e, "Welcome to Mati Food API - Taste the Goodness of Nature", map[string]string{
		"version": APIVersion,
	})
}

func (c *HealthController) Health(e echo.Context) error {
	return response.WriteSuccessResponse(e, "successfully checked service health", c.service.CheckHealth(e.Request().Context()))
}

func (c *HealthController) Ping(e echo.Context) error {
	return response.WriteSuccessResponse(e, "pong", nil)
}
