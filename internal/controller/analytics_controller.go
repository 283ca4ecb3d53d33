package controller

import (
	"github.com/labstack/echo/v4"
	"github.com/matifood/catalog-service/internal/service"
	"github.com/matifood/catalog-service/pkg/errs"
	"github.com/matifood/catalog-service/pkg/response"
	"github.com/rs/zerolog/log"
)

type AnalyticsController struct {
	service service.AnalyticsService
}

func CreateAnalyticsController(g *echo.Group, service service.AnalyticsService) {
	c := AnalyticsController{
		service: service,
	}
	g.GET("/analytics/stats", c.GetStats)
	g.GET("/analytics/recent-activity", c.GetRecentActivity)
	g.POST("/analytics/events", c.TrackEvent)
}

func (c *AnalyticsController) GetStats(e echo.Context) error {
	stats, err := c.service.GetStats(e.Request().Context())
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "successfully retrieved website stats", stats)
}

func (c *AnalyticsController) GetRecentActivity(e echo.Context) error {
	activity, err := c.service.GetRecentActivity(e.Request().Context())
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "successfully retrieved recent activity", activity)
}

func (c *AnalyticsController) TrackEvent(e echo.Context) error {
	var payload map[string]interface{}
	if err := e.Bind(&payload); err != nil {
		log.Ctx(e.Request().Context()).Error().Err(err).Str("component", "TrackEvent").Msg("")
		return response.WriteErrorResponse(e, errs.ErrClient, nil)
	}

	event, err := c.service.TrackEvent(e.Request().Context(), payload)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "Event tracked successfully", map[string]interface{}{
		"id":        event.ID,
		"timestamp": event.Timestamp,
	})
}
