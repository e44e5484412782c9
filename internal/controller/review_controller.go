package controller

import (
	"github.com/labstack/echo/v4"
	"github.com/oceanshop/storefront/internal/dto"
	"github.com/oceanshop/storefront/internal/middleware"
	"github.com/oceanshop/storefront/internal/service"
	"github.com/oceanshop/storefront/pkg/errs"
	"github.com/oceanshop/storefront/pkg/response"
	"github.com/oceanshop/storefront/pkg/validation"
	"github.com/rs/zerolog/log"
)

type ReviewController struct {
	service service.ReviewService
}

func CreateReviewController(e *echo.Group, service service.ReviewService, isLoggedIn echo.MiddlewareFunc) {
	c := ReviewController{
		service: service,
	}

	e.GET("/products/:id/reviews", c.GetReviews)
	e.POST("/reviews", c.AddReview, isLoggedIn)
}

func (c *ReviewController) GetReviews(e echo.Context) error {
	resp, err := c.service.GetReviews(e.Request().Context(), e.Param("id"))
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "successfully retrieved reviews", resp)
}

func (c *ReviewController) AddReview(e echo.Context) error {
	payload := dto.ReviewRequest{}
	err := e.Bind(&payload)
	if err != nil {
		log.Error().Err(err).Str("component", "AddReview").Msg("")
	}

	if err := e.Validate(&payload); err != nil {
		return response.WriteErrorResponse(e, errs.ErrClient, validation.Errors(err))
	}

	resp, err := c.service.AddReview(e.Request().Context(), middleware.CurrentUser(e), payload)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "successfully added review", resp)
}
