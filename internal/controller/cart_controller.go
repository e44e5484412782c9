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

type CartController struct {
	cartService     service.CartService
	checkoutService service.CheckoutService
}

func CreateCartController(e *echo.Group, cartService service.CartService, checkoutService service.CheckoutService, isLoggedIn echo.MiddlewareFunc) {
	c := CartController{
		cartService:     cartService,
		checkoutService: checkoutService,
	}

	e.GET("/cart", c.GetCart)
	e.GET("/cart/count", c.GetCartCount)
	e.POST("/cart", c.AddLine, isLoggedIn)
	e.PATCH("/cart/:id", c.UpdateQuantity, isLoggedIn)
	e.DELETE("/cart/:id", c.RemoveLine, isLoggedIn)
	e.POST("/checkout", c.Checkout, isLoggedIn)
}

func (c *CartController) GetCart(e echo.Context) error {
	// ?product_id= narrows the listing to the lines holding one product,
	// which is how the product page shows "already in your cart".
	if productID := e.QueryParam("product_id"); productID != "" {
		lines, err := c.cartService.GetCartLinesForProduct(e.Request().Context(), productID)
		if err != nil {
			return response.WriteErrorResponse(e, err, nil)
		}
		return response.WriteSuccessResponse(e, "successfully retrieved cart lines", lines)
	}

	resp, err := c.cartService.GetCart(e.Request().Context())
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "successfully retrieved cart", resp)
}

func (c *CartController) GetCartCount(e echo.Context) error {
	count, err := c.cartService.GetCartCount(e.Request().Context())
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", dto.CartCountResponse{Count: count})
}

func (c *CartController) AddLine(e echo.Context) error {
	payload := dto.AddCartLineRequest{}
	err := e.Bind(&payload)
	if err != nil {
		log.Error().Err(err).Str("component", "AddLine").Msg("")
	}

	if err := e.Validate(&payload); err != nil {
		return response.WriteErrorResponse(e, errs.ErrClient, validation.Errors(err))
	}

	resp, err := c.cartService.AddLine(e.Request().Context(), middleware.CurrentUser(e), payload)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "successfully added product to cart", resp)
}

func (c *CartController) UpdateQuantity(e echo.Context) error {
	payload := dto.UpdateQuantityRequest{}
	err := e.Bind(&payload)
	if err != nil {
		log.Error().Err(err).Str("component", "UpdateQuantity").Msg("")
	}

	resp, err := c.cartService.UpdateQuantity(e.Request().Context(), e.Param("id"), payload)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "successfully updated cart line", resp)
}

func (c *CartController) RemoveLine(e echo.Context) error {
	resp, err := c.cartService.RemoveLine(e.Request().Context(), e.Param("id"))
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "successfully removed cart line", resp)
}

func (c *CartController) Checkout(e echo.Context) error {
	payload := dto.CheckoutRequest{}
	err := e.Bind(&payload)
	if err != nil {
		log.Error().Err(err).Str("component", "Checkout").Msg("")
	}

	if err := e.Validate(&payload); err != nil {
		return response.WriteErrorResponse(e, errs.ErrClient, validation.Errors(err))
	}

	resp, err := c.checkoutService.Checkout(e.Request().Context(), middleware.CurrentUser(e), payload)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "order placed", resp)
}
