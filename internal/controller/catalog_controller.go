package controller

import (
	"github.com/labstack/echo/v4"
	"github.com/oceanshop/storefront/internal/service"
	"github.com/oceanshop/storefront/pkg/response"
)

type CatalogController struct {
	service service.CatalogService
}

func CreateCatalogController(e *echo.Group, service service.CatalogService) {
	c := CatalogController{
		service: service,
	}

	e.GET("/products", c.GetProducts)
	e.GET("/products/:id", c.GetProductDetails)
	e.GET("/categories", c.GetCategories)
}

func (c *CatalogController) GetProducts(e echo.Context) error {
	data, err := c.service.GetProducts(e.Request().Context(), e.QueryParam("category"))
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "successfully retrieved products", data)
}

func (c *CatalogController) GetProductDetails(e echo.Context) error {
	data, err := c.service.GetProductDetails(e.Request().Context(), e.Param("id"))
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "successfully retrieved product details", data)
}

func (c *CatalogController) GetCategories(e echo.Context) error {
	data, err := c.service.GetCategories(e.Request().Context())
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "successfully retrieved categories", data)
}
