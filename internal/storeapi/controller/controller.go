package controller

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/oceanshop/storefront/internal/storeapi/repository"
	"github.com/oceanshop/storefront/pkg/errs"
	"github.com/rs/zerolog/log"
)

// Controller exposes plain collection CRUD with unwrapped JSON bodies. The
// storefront talks to it exactly as it would talk to any generic REST data
// service, so no envelope is used here.
type Controller struct {
	repository repository.RecordRepository
}

func CreateRecordController(e *echo.Echo, repository repository.RecordRepository) {
	c := Controller{
		repository: repository,
	}

	e.GET("/:collection", c.List)
	e.GET("/:collection/:id", c.Get)
	e.POST("/:collection", c.Create)
	e.PATCH("/:collection/:id", c.Update)
	e.DELETE("/:collection/:id", c.Delete)
}

func writeError(e echo.Context, err error) error {
	if errors.Is(err, errs.ErrNotFound) {
		return e.JSON(http.StatusNotFound, map[string]interface{}{})
	}
	return e.JSON(http.StatusInternalServerError, map[string]interface{}{})
}

func (c *Controller) List(e echo.Context) error {
	filter := map[string]string{}
	for field, values := range e.QueryParams() {
		if len(values) > 0 {
			filter[field] = values[0]
		}
	}

	data, err := c.repository.List(e.Request().Context(), e.Param("collection"), filter)
	if err != nil {
		return writeError(e, err)
	}

	return e.JSON(http.StatusOK, data)
}

func (c *Controller) Get(e echo.Context) error {
	data, err := c.repository.Get(e.Request().Context(), e.Param("collection"), e.Param("id"))
	if err != nil {
		return writeError(e, err)
	}

	return e.JSONBlob(http.StatusOK, data)
}

func (c *Controller) Create(e echo.Context) error {
	document := map[string]interface{}{}
	if err := e.Bind(&document); err != nil {
		log.Error().Err(err).Str("component", "Create").Msg("")
		return e.JSON(http.StatusBadRequest, map[string]interface{}{})
	}

	data, err := c.repository.Create(e.Request().Context(), e.Param("collection"), document)
	if err != nil {
		return writeError(e, err)
	}

	return e.JSONBlob(http.StatusCreated, data)
}

func (c *Controller) Update(e echo.Context) error {
	partial := map[string]interface{}{}
	if err := e.Bind(&partial); err != nil {
		log.Error().Err(err).Str("component", "Update").Msg("")
		return e.JSON(http.StatusBadRequest, map[string]interface{}{})
	}

	data, err := c.repository.Update(e.Request().Context(), e.Param("collection"), e.Param("id"), partial)
	if err != nil {
		return writeError(e, err)
	}

	return e.JSONBlob(http.StatusOK, data)
}

func (c *Controller) Delete(e echo.Context) error {
	if err := c.repository.Delete(e.Request().Context(), e.Param("collection"), e.Param("id")); err != nil {
		return writeError(e, err)
	}

	return e.JSON(http.StatusOK, map[string]interface{}{})
}
