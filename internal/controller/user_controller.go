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

type UserController struct {
	service service.UserService
}

func CreateUserController(e *echo.Group, service service.UserService, isLoggedIn echo.MiddlewareFunc) {
	c := UserController{
		service: service,
	}

	e.POST("/users/register", c.Register)
	e.POST("/users/login", c.Login)
	e.POST("/users/login/federated", c.FederatedLogin)
	e.POST("/users/logout", c.Logout, isLoggedIn)
	e.PATCH("/users/profile", c.UpdateProfile, isLoggedIn)
}

func (c *UserController) Register(e echo.Context) error {
	payload := dto.RegisterRequest{}
	err := e.Bind(&payload)
	if err != nil {
		log.Error().Err(err).Str("component", "Register").Msg("")
	}

	if err := e.Validate(&payload); err != nil {
		return response.WriteErrorResponse(e, errs.ErrClient, validation.Errors(err))
	}

	resp, err := c.service.Register(e.Request().Context(), payload)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "account created", resp)
}

func (c *UserController) Login(e echo.Context) error {
	payload := dto.LoginRequest{}
	err := e.Bind(&payload)
	if err != nil {
		log.Error().Err(err).Str("component", "Login").Msg("")
	}

	if err := e.Validate(&payload); err != nil {
		return response.WriteErrorResponse(e, errs.ErrClient, validation.Errors(err))
	}

	resp, err := c.service.Login(e.Request().Context(), payload)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "logged in", resp)
}

func (c *UserController) FederatedLogin(e echo.Context) error {
	payload := dto.FederatedLoginRequest{}
	err := e.Bind(&payload)
	if err != nil {
		log.Error().Err(err).Str("component", "FederatedLogin").Msg("")
	}

	if err := e.Validate(&payload); err != nil {
		return response.WriteErrorResponse(e, errs.ErrClient, validation.Errors(err))
	}

	resp, err := c.service.FederatedLogin(e.Request().Context(), payload)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "logged in", resp)
}

func (c *UserController) Logout(e echo.Context) error {
	if err := c.service.Logout(e.Request().Context(), middleware.CurrentUser(e)); err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "logged out", nil)
}

func (c *UserController) UpdateProfile(e echo.Context) error {
	payload := dto.UpdateProfileRequest{}
	err := e.Bind(&payload)
	if err != nil {
		log.Error().Err(err).Str("component", "UpdateProfile").Msg("")
	}

	if err := e.Validate(&payload); err != nil {
		return response.WriteErrorResponse(e, errs.ErrClient, validation.Errors(err))
	}

	resp, err := c.service.UpdateProfile(e.Request().Context(), middleware.CurrentUser(e), payload)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "profile updated", resp)
}
