package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/oceanshop/storefront/internal/domain"
	"github.com/oceanshop/storefront/pkg/errs"
	"github.com/oceanshop/storefront/pkg/response"
	"github.com/oceanshop/storefront/pkg/utils"
)

const userContextKey = "user"

// Session resolves the bearer token into the request's session user. Requests
// without a valid token simply carry no user; whether that matters is decided
// per route.
func Session(jwtSecret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
			if strings.HasPrefix(authHeader, "Bearer ") {
				token := strings.TrimPrefix(authHeader, "Bearer ")
				uid, email, displayName, err := utils.ParseSessionToken(token, jwtSecret)
				if err == nil {
					c.Set(userContextKey, &domain.User{
						UID:         uid,
						Email:       email,
						DisplayName: displayName,
					})
				}
			}

			return next(c)
		}
	}
}

func RequireLoggedIn(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if CurrentUser(c) == nil {
			return response.WriteErrorResponse(c, errs.ErrNotLoggedIn, nil)
		}
		return next(c)
	}
}

// CurrentUser returns the session user set by Session, or nil.
func CurrentUser(c echo.Context) *domain.User {
	user, ok := c.Get(userContextKey).(*domain.User)
	if !ok {
		return nil
	}
	return user
}
