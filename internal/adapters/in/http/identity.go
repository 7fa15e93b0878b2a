package http

import (
	"fmt"
	"net/http"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/user"

	"github.com/labstack/echo/v4"
)

const (
	HeaderUserID   = "X-User-ID"
	HeaderUserRole = "X-User-Role"
	HeaderUserName = "X-User-Name"

	actorKey = "actor"
)

// Identity trusts the caller identity set by the upstream authenticator and
// rejects requests that carry none.
func Identity() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			actor, err := actorFromHeaders(c.Request().Header)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, Error{
					Code:    http.StatusUnauthorized,
					Message: err.Error(),
				})
			}
			c.Set(actorKey, actor)
			return next(c)
		}
	}
}

func actorFromHeaders(h http.Header) (user.Actor, error) {
	id, err := kernel.UUIDFromString(h.Get(HeaderUserID))
	if err != nil {
		return user.Actor{}, fmt.Errorf("%w: %s: %v", errUnauthenticated, HeaderUserID, err)
	}
	role, err := user.ParseRole(h.Get(HeaderUserRole))
	if err != nil {
		return user.Actor{}, fmt.Errorf("%w: %s: %v", errUnauthenticated, HeaderUserRole, err)
	}
	actor, err := user.NewActor(id, h.Get(HeaderUserName), role)
	if err != nil {
		return user.Actor{}, fmt.Errorf("%w: %v", errUnauthenticated, err)
	}
	return actor, nil
}

// actorOf returns the identity stored by Identity. Routes outside of the
// middleware get an unauthenticated error.
func actorOf(c echo.Context) (user.Actor, error) {
	actor, ok := c.Get(actorKey).(user.Actor)
	if !ok {
		return user.Actor{}, errUnauthenticated
	}
	return actor, nil
}
