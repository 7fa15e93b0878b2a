package http

import (
	"net/http"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"

	"github.com/labstack/echo/v4"
)

// ListNotifications handles GET /api/notifications?unread=&limit=.
func (s *Server) ListNotifications(c echo.Context) error {
	actor, err := actorOf(c)
	if err != nil {
		return s.writeError(c, err)
	}

	var (
		unread *bool
		limit  *int
	)
	if err = queryParam(c, "unread", &unread); err != nil {
		return s.writeError(c, err)
	}
	if err = queryParam(c, "limit", &limit); err != nil {
		return s.writeError(c, err)
	}

	unreadOnly := unread != nil && *unread
	n := 0
	if limit != nil {
		n = *limit
	}

	query, err := queries.NewListNotificationsQuery(actor, unreadOnly, n)
	if err != nil {
		return s.writeError(c, err)
	}

	views, err := s.handlers.ListNotifications.Handle(c.Request().Context(), query)
	if err != nil {
		return s.writeError(c, err)
	}

	response := make([]NotificationResponse, 0, len(views))
	for _, v := range views {
		response = append(response, newNotificationResponse(v))
	}
	return c.JSON(http.StatusOK, response)
}

// MarkNotificationRead handles PUT /api/notifications/:id/read.
func (s *Server) MarkNotificationRead(c echo.Context) error {
	actor, err := actorOf(c)
	if err != nil {
		return s.writeError(c, err)
	}
	id, err := pathUUID(c, "id")
	if err != nil {
		return s.writeError(c, err)
	}

	cmd, err := commands.NewMarkNotificationReadCommand(actor, id)
	if err != nil {
		return s.writeError(c, err)
	}
	if err = s.handlers.MarkRead.Handle(c.Request().Context(), cmd); err != nil {
		return s.writeError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// RegisterPushSubscription handles POST /api/push/subscriptions with a browser PushSubscription body.
func (s *Server) RegisterPushSubscription(c echo.Context) error {
	actor, err := actorOf(c)
	if err != nil {
		return s.writeError(c, err)
	}

	var req PushSubscriptionRequest
	if err = c.Bind(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	cmd, err := commands.NewRegisterPushSubscriptionCommand(actor, req.Endpoint, req.Keys.P256dh, req.Keys.Auth, req.ExpirationTime)
	if err != nil {
		return s.writeError(c, err)
	}
	if err = s.handlers.RegisterPush.Handle(c.Request().Context(), cmd); err != nil {
		return s.writeError(c, err)
	}

	return c.NoContent(http.StatusCreated)
}
