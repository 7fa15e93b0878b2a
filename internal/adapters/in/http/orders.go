package http

import (
	"net/http"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/order"

	"github.com/labstack/echo/v4"
)

// CreateOrder handles POST /api/orders.
func (s *Server) CreateOrder(c echo.Context) error {
	actor, err := actorOf(c)
	if err != nil {
		return s.writeError(c, err)
	}

	var req CreateOrderRequest
	if err = c.Bind(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	draft, err := req.toDraft()
	if err != nil {
		return s.writeError(c, err)
	}

	cmd, err := commands.NewCreateOrderCommand(actor, draft, req.SuppressEmail)
	if err != nil {
		return s.writeError(c, err)
	}

	created, err := s.handlers.CreateOrder.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.writeError(c, err)
	}

	return c.JSON(http.StatusCreated, newOrderResponse(created, nil))
}

// ListOrders handles GET /api/orders; the result is scoped by the caller's role.
func (s *Server) ListOrders(c echo.Context) error {
	actor, err := actorOf(c)
	if err != nil {
		return s.writeError(c, err)
	}

	var rawStatus *string
	if err = queryParam(c, "status", &rawStatus); err != nil {
		return s.writeError(c, err)
	}

	var status *order.Status
	if rawStatus != nil {
		parsed, parseErr := order.ParseStatus(*rawStatus)
		if parseErr != nil {
			return s.writeError(c, parseErr)
		}
		status = &parsed
	}

	query, err := queries.NewListOrdersQuery(actor, status)
	if err != nil {
		return s.writeError(c, err)
	}

	summaries, err := s.handlers.ListOrders.Handle(c.Request().Context(), query)
	if err != nil {
		return s.writeError(c, err)
	}

	response := make([]OrderSummaryResponse, 0, len(summaries))
	for _, summary := range summaries {
		response = append(response, newOrderSummaryResponse(summary))
	}
	return c.JSON(http.StatusOK, response)
}

// GetOrder handles GET /api/orders/:id.
func (s *Server) GetOrder(c echo.Context) error {
	actor, err := actorOf(c)
	if err != nil {
		return s.writeError(c, err)
	}
	id, err := pathUUID(c, "id")
	if err != nil {
		return s.writeError(c, err)
	}

	query, err := queries.NewGetOrderQuery(actor, id)
	if err != nil {
		return s.writeError(c, err)
	}

	details, err := s.handlers.GetOrder.Handle(c.Request().Context(), query)
	if err != nil {
		return s.writeError(c, err)
	}

	return c.JSON(http.StatusOK, newOrderResponse(details.Order, details.Usernames))
}

// UpdateOrder handles PUT /api/orders/:id and answers with the order and its recent history.
func (s *Server) UpdateOrder(c echo.Context) error {
	actor, err := actorOf(c)
	if err != nil {
		return s.writeError(c, err)
	}
	id, err := pathUUID(c, "id")
	if err != nil {
		return s.writeError(c, err)
	}

	var req UpdateOrderRequest
	if err = c.Bind(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	patch, err := req.toPatch()
	if err != nil {
		return s.writeError(c, err)
	}

	cmd, err := commands.NewUpdateOrderCommand(actor, id, patch, req.SuppressEmail)
	if err != nil {
		return s.writeError(c, err)
	}

	result, err := s.handlers.UpdateOrder.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.writeError(c, err)
	}

	response := newOrderResponse(result.Order, nil)
	for _, record := range result.History {
		response.History = append(response.History, newChangeResponse(record, ""))
	}
	return c.JSON(http.StatusOK, response)
}

// DeleteOrder handles DELETE /api/orders/:id.
func (s *Server) DeleteOrder(c echo.Context) error {
	actor, err := actorOf(c)
	if err != nil {
		return s.writeError(c, err)
	}
	id, err := pathUUID(c, "id")
	if err != nil {
		return s.writeError(c, err)
	}

	cmd, err := commands.NewDeleteOrderCommand(actor, id)
	if err != nil {
		return s.writeError(c, err)
	}
	if err = s.handlers.DeleteOrder.Handle(c.Request().Context(), cmd); err != nil {
		return s.writeError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// AdminDeleteOrder handles DELETE /api/admin/orders/:id.
func (s *Server) AdminDeleteOrder(c echo.Context) error {
	actor, err := actorOf(c)
	if err != nil {
		return s.writeError(c, err)
	}
	id, err := pathUUID(c, "id")
	if err != nil {
		return s.writeError(c, err)
	}

	cmd, err := commands.NewAdminDeleteOrderCommand(actor, id)
	if err != nil {
		return s.writeError(c, err)
	}
	if err = s.handlers.AdminDeleteOrder.Handle(c.Request().Context(), cmd); err != nil {
		return s.writeError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// EnterERP handles POST /api/orders/:id/erp.
func (s *Server) EnterERP(c echo.Context) error {
	actor, err := actorOf(c)
	if err != nil {
		return s.writeError(c, err)
	}
	id, err := pathUUID(c, "id")
	if err != nil {
		return s.writeError(c, err)
	}

	cmd, err := commands.NewEnterERPCommand(actor, id)
	if err != nil {
		return s.writeError(c, err)
	}

	entered, err := s.handlers.EnterERP.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.writeError(c, err)
	}

	return c.JSON(http.StatusOK, newOrderResponse(entered, nil))
}

// GetOrderHistory handles GET /api/orders/:id/history.
func (s *Server) GetOrderHistory(c echo.Context) error {
	actor, err := actorOf(c)
	if err != nil {
		return s.writeError(c, err)
	}
	id, err := pathUUID(c, "id")
	if err != nil {
		return s.writeError(c, err)
	}

	query, err := queries.NewGetOrderHistoryQuery(actor, id)
	if err != nil {
		return s.writeError(c, err)
	}

	entries, err := s.handlers.OrderHistory.Handle(c.Request().Context(), query)
	if err != nil {
		return s.writeError(c, err)
	}

	response := make([]ChangeResponse, 0, len(entries))
	for _, entry := range entries {
		response = append(response, newChangeResponse(entry.Record, entry.ActorName))
	}
	return c.JSON(http.StatusOK, response)
}

// BulkSendOrders handles POST /api/orders/bulk-send.
func (s *Server) BulkSendOrders(c echo.Context) error {
	actor, err := actorOf(c)
	if err != nil {
		return s.writeError(c, err)
	}

	var req BulkSendRequest
	if err = c.Bind(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	ids, err := parseUUIDs("orderIds", req.OrderIDs)
	if err != nil {
		return s.writeError(c, err)
	}

	cmd, err := commands.NewBulkSendOrdersCommand(actor, ids)
	if err != nil {
		return s.writeError(c, err)
	}

	sent, err := s.handlers.BulkSend.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.writeError(c, err)
	}

	response := make([]OrderResponse, 0, len(sent))
	for _, o := range sent {
		response = append(response, newOrderResponse(o, nil))
	}
	return c.JSON(http.StatusOK, response)
}

// ItemSuggestions handles GET /api/items/suggestions?q=.
func (s *Server) ItemSuggestions(c echo.Context) error {
	if _, err := actorOf(c); err != nil {
		return s.writeError(c, err)
	}

	var q *string
	if err := queryParam(c, "q", &q); err != nil {
		return s.writeError(c, err)
	}

	fragment := ""
	if q != nil {
		fragment = *q
	}

	names, err := s.handlers.ItemSuggestions.Handle(c.Request().Context(), queries.NewGetItemSuggestionsQuery(fragment))
	if err != nil {
		return s.writeError(c, err)
	}

	return c.JSON(http.StatusOK, names)
}
