package http

import (
	"net/http"

	"frosty/internal/core/application/usecases/commands"
	"frosty/internal/core/application/usecases/queries"
	"frosty/internal/core/domain/model/checkout"

	"github.com/labstack/echo/v4"
)

// ListCheckoutOrders handles GET /api/v1/checkout-orders.
func (s *Server) ListCheckoutOrders(c echo.Context) error {
	query, err := bindListQuery(c)
	if err != nil {
		return s.writeError(c, err)
	}

	page, err := s.h.ListCheckoutOrders.Handle(c.Request().Context(), query)
	if err != nil {
		return s.writeError(c, err)
	}

	return c.JSON(http.StatusOK, page)
}

// GetCheckoutOrder handles GET /api/v1/checkout-orders/:id.
func (s *Server) GetCheckoutOrder(c echo.Context) error {
	id, err := bindID(c)
	if err != nil {
		return s.writeError(c, err)
	}

	query, err := queries.NewGetCheckoutOrderQuery(id)
	if err != nil {
		return s.writeError(c, err)
	}

	order, err := s.h.GetCheckoutOrder.Handle(c.Request().Context(), query)
	if err != nil {
		return s.writeError(c, err)
	}

	return c.JSON(http.StatusOK, order)
}

// CreateCheckoutOrder handles POST /api/v1/checkout-orders.
func (s *Server) CreateCheckoutOrder(c echo.Context) error {
	var body checkoutOrderRequest
	if err := c.Bind(&body); err != nil {
		return badRequest(c, "invalid request body", err)
	}

	cmd, err := commands.NewCreateCheckoutOrderCommand(body.Amount, body.items(), body.Open, body.Status, body.CustomerName)
	if err != nil {
		return s.writeError(c, err)
	}

	id, err := s.h.CreateCheckoutOrder.Handle(c.Request().Context(), cmd)
	s.metrics.ObserveCommand("create_checkout_order", checkout.AggregateName, err)
	if err != nil {
		return s.writeError(c, err)
	}

	return created(c, "/api/v1/checkout-orders/", id.String())
}

// UpdateCheckoutOrder handles PUT /api/v1/checkout-orders/:id.
func (s *Server) UpdateCheckoutOrder(c echo.Context) error {
	id, err := bindID(c)
	if err != nil {
		return s.writeError(c, err)
	}

	var body checkoutOrderRequest
	if err = c.Bind(&body); err != nil {
		return badRequest(c, "invalid request body", err)
	}

	cmd, err := commands.NewUpdateCheckoutOrderCommand(id, body.Amount, body.items(), body.Open, body.Status)
	if err != nil {
		return s.writeError(c, err)
	}

	err = s.h.UpdateCheckoutOrder.Handle(c.Request().Context(), cmd)
	s.metrics.ObserveCommand("update_checkout_order", checkout.AggregateName, err)
	if err != nil {
		return s.writeError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// CloseCheckoutOrder handles POST /api/v1/checkout-orders/:id/close.
func (s *Server) CloseCheckoutOrder(c echo.Context) error {
	id, err := bindID(c)
	if err != nil {
		return s.writeError(c, err)
	}

	var body closeCheckoutOrderRequest
	if err = c.Bind(&body); err != nil {
		return badRequest(c, "invalid request body", err)
	}

	cmd, err := commands.NewCloseCheckoutOrderCommand(id, body.Status)
	if err != nil {
		return s.writeError(c, err)
	}

	err = s.h.CloseCheckoutOrder.Handle(c.Request().Context(), cmd)
	s.metrics.ObserveCommand("close_checkout_order", checkout.AggregateName, err)
	if err != nil {
		return s.writeError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// OpenCheckoutOrder handles POST /api/v1/checkout-orders/:id/open.
func (s *Server) OpenCheckoutOrder(c echo.Context) error {
	id, err := bindID(c)
	if err != nil {
		return s.writeError(c, err)
	}

	cmd, err := commands.NewOpenCheckoutOrderCommand(id)
	if err != nil {
		return s.writeError(c, err)
	}

	err = s.h.OpenCheckoutOrder.Handle(c.Request().Context(), cmd)
	s.metrics.ObserveCommand("open_checkout_order", checkout.AggregateName, err)
	if err != nil {
		return s.writeError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// DeleteCheckoutOrder handles DELETE /api/v1/checkout-orders/:id.
func (s *Server) DeleteCheckoutOrder(c echo.Context) error {
	id, err := bindID(c)
	if err != nil {
		return s.writeError(c, err)
	}

	cmd, err := commands.NewDeleteCheckoutOrderCommand(id)
	if err != nil {
		return s.writeError(c, err)
	}

	err = s.h.DeleteCheckoutOrder.Handle(c.Request().Context(), cmd)
	s.metrics.ObserveCommand("delete_checkout_order", checkout.AggregateName, err)
	if err != nil {
		return s.writeError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}
