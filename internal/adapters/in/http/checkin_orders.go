package http

import (
	"net/http"

	"frosty/internal/core/application/usecases/commands"
	"frosty/internal/core/application/usecases/queries"
	"frosty/internal/core/domain/model/checkin"

	"github.com/labstack/echo/v4"
)

// ListCheckinOrders handles GET /api/v1/checkin-orders.
func (s *Server) ListCheckinOrders(c echo.Context) error {
	query, err := bindListQuery(c)
	if err != nil {
		return s.writeError(c, err)
	}

	page, err := s.h.ListCheckinOrders.Handle(c.Request().Context(), query)
	if err != nil {
		return s.writeError(c, err)
	}

	return c.JSON(http.StatusOK, page)
}

// GetCheckinOrder handles GET /api/v1/checkin-orders/:id.
func (s *Server) GetCheckinOrder(c echo.Context) error {
	id, err := bindID(c)
	if err != nil {
		return s.writeError(c, err)
	}

	query, err := queries.NewGetCheckinOrderQuery(id)
	if err != nil {
		return s.writeError(c, err)
	}

	order, err := s.h.GetCheckinOrder.Handle(c.Request().Context(), query)
	if err != nil {
		return s.writeError(c, err)
	}

	return c.JSON(http.StatusOK, order)
}

// CreateCheckinOrder handles POST /api/v1/checkin-orders.
func (s *Server) CreateCheckinOrder(c echo.Context) error {
	var body checkinOrderRequest
	if err := c.Bind(&body); err != nil {
		return badRequest(c, "invalid request body", err)
	}

	cmd, err := commands.NewCreateCheckinOrderCommand(body.items(), body.Canceled)
	if err != nil {
		return s.writeError(c, err)
	}

	id, err := s.h.CreateCheckinOrder.Handle(c.Request().Context(), cmd)
	s.metrics.ObserveCommand("create_checkin_order", checkin.AggregateName, err)
	if err != nil {
		return s.writeError(c, err)
	}

	return created(c, "/api/v1/checkin-orders/", id.String())
}

// UpdateCheckinOrder handles PUT /api/v1/checkin-orders/:id.
func (s *Server) UpdateCheckinOrder(c echo.Context) error {
	id, err := bindID(c)
	if err != nil {
		return s.writeError(c, err)
	}

	var body checkinOrderRequest
	if err = c.Bind(&body); err != nil {
		return badRequest(c, "invalid request body", err)
	}

	cmd, err := commands.NewUpdateCheckinOrderCommand(id, body.items(), body.Canceled)
	if err != nil {
		return s.writeError(c, err)
	}

	err = s.h.UpdateCheckinOrder.Handle(c.Request().Context(), cmd)
	s.metrics.ObserveCommand("update_checkin_order", checkin.AggregateName, err)
	if err != nil {
		return s.writeError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// CancelCheckinOrder handles POST /api/v1/checkin-orders/:id/cancel.
func (s *Server) CancelCheckinOrder(c echo.Context) error {
	id, err := bindID(c)
	if err != nil {
		return s.writeError(c, err)
	}

	cmd, err := commands.NewCancelCheckinOrderCommand(id)
	if err != nil {
		return s.writeError(c, err)
	}

	err = s.h.CancelCheckinOrder.Handle(c.Request().Context(), cmd)
	s.metrics.ObserveCommand("cancel_checkin_order", checkin.AggregateName, err)
	if err != nil {
		return s.writeError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// DeleteCheckinOrder handles DELETE /api/v1/checkin-orders/:id.
func (s *Server) DeleteCheckinOrder(c echo.Context) error {
	id, err := bindID(c)
	if err != nil {
		return s.writeError(c, err)
	}

	cmd, err := commands.NewDeleteCheckinOrderCommand(id)
	if err != nil {
		return s.writeError(c, err)
	}

	err = s.h.DeleteCheckinOrder.Handle(c.Request().Context(), cmd)
	s.metrics.ObserveCommand("delete_checkin_order", checkin.AggregateName, err)
	if err != nil {
		return s.writeError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}
