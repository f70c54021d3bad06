package http

import (
	"net/http"

	"frosty/internal/core/application/usecases/commands"
	"frosty/internal/core/application/usecases/queries"
	"frosty/internal/core/domain/model/product"

	"github.com/labstack/echo/v4"
)

// ListProducts handles GET /api/v1/products.
func (s *Server) ListProducts(c echo.Context) error {
	query, err := bindListQuery(c)
	if err != nil {
		return s.writeError(c, err)
	}

	page, err := s.h.ListProducts.Handle(c.Request().Context(), query)
	if err != nil {
		return s.writeError(c, err)
	}

	return c.JSON(http.StatusOK, page)
}

// GetProduct handles GET /api/v1/products/:id.
func (s *Server) GetProduct(c echo.Context) error {
	id, err := bindID(c)
	if err != nil {
		return s.writeError(c, err)
	}

	query, err := queries.NewGetProductQuery(id)
	if err != nil {
		return s.writeError(c, err)
	}

	p, err := s.h.GetProduct.Handle(c.Request().Context(), query)
	if err != nil {
		return s.writeError(c, err)
	}

	return c.JSON(http.StatusOK, p)
}

// CreateProduct handles POST /api/v1/products.
func (s *Server) CreateProduct(c echo.Context) error {
	var body productRequest
	if err := c.Bind(&body); err != nil {
		return badRequest(c, "invalid request body", err)
	}

	cmd, err := commands.NewCreateProductCommand(body.attributes())
	if err != nil {
		return s.writeError(c, err)
	}

	id, err := s.h.CreateProduct.Handle(c.Request().Context(), cmd)
	s.metrics.ObserveCommand("create_product", product.AggregateName, err)
	if err != nil {
		return s.writeError(c, err)
	}

	return created(c, "/api/v1/products/", id.String())
}

// UpdateProduct handles PUT /api/v1/products/:id.
func (s *Server) UpdateProduct(c echo.Context) error {
	id, err := bindID(c)
	if err != nil {
		return s.writeError(c, err)
	}

	var body productRequest
	if err = c.Bind(&body); err != nil {
		return badRequest(c, "invalid request body", err)
	}

	cmd, err := commands.NewUpdateProductCommand(id, body.attributes())
	if err != nil {
		return s.writeError(c, err)
	}

	err = s.h.UpdateProduct.Handle(c.Request().Context(), cmd)
	s.metrics.ObserveCommand("update_product", product.AggregateName, err)
	if err != nil {
		return s.writeError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// DeleteProduct handles DELETE /api/v1/products/:id.
func (s *Server) DeleteProduct(c echo.Context) error {
	id, err := bindID(c)
	if err != nil {
		return s.writeError(c, err)
	}

	cmd, err := commands.NewDeleteProductCommand(id)
	if err != nil {
		return s.writeError(c, err)
	}

	err = s.h.DeleteProduct.Handle(c.Request().Context(), cmd)
	s.metrics.ObserveCommand("delete_product", product.AggregateName, err)
	if err != nil {
		return s.writeError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

func created(c echo.Context, prefix, id string) error {
	c.Response().Header().Set(echo.HeaderLocation, prefix+id)
	return c.JSON(http.StatusCreated, createdResponse{ID: id})
}
