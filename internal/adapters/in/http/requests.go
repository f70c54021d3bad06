package http

import (
	"net/url"
	"time"

	"frosty/internal/core/application/usecases/commands"
	"frosty/internal/core/application/usecases/queries"
	"frosty/internal/core/domain/model/product"
	"frosty/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
	"github.com/shopspring/decimal"
)

type createdResponse struct {
	ID string `json:"id"`
}

type checkinItemRequest struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Quantity  int             `json:"quantity"`
	ProductID string          `json:"productId"`
}

type checkinOrderRequest struct {
	Items    []checkinItemRequest `json:"items"`
	Canceled bool                 `json:"canceled"`
}

// items keeps a missing or null list as nil.
func (r checkinOrderRequest) items() []commands.CheckinItem {
	if r.Items == nil {
		return nil
	}

	out := make([]commands.CheckinItem, 0, len(r.Items))
	for _, item := range r.Items {
		out = append(out, commands.CheckinItem(item))
	}
	return out
}

type checkoutItemRequest struct {
	ID        string          `json:"id"`
	Price     decimal.Decimal `json:"price"`
	Quantity  int             `json:"quantity"`
	ProductID string          `json:"productId"`
}

type checkoutOrderRequest struct {
	Amount       *decimal.Decimal      `json:"amount"`
	Items        []checkoutItemRequest `json:"items"`
	Open         bool                  `json:"open"`
	Status       string                `json:"status"`
	CustomerName *string               `json:"customerName"`
}

func (r checkoutOrderRequest) items() []commands.CheckoutItem {
	if r.Items == nil {
		return nil
	}

	out := make([]commands.CheckoutItem, 0, len(r.Items))
	for _, item := range r.Items {
		out = append(out, commands.CheckoutItem(item))
	}
	return out
}

type closeCheckoutOrderRequest struct {
	Status string `json:"status"`
}

type productRequest struct {
	Name           *string          `json:"name"`
	Description    *string          `json:"description"`
	Price          *decimal.Decimal `json:"price"`
	ExpirationDate *time.Time       `json:"expirationDate"`
	Stock          *int             `json:"stock"`
	Active         bool             `json:"active"`
}

func (r productRequest) attributes() product.Attributes {
	return product.Attributes{
		Name:           r.Name,
		Description:    r.Description,
		Price:          r.Price,
		ExpirationDate: r.ExpirationDate,
		Stock:          r.Stock,
		Active:         r.Active,
	}
}

// bindID reads the id path parameter.
func bindID(c echo.Context) (string, error) {
	var id string
	err := runtime.BindStyledParameterWithLocation("simple", false, "id", runtime.ParamLocationPath, c.Param("id"), &id)
	if err != nil {
		return "", errs.NewValueIsInvalidErrorWithCause("id", err)
	}
	return id, nil
}

// bindListQuery reads page, perPage, terms, sort and dir from the query string.
// Absent parameters keep their zero value, which selects the search defaults.
func bindListQuery(c echo.Context) (queries.ListQuery, error) {
	params := c.QueryParams()

	var (
		page, perPage    *int
		terms, sort, dir *string
	)
	for _, p := range []struct {
		name string
		dest any
	}{
		{"page", &page},
		{"perPage", &perPage},
		{"terms", &terms},
		{"sort", &sort},
		{"dir", &dir},
	} {
		if err := bindQuery(params, p.name, p.dest); err != nil {
			return queries.ListQuery{}, err
		}
	}

	return queries.NewListQuery(valueOrZero(page), valueOrZero(perPage), valueOrZero(terms), valueOrZero(sort), valueOrZero(dir))
}

// bindQuery binds an optional parameter; dest must be a pointer to a pointer.
func bindQuery(params url.Values, name string, dest any) error {
	if err := runtime.BindQueryParameter("form", true, false, name, params, dest); err != nil {
		return errs.NewValueIsInvalidErrorWithCause(name, err)
	}
	return nil
}

func valueOrZero[T any](v *T) T {
	if v == nil {
		var zero T
		return zero
	}
	return *v
}
