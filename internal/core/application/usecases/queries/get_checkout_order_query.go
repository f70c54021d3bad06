package queries

import (
	"errors"
	"time"

	"frosty/internal/core/domain/model/checkout"
	"frosty/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetCheckoutOrderQueryIsNotConstructed = errors.New(
	"GetCheckoutOrderQuery must be created via NewGetCheckoutOrderQuery constructor",
)

// GetCheckoutOrderQuery loads one checkout order by id.
type GetCheckoutOrderQuery struct {
	orderID checkout.OrderID

	guard guard.ConstructorGuard
}

func NewGetCheckoutOrderQuery(orderID string) (GetCheckoutOrderQuery, error) {
	id, err := checkout.OrderIDFrom(orderID)
	if err != nil {
		return GetCheckoutOrderQuery{}, err
	}

	return GetCheckoutOrderQuery{orderID: id, guard: guard.NewConstructorGuard()}, nil
}

func (q GetCheckoutOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetCheckoutOrderQueryIsNotConstructed)
}

func (q GetCheckoutOrderQuery) OrderID() checkout.OrderID {
	return q.orderID
}

// CheckoutOrderResponse is the read model of a checkout order. Status is the
// upper-case status name.
type CheckoutOrderResponse struct {
	ID           string                      `json:"id"`
	Amount       *decimal.Decimal            `json:"amount"`
	Items        []CheckoutOrderItemResponse `json:"items"`
	Total        decimal.Decimal             `json:"total"`
	Open         bool                        `json:"open"`
	Status       string                      `json:"status"`
	CustomerName *string                     `json:"customerName"`
	CreatedAt    time.Time                   `json:"createdAt"`
	UpdatedAt    time.Time                   `json:"updatedAt"`
	DeletedAt    *time.Time                  `json:"deletedAt"`
}

type CheckoutOrderItemResponse struct {
	ID        string          `json:"id"`
	Price     decimal.Decimal `json:"price"`
	Quantity  int             `json:"quantity"`
	ProductID string          `json:"productId"`
	Total     decimal.Decimal `json:"total"`
}

func newCheckoutOrderResponse(order *checkout.Order) CheckoutOrderResponse {
	items := make([]CheckoutOrderItemResponse, 0, len(order.Items()))
	for _, item := range order.Items() {
		items = append(items, CheckoutOrderItemResponse{
			ID:        item.ID(),
			Price:     item.Price(),
			Quantity:  item.Quantity(),
			ProductID: item.ProductID(),
			Total:     item.Total(),
		})
	}

	return CheckoutOrderResponse{
		ID:           order.ID().String(),
		Amount:       order.Amount(),
		Items:        items,
		Total:        order.Total(),
		Open:         order.IsOpen(),
		Status:       order.Status().String(),
		CustomerName: order.CustomerName(),
		CreatedAt:    order.CreatedAt(),
		UpdatedAt:    order.UpdatedAt(),
		DeletedAt:    order.DeletedAt(),
	}
}
