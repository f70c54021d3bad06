package queries

import (
	"errors"
	"time"

	"frosty/internal/core/domain/model/checkin"
	"frosty/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetCheckinOrderQueryIsNotConstructed = errors.New(
	"GetCheckinOrderQuery must be created via NewGetCheckinOrderQuery constructor",
)

// GetCheckinOrderQuery loads one check-in order by id.
//
// Example:
//
//	query, err := NewGetCheckinOrderQuery(id)
//	if err != nil {
//	    return err
//	}
//	order, err := NewGetCheckinOrderQueryHandler(reader).Handle(ctx, query)
type GetCheckinOrderQuery struct {
	orderID checkin.OrderID

	guard guard.ConstructorGuard
}

func NewGetCheckinOrderQuery(orderID string) (GetCheckinOrderQuery, error) {
	id, err := checkin.OrderIDFrom(orderID)
	if err != nil {
		return GetCheckinOrderQuery{}, err
	}

	return GetCheckinOrderQuery{orderID: id, guard: guard.NewConstructorGuard()}, nil
}

func (q GetCheckinOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetCheckinOrderQueryIsNotConstructed)
}

func (q GetCheckinOrderQuery) OrderID() checkin.OrderID {
	return q.orderID
}

// CheckinOrderResponse is the read model of a check-in order.
type CheckinOrderResponse struct {
	ID        string                     `json:"id"`
	Items     []CheckinOrderItemResponse `json:"items"`
	Total     decimal.Decimal            `json:"total"`
	Canceled  bool                       `json:"canceled"`
	CreatedAt time.Time                  `json:"createdAt"`
	UpdatedAt time.Time                  `json:"updatedAt"`
	DeletedAt *time.Time                 `json:"deletedAt"`
}

type CheckinOrderItemResponse struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Quantity  int             `json:"quantity"`
	ProductID string          `json:"productId"`
	Total     decimal.Decimal `json:"total"`
}

func newCheckinOrderResponse(order *checkin.Order) CheckinOrderResponse {
	items := make([]CheckinOrderItemResponse, 0, len(order.Items()))
	for _, item := range order.Items() {
		items = append(items, CheckinOrderItemResponse{
			ID:        item.ID(),
			Name:      item.Name(),
			Price:     item.Price(),
			Quantity:  item.Quantity(),
			ProductID: item.ProductID(),
			Total:     item.Total(),
		})
	}

	return CheckinOrderResponse{
		ID:        order.ID().String(),
		Items:     items,
		Total:     order.Total(),
		Canceled:  order.IsCanceled(),
		CreatedAt: order.CreatedAt(),
		UpdatedAt: order.UpdatedAt(),
		DeletedAt: order.DeletedAt(),
	}
}
