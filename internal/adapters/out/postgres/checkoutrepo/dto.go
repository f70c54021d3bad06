package checkoutrepo

import (
	"time"

	"frosty/internal/core/domain/model/checkout"

	"github.com/shopspring/decimal"
)

// OrderDTO is the row of a checkout order. Status holds the status name.
type OrderDTO struct {
	ID           string              `gorm:"type:varchar(64);primaryKey"`
	Amount       decimal.NullDecimal `gorm:"type:numeric"`
	Open         bool                `gorm:"not null;index"`
	Status       string              `gorm:"type:varchar(16);not null;index"`
	CustomerName *string             `gorm:"type:varchar(255)"`
	CreatedAt    time.Time           `gorm:"not null;autoCreateTime:false"`
	UpdatedAt    time.Time           `gorm:"not null;autoUpdateTime:false"`
	DeletedAt    *time.Time          `gorm:"index"`
	Items        []OrderItemDTO      `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

func (OrderDTO) TableName() string {
	return "checkout_orders"
}

type OrderItemDTO struct {
	ID        string          `gorm:"type:varchar(64);primaryKey"`
	OrderID   string          `gorm:"type:varchar(64);not null;index"`
	Position  int             `gorm:"not null"`
	Price     decimal.Decimal `gorm:"type:numeric;not null"`
	Quantity  int             `gorm:"not null"`
	ProductID string          `gorm:"type:varchar(64);not null;index"`
}

func (OrderItemDTO) TableName() string {
	return "checkout_order_items"
}

func fromDomain(order *checkout.Order) OrderDTO {
	orderID := order.ID().String()
	items := make([]OrderItemDTO, 0, len(order.Items()))

	for position, item := range order.Items() {
		items = append(items, OrderItemDTO{
			ID:        item.ID(),
			OrderID:   orderID,
			Position:  position,
			Price:     item.Price(),
			Quantity:  item.Quantity(),
			ProductID: item.ProductID(),
		})
	}

	var amount decimal.NullDecimal
	if a := order.Amount(); a != nil {
		amount = decimal.NewNullDecimal(*a)
	}

	return OrderDTO{
		ID:           orderID,
		Amount:       amount,
		Open:         order.IsOpen(),
		Status:       order.Status().String(),
		CustomerName: order.CustomerName(),
		CreatedAt:    order.CreatedAt(),
		UpdatedAt:    order.UpdatedAt(),
		DeletedAt:    order.DeletedAt(),
		Items:        items,
	}
}

func toDomain(dto OrderDTO) (*checkout.Order, error) {
	id, err := checkout.OrderIDFrom(dto.ID)
	if err != nil {
		return nil, err
	}

	status, err := checkout.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	items := make([]checkout.OrderItem, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, itemErr := checkout.RestoreOrderItem(itemDTO.ID, itemDTO.Price, itemDTO.Quantity, itemDTO.ProductID)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	var amount *decimal.Decimal
	if dto.Amount.Valid {
		amount = &dto.Amount.Decimal
	}

	return checkout.RestoreOrder(
		id,
		amount,
		items,
		dto.Open,
		status,
		dto.CustomerName,
		dto.CreatedAt.UTC(),
		dto.UpdatedAt.UTC(),
		utc(dto.DeletedAt),
	)
}

func utc(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := t.UTC()
	return &v
}
