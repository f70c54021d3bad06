package checkinrepo

import (
	"time"

	"frosty/internal/core/domain/model/checkin"

	"github.com/shopspring/decimal"
)

// OrderDTO is the row of a check-in order.
type OrderDTO struct {
	ID        string         `gorm:"type:varchar(64);primaryKey"`
	Canceled  bool           `gorm:"not null;index"`
	CreatedAt time.Time      `gorm:"not null;autoCreateTime:false"`
	UpdatedAt time.Time      `gorm:"not null;autoUpdateTime:false"`
	DeletedAt *time.Time     `gorm:"index"`
	Items     []OrderItemDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

func (OrderDTO) TableName() string {
	return "checkin_orders"
}

// OrderItemDTO is the row of one item. Position keeps the item order.
type OrderItemDTO struct {
	ID        string          `gorm:"type:varchar(64);primaryKey"`
	OrderID   string          `gorm:"type:varchar(64);not null;index"`
	Position  int             `gorm:"not null"`
	Name      string          `gorm:"type:varchar(255);not null"`
	Price     decimal.Decimal `gorm:"type:numeric;not null"`
	Quantity  int             `gorm:"not null"`
	ProductID string          `gorm:"type:varchar(64);not null;index"`
}

func (OrderItemDTO) TableName() string {
	return "checkin_order_items"
}

func fromDomain(order *checkin.Order) OrderDTO {
	orderID := order.ID().String()
	items := make([]OrderItemDTO, 0, len(order.Items()))

	for position, item := range order.Items() {
		items = append(items, OrderItemDTO{
			ID:        item.ID(),
			OrderID:   orderID,
			Position:  position,
			Name:      item.Name(),
			Price:     item.Price(),
			Quantity:  item.Quantity(),
			ProductID: item.ProductID(),
		})
	}

	return OrderDTO{
		ID:        orderID,
		Canceled:  order.IsCanceled(),
		CreatedAt: order.CreatedAt(),
		UpdatedAt: order.UpdatedAt(),
		DeletedAt: order.DeletedAt(),
		Items:     items,
	}
}

func toDomain(dto OrderDTO) (*checkin.Order, error) {
	id, err := checkin.OrderIDFrom(dto.ID)
	if err != nil {
		return nil, err
	}

	items := make([]checkin.OrderItem, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, itemErr := checkin.RestoreOrderItem(
			itemDTO.ID,
			itemDTO.Name,
			itemDTO.Price,
			itemDTO.Quantity,
			itemDTO.ProductID,
		)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return checkin.RestoreOrder(
		id,
		items,
		dto.Canceled,
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
