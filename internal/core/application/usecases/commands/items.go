package commands

import (
	"frosty/internal/core/domain/model/checkin"
	"frosty/internal/core/domain/model/checkout"
	"frosty/internal/core/domain/model/kernel"

	"github.com/shopspring/decimal"
)

// CheckinItem describes one check-in order item. An empty ID creates a new item;
// a set ID keeps the identity of an existing one.
type CheckinItem struct {
	ID        string
	Name      string
	Price     decimal.Decimal
	Quantity  int
	ProductID string
}

// CheckoutItem describes one checkout order item. ID follows the CheckinItem rule.
type CheckoutItem struct {
	ID        string
	Price     decimal.Decimal
	Quantity  int
	ProductID string
}

// checkinItems builds order items. A nil input stays nil so the aggregate can
// report the missing item list.
func checkinItems(ids kernel.IDGenerator, inputs []CheckinItem) ([]checkin.OrderItem, error) {
	if inputs == nil {
		return nil, nil
	}

	items := make([]checkin.OrderItem, 0, len(inputs))
	for _, in := range inputs {
		var (
			item checkin.OrderItem
			err  error
		)
		if in.ID == "" {
			item, err = checkin.NewOrderItem(ids, in.Name, in.Price, in.Quantity, in.ProductID)
		} else {
			item, err = checkin.RestoreOrderItem(in.ID, in.Name, in.Price, in.Quantity, in.ProductID)
		}
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

func checkoutItems(ids kernel.IDGenerator, inputs []CheckoutItem) ([]checkout.OrderItem, error) {
	if inputs == nil {
		return nil, nil
	}

	items := make([]checkout.OrderItem, 0, len(inputs))
	for _, in := range inputs {
		var (
			item checkout.OrderItem
			err  error
		)
		if in.ID == "" {
			item, err = checkout.NewOrderItem(ids, in.Price, in.Quantity, in.ProductID)
		} else {
			item, err = checkout.RestoreOrderItem(in.ID, in.Price, in.Quantity, in.ProductID)
		}
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

func checkinProductIDs(items []checkin.OrderItem) []string {
	ids := make([]string, 0, len(items))
	for _, item := range items {
		ids = append(ids, item.ProductID())
	}
	return ids
}

func checkoutProductIDs(items []checkout.OrderItem) []string {
	ids := make([]string, 0, len(items))
	for _, item := range items {
		ids = append(ids, item.ProductID())
	}
	return ids
}
