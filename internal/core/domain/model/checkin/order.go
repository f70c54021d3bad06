package checkin

import (
	"errors"
	"slices"
	"time"

	"frosty/internal/core/domain/model/kernel"
	"frosty/internal/pkg/errs"
	"frosty/internal/pkg/validation"

	"github.com/shopspring/decimal"
)

const (
	msgCreateFailed = "failed to create a checkin order"
	msgUpdateFailed = "failed to update a checkin order"
)

// Order is the check-in order aggregate root.
//
// Order follows these invariants:
//   - Items are present and non-empty, and each item satisfies the item rules
//   - deletedAt is non-nil exactly when the order is canceled
//   - createdAt never changes after construction
//   - updatedAt strictly increases on every mutation
//
// Operations that touch validated state (construction, Update, AddOrderItem,
// AddOrderItems) are applied to a staged copy first. The copy replaces the live
// state only when it is valid; otherwise the order is left as it was and a
// *validation.NotificationError listing every violation is returned.
type Order struct {
	id        OrderID
	items     []OrderItem
	canceled  bool
	createdAt time.Time
	updatedAt time.Time
	deletedAt *time.Time
}

// NewOrder creates an order with a generated id and timestamps taken from supplier.
// A canceled order starts with deletedAt equal to its creation time.
//
// Example:
//
//	item, _ := checkin.NewOrderItem(supplier, "Item 1", decimal.RequireFromString("10.75"), 1, "123")
//	order, err := checkin.NewOrder(supplier, []checkin.OrderItem{item}, false)
//	if err != nil {
//	    var notification *validation.NotificationError
//	    if errors.As(err, &notification) {
//	        // every violated constraint is in notification.Errors()
//	    }
//	}
func NewOrder(supplier kernel.Supplier, items []OrderItem, canceled bool) (*Order, error) {
	now := supplier.Now()

	var deletedAt *time.Time
	if canceled {
		deletedAt = &now
	}

	return newOrder(NewOrderID(supplier), items, canceled, now, now, deletedAt)
}

// RestoreOrder rebuilds an order from stored state. The state is validated again.
func RestoreOrder(
	id OrderID,
	items []OrderItem,
	canceled bool,
	createdAt time.Time,
	updatedAt time.Time,
	deletedAt *time.Time,
) (*Order, error) {
	return newOrder(id, items, canceled, createdAt, updatedAt, deletedAt)
}

func newOrder(
	id OrderID,
	items []OrderItem,
	canceled bool,
	createdAt time.Time,
	updatedAt time.Time,
	deletedAt *time.Time,
) (*Order, error) {
	if err := errors.Join(
		id.Validate(),
		requireTime("createdAt", createdAt),
		requireTime("updatedAt", updatedAt),
	); err != nil {
		return nil, err
	}

	order := &Order{
		id:        id,
		items:     slices.Clone(items),
		canceled:  canceled,
		createdAt: createdAt,
		updatedAt: updatedAt,
		deletedAt: cloneTime(deletedAt),
	}

	if err := validation.Check(order, msgCreateFailed); err != nil {
		return nil, err
	}

	return order, nil
}

// Validate writes every violated invariant into h.
func (o *Order) Validate(h validation.Handler) {
	newOrderValidator(o, h).validate()
}

// IsEqual compares two orders by id.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// Cancel marks the order as canceled. deletedAt keeps its value when already set.
func (o *Order) Cancel(clock kernel.Clock) {
	o.cancel(clock.Now())
}

// Uncancel reverts a cancellation and clears deletedAt.
func (o *Order) Uncancel(clock kernel.Clock) {
	o.uncancel(clock.Now())
}

// Update applies the cancel or uncancel branch and replaces the items. A nil items
// slice replaces the items with an empty list, which fails validation.
func (o *Order) Update(clock kernel.Clock, items []OrderItem, canceled bool) error {
	staged := o.clone()
	now := clock.Now()

	if canceled {
		staged.cancel(now)
	} else {
		staged.uncancel(now)
	}

	staged.items = slices.Clone(items)
	if staged.items == nil {
		staged.items = []OrderItem{}
	}
	staged.touch(now)

	return o.commit(staged, msgUpdateFailed)
}

// AddOrderItem appends item. A zero-value item is ignored.
func (o *Order) AddOrderItem(clock kernel.Clock, item OrderItem) error {
	if item.Validate() != nil {
		return nil
	}
	return o.AddOrderItems(clock, []OrderItem{item})
}

// AddOrderItems appends items in order. An empty slice is ignored.
func (o *Order) AddOrderItems(clock kernel.Clock, items []OrderItem) error {
	if len(items) == 0 {
		return nil
	}

	staged := o.clone()
	staged.items = append(staged.items, items...)
	staged.touch(clock.Now())

	return o.commit(staged, msgUpdateFailed)
}

// RemoveOrderItem removes the first item equal to item. A zero-value item is ignored.
// The remaining items are not validated, so removing the last item is allowed here
// and caught by the next validating operation.
func (o *Order) RemoveOrderItem(clock kernel.Clock, item OrderItem) {
	if item.Validate() != nil {
		return
	}

	if idx := slices.IndexFunc(o.items, item.IsEqual); idx >= 0 {
		o.items = slices.Delete(o.items, idx, idx+1)
	}
	o.touch(clock.Now())
}

// Total sums the totals of all items.
func (o *Order) Total() decimal.Decimal {
	total := decimal.Zero
	for _, item := range o.items {
		total = total.Add(item.Total())
	}
	return total
}

func (o *Order) ID() OrderID {
	return o.id
}

// Items returns a copy of the items; nil when the order holds no item list.
func (o *Order) Items() []OrderItem {
	return slices.Clone(o.items)
}

func (o *Order) IsCanceled() bool {
	return o.canceled
}

func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// DeletedAt returns the soft-delete timestamp, nil while the order is not canceled.
func (o *Order) DeletedAt() *time.Time {
	return cloneTime(o.deletedAt)
}

func (o *Order) cancel(now time.Time) {
	if o.deletedAt == nil {
		o.deletedAt = &now
	}
	o.canceled = true
	o.touch(now)
}

func (o *Order) uncancel(now time.Time) {
	o.deletedAt = nil
	o.canceled = false
	o.touch(now)
}

func (o *Order) touch(now time.Time) {
	o.updatedAt = kernel.Advance(o.updatedAt, now)
}

func (o *Order) clone() *Order {
	staged := *o
	staged.items = slices.Clone(o.items)
	staged.deletedAt = cloneTime(o.deletedAt)
	return &staged
}

func (o *Order) commit(staged *Order, message string) error {
	if err := validation.Check(staged, message); err != nil {
		return err
	}
	*o = *staged
	return nil
}

func cloneTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := *t
	return &v
}

func requireTime(name string, t time.Time) error {
	if t.IsZero() {
		return errs.NewValueIsRequiredError(name)
	}
	return nil
}
