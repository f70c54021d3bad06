package checkout

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
	msgCreateFailed = "failed to create a checkout order"
	msgUpdateFailed = "failed to update a checkout order"
	msgCloseFailed  = "failed to close a checkout order"
)

// Order is the checkout order aggregate root.
//
// Invariants:
//   - items are present and non-empty
//   - amount is present and greater than zero
//   - customerName, when present, is 3 to 255 characters long
//   - open orders are PENDING, closed orders are COMPLETED or ERROR
//   - deletedAt is non-nil exactly when the order is closed
//
// Construction, Update and Close validate a staged copy and commit it only when it
// is valid. Open, AddOrderItem(s) and RemoveOrderItem change the order without
// validation.
type Order struct {
	id           OrderID
	amount       *decimal.Decimal
	items        []OrderItem
	open         bool
	status       Status
	customerName *string
	createdAt    time.Time
	updatedAt    time.Time
	deletedAt    *time.Time
}

// NewOrder creates an order with a generated id and timestamps taken from supplier.
// A closed order starts with deletedAt equal to its creation time.
//
// Example:
//
//	amount := decimal.RequireFromString("21.50")
//	item, _ := checkout.NewOrderItem(supplier, decimal.RequireFromString("10.75"), 2, "123")
//	order, err := checkout.NewOrder(supplier, &amount, []checkout.OrderItem{item}, true, checkout.Pending, nil)
func NewOrder(
	supplier kernel.Supplier,
	amount *decimal.Decimal,
	items []OrderItem,
	open bool,
	status Status,
	customerName *string,
) (*Order, error) {
	now := supplier.Now()

	var deletedAt *time.Time
	if !open {
		deletedAt = &now
	}

	return newOrder(NewOrderID(supplier), amount, items, open, status, customerName, now, now, deletedAt)
}

// RestoreOrder rebuilds an order from stored state and validates it again.
func RestoreOrder(
	id OrderID,
	amount *decimal.Decimal,
	items []OrderItem,
	open bool,
	status Status,
	customerName *string,
	createdAt time.Time,
	updatedAt time.Time,
	deletedAt *time.Time,
) (*Order, error) {
	return newOrder(id, amount, items, open, status, customerName, createdAt, updatedAt, deletedAt)
}

func newOrder(
	id OrderID,
	amount *decimal.Decimal,
	items []OrderItem,
	open bool,
	status Status,
	customerName *string,
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
		id:           id,
		amount:       cloneDecimal(amount),
		items:        slices.Clone(items),
		open:         open,
		status:       status,
		customerName: cloneString(customerName),
		createdAt:    createdAt,
		updatedAt:    updatedAt,
		deletedAt:    cloneTime(deletedAt),
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

func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// Open reopens the order: deletedAt is cleared and the status goes back to PENDING.
func (o *Order) Open(clock kernel.Clock) {
	o.markOpen(clock.Now())
}

// Close closes the order with status. deletedAt keeps its value when already set.
// Closing with PENDING or an unknown status fails and leaves the order open.
func (o *Order) Close(clock kernel.Clock, status Status) error {
	staged := o.clone()
	staged.markClosed(clock.Now(), status)
	return o.commit(staged, msgCloseFailed)
}

// Update applies the open or close branch, then replaces the amount and the items.
// When open is true the order becomes PENDING and status is ignored.
func (o *Order) Update(clock kernel.Clock, amount *decimal.Decimal, items []OrderItem, open bool, status Status) error {
	staged := o.clone()
	now := clock.Now()

	if open {
		staged.markOpen(now)
	} else {
		staged.markClosed(now, status)
	}

	staged.amount = cloneDecimal(amount)
	staged.items = slices.Clone(items)
	if staged.items == nil {
		staged.items = []OrderItem{}
	}
	staged.touch(now)

	return o.commit(staged, msgUpdateFailed)
}

// AddOrderItem appends item. A zero-value item is ignored.
func (o *Order) AddOrderItem(clock kernel.Clock, item OrderItem) {
	if item.Validate() != nil {
		return
	}
	o.AddOrderItems(clock, []OrderItem{item})
}

// AddOrderItems appends items in order. An empty slice is ignored.
func (o *Order) AddOrderItems(clock kernel.Clock, items []OrderItem) {
	if len(items) == 0 {
		return
	}
	o.items = append(o.items, items...)
	o.touch(clock.Now())
}

// RemoveOrderItem removes the first item equal to item. A zero-value item is ignored.
func (o *Order) RemoveOrderItem(clock kernel.Clock, item OrderItem) {
	if item.Validate() != nil {
		return
	}

	if idx := slices.IndexFunc(o.items, item.IsEqual); idx >= 0 {
		o.items = slices.Delete(o.items, idx, idx+1)
	}
	o.touch(clock.Now())
}

// Total sums the item totals. It is informational and may differ from Amount.
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

// Amount returns the charged amount, nil when absent.
func (o *Order) Amount() *decimal.Decimal {
	return cloneDecimal(o.amount)
}

func (o *Order) Items() []OrderItem {
	return slices.Clone(o.items)
}

func (o *Order) IsOpen() bool {
	return o.open
}

func (o *Order) Status() Status {
	return o.status
}

// CustomerName returns the customer name, nil when the order is anonymous.
func (o *Order) CustomerName() *string {
	return cloneString(o.customerName)
}

func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

func (o *Order) DeletedAt() *time.Time {
	return cloneTime(o.deletedAt)
}

func (o *Order) markOpen(now time.Time) {
	o.deletedAt = nil
	o.open = true
	o.status = Pending
	o.touch(now)
}

func (o *Order) markClosed(now time.Time, status Status) {
	if o.deletedAt == nil {
		o.deletedAt = &now
	}
	o.open = false
	o.status = status
	o.touch(now)
}

func (o *Order) touch(now time.Time) {
	o.updatedAt = kernel.Advance(o.updatedAt, now)
}

func (o *Order) clone() *Order {
	staged := *o
	staged.amount = cloneDecimal(o.amount)
	staged.items = slices.Clone(o.items)
	staged.customerName = cloneString(o.customerName)
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

func cloneDecimal(d *decimal.Decimal) *decimal.Decimal {
	if d == nil {
		return nil
	}
	v := *d
	return &v
}

func cloneString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
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
