package product

import (
	"errors"
	"time"

	"frosty/internal/core/domain/model/kernel"
	"frosty/internal/pkg/errs"
	"frosty/internal/pkg/validation"

	"github.com/shopspring/decimal"
)

const msgCreateFailed = "failed to create a product"

// Attributes carries the caller-editable fields of a product. Nil pointers stand for
// absent values.
type Attributes struct {
	Name           *string
	Description    *string
	Price          *decimal.Decimal
	ExpirationDate *time.Time
	Stock          *int
	Active         bool
}

// Product is the product aggregate root.
type Product struct {
	id             ID
	name           *string
	description    *string
	active         bool
	price          *decimal.Decimal
	expirationDate *time.Time
	stock          *int
	createdAt      time.Time
	updatedAt      time.Time
	deletedAt      *time.Time
}

// NewProduct creates a product with a generated id and validates it. An inactive
// product starts with deletedAt equal to its creation time.
//
// Example:
//
//	name, price := "Frozen peas", decimal.RequireFromString("2.49")
//	p, err := product.NewProduct(supplier, product.Attributes{Name: &name, Price: &price, Active: true})
func NewProduct(supplier kernel.Supplier, attrs Attributes) (*Product, error) {
	now := supplier.Now()

	p := &Product{
		id:        NewID(supplier),
		createdAt: now,
		updatedAt: now,
	}
	p.assign(attrs)
	p.stock = clonePtr(attrs.Stock)
	if !attrs.Active {
		p.deletedAt = &now
	}

	if err := validation.Check(p, msgCreateFailed); err != nil {
		return nil, err
	}

	return p, nil
}

// RestoreProduct rebuilds a product from stored state. Only the id and the
// timestamps are checked; the name and price rules are not applied.
func RestoreProduct(
	id ID,
	name *string,
	description *string,
	active bool,
	price *decimal.Decimal,
	expirationDate *time.Time,
	stock *int,
	createdAt time.Time,
	updatedAt time.Time,
	deletedAt *time.Time,
) (*Product, error) {
	if err := errors.Join(
		id.Validate(),
		requireTime("createdAt", createdAt),
		requireTime("updatedAt", updatedAt),
	); err != nil {
		return nil, err
	}

	return &Product{
		id:             id,
		name:           clonePtr(name),
		description:    clonePtr(description),
		active:         active,
		price:          clonePtr(price),
		expirationDate: clonePtr(expirationDate),
		stock:          clonePtr(stock),
		createdAt:      createdAt,
		updatedAt:      updatedAt,
		deletedAt:      clonePtr(deletedAt),
	}, nil
}

// Validate writes every violated invariant into h.
func (p *Product) Validate(h validation.Handler) {
	newProductValidator(p, h).validate()
}

func (p *Product) IsEqual(other *Product) bool {
	return other != nil && p.id.IsEqual(other.id)
}

// Activate clears deletedAt and marks the product active.
func (p *Product) Activate(clock kernel.Clock) {
	p.activate(clock.Now())
}

// Deactivate marks the product inactive. deletedAt keeps its value when already set.
func (p *Product) Deactivate(clock kernel.Clock) {
	p.deactivate(clock.Now())
}

// Update applies the activate or deactivate branch and replaces name, description,
// price and expiration date. Stock is replaced only when attrs.Stock is set.
func (p *Product) Update(clock kernel.Clock, attrs Attributes) {
	now := clock.Now()

	if attrs.Active {
		p.activate(now)
	} else {
		p.deactivate(now)
	}

	p.assign(attrs)
	if attrs.Stock != nil {
		p.stock = clonePtr(attrs.Stock)
	}
}

// IsExpired reports whether the product has an expiration date that is not after at.
func (p *Product) IsExpired(at time.Time) bool {
	return p.expirationDate != nil && !p.expirationDate.After(at)
}

func (p *Product) ID() ID {
	return p.id
}

func (p *Product) Name() *string {
	return clonePtr(p.name)
}

func (p *Product) Description() *string {
	return clonePtr(p.description)
}

func (p *Product) IsActive() bool {
	return p.active
}

func (p *Product) Price() *decimal.Decimal {
	return clonePtr(p.price)
}

func (p *Product) ExpirationDate() *time.Time {
	return clonePtr(p.expirationDate)
}

func (p *Product) Stock() *int {
	return clonePtr(p.stock)
}

func (p *Product) CreatedAt() time.Time {
	return p.createdAt
}

func (p *Product) UpdatedAt() time.Time {
	return p.updatedAt
}

func (p *Product) DeletedAt() *time.Time {
	return clonePtr(p.deletedAt)
}

func (p *Product) assign(attrs Attributes) {
	p.name = clonePtr(attrs.Name)
	p.description = clonePtr(attrs.Description)
	p.price = clonePtr(attrs.Price)
	p.expirationDate = clonePtr(attrs.ExpirationDate)
	p.active = attrs.Active
}

func (p *Product) activate(now time.Time) {
	p.deletedAt = nil
	p.active = true
	p.touch(now)
}

func (p *Product) deactivate(now time.Time) {
	if p.deletedAt == nil {
		p.deletedAt = &now
	}
	p.active = false
	p.touch(now)
}

func (p *Product) touch(now time.Time) {
	p.updatedAt = kernel.Advance(p.updatedAt, now)
}

func clonePtr[T any](v *T) *T {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}

func requireTime(name string, t time.Time) error {
	if t.IsZero() {
		return errs.NewValueIsRequiredError(name)
	}
	return nil
}
