package checkin

import (
	"frosty/internal/pkg/validation"
)

type orderValidator struct {
	order   *Order
	handler validation.Handler
}

func newOrderValidator(order *Order, handler validation.Handler) orderValidator {
	return orderValidator{order: order, handler: handler}
}

func (v orderValidator) validate() {
	v.checkItemsConstraints()
}

func (v orderValidator) checkItemsConstraints() {
	items := v.order.items

	if items == nil {
		v.handler.Append(validation.NewError("'items' should not be null"))
		return
	}

	if len(items) == 0 {
		v.handler.Append(validation.NewError("'items' should not be empty"))
		return
	}

	for index, item := range items {
		v.checkItemConstraints(item, index)
	}
}

// checkItemConstraints reports only the first rule the item breaks.
func (v orderValidator) checkItemConstraints(item OrderItem, index int) {
	if item.Validate() != nil {
		v.handler.Append(validation.NewError("'item[%d]' should not be null", index))
		return
	}

	if validation.IsBlank(item.Name()) {
		v.handler.Append(validation.NewError("'item[%d].name' should not be empty", index))
		return
	}

	if !validation.IsNameLengthValid(item.Name()) {
		v.handler.Append(validation.NewError(
			"'item[%d].name' must be between %d and %d characters",
			index, validation.NameMinLength, validation.NameMaxLength,
		))
		return
	}

	if !item.Price().IsPositive() {
		v.handler.Append(validation.NewError("'item[%d].price' should be greater than or equal to zero", index))
		return
	}

	if item.Quantity() <= 0 {
		v.handler.Append(validation.NewError("'item[%d].quantity' should be greater than or equal to zero", index))
		return
	}

	if validation.IsBlank(item.ProductID()) {
		v.handler.Append(validation.NewError("'item[%d].productId' should not be empty", index))
	}
}
