package checkout

import (
	"frosty/internal/pkg/validation"
)

// orderValidator runs four independent checks. Each check stops at its own first
// failure; a failure never prevents the other checks from running.
type orderValidator struct {
	order   *Order
	handler validation.Handler
}

func newOrderValidator(order *Order, handler validation.Handler) orderValidator {
	return orderValidator{order: order, handler: handler}
}

func (v orderValidator) validate() {
	v.checkItemsConstraints()
	v.checkAmountConstraints()
	v.checkCustomerNameConstraints()
	v.checkStatusConstraints()
}

func (v orderValidator) checkItemsConstraints() {
	if v.order.items == nil {
		v.handler.Append(validation.NewError("'items' should not be null"))
		return
	}
	if len(v.order.items) == 0 {
		v.handler.Append(validation.NewError("'items' should not be empty"))
	}
}

func (v orderValidator) checkAmountConstraints() {
	if v.order.amount == nil {
		v.handler.Append(validation.NewError("'amount' should not be null"))
		return
	}
	if !v.order.amount.IsPositive() {
		v.handler.Append(validation.NewError("'amount' should be greater than zero"))
	}
}

func (v orderValidator) checkCustomerNameConstraints() {
	name := v.order.customerName
	if name == nil {
		return
	}
	if validation.IsBlank(*name) {
		v.handler.Append(validation.NewError("'customerName' should not be empty"))
		return
	}
	if !validation.IsNameLengthValid(*name) {
		v.handler.Append(validation.NewError(
			"'customerName' must be between %d and %d characters",
			validation.NameMinLength, validation.NameMaxLength,
		))
	}
}

func (v orderValidator) checkStatusConstraints() {
	status := v.order.status

	switch {
	case !status.IsValid():
		v.handler.Append(validation.NewError("'status' should not be null"))
	case !v.order.open && status == Pending:
		v.handler.Append(validation.NewError("'status' should be 'COMPLETED or ERROR' when is not open"))
	case v.order.open && status.IsFinal():
		v.handler.Append(validation.NewError("'status' should be 'PENDING' when is open"))
	}
}
