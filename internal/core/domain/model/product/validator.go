package product

import (
	"frosty/internal/pkg/validation"
)

type productValidator struct {
	product *Product
	handler validation.Handler
}

func newProductValidator(product *Product, handler validation.Handler) productValidator {
	return productValidator{product: product, handler: handler}
}

func (v productValidator) validate() {
	v.checkNameConstraints()
	v.checkPriceConstraints()
}

func (v productValidator) checkNameConstraints() {
	name := v.product.name
	if name == nil {
		v.handler.Append(validation.NewError("'name' should not be null"))
		return
	}
	if validation.IsBlank(*name) {
		v.handler.Append(validation.NewError("'name' should not be empty"))
		return
	}
	if !validation.IsNameLengthValid(*name) {
		v.handler.Append(validation.NewError(
			"'name' must be between %d and %d characters",
			validation.NameMinLength, validation.NameMaxLength,
		))
	}
}

func (v productValidator) checkPriceConstraints() {
	price := v.product.price
	if price == nil {
		v.handler.Append(validation.NewError("'price' should not be null"))
		return
	}
	if !price.IsPositive() {
		v.handler.Append(validation.NewError("'price' should be greater than zero"))
	}
}
